package api

import (
	"context"
	"time"

	"github.com/shaj13/go-guardian/auth"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

type contextKey string

const principalContextKey contextKey = "principal"

// WithPrincipal stores the authenticated caller in the request context
func WithPrincipal(parent context.Context, info auth.Info) context.Context {
	return context.WithValue(parent, principalContextKey, info)
}

// PrincipalFromContext returns the authenticated caller stamped by the
// auth middleware, if any
func PrincipalFromContext(ctx context.Context) (auth.Info, bool) {
	info, ok := ctx.Value(principalContextKey).(auth.Info)
	return info, ok
}
