package models

import "time"

// UserRole is the role attached to an account. Roles are stamped at
// registration but no operation checks them.
type UserRole string

// Known account roles
const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleDriver     UserRole = "driver"
)

// Account holds the structure for the accounts collection
type Account struct {
	ID           string    `json:"_id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         UserRole  `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// AccountPayload is the caller supplied input to register an account
type AccountPayload struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}
