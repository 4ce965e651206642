package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	templates "github.com/musecoding/fleet-management-sytem/templates/html"
)

// Scheduler handles periodic background jobs for fleet operations
type Scheduler struct {
	cron *cron.Cron
	conf *config.Config
	MDB  databases.MaintenanceDatabase
	EDB  databases.EmergencyAssistanceDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(conf *config.Config, mdb databases.MaintenanceDatabase, edb databases.EmergencyAssistanceDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		conf: conf,
		MDB:  mdb,
		EDB:  edb,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Mail the upcoming maintenance digest daily at 6 AM UTC
	_, err := s.cron.AddFunc("0 6 * * *", s.sendMaintenanceDigest)
	if err != nil {
		zap.S().Errorw("failed to register maintenance digest job", "error", err)
	}

	// Mail a digest of still-pending emergency requests daily at 7 AM UTC
	_, err = s.cron.AddFunc("0 7 * * *", s.sendPendingEmergencyDigest)
	if err != nil {
		zap.S().Errorw("failed to register emergency digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("fleet operations scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("fleet operations scheduler stopped")
}

// sendMaintenanceDigest mails the maintenance records scheduled within the
// next 24 hours to the fleet ops address
func (s *Scheduler) sendMaintenanceDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	upcoming, err := s.MDB.Find(ctx, bson.M{
		"status": "pending",
		"scheduledDate": bson.M{
			"$gte": now,
			"$lt":  now.Add(24 * time.Hour),
		},
	})
	if err != nil {
		zap.S().Errorw("failed to fetch upcoming maintenances", "error", err)
		return
	}
	if len(upcoming) == 0 {
		zap.S().Debug("no upcoming maintenances, skipping digest")
		return
	}

	body := fmt.Sprintf("%d maintenance job(s) are scheduled within the next 24 hours:\n\n", len(upcoming))
	for _, m := range upcoming {
		body += fmt.Sprintf("- vehicle %s: %s (scheduled %s)\n", m.VehicleID, m.Description, m.ScheduledDate.Format(time.RFC1123))
	}

	s.sendDigest("Upcoming vehicle maintenance", body)
}

// sendPendingEmergencyDigest mails a digest of emergency assistance
// requests that are still pending
func (s *Scheduler) sendPendingEmergencyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending, err := s.EDB.Find(ctx, bson.M{"status": "pending"})
	if err != nil {
		zap.S().Errorw("failed to fetch pending emergencies", "error", err)
		return
	}
	if len(pending) == 0 {
		zap.S().Debug("no pending emergencies, skipping digest")
		return
	}

	body := fmt.Sprintf("%d emergency assistance request(s) are still pending:\n\n", len(pending))
	for _, e := range pending {
		body += fmt.Sprintf("- vehicle %s at %s: %s (requested %s)\n", e.VehicleID, e.Location, e.Description, e.CreatedAt.Format(time.RFC1123))
	}

	s.sendDigest("Pending emergency assistance requests", body)
}

func (s *Scheduler) sendDigest(subject, body string) {
	if s.conf.SendgridKey == "" || s.conf.FleetOpsEmail == "" {
		zap.S().Warn("sendgrid not configured, skipping digest email")
		return
	}

	from := mail.NewEmail("Fleet Management", s.conf.SenderEmail)
	to := mail.NewEmail("Fleet Operations", s.conf.FleetOpsEmail)
	message := mail.NewSingleEmail(from, subject, to, body, templates.RenderGenericEmail(subject, body))

	client := sendgrid.NewSendClient(s.conf.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send digest email", "subject", subject, "error", err)
		return
	}
	zap.S().Infow("digest email sent", "subject", subject, "statusCode", resp.StatusCode)
}
