package service

import (
	"context"

	"github.com/robfig/cron/v3"

	"trading-journal/config"
	"trading-journal/pkg/logger"
)

// SessionJanitor sweeps expired sessions on a cron schedule.
type SessionJanitor struct {
	cfg  *config.Config
	log  *logger.Logger
	auth AuthService
	cron *cron.Cron
}

func NewSessionJanitor(cfg *config.Config, log *logger.Logger, auth AuthService) *SessionJanitor {
	return &SessionJanitor{
		cfg:  cfg,
		log:  log,
		auth: auth,
		cron: cron.New(),
	}
}

func (j *SessionJanitor) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(j.cfg.Auth.CleanupSchedule, func() {
		if _, err := j.auth.CleanupExpired(ctx); err != nil {
			j.log.ErrorContext(ctx, "Session cleanup failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("Session janitor started", logger.StringField("schedule", j.cfg.Auth.CleanupSchedule))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *SessionJanitor) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("Session janitor stopped")
}
