// Package job holds the scheduled maintenance tasks run by the web
// server's cron scheduler.
package job

import (
	"time"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
)

// RevokedTokenCleanupJob drops blacklist rows whose tokens have expired on
// their own; keeping them any longer buys nothing.
type RevokedTokenCleanupJob struct{}

func NewRevokedTokenCleanupJob() *RevokedTokenCleanupJob {
	return new(RevokedTokenCleanupJob)
}

func (j *RevokedTokenCleanupJob) Run() {
	db := database.GetDB()
	result := db.Where("expires_at < ?", time.Now()).Delete(&model.RevokedToken{})
	if result.Error != nil {
		logger.Warning("revoked token cleanup failed:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Debugf("revoked token cleanup removed %d expired rows", result.RowsAffected)
	}
}
