package persona

import (
	"safetybot-backend/internal/config"
	"safetybot-backend/internal/features/journal"
	users_services "safetybot-backend/internal/features/users/services"

	"github.com/robfig/cron/v3"
)

var syncService = NewSyncService(
	users_services.GetUserService(),
	journal.GetJournalService(),
	config.GetEnv().PersonaServiceURL,
)

func GetSyncService() *SyncService {
	return syncService
}

// StartCron schedules the persona sweep every five minutes. Returns the
// runner so main can stop it on shutdown.
func StartCron() *cron.Cron {
	runner := cron.New()
	if _, err := runner.AddFunc("*/5 * * * *", syncService.SyncDirtyUsers); err != nil {
		log.Error("Failed to schedule persona sync", "error", err)
		return runner
	}

	runner.Start()
	return runner
}
