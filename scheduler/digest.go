package scheduler

import (
	"log"

	"messfeed/config"
	"messfeed/store"
	"messfeed/utils"

	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler schedules the daily stats digest email.
func InitializeDigestScheduler(s *store.Store) {
	if config.AppConfig.AdminEmail == "" {
		log.Println("[DIGEST-SCHEDULER] ADMIN_EMAIL not set, digest disabled")
		return
	}

	log.Println("[DIGEST-SCHEDULER] Initializing daily digest scheduler...")

	c := cron.New()

	// Run daily at 9 AM with the previous day's numbers
	c.AddFunc("0 9 * * *", func() {
		log.Println("[DIGEST-SCHEDULER] Sending daily digest...")
		SendDailyDigest(s)
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Digest scheduler started - runs daily at 9 AM")
}

// SendDailyDigest mails yesterday's per-meal averages for every active hall.
func SendDailyDigest(s *store.Store) {
	date := utils.Yesterday()

	halls, err := s.Halls()
	if err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching halls: %v", err)
		return
	}

	for _, hall := range halls {
		stats, err := s.DailyStats(hall.HallCode, date)
		if err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error computing stats for %s: %v", hall.HallCode, err)
			continue
		}
		if stats.TotalReviews == 0 {
			log.Printf("[DIGEST-SCHEDULER] No reviews for %s on %s, skipping", hall.HallCode, date)
			continue
		}

		utils.SendDailyDigestEmail(
			config.AppConfig.AdminEmail,
			hall.HallCode, hall.HallName, date,
			stats.Breakfast, stats.Lunch, stats.Snacks, stats.Dinner,
			stats.TotalReviews,
		)
		log.Printf("[DIGEST-SCHEDULER] Sent digest for %s (%d reviews)", hall.HallCode, stats.TotalReviews)
	}
}
