// services/scheduler.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"kudospot/utils"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler exports a daily analytics snapshot (badge
// distribution + leaderboard) to R2. Purely additive: the live API never
// reads these objects.
func (s *AnalyticsService) StartSnapshotScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Once a day: snapshot analytics to R2
	_, _ = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			byBadge, err := s.KudosByBadge()
			if err != nil {
				log.Printf("[Snapshot] badge distribution failed: %v", err)
				return
			}
			leaderboard, err := s.Leaderboard()
			if err != nil {
				log.Printf("[Snapshot] leaderboard failed: %v", err)
				return
			}

			snapshot := map[string]interface{}{
				"generatedAt":  time.Now().UTC(),
				"kudosByBadge": byBadge,
				"leaderboard":  leaderboard,
			}
			body, err := json.Marshal(snapshot)
			if err != nil {
				log.Printf("[Snapshot] marshal failed: %v", err)
				return
			}

			key := "snapshots/" + time.Now().UTC().Format("2006-01-02") + "/analytics.json"
			if err := utils.UploadJSONToR2(key, body); err != nil {
				log.Printf("[Snapshot] upload failed: %v", err)
				return
			}
			log.Printf("✅ Analytics snapshot exported: %s", key)
		}),
	)
}
