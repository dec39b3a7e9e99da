package workers

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
)

// CounterReconciler repairs drift between the denormalized counters and
// the kudos/like log. The creation and like paths already commit counter
// updates transactionally, so under normal operation this finds nothing;
// it exists to heal rows touched outside the API or left over from an
// older non-transactional writer.
type CounterReconciler struct {
	DB *gorm.DB
}

func NewCounterReconciler(db *gorm.DB) *CounterReconciler {
	return &CounterReconciler{DB: db}
}

// ReconcileOnce recomputes every counter from the log and rewrites any
// row that disagrees. Returns the number of statements that changed rows.
func (r *CounterReconciler) ReconcileOnce() (int64, error) {
	var fixed int64

	stmts := []string{
		`UPDATE users SET kudos_given = (SELECT COUNT(*) FROM kudos WHERE kudos.from_user = users.name)
		 WHERE kudos_given <> (SELECT COUNT(*) FROM kudos WHERE kudos.from_user = users.name)`,
		`UPDATE users SET kudos_received = (SELECT COUNT(*) FROM kudos WHERE kudos.to_user = users.name)
		 WHERE kudos_received <> (SELECT COUNT(*) FROM kudos WHERE kudos.to_user = users.name)`,
		`UPDATE badges SET times_awarded = (SELECT COUNT(*) FROM kudos WHERE kudos.badge = badges.name)
		 WHERE times_awarded <> (SELECT COUNT(*) FROM kudos WHERE kudos.badge = badges.name)`,
		`UPDATE kudos SET likes = (SELECT COUNT(*) FROM kudos_likes WHERE kudos_likes.kudos_id = kudos.id)
		 WHERE likes <> (SELECT COUNT(*) FROM kudos_likes WHERE kudos_likes.kudos_id = kudos.id)`,
	}

	for _, stmt := range stmts {
		res := r.DB.Exec(stmt)
		if res.Error != nil {
			return fixed, res.Error
		}
		fixed += res.RowsAffected
	}
	return fixed, nil
}

// PollCounters runs ReconcileOnce on an interval until ctx is cancelled.
// Interval comes from RECONCILE_INTERVAL (Go duration), default 10m.
func PollCounters(ctx context.Context, r *CounterReconciler) {
	interval := 10 * time.Minute
	if raw := os.Getenv("RECONCILE_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		} else {
			log.Printf("⚠️  Invalid RECONCILE_INTERVAL %q, using default %s", raw, interval)
		}
	}

	log.Printf("Starting counter reconciliation (every %s)...", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Counter reconciliation stopped.")
			return
		case <-ticker.C:
			fixed, err := r.ReconcileOnce()
			if err != nil {
				log.Printf("❌ Counter reconciliation error: %v", err)
				continue
			}
			if fixed > 0 {
				log.Printf("🔧 Counter reconciliation repaired %d row(s)", fixed)
			}
		}
	}
}
