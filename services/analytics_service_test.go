package services

import (
	"fmt"
	"testing"
	"time"

	"kudospot/models"
)

func TestKudosByBadgeCountsSumToTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	createTestUser(t, db, "Jay")
	createTestUser(t, db, "Jill")

	now := time.Now()
	for i := 0; i < 5; i++ {
		seedKudos(t, db, "Jay", "Jill", models.BadgeExcellence, now)
	}
	for i := 0; i < 3; i++ {
		seedKudos(t, db, "Jay", "Jill", models.BadgeHelpingHand, now)
	}
	seedKudos(t, db, "Jay", "Jill", models.BadgeClientFocus, now)

	stats, err := svc.KudosByBadge()
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}

	var sum int64
	for _, s := range stats {
		sum += s.Count
	}
	if sum != 9 {
		t.Errorf("histogram counts sum to %d, want 9", sum)
	}

	for i := 1; i < len(stats); i++ {
		if stats[i].Count > stats[i-1].Count {
			t.Errorf("histogram not sorted descending at index %d", i)
		}
	}
	if stats[0].Badge != models.BadgeExcellence || stats[0].Count != 5 {
		t.Errorf("top bucket = %+v, want Excellence/5", stats[0])
	}
}

func TestLeaderboardTop10SortedByReceived(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	for i := 0; i < 15; i++ {
		u := createTestUser(t, db, fmt.Sprintf("user-%02d", i))
		db.Model(u).UpdateColumn("kudos_received", int64(i))
	}

	entries, err := svc.Leaderboard()
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("leaderboard has %d entries, want 10", len(entries))
	}
	if entries[0].Name != "user-14" || entries[0].KudosReceived != 14 {
		t.Errorf("top entry = %+v, want user-14/14", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].KudosReceived > entries[i-1].KudosReceived {
			t.Errorf("leaderboard not sorted descending at index %d", i)
		}
	}
}

func TestMostLikedTop5(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	createTestUser(t, db, "Jay")
	createTestUser(t, db, "Jill")

	now := time.Now()
	for i := 0; i < 7; i++ {
		k := seedKudos(t, db, "Jay", "Jill", models.BadgeExcellence, now)
		db.Model(k).UpdateColumn("likes", int64(i))
	}

	kudos, err := svc.MostLiked()
	if err != nil {
		t.Fatalf("most-liked failed: %v", err)
	}
	if len(kudos) != 5 {
		t.Fatalf("got %d kudos, want 5", len(kudos))
	}
	if kudos[0].Likes != 6 {
		t.Errorf("top kudos has %d likes, want 6", kudos[0].Likes)
	}
	for i := 1; i < len(kudos); i++ {
		if kudos[i].Likes > kudos[i-1].Likes {
			t.Errorf("most-liked not sorted descending at index %d", i)
		}
	}
}

func TestGetUserStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	createTestUser(t, db, "Jay")
	createTestUser(t, db, "Jill")
	createTestUser(t, db, "Sam")

	now := time.Now()
	seedKudos(t, db, "Jay", "Jill", models.BadgeExcellence, now)
	seedKudos(t, db, "Sam", "Jill", models.BadgeExcellence, now)
	seedKudos(t, db, "Sam", "Jill", models.BadgeHelpingHand, now)
	seedKudos(t, db, "Jill", "Jay", models.BadgeClientFocus, now)

	stats, err := svc.GetUserStats("Jill")
	if err != nil {
		t.Fatalf("user stats failed: %v", err)
	}
	if stats.User == nil || stats.User.Name != "Jill" {
		t.Fatalf("expected Jill's user record, got %+v", stats.User)
	}
	if stats.Stats.KudosGiven != 1 {
		t.Errorf("kudosGiven = %d, want 1", stats.Stats.KudosGiven)
	}
	if stats.Stats.KudosReceived != 3 {
		t.Errorf("kudosReceived = %d, want 3", stats.Stats.KudosReceived)
	}
	if stats.Stats.MostReceivedBadge == nil {
		t.Fatal("expected a most-received badge")
	}
	if stats.Stats.MostReceivedBadge.Badge != models.BadgeExcellence ||
		stats.Stats.MostReceivedBadge.Count != 2 {
		t.Errorf("mostReceivedBadge = %+v, want Excellence/2", stats.Stats.MostReceivedBadge)
	}
}

func TestGetUserStatsUnknownUserIsNullNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	stats, err := svc.GetUserStats("Nobody")
	if err != nil {
		t.Fatalf("unknown user errored: %v", err)
	}
	if stats.User != nil {
		t.Errorf("expected nil user, got %+v", stats.User)
	}
	if stats.Stats.KudosGiven != 0 || stats.Stats.KudosReceived != 0 {
		t.Errorf("expected zero counts, got %+v", stats.Stats)
	}
	if stats.Stats.MostReceivedBadge != nil {
		t.Errorf("expected nil mostReceivedBadge, got %+v", stats.Stats.MostReceivedBadge)
	}
}
