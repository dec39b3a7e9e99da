package models

// Badge is one of a fixed set of recognition categories. Rows are seeded
// idempotently at startup (and via POST /badges/init); never deleted.
type Badge struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"` // e.g., "Helping Hand"
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"` // e.g., "helping-hand"
	Description string `json:"description" gorm:"not null"`

	// TimesAwarded is incremented on every kudos naming this badge.
	TimesAwarded int64 `json:"timesAwarded" gorm:"default:0"`
}

// The fixed badge catalog. Kudos.Badge values are drawn from these names
// and nothing else.
const (
	BadgeHelpingHand    = "Helping Hand"
	BadgeExcellence     = "Excellence"
	BadgeAboveAndBeyond = "Above and Beyond"
	BadgeClientFocus    = "Client Focus"
)

// BadgeCatalog drives the seed upsert. Order is stable so ties in the
// badge-distribution report come out deterministic.
var BadgeCatalog = []Badge{
	{
		Name:        BadgeHelpingHand,
		Description: "For helping teammates with their tasks",
	},
	{
		Name:        BadgeExcellence,
		Description: "For delivering exceptional quality work",
	},
	{
		Name:        BadgeAboveAndBeyond,
		Description: "For going beyond expectations",
	},
	{
		Name:        BadgeClientFocus,
		Description: "For exceptional client service",
	},
}

// IsValidBadge reports whether name is a member of the fixed catalog.
func IsValidBadge(name string) bool {
	switch name {
	case BadgeHelpingHand, BadgeExcellence, BadgeAboveAndBeyond, BadgeClientFocus:
		return true
	}
	return false
}
