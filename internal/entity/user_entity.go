package entity

import "time"

// User is one LINE account known to the bot. Id is the LINE user id,
// assigned by the platform, so no surrogate key is needed.
type User struct {
	Id          string
	Subscribed  bool
	PlanRef     string
	UsageCount  int
	UsageMonth  string // "2006-01" calendar month the counter belongs to
	CustomerRef string // billing provider customer reference
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
