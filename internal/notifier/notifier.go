package notifier

import "time"

// Summary describes one completed roster build
type Summary struct {
	MemberCount int
	GeneratedAt time.Time
	PageURL     string
}

// Notifier defines the interface for posting roster-update announcements
type Notifier interface {
	// Announce posts a notification for the given build
	Announce(summary Summary) error
}
