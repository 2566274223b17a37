package notifier

import "fmt"

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Announce prints the status that would be posted
func (n *DryRunNotifier) Announce(summary Summary) error {
	status := formatStatus(summary)
	fmt.Println("--- Announcement ---")
	fmt.Println(status)
	fmt.Printf("\n(Length: %d characters)\n", len(status))
	return nil
}
