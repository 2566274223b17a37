package notifier

import (
	"fmt"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
)

// TwitterNotifier posts roster updates to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Announce posts a single tweet for the build
func (n *TwitterNotifier) Announce(summary Summary) error {
	status := formatStatus(summary)

	_, _, err := n.client.Statuses.Update(status, nil)
	if err != nil {
		return fmt.Errorf("failed to post roster update: %w", err)
	}

	return nil
}

// formatStatus formats a build summary as a tweet
func formatStatus(summary Summary) string {
	label := "members"
	if summary.MemberCount == 1 {
		label = "member"
	}

	status := "📻 QRQ Crew roster updated!\n\n"
	status += fmt.Sprintf("👥 %d %s on the roll\n", summary.MemberCount, label)
	status += fmt.Sprintf("📅 %s\n", summary.GeneratedAt.UTC().Format("Jan 2, 2006"))

	if summary.PageURL != "" {
		status += fmt.Sprintf("\n🔗 %s\n", summary.PageURL)
	}

	status += "\n#QRQ #CW #HamRadio"

	// Twitter limit is 280 characters
	if len(status) > 280 {
		status = status[:277] + "..."
	}

	return status
}
