package accounts

import (
	"fmt"
	"time"

	"github.com/spacesedan/postcraft/internal/models"
	"golang.org/x/oauth2"
)

// SampleAccounts returns the demo accounts a fresh registry starts with:
// twitter and instagram connected, linkedin not.
func SampleAccounts(now time.Time) []models.SocialAccount {
	now = now.UTC().Truncate(time.Hour)
	connected := now.Add(-31 * 24 * time.Hour)
	synced := now.Add(-2 * time.Hour)

	return []models.SocialAccount{
		{
			ID:           "1",
			Platform:     "twitter",
			Username:     defaultUsername,
			DisplayName:  defaultDisplayName,
			ProfileImage: fmt.Sprintf(avatarURL, "twitter"),
			IsConnected:  true,
			ConnectedAt:  connected,
			LastSync:     synced,
			Followers:    12500,
			Following:    890,
			Posts:        1250,
			Token:        &oauth2.Token{AccessToken: "mock-twitter-token", TokenType: "Bearer"},
			Settings:     models.AccountSettings{AutoPost: true, OptimalTiming: true},
		},
		{
			ID:           "2",
			Platform:     "instagram",
			Username:     defaultUsername,
			DisplayName:  defaultDisplayName,
			ProfileImage: fmt.Sprintf(avatarURL, "instagram"),
			IsConnected:  true,
			ConnectedAt:  connected,
			LastSync:     synced,
			Followers:    8900,
			Following:    450,
			Posts:        320,
			Token:        &oauth2.Token{AccessToken: "mock-instagram-token", TokenType: "Bearer"},
			Settings:     models.AccountSettings{OptimalTiming: true, CrossPost: true},
		},
		{
			ID:           "3",
			Platform:     "linkedin",
			Username:     "your-name",
			DisplayName:  "Your Name",
			ProfileImage: fmt.Sprintf(avatarURL, "linkedin"),
		},
	}
}
