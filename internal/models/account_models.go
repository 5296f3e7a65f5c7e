package models

import (
	"time"

	"golang.org/x/oauth2"
)

type AccountSettings struct {
	AutoPost      bool `json:"autoPost"`
	OptimalTiming bool `json:"optimalTiming"`
	CrossPost     bool `json:"crossPost"`
}

// SocialAccount is a mock connection to a publishing platform.
type SocialAccount struct {
	ID           string          `json:"id"`
	Platform     string          `json:"platform"`
	Username     string          `json:"username"`
	DisplayName  string          `json:"displayName"`
	ProfileImage string          `json:"profileImage"`
	IsConnected  bool            `json:"isConnected"`
	ConnectedAt  time.Time       `json:"connectedAt,omitzero"`
	LastSync     time.Time       `json:"lastSync,omitzero"`
	Followers    int             `json:"followers"`
	Following    int             `json:"following"`
	Posts        int             `json:"posts"`
	Token        *oauth2.Token   `json:"-"`
	Settings     AccountSettings `json:"settings"`
}
