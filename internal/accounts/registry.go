package accounts

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/postcraft/internal/models"
	"golang.org/x/oauth2"
)

var (
	ErrNotFound     = errors.New("account not found")
	ErrNotConnected = errors.New("account not connected")
)

const (
	defaultUsername    = "@yourbrand"
	defaultDisplayName = "Your Brand"
	avatarURL          = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"
)

// Credentials are what a caller supplies when connecting a platform. Zero
// values fall back to placeholder profile data.
type Credentials struct {
	Username     string
	DisplayName  string
	ProfileImage string
	Followers    int
	Following    int
	Posts        int
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// SettingsUpdate carries a partial settings change; nil fields are kept.
type SettingsUpdate struct {
	AutoPost      *bool
	OptimalTiming *bool
	CrossPost     *bool
}

// Registry tracks connected publishing accounts in memory. No platform API
// is contacted.
type Registry struct {
	mu       sync.RWMutex
	accounts []models.SocialAccount
	now      func() time.Time
	newID    func() string
}

func NewRegistry(seed ...models.SocialAccount) *Registry {
	return &Registry{
		accounts: slices.Clone(seed),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (r *Registry) List() []models.SocialAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.accounts)
}

func (r *Registry) Get(platform string) (models.SocialAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(platform)
	if i < 0 {
		return models.SocialAccount{}, fmt.Errorf("%w: %s", ErrNotFound, platform)
	}
	return r.accounts[i], nil
}

// Connect creates or replaces the account for platform. An existing account
// keeps its id.
func (r *Registry) Connect(platform string, creds Credentials) (models.SocialAccount, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		return models.SocialAccount{}, errors.New("platform is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	accessToken := creds.AccessToken
	if accessToken == "" {
		accessToken = fmt.Sprintf("mock-%s-token-%d", platform, now.UnixMilli())
	}

	account := models.SocialAccount{
		ID:           r.newID(),
		Platform:     platform,
		Username:     or(creds.Username, defaultUsername),
		DisplayName:  or(creds.DisplayName, defaultDisplayName),
		ProfileImage: or(creds.ProfileImage, fmt.Sprintf(avatarURL, platform)),
		IsConnected:  true,
		ConnectedAt:  now,
		LastSync:     now,
		Followers:    creds.Followers,
		Following:    creds.Following,
		Posts:        creds.Posts,
		Token: &oauth2.Token{
			AccessToken:  accessToken,
			RefreshToken: creds.RefreshToken,
			TokenType:    "Bearer",
			Expiry:       creds.Expiry,
		},
		Settings: models.AccountSettings{OptimalTiming: true},
	}

	if i := r.index(platform); i >= 0 {
		account.ID = r.accounts[i].ID
		r.accounts[i] = account
	} else {
		r.accounts = append(r.accounts, account)
	}

	slog.Info("[Accounts] Social account connected", slog.String("platform", platform))
	return account, nil
}

// Disconnect marks the account disconnected and drops its token.
func (r *Registry) Disconnect(platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(platform)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, platform)
	}
	r.accounts[i].IsConnected = false
	r.accounts[i].Token = nil

	slog.Info("[Accounts] Social account disconnected", slog.String("platform", platform))
	return nil
}

func (r *Registry) UpdateSettings(platform string, update SettingsUpdate) (models.AccountSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(platform)
	if i < 0 {
		return models.AccountSettings{}, fmt.Errorf("%w: %s", ErrNotFound, platform)
	}

	s := &r.accounts[i].Settings
	if update.AutoPost != nil {
		s.AutoPost = *update.AutoPost
	}
	if update.OptimalTiming != nil {
		s.OptimalTiming = *update.OptimalTiming
	}
	if update.CrossPost != nil {
		s.CrossPost = *update.CrossPost
	}

	slog.Info("[Accounts] Account settings updated", slog.String("platform", platform))
	return *s, nil
}

// Sync refreshes the last sync time of a connected account.
func (r *Registry) Sync(platform string) (models.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(platform)
	if i < 0 {
		return models.SocialAccount{}, fmt.Errorf("%w: %s", ErrNotFound, platform)
	}
	if !r.accounts[i].IsConnected {
		return models.SocialAccount{}, fmt.Errorf("%w: %s", ErrNotConnected, platform)
	}
	r.accounts[i].LastSync = r.now().UTC()

	slog.Info("[Accounts] Social account synced", slog.String("platform", platform))
	return r.accounts[i], nil
}

// index must be called with the lock held.
func (r *Registry) index(platform string) int {
	platform = strings.ToLower(strings.TrimSpace(platform))
	return slices.IndexFunc(r.accounts, func(a models.SocialAccount) bool {
		return a.Platform == platform
	})
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
