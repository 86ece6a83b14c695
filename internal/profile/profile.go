// Package profile manages named display settings profiles backed by the
// settings store.
package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/strobe/internal/display"
	"github.com/xonecas/strobe/internal/store"
)

// Manager handles profile creation, resumption, and management.
type Manager struct {
	db *store.Store
}

// NewManager creates a new profile manager.
func NewManager(db *store.Store) *Manager {
	return &Manager{db: db}
}

// InitializeResult holds the result of profile initialization.
type InitializeResult struct {
	ProfileID   string
	ProfileInfo string
	Created     bool
}

// Initialize resumes the named profile or creates it.
func (m *Manager) Initialize(name string) (*InitializeResult, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name cannot be empty")
	}

	p, err := m.db.GetProfileByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p != nil {
		if err := m.db.TouchProfile(p.ID); err != nil {
			log.Warn().Err(err).Str("profile", name).Msg("Failed to touch profile")
		}
		log.Info().Str("profile_id", p.ID).Str("name", name).Msg("Resumed profile")
		return &InitializeResult{
			ProfileID:   p.ID,
			ProfileInfo: fmt.Sprintf("Resumed profile: %s", name),
		}, nil
	}

	id := uuid.New().String()
	if err := m.db.CreateProfile(id, name); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	log.Info().Str("profile_id", id).Str("name", name).Msg("Created profile")

	return &InitializeResult{
		ProfileID:   id,
		ProfileInfo: fmt.Sprintf("New profile: %s", name),
		Created:     true,
	}, nil
}

// Settings returns a display.Store bound to one profile.
func (m *Manager) Settings(profileID string) display.Store {
	return &settings{db: m.db, profileID: profileID}
}

// Reset clears every persisted setting of the named profile.
func (m *Manager) Reset(name string) error {
	p, err := m.db.GetProfileByName(name)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil
	}
	if err := m.db.DeleteSettings(p.ID); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	log.Info().Str("profile", name).Msg("Reset profile settings")
	return nil
}

// List returns recently used profiles.
func (m *Manager) List(limit int) ([]store.Profile, error) {
	profiles, err := m.db.ListProfiles(limit)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// DeleteByName deletes a profile by name.
func (m *Manager) DeleteByName(name string) error {
	p, err := m.db.GetProfileByName(name)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return fmt.Errorf("profile '%s' not found", name)
	}

	if err := m.db.DeleteProfileByName(name); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	return nil
}

// settings adapts the store to display.Store for a single profile.
type settings struct {
	db        *store.Store
	profileID string
}

func (s *settings) Get(key string) (string, bool, error) {
	return s.db.GetSetting(s.profileID, key)
}

func (s *settings) Set(key, value string) error {
	return s.db.SetSetting(s.profileID, key, value)
}

// FormatAge formats how long ago a profile was used.
func FormatAge(d time.Duration) string {
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
