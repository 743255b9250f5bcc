package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"mailclassifier-backend/internal/classify/domain"
)

// ProfileStore resolves named tuning profiles. GetProfile returns nil (no
// error) when the profile does not exist; "default" always resolves.
type ProfileStore interface {
	GetProfile(profileID string) (*domain.Profile, error)
}

// jsonProfileStore loads profiles from a JSON file once at startup. The file
// maps profile id to {mood, priority_keywords}.
type jsonProfileStore struct {
	profiles map[string]*domain.Profile
}

// NewJSONProfileStore reads the profiles file. A missing file is not an
// error; the store then only resolves the built-in default profile.
func NewJSONProfileStore(path string) (ProfileStore, error) {
	store := &jsonProfileStore{
		profiles: map[string]*domain.Profile{},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var entries map[string]struct {
			Mood             string   `json:"mood"`
			PriorityKeywords []string `json:"priority_keywords"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("invalid profiles file %s: %w", path, err)
		}
		for id, entry := range entries {
			store.profiles[id] = &domain.Profile{
				ID:               id,
				Mood:             entry.Mood,
				PriorityKeywords: entry.PriorityKeywords,
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}

	// The default profile must always resolve.
	if _, ok := store.profiles[domain.DefaultProfileID]; !ok {
		store.profiles[domain.DefaultProfileID] = &domain.Profile{ID: domain.DefaultProfileID}
	}

	return store, nil
}

func (s *jsonProfileStore) GetProfile(profileID string) (*domain.Profile, error) {
	return s.profiles[profileID], nil
}
