package service

import (
	"fmt"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"
)

const currentViewKey = "current_view"

// ViewService remembers the last top-level view of each user
type ViewService struct {
	prefs repository.PreferenceRepository
}

// NewViewService creates a new view service
func NewViewService(prefs repository.PreferenceRepository) *ViewService {
	return &ViewService{prefs: prefs}
}

// Current returns the persisted view, home when none is stored
func (s *ViewService) Current(userID int64) (domain.View, error) {
	value, ok, err := s.prefs.GetPreference(userID, currentViewKey)
	if err != nil {
		return domain.ViewHome, fmt.Errorf("get current view: %w", err)
	}
	if !ok {
		return domain.ViewHome, nil
	}
	return domain.ParseView(value), nil
}

// Switch persists view as the user's current view
func (s *ViewService) Switch(userID int64, view domain.View) error {
	if err := s.prefs.SetPreference(userID, currentViewKey, string(domain.ParseView(string(view)))); err != nil {
		return fmt.Errorf("set current view: %w", err)
	}
	return nil
}
