package service

import (
	"context"
	"fmt"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
)

// PrefsService keeps the small client settings (theme, onboarding-seen flag)
// in the key-value store.
type PrefsService struct {
	KV *repository.KVRepository
}

func NewPrefsService(kv *repository.KVRepository) *PrefsService {
	return &PrefsService{KV: kv}
}

func prefsKey(userID string) string { return "prefs:" + userID }

func (s *PrefsService) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs := &models.Preferences{Theme: models.ThemeKidBible}
	err := s.KV.Get(ctx, prefsKey(userID), prefs)
	if err != nil && err != repository.ErrNoValue {
		return nil, err
	}
	return prefs, nil
}

func (s *PrefsService) SetTheme(ctx context.Context, userID, theme string) (*models.Preferences, error) {
	if !models.ValidTheme(theme) {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs.Theme = theme
	if err := s.KV.Set(ctx, prefsKey(userID), prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *PrefsService) MarkOnboardingSeen(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs.HasSeenOnboarding = true
	if err := s.KV.Set(ctx, prefsKey(userID), prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
