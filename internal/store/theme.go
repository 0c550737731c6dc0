package store

import (
	"context"
	"sync"
)

// Theme is the display preference pair, persisted as [mode, icon].
type Theme struct {
	Mode string `json:"mode"`
	Icon string `json:"icon"`
}

var (
	LightTheme = Theme{Mode: "light", Icon: "bxs:moon"}
	DarkTheme  = Theme{Mode: "dark", Icon: "famicons:sunny"}
)

type ThemeRepository struct {
	kv KV
	mu sync.Mutex
}

func NewThemeRepository(kv KV) *ThemeRepository {
	return &ThemeRepository{kv: kv}
}

// Get returns the saved theme, LightTheme if none was saved.
func (r *ThemeRepository) Get(ctx context.Context, profile string) (Theme, error) {
	var pair []string
	if err := loadJSON(ctx, r.kv, profile, KeyThemeInfo, &pair); err != nil {
		return Theme{}, err
	}
	if len(pair) != 2 {
		return LightTheme, nil
	}
	return Theme{Mode: pair[0], Icon: pair[1]}, nil
}

// Toggle switches dark to light and anything else to dark, then saves.
func (r *ThemeRepository) Toggle(ctx context.Context, profile string) (Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.Get(ctx, profile)
	if err != nil {
		return Theme{}, err
	}
	next := DarkTheme
	if current.Mode == DarkTheme.Mode {
		next = LightTheme
	}
	if err := saveJSON(ctx, r.kv, profile, KeyThemeInfo, []string{next.Mode, next.Icon}); err != nil {
		return Theme{}, err
	}
	return next, nil
}
