package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTint colours the selector when no ui_tint is configured.
const DefaultTint = "dracula"

// TintProvider manages the selector's own colour scheme using bubbletint.
// It is independent of the terminal theme being selected.
type TintProvider struct {
	registry *tint.Registry
}

// NewTintProvider creates a TintProvider starting at initial.
// An empty or unknown id leaves DefaultTint selected.
func NewTintProvider(initial string) *TintProvider {
	allTints := tint.DefaultTints()

	var defaultTint tint.Tint
	for _, t := range allTints {
		if t.ID() == DefaultTint {
			defaultTint = t
			break
		}
	}
	if defaultTint == nil && len(allTints) > 0 {
		defaultTint = allTints[0]
	}

	tp := &TintProvider{registry: tint.NewRegistry(defaultTint, allTints...)}
	if initial != "" {
		tp.SetTint(initial)
	}
	return tp
}

// SetTint selects a tint by id. It reports whether the id exists.
func (tp *TintProvider) SetTint(id string) bool {
	return tp.registry.SetTintID(id)
}

// NextTint cycles forward and returns the new tint id.
func (tp *TintProvider) NextTint() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTint cycles backward and returns the new tint id.
func (tp *TintProvider) PreviousTint() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentID returns the id of the selected tint.
func (tp *TintProvider) CurrentID() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human readable name of the selected tint.
func (tp *TintProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// Available returns every tint id, sorted.
func (tp *TintProvider) Available() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns Styles built from the selected tint.
func (tp *TintProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
