package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ThemeClassic = "classic"
	ThemeModern  = "modern"
	ThemeVintage = "vintage"

	DefaultTheme = ThemeClassic
)

// Themes lists every style tag a story may carry.
var Themes = []string{ThemeClassic, ThemeModern, ThemeVintage}

func IsValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

type Story struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Notes     string
	Theme     string
	Panels    []Panel
	CreatedAt time.Time
}

// Panel is one illustrated beat. ImageUrl is nil when the image could not be generated.
type Panel struct {
	SceneDescription string
	Text             string
	ImageUrl         *string
}
