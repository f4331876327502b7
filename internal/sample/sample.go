// Package sample embeds the standup notes analyzed when no input is given.
package sample

import _ "embed"

//go:embed standup.txt
var standup string

// Standup returns the January 18, 2025 daily standup notes.
func Standup() string {
	return standup
}
