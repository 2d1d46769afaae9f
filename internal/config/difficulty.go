package config

import "strings"

// Difficulty selects the deck size.
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyMedium   Difficulty = "medium"
	DifficultyMaster   Difficulty = "master"
)

// Difficulties lists the levels from smallest to largest deck.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyMedium, DifficultyMaster}
}

// ParseDifficulty resolves a level name case-insensitively.
// Unknown names fall back to medium; ok reports whether the name was known.
func ParseDifficulty(name string) (d Difficulty, ok bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyBeginner:
		return DifficultyBeginner, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyMaster:
		return DifficultyMaster, true
	default:
		return DifficultyMedium, false
	}
}

// Cards returns the number of cards dealt at this level.
func (d Difficulty) Cards() int {
	switch d {
	case DifficultyBeginner:
		return 8
	case DifficultyMaster:
		return 24
	default:
		return 12
	}
}

// Pairs returns the number of pairs dealt at this level.
func (d Difficulty) Pairs() int {
	return d.Cards() / 2
}

// Title returns a display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyMaster:
		return "Master"
	default:
		return "Medium"
	}
}

func (d Difficulty) String() string {
	return string(d)
}
