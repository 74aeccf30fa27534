package entity

import (
	"errors"
	"strings"
)

// Difficulty of a problem. The zero value is not a valid difficulty.
type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

var errUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty accepts both the storage key ("easy") and the display label ("Easy").
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return 0, false
}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Key is the canonical lowercase representation used in storage and JSON.
func (d Difficulty) Key() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return ""
}

// Label is the display form.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return ""
}

func (d Difficulty) String() string {
	return d.Key()
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errUnknownDifficulty
	}
	return []byte(d.Key()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	parsed, ok := ParseDifficulty(string(b))
	if !ok {
		return errUnknownDifficulty
	}
	*d = parsed
	return nil
}
