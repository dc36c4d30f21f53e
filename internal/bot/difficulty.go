package bot

import (
	"fmt"
	"strings"
)

// Difficulty selects the bot's playing style
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Params are the tunable knobs behind a difficulty level
type Params struct {
	Aggression     float64
	CallStickiness float64
	BluffChance    float64
}

var params = map[Difficulty]Params{
	Easy:   {Aggression: 0.15, CallStickiness: 0.30, BluffChance: 0.05},
	Medium: {Aggression: 0.35, CallStickiness: 0.50, BluffChance: 0.15},
	Hard:   {Aggression: 0.55, CallStickiness: 0.70, BluffChance: 0.25},
}

// Params returns the parameters for the difficulty. Unknown values fall back to Medium.
func (d Difficulty) Params() Params {
	if p, ok := params[d]; ok {
		return p
	}
	return params[Medium]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next cycles Easy -> Medium -> Hard -> Easy
func (d Difficulty) Next() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

// ParseDifficulty parses a difficulty name, case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
