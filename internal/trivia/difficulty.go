package trivia

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches case-insensitively. Anything unrecognised is Medium.
func ParseDifficulty(value string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(Easy):
		return Easy
	case string(Hard):
		return Hard
	default:
		return Medium
	}
}

func (d Difficulty) String() string {
	return string(d)
}
