package trivia

import "errors"

var (
	ErrSessionNotInProgress = errors.New("session is not in progress")
	ErrInvalidChoice        = errors.New("invalid answer choice")
	ErrSessionNotFound      = errors.New("session not found")
	ErrCategoryNotFound     = errors.New("category not found")
)
