package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrScorerUnavailable = errors.New("scoring model unavailable")
	ErrNoRecommendation  = errors.New("no recommendation available")
)
