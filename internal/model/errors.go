package model

import "errors"

// Domain errors
var (
	ErrNilSurveyResult = errors.New("survey result is nil")
	ErrTooManyOptions  = errors.New("more options than option letters")
	ErrInvalidLetter   = errors.New("invalid option letter")
	ErrInvalidInput    = errors.New("invalid survey result input")
)
