package session

import (
	"errors"

	"github.com/balkashynov/wellbeing/internal/catalog"
)

var (
	ErrMissingCredentials = errors.New("please enter both username and password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrManagerOnly        = errors.New("this view is only available to HR managers")
	ErrUnknownCoach       = errors.New("unknown coach")
	ErrInvalidSchedule    = errors.New("invalid session schedule")
	ErrUnknownCategory    = catalog.ErrUnknownCategory
)
