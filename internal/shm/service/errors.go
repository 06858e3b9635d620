package service

import "errors"

var (
	ErrInvalidStakeholder = errors.New("stakeholder email is required")
	ErrInvalidMeeting     = errors.New("meeting date is required")
)
