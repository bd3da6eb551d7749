package services

import "errors"

// Service level errors returned to the API layer
var (
	// ErrPartNotFound is returned when a part number has no record
	ErrPartNotFound = errors.New("part not found")
	// ErrJobNotFound is returned when a component job ID has no record
	ErrJobNotFound = errors.New("component job not found")
	// ErrScheduleNotFound is returned when a component job has no scheduled loads
	ErrScheduleNotFound = errors.New("schedule not found")
)
