package services

import "time"

// DateAtLocation truncates a timestamp to midnight in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	local := value.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}
