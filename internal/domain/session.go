package domain

import "time"

// ExistingSession is an already-scheduled training session with spare
// capacity the partitioner may fill. CurrentEnrolled is derived from the
// enrollment records at load time.
type ExistingSession struct {
	ID              string
	CourseID        string
	LicenseID       string
	Title           string
	StartsAt        time.Time
	Location        string
	MaxParticipants int
	CurrentEnrolled int
}

// AvailableSpots returns the remaining capacity, never negative.
func (s ExistingSession) AvailableSpots() int {
	spots := s.MaxParticipants - s.CurrentEnrolled
	if spots < 0 {
		return 0
	}
	return spots
}
