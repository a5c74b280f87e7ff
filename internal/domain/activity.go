// Package domain defines the business logic for the extracurricular roster service.
package domain

// Activity represents one extracurricular offering and its current roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
