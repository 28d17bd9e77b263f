// Package entities contains core business entities.
package entities

import "time"

// Slot is a proposed interview time window.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MaxProposedSlots caps outstanding slots per proposal.
const MaxProposedSlots = 3

// Candidate is the domain model of a candidate moving through the pipeline.
// It is exclusively owned by the store; services operate on checked-out copies
// and commit them back under optimistic versioning.
type Candidate struct {
	ID             string
	Status         Status
	Positions      []string
	SubmissionDate time.Time

	InterviewDatetime  *time.Time
	InterviewLocation  *string
	InterviewType      *string
	ConfirmationStatus ConfirmationStatus
	ProposedSlots      []Slot

	EvaluationRating  *string
	OfferDetails      *string
	OfferResponseDate *time.Time

	Notes string

	// Version increases by one on every committed mutation.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClearProposal drops all proposal state from the record.
func (c *Candidate) ClearProposal() {
	c.ProposedSlots = nil
	c.InterviewLocation = nil
	c.InterviewType = nil
}

// ClearInterview drops confirmed interview state from the record.
func (c *Candidate) ClearInterview() {
	c.InterviewDatetime = nil
	c.InterviewLocation = nil
	c.InterviewType = nil
	c.ConfirmationStatus = ConfirmationNone
}

// CandidateFilter narrows candidate listings.
type CandidateFilter struct {
	Status   *Status
	Position string
	Page     int
	PageSize int
}
