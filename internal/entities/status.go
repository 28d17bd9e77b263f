// Package entities contains core business entities.
package entities

import "fmt"

// Status enumerates candidate pipeline stages.
type Status string

const (
	// StatusProcessing marks a candidate whose intake is still running.
	StatusProcessing Status = "PROCESSING"
	// StatusParsingFailed marks a candidate whose intake could not be parsed.
	StatusParsingFailed Status = "PARSING_FAILED"
	// StatusNeedsReview marks a candidate awaiting screening.
	StatusNeedsReview Status = "NEEDS_REVIEW"
	// StatusAccepted marks a candidate that passed screening.
	StatusAccepted Status = "ACCEPTED"
	// StatusInterested marks a candidate confirmed as interested.
	StatusInterested Status = "INTERESTED"
	// StatusInterviewProposed marks a candidate with outstanding interview slots.
	StatusInterviewProposed Status = "INTERVIEW_PROPOSED"
	// StatusInterview marks a candidate with a confirmed interview.
	StatusInterview Status = "INTERVIEW"
	// StatusEvaluation marks a candidate under post-interview evaluation.
	StatusEvaluation Status = "EVALUATION"
	// StatusOfferMade marks a candidate holding an open offer.
	StatusOfferMade Status = "OFFER_MADE"
	// StatusHired marks a candidate that accepted an offer. Terminal.
	StatusHired Status = "HIRED"
	// StatusRejected marks a candidate rejected by the company. Terminal.
	StatusRejected Status = "REJECTED"
	// StatusDeclined marks a candidate that declined an offer. Terminal.
	StatusDeclined Status = "DECLINED"
)

var allStatuses = []Status{
	StatusProcessing, StatusParsingFailed, StatusNeedsReview,
	StatusAccepted, StatusInterested, StatusInterviewProposed,
	StatusInterview, StatusEvaluation, StatusOfferMade,
	StatusHired, StatusRejected, StatusDeclined,
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, s)
}

// IsInitial reports whether st may be assigned at intake.
func (s Status) IsInitial() bool {
	switch s {
	case StatusProcessing, StatusParsingFailed, StatusNeedsReview:
		return true
	}
	return false
}

// IsTerminal reports whether st has no outgoing transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusHired, StatusRejected, StatusDeclined:
		return true
	}
	return false
}

// ConfirmationStatus is the candidate's response to an interview proposal.
type ConfirmationStatus string

const (
	// ConfirmationNone means no proposal is outstanding.
	ConfirmationNone ConfirmationStatus = "NONE"
	// ConfirmationPending means the candidate has not yet answered.
	ConfirmationPending ConfirmationStatus = "PENDING"
	// ConfirmationConfirmed means the candidate picked a slot.
	ConfirmationConfirmed ConfirmationStatus = "CONFIRMED"
	// ConfirmationDeclined means the candidate turned all slots down.
	ConfirmationDeclined ConfirmationStatus = "DECLINED"
)
