// Package api defines the HTTP transport types for the candidate pipeline.
package api

import "time"

// ErrorCode identifies the machine-readable error class in responses.
type ErrorCode string

const (
	// CodeNotFound covers unknown candidate ids.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInvalidTransition covers edges absent from the transition table.
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	// CodeMissingField covers incomplete payloads for an attempted edge.
	CodeMissingField ErrorCode = "MISSING_FIELD"
	// CodeInvalidSlot covers malformed or past-dated interview slots.
	CodeInvalidSlot ErrorCode = "INVALID_SLOT"
	// CodeVersionConflict covers stale expected versions.
	CodeVersionConflict ErrorCode = "VERSION_CONFLICT"
	// CodeInvalidArgument covers malformed requests.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeInternal covers everything else, including clock invariant breaches.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error class and a human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Slot is a proposed interview time window.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Candidate is the transport projection of a candidate record.
type Candidate struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	Positions          []string   `json:"positions"`
	SubmissionDate     time.Time  `json:"submission_date"`
	InterviewDatetime  *time.Time `json:"interview_datetime,omitempty"`
	InterviewLocation  *string    `json:"interview_location,omitempty"`
	InterviewType      *string    `json:"interview_type,omitempty"`
	ConfirmationStatus string     `json:"confirmation_status"`
	ProposedSlots      []Slot     `json:"proposed_slots,omitempty"`
	EvaluationRating   *string    `json:"evaluation_rating,omitempty"`
	OfferDetails       *string    `json:"offer_details,omitempty"`
	OfferResponseDate  *time.Time `json:"offer_response_date,omitempty"`
	Notes              string     `json:"notes"`
	Version            int64      `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// HistoryEntry is the transport projection of one audit record.
type HistoryEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	PreviousStatus *string   `json:"previous_status,omitempty"`
	Notes          string    `json:"notes_at_this_stage"`
	UpdatedBy      *string   `json:"updated_by,omitempty"`
}

// CandidateResponseBody wraps a single candidate.
type CandidateResponseBody struct {
	Candidate Candidate `json:"candidate"`
}

// CandidateListResponse wraps a candidate listing.
type CandidateListResponse struct {
	Candidates   []Candidate `json:"candidates"`
	TotalResults int64       `json:"total_results"`
}

// HistoryResponse wraps one page of audit entries.
type HistoryResponse struct {
	Entries    []HistoryEntry `json:"entries"`
	TotalPages int64          `json:"total_pages"`
}

// IntakeRequest registers a new candidate.
type IntakeRequest struct {
	Status    string   `json:"status"`
	Positions []string `json:"positions"`
	Notes     string   `json:"notes"`
	ActorID   *string  `json:"actor_id,omitempty"`
}

// TransitionRequest moves a candidate one edge through the pipeline.
type TransitionRequest struct {
	TargetStatus     string  `json:"target_status"`
	ExpectedVersion  int64   `json:"expected_version"`
	ActorID          *string `json:"actor_id,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	OfferDetails     *string `json:"offer_details,omitempty"`
	EvaluationRating *string `json:"evaluation_rating,omitempty"`
}

// ProposeInterviewRequest opens a slot negotiation.
type ProposeInterviewRequest struct {
	Slots           []Slot  `json:"slots"`
	Location        string  `json:"location"`
	InterviewType   string  `json:"interview_type"`
	Notes           *string `json:"notes,omitempty"`
	ActorID         *string `json:"actor_id,omitempty"`
	ExpectedVersion int64   `json:"expected_version"`
}

// InterviewResponseRequest records the candidate's answer to a proposal.
type InterviewResponseRequest struct {
	AcceptSlot      *int    `json:"accept_slot,omitempty"`
	Decline         bool    `json:"decline,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	ActorID         *string `json:"actor_id,omitempty"`
	ExpectedVersion int64   `json:"expected_version"`
}

// CancelInterviewRequest abandons a confirmed interview.
type CancelInterviewRequest struct {
	ActorID         *string `json:"actor_id,omitempty"`
	ExpectedVersion int64   `json:"expected_version"`
}
