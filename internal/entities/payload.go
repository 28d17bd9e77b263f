// Package entities contains core business entities.
package entities

// TransitionPayload is the data accompanying a status transition. It is a
// closed sum keyed on the attempted edge: each variant enumerates exactly the
// fields that edge consumes, so an edge that needs nothing takes StagePayload
// and an edge that needs slots takes ProposalPayload.
type TransitionPayload interface {
	transitionPayload()
}

// StagePayload accompanies edges with no required fields. Notes, when set,
// replaces the candidate's notes at commit time.
type StagePayload struct {
	Notes *string
}

// ProposalPayload accompanies the Interested -> InterviewProposed edge.
type ProposalPayload struct {
	Slots         []Slot
	Location      string
	InterviewType string
	Notes         *string
}

// SlotSelectionPayload accompanies the InterviewProposed -> Interview edge.
type SlotSelectionPayload struct {
	SlotIndex int
	Notes     *string
}

// ProposalDeclinedPayload accompanies the InterviewProposed -> Interested edge
// when the candidate turned every slot down, as opposed to the company
// withdrawing the proposal (StagePayload).
type ProposalDeclinedPayload struct {
	Notes *string
}

// OfferPayload accompanies the Evaluation -> OfferMade edge. Both fields are
// optional; they enrich the record when known at offer time.
type OfferPayload struct {
	OfferDetails     *string
	EvaluationRating *string
	Notes            *string
}

func (StagePayload) transitionPayload()            {}
func (ProposalPayload) transitionPayload()         {}
func (SlotSelectionPayload) transitionPayload()    {}
func (ProposalDeclinedPayload) transitionPayload() {}
func (OfferPayload) transitionPayload()            {}

// PayloadNotes extracts the optional notes override from any payload variant.
func PayloadNotes(p TransitionPayload) *string {
	switch v := p.(type) {
	case StagePayload:
		return v.Notes
	case ProposalPayload:
		return v.Notes
	case SlotSelectionPayload:
		return v.Notes
	case ProposalDeclinedPayload:
		return v.Notes
	case OfferPayload:
		return v.Notes
	}
	return nil
}
