package domain

import (
	"context"
	"fmt"
	"time"

	"candidate-pipeline/internal/entities"
)

// TransitionRequest carries everything needed to move a candidate one edge
// through the pipeline.
type TransitionRequest struct {
	CandidateID     string
	Target          entities.Status
	Payload         entities.TransitionPayload
	ExpectedVersion int64
	ActorID         *string
}

// transitionRule is one edge of the pipeline graph: a payload check that runs
// before any mutation, and the mutation itself. Both operate on a checked-out
// copy of the record and perform no I/O.
type transitionRule struct {
	check func(rec *entities.Candidate, target entities.Status, p entities.TransitionPayload, now time.Time) error
	apply func(rec *entities.Candidate, p entities.TransitionPayload, now time.Time)
}

// transitionTable enumerates every legal edge. Statuses absent as keys
// (terminal ones, plus the intake-owned Processing and ParsingFailed) have no
// outgoing edges at all.
var transitionTable = map[entities.Status]map[entities.Status]transitionRule{
	entities.StatusNeedsReview: {
		entities.StatusAccepted: plainRule(),
		entities.StatusRejected: plainRule(),
	},
	entities.StatusAccepted: {
		entities.StatusInterested: plainRule(),
		entities.StatusRejected:   plainRule(),
	},
	entities.StatusInterested: {
		entities.StatusInterviewProposed: {check: checkProposal, apply: applyProposal},
		entities.StatusRejected:          plainRule(),
	},
	entities.StatusInterviewProposed: {
		entities.StatusInterview:  {check: checkSlotSelection, apply: applySlotSelection},
		entities.StatusInterested: {check: nil, apply: applyProposalClosed},
		entities.StatusRejected:   {check: nil, apply: applyProposalClosed},
	},
	entities.StatusInterview: {
		entities.StatusEvaluation: plainRule(),
		entities.StatusInterested: {check: nil, apply: applyInterviewCancelled},
		entities.StatusRejected:   plainRule(),
	},
	entities.StatusEvaluation: {
		entities.StatusOfferMade: {check: nil, apply: applyOffer},
		entities.StatusRejected:  plainRule(),
	},
	entities.StatusOfferMade: {
		entities.StatusHired:    plainRule(),
		entities.StatusDeclined: {check: nil, apply: applyOfferDeclined},
	},
}

func plainRule() transitionRule {
	return transitionRule{}
}

// ApplyTransition validates and applies a single status change. Validation and
// mutation are pure; the only side effect is the atomic commit of the mutated
// record plus one history entry through the store. Failures leave the stored
// record and its history untouched.
func (u *Usecase) ApplyTransition(ctx context.Context, req TransitionRequest) (*entities.Candidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.CandidateID == "" {
		return nil, fmt.Errorf("%w: candidate_id is required", entities.ErrInvalidArgument)
	}
	if req.Payload == nil {
		req.Payload = entities.StagePayload{}
	}

	rec, err := u.repo.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if rec.Version != req.ExpectedVersion {
		return nil, &entities.VersionError{CandidateID: rec.ID, Expected: req.ExpectedVersion, Actual: rec.Version}
	}

	rule, ok := transitionTable[rec.Status][req.Target]
	if !ok {
		return nil, &entities.TransitionError{From: rec.Status, Target: req.Target}
	}

	now := u.now().UTC()
	if rule.check != nil {
		if err := rule.check(rec, req.Target, req.Payload, now); err != nil {
			return nil, err
		}
	}

	prev := rec.Status
	mutated := *rec
	if rule.apply != nil {
		rule.apply(&mutated, req.Payload, now)
	}
	mutated.Status = req.Target
	if notes := entities.PayloadNotes(req.Payload); notes != nil {
		mutated.Notes = *notes
	}
	mutated.Version = req.ExpectedVersion + 1

	entry := entities.HistoryEntry{
		CandidateID:    rec.ID,
		Timestamp:      now,
		Status:         req.Target,
		PreviousStatus: &prev,
		Notes:          mutated.Notes,
		UpdatedBy:      req.ActorID,
	}

	saved, err := u.repo.SaveCandidate(ctx, mutated, entry, req.ExpectedVersion)
	if err != nil {
		return nil, err
	}

	u.log.Infow("transition applied",
		"candidate_id", saved.ID, "from", prev, "to", saved.Status, "version", saved.Version)
	return saved, nil
}

func checkProposal(rec *entities.Candidate, target entities.Status, p entities.TransitionPayload, now time.Time) error {
	proposal, ok := p.(entities.ProposalPayload)
	if !ok || len(proposal.Slots) == 0 {
		return &entities.MissingFieldError{From: rec.Status, Target: target, Field: "slots"}
	}
	if proposal.Location == "" {
		return &entities.MissingFieldError{From: rec.Status, Target: target, Field: "location"}
	}
	if proposal.InterviewType == "" {
		return &entities.MissingFieldError{From: rec.Status, Target: target, Field: "interview_type"}
	}
	return validateSlots(proposal.Slots, now)
}

func applyProposal(rec *entities.Candidate, p entities.TransitionPayload, _ time.Time) {
	proposal := p.(entities.ProposalPayload)
	rec.ProposedSlots = append([]entities.Slot(nil), proposal.Slots...)
	rec.InterviewLocation = &proposal.Location
	rec.InterviewType = &proposal.InterviewType
	rec.ConfirmationStatus = entities.ConfirmationPending
}

func checkSlotSelection(rec *entities.Candidate, target entities.Status, p entities.TransitionPayload, now time.Time) error {
	sel, ok := p.(entities.SlotSelectionPayload)
	if !ok {
		return &entities.MissingFieldError{From: rec.Status, Target: target, Field: "slot_index"}
	}
	if sel.SlotIndex < 0 || sel.SlotIndex >= len(rec.ProposedSlots) {
		return &entities.SlotError{Index: sel.SlotIndex, Reason: "index out of range"}
	}
	if rec.ProposedSlots[sel.SlotIndex].Start.Before(now) {
		return &entities.SlotError{Index: sel.SlotIndex, Reason: "slot start already passed"}
	}
	return nil
}

func applySlotSelection(rec *entities.Candidate, p entities.TransitionPayload, _ time.Time) {
	sel := p.(entities.SlotSelectionPayload)
	start := rec.ProposedSlots[sel.SlotIndex].Start
	rec.InterviewDatetime = &start
	rec.ConfirmationStatus = entities.ConfirmationConfirmed
	rec.ProposedSlots = nil
}

// applyProposalClosed covers every exit from InterviewProposed other than slot
// acceptance: the company withdrawing, the candidate declining everything, or
// an outright rejection. Outstanding slots never survive the status.
func applyProposalClosed(rec *entities.Candidate, p entities.TransitionPayload, _ time.Time) {
	rec.ClearProposal()
	if _, declined := p.(entities.ProposalDeclinedPayload); declined {
		rec.ConfirmationStatus = entities.ConfirmationDeclined
	} else {
		rec.ConfirmationStatus = entities.ConfirmationNone
	}
}

func applyInterviewCancelled(rec *entities.Candidate, _ entities.TransitionPayload, _ time.Time) {
	rec.ClearInterview()
}

func applyOffer(rec *entities.Candidate, p entities.TransitionPayload, _ time.Time) {
	offer, ok := p.(entities.OfferPayload)
	if !ok {
		return
	}
	if offer.OfferDetails != nil {
		rec.OfferDetails = offer.OfferDetails
	}
	if offer.EvaluationRating != nil {
		rec.EvaluationRating = offer.EvaluationRating
	}
}

func applyOfferDeclined(rec *entities.Candidate, _ entities.TransitionPayload, now time.Time) {
	rec.OfferResponseDate = &now
}

func validateSlots(slots []entities.Slot, now time.Time) error {
	if len(slots) > entities.MaxProposedSlots {
		return &entities.SlotError{Index: entities.MaxProposedSlots, Reason: "more than three slots proposed"}
	}
	for i, s := range slots {
		if !s.Start.Before(s.End) {
			return &entities.SlotError{Index: i, Reason: "start must precede end"}
		}
		if s.Start.Before(now) {
			return &entities.SlotError{Index: i, Reason: "start is in the past"}
		}
	}
	return nil
}
