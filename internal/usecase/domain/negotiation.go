package domain

import (
	"context"
	"fmt"

	"candidate-pipeline/internal/entities"
)

// ProposeInterviewParams captures a new multi-slot interview proposal.
type ProposeInterviewParams struct {
	CandidateID     string
	Slots           []entities.Slot
	Location        string
	InterviewType   string
	Notes           *string
	ActorID         *string
	ExpectedVersion int64
}

// CandidateResponse is the candidate's answer to an outstanding proposal:
// either an accepted slot index or a blanket decline.
type CandidateResponse struct {
	AcceptSlot *int
	Decline    bool
	Notes      *string
}

// ProposeInterview opens the negotiation sub-protocol: it validates the slot
// set and moves the candidate from Interested to InterviewProposed with the
// confirmation flag pending.
func (u *Usecase) ProposeInterview(ctx context.Context, params ProposeInterviewParams) (*entities.Candidate, error) {
	if n := len(params.Slots); n == 0 || n > entities.MaxProposedSlots {
		return nil, &entities.SlotError{Index: n, Reason: "between one and three slots required"}
	}
	if err := validateSlots(params.Slots, u.now().UTC()); err != nil {
		return nil, err
	}

	return u.ApplyTransition(ctx, TransitionRequest{
		CandidateID: params.CandidateID,
		Target:      entities.StatusInterviewProposed,
		Payload: entities.ProposalPayload{
			Slots:         params.Slots,
			Location:      params.Location,
			InterviewType: params.InterviewType,
			Notes:         params.Notes,
		},
		ExpectedVersion: params.ExpectedVersion,
		ActorID:         params.ActorID,
	})
}

// RecordCandidateResponse resolves an outstanding proposal. Acceptance
// schedules the interview at the chosen slot's start; decline returns the
// candidate to Interested, requiring a fresh proposal for another attempt.
func (u *Usecase) RecordCandidateResponse(ctx context.Context, candidateID string, resp CandidateResponse, expectedVersion int64, actorID *string) (*entities.Candidate, error) {
	switch {
	case resp.AcceptSlot != nil && resp.Decline:
		return nil, fmt.Errorf("%w: response cannot both accept and decline", entities.ErrInvalidArgument)
	case resp.AcceptSlot != nil:
		return u.ApplyTransition(ctx, TransitionRequest{
			CandidateID:     candidateID,
			Target:          entities.StatusInterview,
			Payload:         entities.SlotSelectionPayload{SlotIndex: *resp.AcceptSlot, Notes: resp.Notes},
			ExpectedVersion: expectedVersion,
			ActorID:         actorID,
		})
	case resp.Decline:
		return u.ApplyTransition(ctx, TransitionRequest{
			CandidateID:     candidateID,
			Target:          entities.StatusInterested,
			Payload:         entities.ProposalDeclinedPayload{Notes: resp.Notes},
			ExpectedVersion: expectedVersion,
			ActorID:         actorID,
		})
	default:
		return nil, fmt.Errorf("%w: response must accept a slot or decline", entities.ErrInvalidArgument)
	}
}

// CancelOrReschedule abandons a confirmed interview, returning the candidate
// to Interested with all interview fields cleared. It is valid only from the
// Interview status; the generic Interested edge out of InterviewProposed is a
// proposal withdrawal, not a cancellation, so it is rejected here.
func (u *Usecase) CancelOrReschedule(ctx context.Context, candidateID string, expectedVersion int64, actorID *string) (*entities.Candidate, error) {
	fetchCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	rec, err := u.repo.GetCandidate(fetchCtx, candidateID)
	if err != nil {
		return nil, err
	}
	if rec.Status != entities.StatusInterview {
		return nil, &entities.TransitionError{From: rec.Status, Target: entities.StatusInterested}
	}

	return u.ApplyTransition(ctx, TransitionRequest{
		CandidateID:     candidateID,
		Target:          entities.StatusInterested,
		Payload:         entities.StagePayload{},
		ExpectedVersion: expectedVersion,
		ActorID:         actorID,
	})
}
