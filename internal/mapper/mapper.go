// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"candidate-pipeline/internal/api"
	"candidate-pipeline/internal/entities"
)

// ToAPICandidate maps entities.Candidate to its transport model.
func ToAPICandidate(c entities.Candidate) api.Candidate {
	return api.Candidate{
		ID:                 c.ID,
		Status:             string(c.Status),
		Positions:          c.Positions,
		SubmissionDate:     c.SubmissionDate,
		InterviewDatetime:  c.InterviewDatetime,
		InterviewLocation:  c.InterviewLocation,
		InterviewType:      c.InterviewType,
		ConfirmationStatus: string(c.ConfirmationStatus),
		ProposedSlots:      toAPISlots(c.ProposedSlots),
		EvaluationRating:   c.EvaluationRating,
		OfferDetails:       c.OfferDetails,
		OfferResponseDate:  c.OfferResponseDate,
		Notes:              c.Notes,
		Version:            c.Version,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToAPICandidateList maps a slice of candidates to transport models.
func ToAPICandidateList(list []entities.Candidate) []api.Candidate {
	res := make([]api.Candidate, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPICandidate(c))
	}
	return res
}

// ToAPIHistory maps a page of audit entries to the transport model.
func ToAPIHistory(page entities.HistoryPage) api.HistoryResponse {
	entries := make([]api.HistoryEntry, 0, len(page.Entries))
	for _, e := range page.Entries {
		var prev *string
		if e.PreviousStatus != nil {
			s := string(*e.PreviousStatus)
			prev = &s
		}
		entries = append(entries, api.HistoryEntry{
			Timestamp:      e.Timestamp,
			Status:         string(e.Status),
			PreviousStatus: prev,
			Notes:          e.Notes,
			UpdatedBy:      e.UpdatedBy,
		})
	}
	return api.HistoryResponse{Entries: entries, TotalPages: page.TotalPages}
}

// FromAPISlots maps transport slots to domain slots.
func FromAPISlots(slots []api.Slot) []entities.Slot {
	res := make([]entities.Slot, 0, len(slots))
	for _, s := range slots {
		res = append(res, entities.Slot{Start: s.Start, End: s.End})
	}
	return res
}

func toAPISlots(slots []entities.Slot) []api.Slot {
	if len(slots) == 0 {
		return nil
	}
	res := make([]api.Slot, 0, len(slots))
	for _, s := range slots {
		res = append(res, api.Slot{Start: s.Start, End: s.End})
	}
	return res
}
