// Package entities contains core business entities.
package entities

import "time"

// HistoryEntry is one immutable audit record of a status change. Entries form
// an append-only, per-candidate log; Seq is assigned by the store and strictly
// increases within a candidate.
type HistoryEntry struct {
	CandidateID    string
	Seq            int64
	Timestamp      time.Time
	Status         Status
	PreviousStatus *Status
	Notes          string
	UpdatedBy      *string
}

// DefaultHistoryPageSize is the page size used when the caller does not
// override it.
const DefaultHistoryPageSize = 5

// HistoryPage is one page of a candidate's audit trail, most recent first.
type HistoryPage struct {
	Entries    []HistoryEntry
	TotalPages int64
}
