package domain

import "time"

// EscalationRequest is one item in the request ledger: a reporter asking an
// arbiter to take an administrative action.
//
// A request starts OPEN and is closed at most once. Reopening never touches
// the closed row; it creates a new OPEN request whose ParentRequestID points
// back at the closed one, so the ledger forms a forest of reopen chains.
type EscalationRequest struct {
	ID              ID
	Description     string
	Status          RequestStatus
	CreatedBy       string
	CreatedAt       time.Time
	Closure         Optional[Closure]
	ParentRequestID Optional[ID]
}

// Closure is the arbiter's close-out of a request. Its fields are set
// together or not at all.
type Closure struct {
	By      string
	Message string
	At      time.Time
}
