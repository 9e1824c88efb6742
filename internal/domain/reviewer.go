package domain

import "time"

// ReviewerApplication is a user's request to be granted the reviewer role.
type ReviewerApplication struct {
	Username    string
	Status      ApplicationStatus
	RequestedAt time.Time
	Decision    Optional[Decision]
}

// Decision is an administrator's ruling on a reviewer application.
type Decision struct {
	By string
	At time.Time
}

// IsPending reports whether the application still awaits a decision.
func (a ReviewerApplication) IsPending() bool { return a.Status == ApplicationStatusPending }
