package domain

// RequestStatus is the lifecycle state of an escalation request.
type RequestStatus string

const (
	RequestStatusOpen   RequestStatus = "OPEN"
	RequestStatusClosed RequestStatus = "CLOSED"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusClosed:
		return true
	}
	return false
}

// ApplicationStatus is the state of a reviewer application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusDenied   ApplicationStatus = "DENIED"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusDenied:
		return true
	}
	return false
}

// Role is the forum role carried by a caller's identity. The moderation core
// never authorizes by role itself; the transport layer does.
type Role string

const (
	RoleStudent    Role = "student"
	RoleReviewer   Role = "reviewer"
	RoleInstructor Role = "instructor"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleReviewer, RoleInstructor, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
