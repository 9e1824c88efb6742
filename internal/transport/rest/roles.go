package rest

// Roles lists which caller roles may use the gated endpoints.
type Roles struct {
	Reporter []string
	Arbiter  []string
	Reviewer []string
	Admin    []string
}
