package domain

// Action represents the kind of a check-in event.
type Action string

const (
	ActionEntry Action = "Entrada"
	ActionExit  Action = "Saída"
)

// Valid reports whether a is one of the two known actions.
func (a Action) Valid() bool {
	return a == ActionEntry || a == ActionExit
}

// Opposite returns the action a user must register next after a.
func (a Action) Opposite() Action {
	if a == ActionEntry {
		return ActionExit
	}
	return ActionEntry
}

// CanFollow reports whether a may be registered after prior.
// Consecutive events for the same user must strictly alternate.
func (a Action) CanFollow(prior Action) bool {
	return a != prior
}
