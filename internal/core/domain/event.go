package domain

import "time"

// AttendanceEvent is a single immutable check-in record. Events
// reference their user by normalized CPF, not by ownership pointer;
// the ledger never manages user lifecycle.
type AttendanceEvent struct {
	ID        uint
	CPF       string
	Nome      string
	Action    Action
	Timestamp time.Time // always carries the fixed -03:00 offset
	OriginIP  string    // best-effort, may be empty
}
