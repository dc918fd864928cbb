package learn

import (
	"time"

	"github.com/maturapolski/matura/internal/session"
)

// op names the controller call an opDoneMsg reports on.
type op int

const (
	opStart op = iota
	opFetch
	opSubmit
	opSkip
	opNext
)

// opDoneMsg is sent when a controller call returns.
type opDoneMsg struct {
	Op  op
	Err error
}

// timerTickMsg is sent every second to refresh the elapsed time.
type timerTickMsg time.Time

// sessionEndedMsg is sent once EndSession returned. Summary holds the stats
// captured before the controller reset.
type sessionEndedMsg struct {
	Summary session.Summary
	Err     error
}
