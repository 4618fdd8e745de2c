package pipeline

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Record is one immutable audit entry. Created exactly once per pipeline
// invocation that reached a decision.
type Record struct {
	Description string
	Command     string
	Outcome     Outcome
}

// Log is the append-only ordered audit trail for one run. Records are only
// added through the pipeline and never mutated afterward.
type Log struct {
	records []Record
}

func (l *Log) append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of recorded actions.
func (l *Log) Len() int {
	return len(l.records)
}

// Records returns a copy of the trail in invocation order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Summary renders the numbered end-of-run report, one line per record in
// invocation order: outcome tag, description, and the literal command.
func (l *Log) Summary(w io.Writer) {
	if len(l.records) == 0 {
		fmt.Fprintln(w, "No actions were performed.")
		return
	}

	out := termenv.NewOutput(w)
	fmt.Fprintln(w, "Summary of actions:")
	for i, r := range l.records {
		tag := out.String("[" + string(r.Outcome) + "]")
		switch r.Outcome {
		case OutcomeExecuted:
			tag = tag.Foreground(termenv.ANSIGreen)
		case OutcomeFailed:
			tag = tag.Foreground(termenv.ANSIRed)
		case OutcomeDryAccepted:
			tag = tag.Foreground(termenv.ANSICyan)
		case OutcomeSkipped:
			tag = tag.Foreground(termenv.ANSIYellow)
		}
		fmt.Fprintf(w, "%3d. %-14s %s (%s)\n", i+1, tag.String(), r.Description, r.Command)
	}
}
