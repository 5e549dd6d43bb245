package core

// Outcome is the lifecycle state of a game session.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns the outcome as stored in score history.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "playing"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// Events holds optional session callbacks. Nil hooks are skipped.
type Events struct {
	Score func(delta, total int)
	Lines func(n int)
	End   func(o Outcome)
}

// EmitScore invokes the Score hook if set.
func (e Events) EmitScore(delta, total int) {
	if e.Score != nil {
		e.Score(delta, total)
	}
}

// EmitLines invokes the Lines hook if set.
func (e Events) EmitLines(n int) {
	if e.Lines != nil {
		e.Lines(n)
	}
}

// EmitEnd invokes the End hook if set.
func (e Events) EmitEnd(o Outcome) {
	if e.End != nil {
		e.End(o)
	}
}
