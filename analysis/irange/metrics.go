package irange

import (
	"fmt"
	"time"
)

// Pass identifies a pass of the fixpoint computation.
type Pass int

const (
	PassWiden Pass = iota
	PassNarrow
)

func (p Pass) String() string {
	switch p {
	case PassWiden:
		return "widening"
	case PassNarrow:
		return "narrowing"
	}
	return fmt.Sprintf("Pass(%d)", int(p))
}

// Metrics encodes mechanisms for logging execution metrics.
// A nil *Metrics is valid and gathers nothing.
type Metrics struct {
	evaluations [2]int
	changes     [2]int
	time        time.Duration
	timer       time.Time
	Outcome     string
	errorMsg    interface{}
}

// Encoding of metric outcomes.
var (
	OUTCOME_DONE  = "Done"
	OUTCOME_PANIC = "Panicked"
)

// initMetrics creates a Metrics object, if enabled.
func (c Config) initMetrics() *Metrics {
	if c.Metrics {
		return &Metrics{}
	}
	return nil
}

// Enabled checks whether the Metrics object is available.
func (m *Metrics) Enabled() bool {
	return m != nil
}

func (m *Metrics) timerStart() {
	if m == nil {
		return
	}
	m.timer = time.Now()
}

func (m *Metrics) timerStop() {
	m.time = time.Since(m.timer)
}

// evaluated records that a node was evaluated during the given pass,
// and whether its value changed.
func (m *Metrics) evaluated(p Pass, changed bool) {
	if m == nil {
		return
	}
	m.evaluations[p]++
	if changed {
		m.changes[p]++
	}
}

// Evaluations is the number of node evaluations during the given pass.
func (m *Metrics) Evaluations(p Pass) int {
	if m == nil {
		return 0
	}
	return m.evaluations[p]
}

// Changes is the number of evaluations that changed the state during the given pass.
func (m *Metrics) Changes(p Pass) int {
	if m == nil {
		return 0
	}
	return m.changes[p]
}

// Done instructs that the analysis is done.
func (m *Metrics) Done() {
	if m == nil || m.Outcome != "" {
		return
	}

	m.timerStop()
	m.Outcome = OUTCOME_DONE
}

// Panic instructs that an analysis threw an exception.
func (m *Metrics) Panic(err interface{}) {
	if m == nil || m.Outcome != "" {
		return
	}

	m.timerStop()
	m.Outcome = OUTCOME_PANIC
	m.errorMsg = err
}

// Performance logs how fast the analysis ran.
func (m *Metrics) Performance() string {
	if m == nil {
		return "- no metrics gathered -"
	}

	return m.time.String()
}

// Error prints the error message resulting from running the analysis.
func (m *Metrics) Error() string {
	if m == nil {
		return ""
	}

	return fmt.Sprint(m.errorMsg)
}

func (m *Metrics) String() string {
	if m == nil {
		return "- no metrics gathered -"
	}

	str := "Outcome: " + m.Outcome + "\n"
	if m.Outcome == OUTCOME_PANIC {
		return str + m.Error() + "\n"
	}
	for _, p := range []Pass{PassWiden, PassNarrow} {
		str += fmt.Sprintf("%s: %d evaluations, %d changes\n", p, m.evaluations[p], m.changes[p])
	}
	return str + "Time: " + m.Performance() + "\n"
}
