package main

import (
	"fmt"

	"github.com/cs-au-dk/irange/analysis/irange"
)

func gatherMetrics(outcomes []outcome) {
	if !opts.Metrics() || len(outcomes) == 0 {
		return
	}

	done, panicked := 0, 0
	evaluations := map[irange.Pass]int{}

	msg := "================ Results =====================\n\n"

	for _, out := range outcomes {
		msg += "Function: " + out.fun.String() + "\n"

		var r *irange.Metrics
		if out.res != nil {
			r = out.res.Metrics
		}
		if !r.Enabled() {
			// The graph could not be constructed.
			msg += "Outcome: " + irange.OUTCOME_PANIC + "\n"
			msg += out.err.Error() + "\nFunction finished\n\n"
			panicked++
			continue
		}

		msg += "Outcome: " + r.Outcome + "\n"
		if r.Outcome == irange.OUTCOME_PANIC {
			msg += r.Error() + "\nFunction finished\n\n"
			panicked++
			continue
		}
		done++

		msg += "Time: " + r.Performance() + "\n"
		msg += "Nodes: " + fmt.Sprint(len(out.res.Graph.Nodes())) + "\n"
		msg += "Thresholds: " + out.res.Thresholds.String() + "\n"
		for _, p := range []irange.Pass{irange.PassWiden, irange.PassNarrow} {
			msg += fmt.Sprintf("%s pass: %d evaluations, %d changes\n",
				p, r.Evaluations(p), r.Changes(p))
			evaluations[p] += r.Evaluations(p)
		}
		msg += "Function finished\n\n"
	}

	msg += fmt.Sprintf("Completed: %d/%d, panicked: %d\n", done, len(outcomes), panicked)
	msg += fmt.Sprintf("Total evaluations: %d widening, %d narrowing\n",
		evaluations[irange.PassWiden], evaluations[irange.PassNarrow])
	msg += "================ Results ====================="
	fmt.Println(msg)
}
