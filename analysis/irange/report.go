package irange

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/irange/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Header   func(...interface{}) string
	Node     func(...interface{}) string
	Interval func(...interface{}) string
}{
	Header: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite, color.Bold).SprintFunc())(is...)
	},
	Node: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Interval: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
}

func plain(is ...interface{}) string {
	return fmt.Sprint(is...)
}

// Report writes the interval of every node in program order:
//
//	*** interval range analysis for function <name> ***
//	<node> = [L,U]
func (r *Result) Report(w io.Writer) error {
	return r.report(w, plain, plain, plain)
}

// ReportColorized is like Report, but highlights the output
// unless colorization is disabled.
func (r *Result) ReportColorized(w io.Writer) error {
	return r.report(w, colorize.Header, colorize.Node, colorize.Interval)
}

func (r *Result) report(w io.Writer, header, node, interval func(...interface{}) string) error {
	if _, err := fmt.Fprintln(w, header("*** interval range analysis for function "+r.Graph.Name()+" ***")); err != nil {
		return err
	}
	for _, n := range r.Graph.Nodes() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", node(n.String()), interval(r.Interval(n).String())); err != nil {
			return err
		}
	}
	return nil
}

// ReportKnownInts writes the widening thresholds of the analyzed function.
func (r *Result) ReportKnownInts(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", r.Graph.Name(), r.Thresholds)
	return err
}
