package irange

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cs-au-dk/irange/utils/dot"
)

// ToDotGraph constructs the def-use graph of the analyzed function, with
// every node labelled by its interval. Nodes are clustered by def-use
// component, and nodes on a def-use cycle are drawn in bold.
func (r *Result) ToDotGraph() *dot.DotGraph {
	dg := &dot.DotGraph{
		Title: r.Graph.Name(),
		Options: map[string]string{
			"rankdir": "TB",
		},
	}

	cycles := Cycles(r.Graph)
	dotNodes := make(map[Node]*dot.DotNode)
	for i, component := range Components(r.Graph) {
		cluster := dot.NewDotCluster(fmt.Sprint(i))
		cluster.Attrs["label"] = fmt.Sprintf("component %d", i)
		for _, n := range component {
			iv := r.Interval(n)
			dNode := &dot.DotNode{
				ID: n.String(),
				Attrs: dot.DotAttrs{
					"label": n.String() + "\n" + iv.String(),
				},
			}
			switch {
			case iv.IsTop():
				dNode.Attrs["fillcolor"] = "lightpink"
			case iv.IsBot():
				dNode.Attrs["fillcolor"] = "gray"
			}
			if cycles[n] {
				dNode.Attrs["style"] = "filled,bold"
			}
			dotNodes[n] = dNode
			cluster.Nodes = append(cluster.Nodes, dNode)
		}
		dg.Clusters = append(dg.Clusters, cluster)
	}

	for _, n := range r.Graph.Nodes() {
		for _, u := range n.Users() {
			if to, found := dotNodes[u]; found {
				dg.Edges = append(dg.Edges, &dot.DotEdge{
					From: dotNodes[n],
					To:   to,
				})
			}
		}
	}

	return dg
}

// ExportDot writes the annotated def-use graph to <dir>/<function>.dot,
// and renders it to an image of the given format. Returns the path of the image.
func (r *Result) ExportDot(dir, format string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("could not create directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := r.ToDotGraph().WriteDot(&buf); err != nil {
		return "", fmt.Errorf("could not generate dot graph for %s: %w", r.Graph.Name(), err)
	}

	base := filepath.Join(dir, fileName(r.Graph.Name()))
	if err := os.WriteFile(base+".dot", buf.Bytes(), 0644); err != nil {
		return "", err
	}

	return dot.DotToImage(base, format, buf.Bytes())
}

// fileName sanitizes function names for use as file names.
func fileName(name string) string {
	return strings.NewReplacer("/", "_", "*", "", "(", "", ")", "", " ", "_").Replace(name)
}
