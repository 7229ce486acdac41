package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DotToImage renders the DOT source to an image at outfname.format,
// using the graphviz library. Returns the path of the image.
func DotToImage(outfname string, format string, dot []byte) (img string, err error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", fmt.Errorf("parsing dot graph: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		g.Close()
	}()

	img = fmt.Sprintf("%s.%s", outfname, format)
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", fmt.Errorf("rendering %s: %w", img, err)
	}
	return img, nil
}

// dotTemplate renders a DotGraph. Clusters are drawn before free-standing
// nodes, and edges last, so that node declarations carry their attributes.
var dotTemplate = template.Must(template.New("graph").
	Option("missingkey=zero").
	Parse(`digraph IntervalRanges {
	label={{printf "%q" .Title}};
	labelloc="t";
	labeljust="l";
	fontname="Helvetica";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";
	nodesep="{{or .Options.nodesep "0.35"}}";
	pad="0.1";

	node [shape="box" style="filled" fillcolor="white" fontname="Courier" margin="0.1,0.05"];
	edge [minlen="{{or .Options.minlen "1"}}" arrowsize="0.7"];
{{range .Clusters}}
	subgraph {{printf "%q" .String}} {
		style="rounded,dashed";
		{{.Attrs.Lines}}
		{{- range .Nodes}}
		{{template "node" .}}
		{{- end}}
	}
{{end}}
	{{- range .Nodes}}
	{{template "node" .}}
	{{- end}}
	{{- range .Edges}}
	{{printf "%q -> %q" .From.String .To.String}} [ {{.Attrs}} ];
	{{- end}}
}
{{define "node"}}{{printf "%q" .ID}} [ {{.Attrs}} ];{{end}}
`))

// ==[ type def/func: DotCluster ]===============================================
type DotCluster struct {
	ID    string
	Nodes []*DotNode
	Attrs DotAttrs
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

// List renders the attributes sorted by key.
func (p DotAttrs) List() []string {
	keys := maps.Keys(p)
	slices.Sort(keys)

	l := []string{}
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	Title    string
	Clusters []*DotCluster
	Nodes    []*DotNode
	Edges    []*DotEdge
	Options  map[string]string
}

// CountNodes is the number of nodes in the graph, including clustered nodes.
func (g *DotGraph) CountNodes() int {
	res := len(g.Nodes)

	for _, cluster := range g.Clusters {
		res += len(cluster.Nodes)
	}

	return res
}

// WriteDot writes the graph in the DOT language.
func (g *DotGraph) WriteDot(w io.Writer) error {
	var buf bytes.Buffer
	if err := dotTemplate.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
