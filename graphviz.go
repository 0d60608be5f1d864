package tickfsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the machine for
// visualization. The current state is highlighted, placeholder states that
// were never registered are greyed out, and the edge of a pending transition
// is emphasized.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Machine {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.initial))

	for _, s := range m.states {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", s.id))

		switch {
		case s.id == m.current.id:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !s.enabled:
			attrs.Push("fillcolor=\"#d3d3d3\"", "style=\"filled,dashed\"")
		}

		var hooks g.Slice[g.String]

		if s.stay != nil {
			hooks.Push("OnStay")
		}

		if s.enter != nil {
			hooks.Push("OnEnter")
		}

		if hooks.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", hooks.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", s.id, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for _, s := range m.states {
		targets := s.targets.ToSlice()
		targets.SortBy(cmp.Cmp)

		for _, to := range targets {
			if m.Pending() && s.id == m.current.id && to == m.target {
				b.WriteString(g.Format(
					"  \"{}\" -> \"{}\" [label=\" pending\", style=bold, color=\"#2e8b57\"];\n", s.id, to))
				continue
			}

			b.WriteString(g.Format("  \"{}\" -> \"{}\";\n", s.id, to))
		}
	}

	b.WriteString("}\n")

	return b.String()
}
