package vdds

import (
	"fmt"
	"io"
)

// WriteDot renders the topology captured in di as a Graphviz DOT digraph: a
// lightblue node per publisher, an orange node per topic, a green node per
// subscriber, and pub->topic->sub edges, grounded directly on the original
// utils::to_dot. No third-party DOT/Graphviz library exists anywhere in the
// reference corpus this module was built from, so this is plain
// fmt.Fprintf text generation rather than a library call — the one
// component in this package with no ecosystem dependency to wire in.
func WriteDot(w io.Writer, di DomainInfo) error {
	write := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := write("digraph {\n"); err != nil {
		return err
	}
	if err := write("  graph [splines=true, rankdir=LR]\n"); err != nil {
		return err
	}
	if err := write("  edge  [splines=true]\n"); err != nil {
		return err
	}
	if err := write("  node  [shape=box, style=\"rounded, filled\"]\n"); err != nil {
		return err
	}

	if err := write("{\n"); err != nil {
		return err
	}
	for _, ti := range di.Topics {
		for _, pi := range ti.Pubs {
			if err := write("  %q[fillcolor=lightblue];\n", pi.Name); err != nil {
				return err
			}
		}
	}
	if err := write("}\n"); err != nil {
		return err
	}

	if err := write("{\n"); err != nil {
		return err
	}
	for _, ti := range di.Topics {
		if err := write("  %q[fillcolor=orange];\n", ti.Name); err != nil {
			return err
		}
	}
	if err := write("}\n"); err != nil {
		return err
	}

	if err := write("{\n"); err != nil {
		return err
	}
	for _, ti := range di.Topics {
		for _, si := range ti.Subs {
			if err := write("  %q[fillcolor=green];\n", si.Name); err != nil {
				return err
			}
		}
	}
	if err := write("}\n"); err != nil {
		return err
	}

	for _, ti := range di.Topics {
		for _, pi := range ti.Pubs {
			if err := write("  %q -> %q\n", pi.Name, ti.Name); err != nil {
				return err
			}
		}
		for _, si := range ti.Subs {
			if err := write("  %q -> %q\n", ti.Name, si.Name); err != nil {
				return err
			}
		}
	}

	return write("}\n")
}
