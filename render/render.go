// Package render turns an ordered solution into the artifacts a visual
// front end needs: a DOT digraph per step, built with gographviz, and a
// human-readable caption per Action. Rasterizing to an image by shelling
// out to the external `dot` binary is supported but optional - this
// package never opens a window or drives a viewer itself.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/awalterschulze/gographviz"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/alphabeth/splice/action"
	"github.com/alphabeth/splice/solver"
	"github.com/alphabeth/splice/strand"
)

// Step is the renderer's own view of one (action, strand) pair, without
// solver.SolutionStep's splice count. RenderAll takes Steps;
// StepsFromSolution converts a solver result into them.
type Step struct {
	Action *action.Action
	Strand *strand.Strand
}

// StepsFromSolution adapts a solver result into the renderer's input
// shape.
func StepsFromSolution(steps []solver.SolutionStep) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = Step{Action: s.LastAction, Strand: s.Strand}
	}
	return out
}

// Dot renders one strand as DOT source. Edges follow Strand's own
// collected DFS order; node labels are "<id>" for Normal cells and
// "<id> (doubler|extender|eraser)" for special cells.
func Dot(s *strand.Strand) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("strand"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	for _, id := range s.CollectNodeIDs() {
		attrs := map[string]string{"label": fmt.Sprintf("%q", nodeLabel(s, id))}
		if err := g.AddNode("strand", nodeName(id), attrs); err != nil {
			return "", errors.WithStack(err)
		}
	}
	for _, edge := range s.CollectEdges() {
		if err := g.AddEdge(nodeName(edge.Parent), nodeName(edge.Child), true, nil); err != nil {
			return "", errors.WithStack(err)
		}
	}
	return g.String(), nil
}

func nodeName(id strand.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func nodeLabel(s *strand.Strand, id strand.NodeID) string {
	switch s.CellKind(id) {
	case strand.Doubler:
		return fmt.Sprintf("%d (doubler)", id)
	case strand.Extender:
		return fmt.Sprintf("%d (extender)", id)
	case strand.Eraser:
		return fmt.Sprintf("%d (eraser)", id)
	default:
		return fmt.Sprintf("%d", id)
	}
}

// Caption renders a human-readable description of the action that
// produced a step, or "Start" for the initial step.
func Caption(a *action.Action) string {
	if a == nil {
		return "Start"
	}
	switch a.Kind {
	case action.ChangeParent:
		return fmt.Sprintf("Change parent of node %d from %d to %d", a.Node, a.OldParent, a.NewParent)
	case action.SwapChildren:
		return fmt.Sprintf("Swap children of parent node %d", a.Parent)
	case action.Mutate:
		return fmt.Sprintf("Mutate nodes %v", a.Nodes)
	default:
		return "Unknown action"
	}
}

// RenderToFile writes one DOT file for s and, if the `dot` binary is on
// PATH, one rasterized SVG alongside it. A missing `dot` binary is
// reported as an error but leaves dotPath populated - callers that only
// need the DOT source can ignore it.
func RenderToFile(ctx context.Context, dir string, index int, s *strand.Strand) (dotPath, imagePath string, err error) {
	dot, err := Dot(s)
	if err != nil {
		return "", "", err
	}

	dotPath = filepath.Join(dir, fmt.Sprintf("step-%03d.dot", index))
	if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
		return "", "", errors.WithStack(err)
	}

	if _, lookErr := exec.LookPath("dot"); lookErr != nil {
		return dotPath, "", errors.Wrap(lookErr, "render: dot binary not found, wrote DOT source only")
	}

	imagePath = filepath.Join(dir, fmt.Sprintf("step-%03d.svg", index))
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "dot", "-Tsvg", "-o", imagePath, dotPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return dotPath, "", errors.Wrapf(err, "render: dot failed: %s", stderr.String())
	}
	return dotPath, imagePath, nil
}

// RenderAll renders every step into dir, aggregating per-step failures
// (most commonly a missing `dot` binary) instead of aborting the whole
// batch on the first one.
func RenderAll(ctx context.Context, dir string, steps []Step) error {
	var errs error
	for i, step := range steps {
		if _, _, err := RenderToFile(ctx, dir, i, step.Strand); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
