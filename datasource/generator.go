// Package datasource: report tree generation.
//
// This file walks the flat element list from its root and places each element
// against the candidate filter levels: a direct category match first, then the
// level-skip fallback, else an invisible ghost that is pruned when nothing
// relevant lands below it. Logging goes through zap; counters through the
// Recorder.

package datasource

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/hierarchy"
	"github.com/katalvlaran/lvreport/nested"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for match, fallback and prune events.
// It panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("datasource: WithLogger logger must not be nil")
	}

	return func(g *Generator) { g.log = log }
}

// WithRecorder sets the Recorder notified of nodes and evaluations.
// It panics on nil.
func WithRecorder(rec Recorder) Option {
	if rec == nil {
		panic("datasource: WithRecorder recorder must not be nil")
	}

	return func(g *Generator) { g.rec = rec }
}

// Generator builds Reports with a fixed Shape.
type Generator struct {
	shape *Shape
	log   *zap.Logger
	rec   Recorder
}

// NewGenerator returns a Generator for shape. A nil shape is reported by
// Generate.
func NewGenerator(shape *Shape, opts ...Option) *Generator {
	g := &Generator{shape: shape, log: zap.NewNop(), rec: nopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate builds the report from the first root element of elements.
func (g *Generator) Generate(top *hierarchy.Level, elements []*nested.Element) (*Report, error) {
	idx := nested.NewIndex(elements)
	root := idx.Root()
	if root == nil {
		return nil, fmt.Errorf("datasource: Generate: no root element among %d: %w", idx.Len(), ErrMissingRootElement)
	}

	return g.generate(top, root, idx)
}

// GenerateFrom builds the report starting at root, which must be part of
// elements.
func (g *Generator) GenerateFrom(top *hierarchy.Level, root *nested.Element, elements []*nested.Element) (*Report, error) {
	idx := nested.NewIndex(elements)
	if !idx.Contains(root) {
		return nil, fmt.Errorf("datasource: GenerateFrom: %w", ErrMissingRootElement)
	}

	return g.generate(top, root, idx)
}

func (g *Generator) generate(top *hierarchy.Level, root *nested.Element, idx *nested.Index) (*Report, error) {
	// 1. Validate inputs
	if top == nil {
		return nil, ErrNilHierarchy
	}
	if g.shape == nil {
		return nil, ErrNilShape
	}

	// 2. Walk the product tree from root against the top level
	w := &walker{g: g, idx: idx, report: &Report{top: top, shape: g.shape}}
	w.visit(root, []*hierarchy.Level{top}, nil, nil)

	g.log.Debug("report generated",
		zap.String("root", root.ShortName()),
		zap.Int("roots", len(w.report.roots)),
		zap.Int("nodes", w.report.nodes),
		zap.Int("pruned", w.report.pruned),
	)

	return w.report, nil
}

// walker carries the state of one Generate call.
type walker struct {
	g      *Generator
	idx    *nested.Index
	report *Report
}

// visit places e given the candidate levels, the current parent and the
// tentative ghost node open on this path, if any.
func (w *walker) visit(e *nested.Element, cands []*hierarchy.Level, parent, ghost *Node) {
	cats := e.Categories()

	// 1. Primary match: the first candidate level e carries
	if l := primary(cands, cats); l != nil {
		n := w.node(e, l, true)
		w.link(parent, n)
		w.g.log.Debug("element matched",
			zap.String("element", e.ShortName()),
			zap.String("level", l.FieldName()))
		w.descend(e, below(n, l), n, nil)
		return
	}

	// 2. Level skip: e fills the level below a skippable candidate
	if skipped, next := fallback(cands, cats, parent); next != nil {
		n := w.node(e, next, true)
		at := parent
		switch {
		case ghost == nil:
		case ghost.level == nil || ghost.level == skipped:
			ghost.level = skipped
			at = ghost
		default:
			w.g.log.Debug("ghost holds another level",
				zap.String("element", e.ShortName()),
				zap.String("ghost", ghost.element.ShortName()),
				zap.String("held", ghost.level.FieldName()),
				zap.String("skipped", skipped.FieldName()))
		}
		w.link(at, n)
		w.g.log.Debug("element matched by level skip",
			zap.String("element", e.ShortName()),
			zap.String("skipped", skipped.FieldName()),
			zap.String("level", next.FieldName()))
		w.descend(e, below(n, next), n, nil)
		return
	}

	// 3. No match: open a ghost below parent unless one is already open
	if ghost != nil || parent == nil {
		w.descend(e, cands, parent, ghost)
		return
	}

	gh := w.node(e, nil, false)
	parent.attach(gh)
	w.descend(e, cands, parent, gh)

	// 4. Prune the ghost if nothing relevant ended up below it
	if !gh.IsRelevant() {
		parent.detach(gh)
		w.report.nodes--
		w.report.pruned++
		w.g.rec.NodePruned()
		w.g.log.Debug("node pruned", zap.String("element", e.ShortName()))
	}
}

func (w *walker) descend(e *nested.Element, cands []*hierarchy.Level, parent, ghost *Node) {
	if len(cands) == 0 {
		return
	}
	for _, c := range w.idx.Children(e) {
		w.visit(c, cands, parent, ghost)
	}
}

func (w *walker) node(e *nested.Element, l *hierarchy.Level, visible bool) *Node {
	w.report.nodes++
	w.g.rec.NodeCreated(visible)

	return newNode(e, l, visible, w.g.shape, w.g.rec)
}

func (w *walker) link(parent, n *Node) {
	if parent == nil {
		w.report.roots = append(w.report.roots, n)
		return
	}
	parent.attach(n)
}

// below returns the candidate levels for the children of n, matched at l.
// A recursive level stays a candidate, after its children, until it has
// matched MaxRecursion times on the path to n.
func below(n *Node, l *hierarchy.Level) []*hierarchy.Level {
	if !l.IsRecursive() || repeats(n, l) >= l.MaxRecursion() {
		return l.Children()
	}

	return append(slices.Clone(l.Children()), l)
}

// repeats counts n and its visible ancestors matched at l.
func repeats(n *Node, l *hierarchy.Level) int {
	count := 0
	for ; n != nil; n = n.parent {
		if n.visible && n.level == l {
			count++
		}
	}

	return count
}

func primary(cands []*hierarchy.Level, cats []*category.Category) *hierarchy.Level {
	for _, l := range cands {
		if category.Contains(cats, l.Category()) {
			return l
		}
	}

	return nil
}

// fallback returns the first skippable candidate and the child level of it
// that cats match, provided an ancestor of parent occupies the candidate's
// parent level.
func fallback(cands []*hierarchy.Level, cats []*category.Category, parent *Node) (skipped, next *hierarchy.Level) {
	for _, l := range cands {
		if !l.AllowSkip() || l.Parent() == nil || !hasAncestorAt(parent, l.Parent()) {
			continue
		}
		for _, n := range l.Children() {
			if category.Contains(cats, n.Category()) {
				return l, n
			}
		}
	}

	return nil, nil
}

func hasAncestorAt(n *Node, l *hierarchy.Level) bool {
	for ; n != nil; n = n.parent {
		if n.level == l {
			return true
		}
	}

	return false
}
