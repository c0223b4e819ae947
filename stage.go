package rowan

// Node is anything that can live in a Group: *Element, *Text, *Group, or any
// user drawable embedding Element.
type Node interface {
	// Base returns the embedded Element carrying identity, transform, and
	// attachment state.
	Base() *Element
	// Update is invoked once per frame by the stage traversal.
	Update()
}

// Base returns the element itself, satisfying Node for Element and for every
// type embedding it.
func (e *Element) Base() *Element { return e }

// --- Group ---

// Group is the scene-tree container: it owns the child list and the
// parent/child relationships, and drives per-node stage attachment as the
// tree is mutated. A Group is itself an Element, so groups nest and carry
// transforms of their own.
type Group struct {
	Element
	children []Node
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	g := &Group{}
	g.Name = name
	g.Type = "group"
	elementDefaults(&g.Element)
	return g
}

// Add appends child to this group. If the group is attached to a stage the
// whole subtree rooted at child is attached, one node at a time. Panics if
// child is nil, already parented, or an ancestor of this group.
func (g *Group) Add(child Node) *Group {
	if child == nil || child.Base() == nil {
		panic("rowan: cannot add nil child")
	}
	base := child.Base()
	if globalDebug {
		debugCheckDisposed(&g.Element, "Add (parent)")
		debugCheckDisposed(base, "Add (child)")
	}
	if base.Parent != nil {
		panic("rowan: child already has a parent; remove it first")
	}
	for p := g.Element.Parent; p != nil; p = p.Parent {
		if p == base {
			panic("rowan: adding child would create a cycle")
		}
	}
	if base == &g.Element {
		panic("rowan: adding child would create a cycle")
	}
	base.Parent = &g.Element
	g.children = append(g.children, child)
	if g.stage != nil {
		attachSubtree(child, g.stage)
	}
	if globalDebug {
		debugCheckTreeDepth(base)
	}
	g.MarkDirty()
	return g
}

// Remove detaches child from this group and, if attached, detaches its whole
// subtree from the stage. Unknown children are ignored.
func (g *Group) Remove(child Node) *Group {
	if child == nil {
		return g
	}
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			child.Base().Parent = nil
			if g.stage != nil {
				detachSubtree(child, g.stage)
			}
			g.MarkDirty()
			return g
		}
	}
	return g
}

// RemoveAll detaches every child. Children are not disposed.
func (g *Group) RemoveAll() *Group {
	for _, child := range g.children {
		child.Base().Parent = nil
		if g.stage != nil {
			detachSubtree(child, g.stage)
		}
	}
	g.children = g.children[:0]
	g.MarkDirty()
	return g
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (g *Group) Children() []Node {
	return g.children
}

// NumChildren returns the number of children.
func (g *Group) NumChildren() int {
	return len(g.children)
}

// ChildAt returns the child at the given index.
func (g *Group) ChildAt(index int) Node {
	return g.children[index]
}

// ChildByName returns the first direct child whose element name matches, or
// nil.
func (g *Group) ChildByName(name string) Node {
	for _, child := range g.children {
		if child.Base().Name == name {
			return child
		}
	}
	return nil
}

// Update recomputes this group's transform and then updates every child.
func (g *Group) Update() {
	g.Element.Update()
	for _, child := range g.children {
		child.Update()
	}
}

// attachSubtree joins every node under n to the stage, one node at a time.
// Element.AttachToStage itself is deliberately not tree-recursive.
func attachSubtree(n Node, st *Stage) {
	n.Base().AttachToStage(st)
	if grp, ok := n.(*Group); ok {
		for _, child := range grp.children {
			attachSubtree(child, st)
		}
	}
}

// detachSubtree is the symmetric teardown.
func detachSubtree(n Node, st *Stage) {
	n.Base().DetachFromStage(st)
	if grp, ok := n.(*Group); ok {
		for _, child := range grp.children {
			detachSubtree(child, st)
		}
	}
}

// --- Stage ---

// Stage is the active renderer context: it owns the animation scheduler, the
// root group, and the redraw request flag. Elements join and leave it through
// the attachment protocol; the run shell (or a host game loop) drives
// Stage.Update once per tick.
type Stage struct {
	root  *Group
	anim  Animation
	debug bool

	needsRefresh bool
}

// NewStage creates a stage with a pre-created, attached root group.
func NewStage() *Stage {
	st := &Stage{root: NewGroup("root")}
	st.root.AttachToStage(st)
	// A fresh stage needs an initial paint.
	st.needsRefresh = true
	return st
}

// Root returns the stage's root group.
func (s *Stage) Root() *Group {
	return s.root
}

// Animation returns the stage's animator scheduler.
func (s *Stage) Animation() *Animation {
	return &s.anim
}

// Add adds a node to the root group.
func (s *Stage) Add(n Node) {
	s.root.Add(n)
}

// Remove removes a node from the root group.
func (s *Stage) Remove(n Node) {
	s.root.Remove(n)
}

// Refresh requests that a redraw be scheduled. Dirty-marking any attached
// element routes here.
func (s *Stage) Refresh() {
	s.needsRefresh = true
}

// NeedsRefresh reports whether a redraw request is pending.
func (s *Stage) NeedsRefresh() bool {
	return s.needsRefresh
}

// Flush consumes the pending redraw request, returning whether one was set.
// The run shell calls this once per frame to decide whether to repaint.
func (s *Stage) Flush() bool {
	r := s.needsRefresh
	s.needsRefresh = false
	return r
}

// Update advances all scheduled animators by dt seconds and then runs the
// per-frame traversal from the root, updating transforms and label placement.
func (s *Stage) Update(dt float32) {
	s.anim.Update(dt)
	s.root.Update()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// use in tree operations panics with a descriptive message. Only valid with a
// single Stage; multiple Stages with differing debug modes reflect whichever
// called SetDebugMode last.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
