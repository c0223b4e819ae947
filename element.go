package rowan

// Element satisfies the capability interfaces through its embedded state and
// the animation target surface through its top-level property accessors.
var (
	_ Transformable = (*Element)(nil)
	_ EventTarget   = (*Element)(nil)
	_ PropTarget    = (*Element)(nil)
	_ PropTarget    = Props(nil)
)

// elementIDCounter is a plain counter (no atomic — rowan is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the base scene-graph entity: identity, transform and event
// capabilities, animation bookkeeping, clip path and text label ownership,
// and dirty-flag redraw signaling. Concrete drawables embed Element and add
// their geometry; a bare Element works as a group or placement anchor.
type Element struct {
	Transform
	Eventful

	// Identity
	ID   uint32
	Name string
	Type string

	// Visibility & interaction
	Ignore    bool // skip draw and events
	Silent    bool // skip events only
	Draggable DragConstraint
	Dragging  bool

	// Parent is a back-reference maintained by the owning Group; Element
	// never owns a child list itself.
	Parent *Element

	// Style and Shape are nested animatable property bundles, populated by
	// drawable implementations (or Attr) and diffed per level by AnimateTo.
	Style Props
	Shape Props

	// extra holds user-defined animatable keys outside the known surface.
	extra Props

	// bounds is the local-space bounding box, populated by the shape
	// implementation that embeds this element.
	bounds Rect

	// Animation
	animators []*Animator

	// OnAnimationFrame, when set, is called with the level key once per tick
	// of each active animator, before the element is marked dirty.
	OnAnimationFrame func(key string)

	// Clip path & text label (exclusively owned while set)
	clipPath   *Element
	clipOwner  *Element
	textLabel  *Text
	labelOwner *Element
	textLayout *TextLayout

	// Attachment & repaint
	stage *Stage
	dirty bool

	disposed bool
}

// elementDefaults sets the common default field values shared by all
// constructors of element kinds.
func elementDefaults(e *Element) {
	e.ID = nextElementID()
	initTransform(&e.Transform)
	e.dirty = true
}

// NewElement creates a bare element and applies the optional property bag
// through the attribute protocol. props may be nil.
func NewElement(name string, props Props) *Element {
	e := &Element{Name: name, Type: "element"}
	elementDefaults(e)
	if props != nil {
		e.Attr(props)
	}
	return e
}

// --- Attribute protocol ---

// Attr merges a partial property bag into the element and marks it dirty.
// Recognized keys: name, ignore, silent, draggable, dragging, position,
// scale, origin, rotation, bounds, style, shape, textLayout, textContent,
// clipPath. Unknown keys land in the element's extra bag and remain
// animatable.
func (e *Element) Attr(props Props) *Element {
	for key, v := range props {
		e.applyAttr(key, v)
	}
	e.MarkDirty()
	return e
}

// SetAttr sets a single attribute and marks the element dirty.
func (e *Element) SetAttr(key string, v any) *Element {
	e.applyAttr(key, v)
	e.MarkDirty()
	return e
}

func (e *Element) applyAttr(key string, v any) {
	switch key {
	case "name":
		if s, ok := v.(string); ok {
			e.Name = s
		}
	case "ignore":
		e.Ignore = truthy(v)
	case "silent":
		e.Silent = truthy(v)
	case "dragging":
		e.Dragging = truthy(v)
	case "draggable":
		e.Draggable = dragConstraintFrom(v)
	case "bounds":
		if r, ok := v.(Rect); ok {
			e.bounds = r
		}
	case "style":
		if p, ok := v.(Props); ok {
			if e.Style == nil {
				e.Style = Props{}
			}
			mergeProps(e.Style, p)
		}
	case "shape":
		if p, ok := v.(Props); ok {
			if e.Shape == nil {
				e.Shape = Props{}
			}
			mergeProps(e.Shape, p)
		}
	case "textLayout":
		switch t := v.(type) {
		case Props:
			e.SetTextLayout(t)
		case TextLayout:
			e.textLayout = &t
		case *TextLayout:
			e.textLayout = t
		}
	case "textContent":
		if v == nil {
			e.RemoveTextContent()
		} else if t, ok := v.(*Text); ok {
			e.SetTextContent(t)
		}
	case "clipPath":
		if v == nil {
			e.RemoveClipPath()
		} else if p, ok := v.(*Element); ok {
			e.SetClipPath(p)
		}
	default:
		e.SetProp(key, v)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case nil:
		return false
	default:
		return true
	}
}

// --- Animation property access (PropTarget) ---

// GetProp returns the element-level animatable property stored under key.
// position, scale, and origin are the live slices; style and shape are the
// nested bundles; anything else comes from the extra bag.
func (e *Element) GetProp(key string) (any, bool) {
	switch key {
	case "position":
		return e.position, true
	case "scale":
		return e.scale, true
	case "origin":
		return e.origin, true
	case "rotation":
		return e.Rotation, true
	case "style":
		if e.Style == nil {
			return nil, false
		}
		return e.Style, true
	case "shape":
		if e.Shape == nil {
			return nil, false
		}
		return e.Shape, true
	default:
		if e.extra == nil {
			return nil, false
		}
		v, ok := e.extra[key]
		return v, ok
	}
}

// SetProp writes an element-level property. Transform slices are copied
// component-wise in place, never replaced, so external observers holding the
// slice stay valid.
func (e *Element) SetProp(key string, v any) bool {
	v = normalizeValue(v)
	switch key {
	case "position", "scale", "origin":
		s, ok := v.([]float64)
		if !ok || len(s) < 2 {
			return false
		}
		switch key {
		case "position":
			e.SetPosition(s[0], s[1])
		case "scale":
			e.SetScale(s[0], s[1])
		case "origin":
			e.SetOrigin(s[0], s[1])
		}
	case "rotation":
		f, ok := v.(float64)
		if !ok {
			return false
		}
		e.SetRotation(f)
	case "style":
		p, ok := v.(Props)
		if !ok {
			return false
		}
		if e.Style == nil {
			e.Style = Props{}
		}
		mergeProps(e.Style, p)
	case "shape":
		p, ok := v.(Props)
		if !ok {
			return false
		}
		if e.Shape == nil {
			e.Shape = Props{}
		}
		mergeProps(e.Shape, p)
	default:
		if e.extra == nil {
			e.extra = Props{}
		}
		e.extra[key] = v
	}
	return true
}

// --- Bounds ---

// SetBounds sets the local-space bounding box used for text label placement.
func (e *Element) SetBounds(r Rect) {
	e.bounds = r
	e.MarkDirty()
}

// BoundingRect returns the local-space bounding box.
func (e *Element) BoundingRect() Rect {
	return e.bounds
}

// --- Clip path ---

// SetClipPath assigns path as this element's clip path. A clip path is
// exclusively owned: if path currently clips another element it is detached
// from that element first, and any previous clip path of this element is
// released. The path's stage attachment is kept in sync with the owner's.
func (e *Element) SetClipPath(path *Element) {
	if path == nil {
		e.RemoveClipPath()
		return
	}
	if e.clipPath == path {
		e.MarkDirty()
		return
	}
	if path.clipOwner != nil {
		path.clipOwner.RemoveClipPath()
	}
	if e.clipPath != nil {
		e.RemoveClipPath()
	}
	e.clipPath = path
	path.clipOwner = e
	if e.stage != nil {
		path.AttachToStage(e.stage)
	}
	e.MarkDirty()
}

// RemoveClipPath detaches and clears the current clip path. No-op if none is
// set; calling it twice is safe.
func (e *Element) RemoveClipPath() {
	path := e.clipPath
	if path == nil {
		return
	}
	if path.stage != nil {
		path.DetachFromStage(path.stage)
	}
	path.clipOwner = nil
	e.clipPath = nil
	e.MarkDirty()
}

// ClipPath returns the current clip path, or nil.
func (e *Element) ClipPath() *Element {
	return e.clipPath
}

// --- Text label ---

// SetTextContent attaches a text label rendered relative to this element's
// bounds. Ownership is exclusive, symmetric to SetClipPath.
func (e *Element) SetTextContent(label *Text) {
	if label == nil {
		e.RemoveTextContent()
		return
	}
	if e.textLabel == label {
		e.MarkDirty()
		return
	}
	if label.labelOwner != nil {
		label.labelOwner.RemoveTextContent()
	}
	if e.textLabel != nil {
		e.RemoveTextContent()
	}
	e.textLabel = label
	label.labelOwner = e
	if e.stage != nil {
		label.AttachToStage(e.stage)
	}
	e.MarkDirty()
}

// RemoveTextContent detaches and clears the attached text label. No-op if
// none is set.
func (e *Element) RemoveTextContent() {
	label := e.textLabel
	if label == nil {
		return
	}
	if label.stage != nil {
		label.DetachFromStage(label.stage)
	}
	label.labelOwner = nil
	label.Parent = nil
	e.textLabel = nil
	e.MarkDirty()
}

// TextContent returns the attached text label, or nil.
func (e *Element) TextContent() *Text {
	return e.textLabel
}

// SetTextLayout merges a layout descriptor bag into the existing descriptor,
// creating one if absent. Recognized keys: "position" (anchor string or
// [x, y] coordinates), "distance" (float64), "local" (bool).
func (e *Element) SetTextLayout(layout Props) {
	if e.textLayout == nil {
		e.textLayout = &TextLayout{Distance: defaultTextDistance}
	}
	e.textLayout.merge(layout)
	e.MarkDirty()
}

// TextLayoutDescriptor returns the current layout descriptor, or nil when the
// default placement applies.
func (e *Element) TextLayoutDescriptor() *TextLayout {
	return e.textLayout
}

// --- Visibility & repaint ---

// Hide marks the element to be skipped by draw and event routing, and
// requests a redraw if attached.
func (e *Element) Hide() {
	e.Ignore = true
	if e.stage != nil {
		e.stage.Refresh()
	}
}

// Show clears the ignore flag and requests a redraw if attached.
func (e *Element) Show() {
	e.Ignore = false
	if e.stage != nil {
		e.stage.Refresh()
	}
}

// MarkDirty flags the element for repaint consideration and, if attached,
// asks the stage to schedule a redraw. This is the only path by which element
// mutation reaches downstream repaint scheduling.
func (e *Element) MarkDirty() {
	e.dirty = true
	if e.stage != nil {
		e.stage.Refresh()
	}
}

// IsDirty reports whether the element needs repaint consideration.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// ClearDirty resets the dirty flag. Called by the painter after a repaint.
func (e *Element) ClearDirty() {
	e.dirty = false
}

// --- Drag ---

// Drift translates the element in the ambient coordinate space by mutating
// the matrix translation directly and decomposing the result back into
// position/rotation/scale. The draggable constraint zeroes the locked axis.
func (e *Element) Drift(dx, dy float64) {
	switch e.Draggable {
	case DragHorizontal:
		dy = 0
	case DragVertical:
		dx = 0
	}
	// Recompose first: an in-flight animator mutates the component slices
	// without touching the matrix.
	e.UpdateTransform()
	e.local[4] += dx
	e.local[5] += dy
	e.DecomposeTransform()
	e.MarkDirty()
}

// --- Per-frame update ---

// Update is invoked once per frame by the owning traversal. It recomposes
// the transform (local and world) and, when a text label is attached,
// computes the label's placement against this element's bounding box.
func (e *Element) Update() {
	e.UpdateTransform()
	if e.Parent != nil {
		e.world = multiplyAffine(e.Parent.world, e.local)
	} else {
		e.world = e.local
	}
	if e.textLabel != nil {
		e.placeTextLabel()
	}
}

// placeTextLabel positions the attached label relative to this element's
// bounds. With the layout's Local flag the label is reparented to this
// element so it inherits the transform hierarchically; otherwise the bounds
// are pre-transformed into global space. Scratch state is local: no shared
// buffers across elements.
func (e *Element) placeTextLabel() {
	layout := e.textLayout
	if layout == nil {
		layout = &TextLayout{Distance: defaultTextDistance}
	}

	rect := e.bounds
	label := e.textLabel
	if layout.Local {
		label.Parent = e
	} else {
		label.Parent = nil
		rect = transformRect(e.world, rect)
	}

	pos := CalculateTextPosition(layout, rect)
	label.SetPosition(pos.X, pos.Y)
	if pos.AlignSet {
		label.Style.Align = pos.Align
		label.Style.VerticalAlign = pos.VerticalAlign
	}
	label.MarkDirty()
}

// updateDuringAnimation runs once per tick for each active animator, keyed by
// the animation level that produced it.
func (e *Element) updateDuringAnimation(key string) {
	if e.OnAnimationFrame != nil {
		e.OnAnimationFrame(key)
	}
	e.MarkDirty()
}

// --- Attachment manager ---

// AttachToStage joins the element to a stage's rendering context: the stage
// reference is set, every held animator is registered with the stage's
// animation scheduler, and the clip path and text label (if any) are attached
// recursively. Scene-tree children are NOT attached here; that is the owning
// Group's responsibility, once per node.
func (e *Element) AttachToStage(st *Stage) {
	e.stage = st
	if st != nil {
		sched := st.Animation()
		for _, a := range e.animators {
			sched.AddAnimator(a)
		}
	}
	if e.clipPath != nil {
		e.clipPath.AttachToStage(st)
	}
	if e.textLabel != nil {
		e.textLabel.AttachToStage(st)
	}
}

// DetachFromStage is the symmetric teardown: the stage reference is cleared
// and all animators unregistered, recursively including the clip path and
// text label. The animator list and clip/text references themselves are left
// intact so a later re-attachment resumes cleanly.
func (e *Element) DetachFromStage(st *Stage) {
	if st != nil {
		sched := st.Animation()
		for _, a := range e.animators {
			sched.RemoveAnimator(a)
		}
	}
	e.stage = nil
	if e.clipPath != nil {
		e.clipPath.DetachFromStage(st)
	}
	if e.textLabel != nil {
		e.textLabel.DetachFromStage(st)
	}
}

// Stage returns the stage this element is attached to, or nil.
func (e *Element) Stage() *Stage {
	return e.stage
}

// --- Disposal ---

// Dispose stops all animations, detaches from the stage, and releases the
// clip path and text label. Safe to call twice.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.StopAnimation(false)
	if e.stage != nil {
		e.DetachFromStage(e.stage)
	}
	e.RemoveClipPath()
	e.RemoveTextContent()
	e.Parent = nil
	e.OnAnimationFrame = nil
}

// IsDisposed reports whether this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}
