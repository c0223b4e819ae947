package rowan

// defaultTextDistance is the gap between an element's bounds and an attached
// label when the layout descriptor does not say otherwise.
const defaultTextDistance = 5.0

// TextStyle carries the presentation hints of a text element. Alignment
// fields are written by the label placement step when the layout anchor
// implies them.
type TextStyle struct {
	Font          string
	FontSize      float64
	Fill          string
	Align         TextAlign
	VerticalAlign VerticalAlign
}

// Text is a text drawable. It participates in the scene graph and animation
// through its embedded Element; actual glyph layout and painting are the
// renderer's concern.
type Text struct {
	Element
	Content string
	Style   TextStyle
}

// NewText creates a text element with the given content.
func NewText(name, content string) *Text {
	t := &Text{Content: content}
	t.Name = name
	t.Type = "text"
	elementDefaults(&t.Element)
	return t
}

// SetContent replaces the text content and marks the element dirty.
func (t *Text) SetContent(content string) {
	if t.Content == content {
		return
	}
	t.Content = content
	t.MarkDirty()
}

// --- Layout descriptor ---

// TextLayout describes where an attached label sits relative to its host
// element's bounding box.
type TextLayout struct {
	// Position is either a named anchor ("inside", "left", "right", "top",
	// "bottom", "inside-left", "inside-right", "inside-top", "inside-bottom",
	// "inside-top-left", "inside-top-right", "inside-bottom-left",
	// "inside-bottom-right") or a []float64{x, y} offset from the box origin.
	// Nil means "inside".
	Position any
	// Distance is the gap between the box edge and the label.
	Distance float64
	// Local places the label in the host's local space: the label is
	// reparented to the host instead of the box being pre-transformed to
	// global space.
	Local bool
}

// merge applies the keys of a descriptor bag onto l. Unknown keys are
// ignored.
func (l *TextLayout) merge(p Props) {
	for k, v := range p {
		switch k {
		case "position":
			l.Position = normalizeValue(v)
		case "distance":
			if f, ok := normalizeValue(v).(float64); ok {
				l.Distance = f
			}
		case "local":
			l.Local = truthy(v)
		}
	}
}

// TextPosition is the result of label placement: coordinates plus optional
// alignment hints (valid only when AlignSet is true).
type TextPosition struct {
	X, Y          float64
	Align         TextAlign
	VerticalAlign VerticalAlign
	AlignSet      bool
}

// CalculateTextPosition maps a layout descriptor and a bounding box to a
// label position. Pure: no element state is read or written.
func CalculateTextPosition(layout *TextLayout, rect Rect) TextPosition {
	distance := defaultTextDistance
	var anchor any
	if layout != nil {
		distance = layout.Distance
		anchor = layout.Position
	}

	if coords, ok := anchor.([]float64); ok && len(coords) >= 2 {
		return TextPosition{X: rect.X + coords[0], Y: rect.Y + coords[1]}
	}

	name, _ := anchor.(string)
	if name == "" {
		name = "inside"
	}

	halfW := rect.Width / 2
	halfH := rect.Height / 2
	pos := TextPosition{AlignSet: true}

	switch name {
	case "left":
		pos.X = rect.X - distance
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignRight
		pos.VerticalAlign = VerticalAlignMiddle
	case "right":
		pos.X = rect.X + rect.Width + distance
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignLeft
		pos.VerticalAlign = VerticalAlignMiddle
	case "top":
		pos.X = rect.X + halfW
		pos.Y = rect.Y - distance
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignBottom
	case "bottom":
		pos.X = rect.X + halfW
		pos.Y = rect.Y + rect.Height + distance
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignTop
	case "inside":
		pos.X = rect.X + halfW
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignMiddle
	case "inside-left":
		pos.X = rect.X + distance
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignLeft
		pos.VerticalAlign = VerticalAlignMiddle
	case "inside-right":
		pos.X = rect.X + rect.Width - distance
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignRight
		pos.VerticalAlign = VerticalAlignMiddle
	case "inside-top":
		pos.X = rect.X + halfW
		pos.Y = rect.Y + distance
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignTop
	case "inside-bottom":
		pos.X = rect.X + halfW
		pos.Y = rect.Y + rect.Height - distance
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignBottom
	case "inside-top-left":
		pos.X = rect.X + distance
		pos.Y = rect.Y + distance
		pos.Align = TextAlignLeft
		pos.VerticalAlign = VerticalAlignTop
	case "inside-top-right":
		pos.X = rect.X + rect.Width - distance
		pos.Y = rect.Y + distance
		pos.Align = TextAlignRight
		pos.VerticalAlign = VerticalAlignTop
	case "inside-bottom-left":
		pos.X = rect.X + distance
		pos.Y = rect.Y + rect.Height - distance
		pos.Align = TextAlignLeft
		pos.VerticalAlign = VerticalAlignBottom
	case "inside-bottom-right":
		pos.X = rect.X + rect.Width - distance
		pos.Y = rect.Y + rect.Height - distance
		pos.Align = TextAlignRight
		pos.VerticalAlign = VerticalAlignBottom
	default:
		warnf("unknown text anchor %q, using inside", name)
		pos.X = rect.X + halfW
		pos.Y = rect.Y + halfH
		pos.Align = TextAlignCenter
		pos.VerticalAlign = VerticalAlignMiddle
	}
	return pos
}
