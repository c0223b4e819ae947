package rowan

// Props is a nested property bag used as the target of the attribute and
// animation protocols. Leaf values are float64, []float64, string, or bool;
// nesting is expressed with further Props values. Integer literals are
// coerced to float64 on the way in so callers can write Props{"rotation": 1}.
type Props map[string]any

// GetProp returns the value stored under key. Implements PropTarget so a
// nested bag can be animated directly.
func (p Props) GetProp(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// SetProp stores v under key. Always succeeds on a bag.
func (p Props) SetProp(key string, v any) bool {
	p[key] = v
	return true
}

// normalizeValue coerces integer leaves to float64 and []float64-compatible
// slices to []float64 so the animation core only ever sees two numeric kinds.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case float32:
		return float64(t)
	case []int:
		out := make([]float64, len(t))
		for i, n := range t {
			out[i] = float64(n)
		}
		return out
	case [2]float64:
		return []float64{t[0], t[1]}
	default:
		return v
	}
}

// cloneValue deep-copies a property value. Slices and nested bags are
// duplicated; scalar leaves are returned as-is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []float64:
		out := make([]float64, len(t))
		copy(out, t)
		return out
	case Props:
		out := make(Props, len(t))
		for k, vv := range t {
			out[k] = cloneValue(vv)
		}
		return out
	default:
		return v
	}
}

// mergeProps deep-merges src into dst: nested bags merge recursively, slices
// and scalars are cloned over. dst must be non-nil.
func mergeProps(dst, src Props) {
	for k, v := range src {
		sv, isNested := v.(Props)
		dv, hadNested := dst[k].(Props)
		if isNested && hadNested {
			mergeProps(dv, sv)
			continue
		}
		dst[k] = cloneValue(normalizeValue(v))
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// DragConstraint restricts which axes Drift may move an element along.
type DragConstraint uint8

const (
	DragNone       DragConstraint = iota // element is not draggable
	DragBoth                             // drift moves freely on both axes
	DragHorizontal                       // drift only changes the X translation
	DragVertical                         // drift only changes the Y translation
)

// dragConstraintFrom coerces the attribute-protocol forms of draggable:
// booleans and the axis strings "horizontal" / "vertical". Any other truthy
// value permits both axes.
func dragConstraintFrom(v any) DragConstraint {
	switch t := v.(type) {
	case DragConstraint:
		return t
	case bool:
		if t {
			return DragBoth
		}
		return DragNone
	case string:
		switch t {
		case "horizontal":
			return DragHorizontal
		case "vertical":
			return DragVertical
		case "":
			return DragNone
		default:
			return DragBoth
		}
	case nil:
		return DragNone
	default:
		return DragBoth
	}
}

// TextAlign controls horizontal text alignment for an attached label.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// VerticalAlign controls vertical text alignment for an attached label.
type VerticalAlign uint8

const (
	VerticalAlignTop    VerticalAlign = iota // align to the top edge (default)
	VerticalAlignMiddle                      // center vertically
	VerticalAlignBottom                      // align to the bottom edge
)
