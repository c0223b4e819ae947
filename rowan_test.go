package rowan

import "testing"

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"top edge", 50, 20, true},
		{"bottom edge", 50, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expect {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.expect)
		}
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	r := Rect{10, 10, 50, 50}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{30, 30, 50, 50}, true},
		{"contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 100, 100}, true},
		{"sharing edge", Rect{60, 10, 20, 50}, true},
		{"separate", Rect{100, 100, 10, 10}, false},
		{"above", Rect{10, -50, 50, 50}, false},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.other); got != tt.expect {
			t.Errorf("%s: Intersects(%+v) = %v, want %v", tt.name, tt.other, got, tt.expect)
		}
	}
}

// --- Props helpers ---

func TestCloneValueIsDeep(t *testing.T) {
	original := Props{
		"position": []float64{1, 2},
		"style":    Props{"opacity": 1.0},
	}
	clone := cloneValue(original).(Props)

	clone["position"].([]float64)[0] = 99
	clone["style"].(Props)["opacity"] = 0.0

	if original["position"].([]float64)[0] != 1 {
		t.Error("clone shares the slice backing array")
	}
	if original["style"].(Props)["opacity"] != 1.0 {
		t.Error("clone shares the nested bag")
	}
}

func TestMergePropsRecursesIntoNestedBags(t *testing.T) {
	dst := Props{"style": Props{"opacity": 1.0, "fill": "red"}}
	mergeProps(dst, Props{"style": Props{"opacity": 0.5}})

	style := dst["style"].(Props)
	if style["opacity"] != 0.5 || style["fill"] != "red" {
		t.Errorf("style = %v, want merged {opacity: 0.5, fill: red}", style)
	}
}

func TestNormalizeValueCoercions(t *testing.T) {
	if v := normalizeValue(3); v != 3.0 {
		t.Errorf("int = %v (%T), want float64 3", v, v)
	}
	if v := normalizeValue([]int{1, 2}).([]float64); v[0] != 1 || v[1] != 2 {
		t.Errorf("[]int = %v, want []float64{1 2}", v)
	}
	if v := normalizeValue([2]float64{4, 5}).([]float64); v[0] != 4 || v[1] != 5 {
		t.Errorf("[2]float64 = %v, want []float64{4 5}", v)
	}
}

func TestDragConstraintCoercion(t *testing.T) {
	tests := []struct {
		in     any
		expect DragConstraint
	}{
		{true, DragBoth},
		{false, DragNone},
		{"horizontal", DragHorizontal},
		{"vertical", DragVertical},
		{"", DragNone},
		{"anything", DragBoth},
		{nil, DragNone},
		{DragVertical, DragVertical},
	}
	for _, tt := range tests {
		if got := dragConstraintFrom(tt.in); got != tt.expect {
			t.Errorf("dragConstraintFrom(%v) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}
