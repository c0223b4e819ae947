package rowan

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

// stepStage drives the stage clock for the given duration in equal halves,
// which keeps float32 accumulation drift out of the assertions.
func stepStage(st *Stage, total time.Duration) {
	half := float32(total.Seconds()) / 2
	st.Update(half)
	st.Update(half)
}

func TestAnimateToEqualTargetCompletesSynchronously(t *testing.T) {
	e := NewElement("box", Props{"position": []float64{3, 4}})

	called := false
	e.AnimateTo(Props{"position": []float64{3, 4}}, &AnimateOptions{
		Done: func() { called = true },
	})

	if !called {
		t.Error("expected Done to fire synchronously when every leaf already matches")
	}
	if len(e.Animators()) != 0 {
		t.Errorf("animators = %d, want 0", len(e.Animators()))
	}
}

func TestAnimateToOneAnimatorPerChangedLevel(t *testing.T) {
	e := NewElement("box", Props{
		"position": []float64{0, 0},
		"style":    Props{"opacity": 1.0, "lineWidth": 2.0},
	})

	e.AnimateTo(Props{
		"position": []float64{10, 10},
		"rotation": 1.0,
		"style":    Props{"opacity": 0.5},
	}, nil)

	// position+rotation share the element level; style is its own level.
	if len(e.Animators()) != 2 {
		t.Errorf("animators = %d, want 2", len(e.Animators()))
	}
}

func TestAnimateToUnchangedLevelProducesNoLingeringAnimator(t *testing.T) {
	e := NewElement("box", Props{
		"position": []float64{0, 0},
		"style":    Props{"opacity": 1.0},
	})

	e.AnimateTo(Props{
		"position": []float64{10, 10},
		"style":    Props{"opacity": 1.0}, // already equal
	}, nil)

	if len(e.Animators()) != 1 {
		t.Errorf("animators = %d, want 1 (style level completed instantly)", len(e.Animators()))
	}
}

func TestAnimateToConcreteScenario(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	st.Add(e)

	e.AnimateTo(Props{"position": []float64{10, 10}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
	})

	if len(e.Animators()) != 1 {
		t.Fatalf("animators = %d, want 1", len(e.Animators()))
	}
	if st.Animation().Len() != 1 {
		t.Fatalf("scheduler Len = %d, want 1", st.Animation().Len())
	}

	stepStage(st, 100*time.Millisecond)

	pos := e.Position()
	if math.Abs(pos[0]-10) > 0.01 || math.Abs(pos[1]-10) > 0.01 {
		t.Errorf("position = %v, want [10 10]", pos)
	}
	if len(e.Animators()) != 0 {
		t.Errorf("animators = %d, want 0 after completion", len(e.Animators()))
	}
	if st.Animation().Len() != 0 {
		t.Errorf("scheduler Len = %d, want 0 after completion", st.Animation().Len())
	}
}

func TestAnimateToDoneFiresOnceAfterAllLevels(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{
		"position": []float64{0, 0},
		"style":    Props{"opacity": 1.0},
	})
	st.Add(e)

	calls := 0
	e.AnimateTo(Props{
		"position": []float64{10, 10},
		"style":    Props{"opacity": 0.0},
	}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
		Done:     func() { calls++ },
	})

	st.Update(0.05)
	if calls != 0 {
		t.Fatal("done fired before completion")
	}
	st.Update(0.05)
	if calls != 1 {
		t.Errorf("done calls = %d, want exactly 1", calls)
	}
}

func TestAnimateFromJumpsToStart(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{50, 60}})
	st.Add(e)

	e.AnimateFrom(Props{"position": []float64{0, 0}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
	})

	// Before any tick the live value is the caller-supplied starting point.
	pos := e.Position()
	if pos[0] != 0 || pos[1] != 0 {
		t.Fatalf("position = %v, want jump-to-start [0 0]", pos)
	}

	stepStage(st, 100*time.Millisecond)

	// Completion restores the pre-call live values.
	if math.Abs(pos[0]-50) > 0.01 || math.Abs(pos[1]-60) > 0.01 {
		t.Errorf("position = %v, want pre-call [50 60]", pos)
	}
}

func TestAnimateFromSkipsStaticAdditions(t *testing.T) {
	e := NewElement("box", nil)

	e.AnimateFrom(Props{"glow": 3.0}, nil)

	if _, ok := e.GetProp("glow"); ok {
		t.Error("reverse pass must not add missing properties")
	}
}

func TestAnimateToAddsMissingPropertyStatically(t *testing.T) {
	e := NewElement("box", nil)

	e.AnimateTo(Props{"glow": 3.0}, nil)

	v, ok := e.GetProp("glow")
	if !ok || v.(float64) != 3 {
		t.Errorf("glow = %v, want static 3", v)
	}
	if len(e.Animators()) != 0 {
		t.Error("static addition must not create an animator")
	}
}

func TestAnimateToSupersedesInFlightAnimation(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	e.SetProp("glow", 0.0)
	st.Add(e)

	doneFired := false
	e.AnimateTo(Props{"glow": 1.0}, &AnimateOptions{
		Duration: time.Second,
		Done:     func() { doneFired = true },
	})
	st.Update(0.25)

	// A second call on an unrelated key still stops everything first.
	e.AnimateTo(Props{"position": []float64{5, 5}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
	})

	if doneFired {
		t.Error("superseded animation must not fire its completion callback")
	}
	if len(e.Animators()) != 1 {
		t.Fatalf("animators = %d, want only the new one", len(e.Animators()))
	}

	glowBefore, _ := e.GetProp("glow")
	stepStage(st, 100*time.Millisecond)
	glowAfter, _ := e.GetProp("glow")
	if glowBefore != glowAfter {
		t.Error("stopped animation kept mutating its property")
	}
}

func TestStopAnimationClearsListSynchronously(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	st.Add(e)

	e.AnimateTo(Props{"position": []float64{10, 10}}, nil)
	e.StopAnimation(false)

	if len(e.Animators()) != 0 {
		t.Error("animator list must be empty immediately upon return")
	}
	if st.Animation().Len() != 0 {
		t.Error("scheduler still references a stopped animator")
	}
}

func TestStopAnimationForwardToLast(t *testing.T) {
	e := NewElement("box", Props{"position": []float64{0, 0}})

	e.AnimateTo(Props{"position": []float64{10, 20}}, nil)
	e.StopAnimation(true)

	pos := e.Position()
	if pos[0] != 10 || pos[1] != 20 {
		t.Errorf("position = %v, want end state [10 20]", pos)
	}
}

func TestAnimateToDelay(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	st.Add(e)

	e.AnimateTo(Props{"position": []float64{10, 0}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
		Delay:    100 * time.Millisecond,
	})

	st.Update(0.05)
	st.Update(0.05)
	if pos := e.Position(); pos[0] != 0 {
		t.Errorf("position = %v, want unchanged during delay", pos)
	}
	stepStage(st, 100*time.Millisecond)
	if pos := e.Position(); math.Abs(pos[0]-10) > 0.01 {
		t.Errorf("position = %v, want [10 0] after delay plus duration", pos)
	}
}

func TestAnimateToMarksDirtyEachTick(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	st.Add(e)
	st.Flush()
	e.ClearDirty()

	e.AnimateTo(Props{"position": []float64{10, 10}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
	})
	st.Flush()
	e.ClearDirty()

	st.Update(0.05)
	if !e.IsDirty() {
		t.Error("element not marked dirty by animation tick")
	}
	if !st.NeedsRefresh() {
		t.Error("stage refresh not requested by animation tick")
	}
}

func TestAnimateToDeferredSchedulerRegistration(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})

	// Element is not attached yet: the animator waits for attachment.
	e.AnimateTo(Props{"position": []float64{10, 10}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
	})
	if st.Animation().Len() != 0 {
		t.Fatal("detached element registered with the scheduler")
	}

	st.Add(e)
	if st.Animation().Len() != 1 {
		t.Fatal("attachment did not register held animators")
	}

	stepStage(st, 100*time.Millisecond)
	if pos := e.Position(); math.Abs(pos[0]-10) > 0.01 {
		t.Errorf("position = %v, want [10 10]", pos)
	}
}

func TestAnimateToCustomEasing(t *testing.T) {
	st := NewStage()
	e := NewElement("box", Props{"position": []float64{0, 0}})
	st.Add(e)

	e.AnimateTo(Props{"position": []float64{10, 0}}, &AnimateOptions{
		Duration: 100 * time.Millisecond,
		Easing:   ease.InQuad,
	})

	st.Update(0.05)
	// InQuad at t=0.5 is 0.25 of the way there.
	if pos := e.Position(); math.Abs(pos[0]-2.5) > 0.1 {
		t.Errorf("position[0] = %f, want ~2.5 with InQuad at halfway", pos[0])
	}
}

func TestAnimateToNonNumericLeafSnaps(t *testing.T) {
	e := NewElement("box", Props{"style": Props{"fill": "red", "opacity": 1.0}})

	e.AnimateTo(Props{"style": Props{"fill": "blue", "opacity": 0.5}}, nil)

	if fill := e.Style["fill"]; fill != "blue" {
		t.Errorf("fill = %v, want immediate blue", fill)
	}
	if len(e.Animators()) != 1 {
		t.Errorf("animators = %d, want 1 (opacity only)", len(e.Animators()))
	}
}
