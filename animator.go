package rowan

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PropTarget is the surface an Animator mutates: dynamic read/write access to
// named properties. Props implements it directly; *Element implements it for
// its top-level animatable keys.
type PropTarget interface {
	GetProp(key string) (any, bool)
	// SetProp writes a property value, returning false if the key is not
	// settable on this target.
	SetProp(key string, v any) bool
}

// track interpolates one property key. A scalar track writes the value back
// through SetProp each step; a slice track mutates the live []float64 in
// place, one tween per component, preserving the slice reference for any
// observer holding it.
type track struct {
	key    string
	to     []float64 // target components (len 1 for scalars)
	from   []float64 // captured at Start
	tweens []*gween.Tween
	slice  []float64 // non-nil for slice tracks
}

// Animator tweens a set of keys on a single target object over time. It is
// the interpolation engine behind Element.AnimateTo: the diff engine creates
// one Animator per nesting level of the animation target.
//
// An Animator advances only when its Update method is driven, normally by the
// Animation scheduler of the Stage the owning element is attached to.
type Animator struct {
	target PropTarget
	loop   bool

	duration time.Duration
	delay    float32 // remaining delay, seconds
	easing   ease.TweenFunc
	force    bool

	tracks  []track
	started bool
	stopped bool
	done    bool

	duringFns []func()
	doneFns   []func()
}

// NewAnimator creates an animator for the given target. When loop is true the
// animator restarts from its initial values each time it completes and never
// reports done.
func NewAnimator(target PropTarget, loop bool) *Animator {
	return &Animator{target: target, loop: loop}
}

// Target returns the object this animator mutates.
func (a *Animator) Target() PropTarget { return a.target }

// WhenWithKeys declares the end state: after duration, each listed key of the
// target equals the corresponding value in to. Keys missing from the target
// at Start time are skipped with a warning. Returns a for chaining.
func (a *Animator) WhenWithKeys(duration time.Duration, to Props, keys []string) *Animator {
	a.duration = duration
	for _, key := range keys {
		v, ok := to[key]
		if !ok {
			continue
		}
		switch tv := normalizeValue(v).(type) {
		case float64:
			a.tracks = append(a.tracks, track{key: key, to: []float64{tv}})
		case []float64:
			end := make([]float64, len(tv))
			copy(end, tv)
			a.tracks = append(a.tracks, track{key: key, to: end})
		default:
			warnf("cannot animate %q: unsupported value type %T", key, v)
		}
	}
	return a
}

// Delay postpones the start of interpolation by d after Start is called.
func (a *Animator) Delay(d time.Duration) *Animator {
	a.delay = float32(d.Seconds())
	return a
}

// During registers a hook invoked once per Update step while the animator is
// active.
func (a *Animator) During(fn func()) *Animator {
	if fn != nil {
		a.duringFns = append(a.duringFns, fn)
	}
	return a
}

// Done registers a completion hook. Done hooks fire exactly once when the
// animator finishes naturally; a stopped animator never fires them.
func (a *Animator) Done(fn func()) *Animator {
	if fn != nil {
		a.doneFns = append(a.doneFns, fn)
	}
	return a
}

// Start captures the current value of every declared key as the
// interpolation origin and builds the underlying tweens.
//
// When force is false and every key already equals its end value, the
// animator completes immediately: done hooks fire synchronously and the
// animator reports done on its first Update. A zero or negative duration
// likewise snaps to the end state immediately.
func (a *Animator) Start(easing ease.TweenFunc, force bool) *Animator {
	if a.started || a.stopped {
		return a
	}
	a.started = true
	if easing == nil {
		easing = ease.Linear
	}
	a.easing = easing
	a.force = force

	seconds := float32(a.duration.Seconds())
	kept := a.tracks[:0]
	changed := false
	for _, tr := range a.tracks {
		cur, ok := a.target.GetProp(tr.key)
		if !ok || cur == nil {
			warnf("cannot animate %q: no such property on target", tr.key)
			continue
		}
		switch cv := cur.(type) {
		case float64:
			if len(tr.to) != 1 {
				warnf("cannot animate %q: scalar/array mismatch", tr.key)
				continue
			}
			tr.from = []float64{cv}
		case []float64:
			if len(tr.to) != len(cv) {
				warnf("cannot animate %q: array length mismatch", tr.key)
				continue
			}
			tr.from = make([]float64, len(cv))
			copy(tr.from, cv)
			tr.slice = cv
		default:
			warnf("cannot animate %q: unsupported current type %T", tr.key, cur)
			continue
		}
		for i := range tr.to {
			if tr.from[i] != tr.to[i] {
				changed = true
			}
		}
		kept = append(kept, tr)
	}
	a.tracks = kept

	if len(a.tracks) == 0 || (!force && !changed) || seconds <= 0 {
		a.applyEndState()
		a.finish()
		return a
	}

	for i := range a.tracks {
		tr := &a.tracks[i]
		tr.tweens = make([]*gween.Tween, len(tr.to))
		for j := range tr.to {
			tr.tweens[j] = gween.New(float32(tr.from[j]), float32(tr.to[j]), seconds, easing)
		}
	}
	return a
}

// Stop halts the animator. With forwardToLast the end state is applied first.
// Done hooks are suppressed; the scheduler drops the animator on its next
// pass.
func (a *Animator) Stop(forwardToLast bool) {
	if a.stopped || a.done {
		return
	}
	a.stopped = true
	if forwardToLast {
		a.applyEndState()
	}
}

// Update advances the animator by dt seconds and reports whether it is
// finished (done or stopped) and should be dropped by the scheduler.
func (a *Animator) Update(dt float32) bool {
	if a.done || a.stopped {
		return true
	}
	if !a.started {
		return false
	}
	if a.delay > 0 {
		a.delay -= dt
		if a.delay > 0 {
			return false
		}
		// Spend the remainder of this step on interpolation.
		dt = -a.delay
		a.delay = 0
		if dt <= 0 {
			return false
		}
	}

	allDone := true
	for i := range a.tracks {
		tr := &a.tracks[i]
		for j, tw := range tr.tweens {
			v, finished := tw.Update(dt)
			if tr.slice != nil {
				tr.slice[j] = float64(v)
			} else {
				a.target.SetProp(tr.key, float64(v))
			}
			if !finished {
				allDone = false
			}
		}
	}

	for _, fn := range a.duringFns {
		fn()
	}

	if !allDone {
		return false
	}
	if a.loop {
		for i := range a.tracks {
			for _, tw := range a.tracks[i].tweens {
				tw.Reset()
			}
		}
		return false
	}
	a.finish()
	return true
}

// applyEndState snaps every track to its final value.
func (a *Animator) applyEndState() {
	for i := range a.tracks {
		tr := &a.tracks[i]
		if tr.slice != nil {
			copy(tr.slice, tr.to)
		} else if len(tr.to) == 1 {
			a.target.SetProp(tr.key, tr.to[0])
		}
	}
}

func (a *Animator) finish() {
	if a.done {
		return
	}
	a.done = true
	for _, fn := range a.doneFns {
		fn()
	}
}

// IsDone reports whether the animator completed naturally.
func (a *Animator) IsDone() bool { return a.done }

// IsStopped reports whether Stop was called before completion.
func (a *Animator) IsStopped() bool { return a.stopped }
