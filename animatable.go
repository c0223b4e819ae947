package rowan

import (
	"sort"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultAnimationDuration is used when AnimateOptions leaves Duration zero.
const DefaultAnimationDuration = 500 * time.Millisecond

// AnimateOptions configures a transition started by AnimateTo or AnimateFrom.
// A nil *AnimateOptions means all defaults.
type AnimateOptions struct {
	// Duration of the transition. Zero means DefaultAnimationDuration.
	Duration time.Duration
	// Delay before interpolation begins. Default zero.
	Delay time.Duration
	// Easing curve. Nil means ease.Linear.
	Easing ease.TweenFunc
	// Done is invoked exactly once when every animator produced by the call
	// has completed. If the target state already equals the current state it
	// fires synchronously within the call.
	Done func()
	// ForceAnimate suppresses the animator's skip-when-already-equal
	// short-circuit, so even a no-change transition runs its full duration.
	ForceAnimate bool
}

func resolveAnimateOptions(opts *AnimateOptions) AnimateOptions {
	var o AnimateOptions
	if opts != nil {
		o = *opts
	}
	if o.Duration == 0 {
		o.Duration = DefaultAnimationDuration
	}
	if o.Easing == nil {
		o.Easing = ease.Linear
	}
	return o
}

// AnimateTo transitions the element's live state to the values described by
// target, a partial (possibly nested one level per bundle) property bag.
// One animator is created per nesting level that contains at least one
// interpolable leaf, so a style bundle and the element's position can ease
// independently while each bundle shares a single curve and duration.
//
// Any previously running animators on the element are stopped and cleared
// first: in-flight transitions are superseded, not blended, even when the
// key sets do not overlap.
func (e *Element) AnimateTo(target Props, opts *AnimateOptions) {
	e.animate(target, opts, false)
}

// AnimateFrom runs the transition in reverse: the live state jumps to the
// values in target immediately, then animates back to what was live before
// the call.
func (e *Element) AnimateFrom(target Props, opts *AnimateOptions) {
	e.animate(target, opts, true)
}

func (e *Element) animate(target Props, opts *AnimateOptions, reverse bool) {
	o := resolveAnimateOptions(opts)

	// Supersede any in-flight transition before building the next one.
	e.StopAnimation(false)

	var created []*Animator
	e.animateToShallow("", e, target, o, reverse, &created)

	if len(created) == 0 {
		// Every leaf already matches the target: complete synchronously.
		if o.Done != nil {
			o.Done()
		}
		return
	}

	// All animators exist before any is started, so an animator that
	// completes instantly inside Start cannot fire the callback before its
	// siblings are counted.
	if o.Done != nil {
		remaining := len(created)
		for _, a := range created {
			a.Done(func() {
				remaining--
				if remaining == 0 {
					o.Done()
				}
			})
		}
	}
	for _, a := range created {
		a.Start(o.Easing, o.ForceAnimate)
	}
}

// animateToShallow walks one nesting level of target against source,
// partitioning keys into interpolable leaves (collected into one animator for
// this level), nested bundles (recursed one level), and static additions or
// non-numeric leaves (assigned immediately). With reverse set, the live value
// of each animatable key is snapshotted as the animation's end state and then
// overwritten with the caller-supplied value.
func (e *Element) animateToShallow(path string, source PropTarget, target Props, o AnimateOptions, reverse bool, created *[]*Animator) {
	// Go map order is randomized; walk sorted so animator creation order is
	// stable for a given target shape.
	keys := make([]string, 0, len(target))
	for k := range target {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var animatable []string
	for _, key := range keys {
		tv := normalizeValue(target[key])
		cur, exists := source.GetProp(key)

		if !exists || cur == nil {
			// Absent from source: static property addition, never a
			// transition. Skipped entirely on a reverse pass.
			if !reverse {
				if !source.SetProp(key, cloneValue(tv)) {
					warnf("animate: cannot add property %q to target", key)
				}
			}
			continue
		}

		if nested, ok := tv.(Props); ok {
			sub, ok := cur.(PropTarget)
			if !ok {
				warnf("animate: property %q is not a nested bundle", joinPath(path, key))
				continue
			}
			e.animateToShallow(joinPath(path, key), sub, nested, o, reverse, created)
			continue
		}

		switch tv.(type) {
		case float64, []float64:
			animatable = append(animatable, key)
		default:
			// Interpolation only covers numeric leaves; snap the rest.
			source.SetProp(key, cloneValue(tv))
		}
	}

	if len(animatable) == 0 {
		return
	}

	final := make(Props, len(animatable))
	for _, key := range animatable {
		final[key] = cloneValue(normalizeValue(target[key]))
	}

	if reverse {
		reversed := make(Props, len(animatable))
		for _, key := range animatable {
			cur, _ := source.GetProp(key)
			// The animation ends at whatever was live before the call and
			// starts from the caller-supplied value.
			reversed[key] = cloneValue(cur)
			source.SetProp(key, final[key])
		}
		final = reversed
	}

	a := NewAnimator(source, false).
		WhenWithKeys(o.Duration, final, animatable).
		Delay(o.Delay)
	e.addAnimator(a, path)
	*created = append(*created, a)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// --- Animator registry ---

// addAnimator wires the element-side hooks onto a and appends it to the
// element's animator list: an on-tick hook marking the element dirty each
// frame and a completion hook removing the animator from the list. If the
// element is attached the animator is registered with the stage scheduler
// immediately; otherwise registration happens at attach time.
func (e *Element) addAnimator(a *Animator, key string) {
	a.During(func() {
		e.updateDuringAnimation(key)
	})
	a.Done(func() {
		e.removeAnimator(a)
	})
	e.animators = append(e.animators, a)
	if e.stage != nil {
		e.stage.Animation().AddAnimator(a)
	}
}

// removeAnimator drops a from the element's animator list.
func (e *Element) removeAnimator(a *Animator) {
	for i, existing := range e.animators {
		if existing == a {
			copy(e.animators[i:], e.animators[i+1:])
			e.animators[len(e.animators)-1] = nil
			e.animators = e.animators[:len(e.animators)-1]
			return
		}
	}
}

// StopAnimation stops every active animator and clears the list synchronously:
// the list is empty when this returns, without waiting for any done hook, and
// no completion callback fires for a stopped animation. With forwardToLast
// each animator snaps to its end state before removal.
func (e *Element) StopAnimation(forwardToLast bool) *Element {
	for _, a := range e.animators {
		a.Stop(forwardToLast)
		if e.stage != nil {
			e.stage.Animation().RemoveAnimator(a)
		}
	}
	e.animators = e.animators[:0]
	return e
}

// Animators returns the element's active animator list. The returned slice
// MUST NOT be mutated by the caller.
func (e *Element) Animators() []*Animator {
	return e.animators
}
