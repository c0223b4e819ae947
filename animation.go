package rowan

// Animation is the frame-driven animator scheduler owned by a Stage. Elements
// register their animators here (directly or deferred through attachment) and
// the stage advances every live animator once per tick.
//
// All methods are single-threaded: they must be called from the same
// goroutine that drives Stage.Update.
type Animation struct {
	animators []*Animator
	scratch   []*Animator // reused snapshot buffer for Update
}

// AddAnimator registers an animator for per-tick advancement. Adding the same
// animator twice is a no-op. Animators added from inside a done hook are
// advanced starting with the next tick.
func (a *Animation) AddAnimator(an *Animator) {
	if an == nil {
		return
	}
	for _, existing := range a.animators {
		if existing == an {
			return
		}
	}
	a.animators = append(a.animators, an)
}

// RemoveAnimator unregisters an animator. Unknown animators are ignored.
func (a *Animation) RemoveAnimator(an *Animator) {
	for i, existing := range a.animators {
		if existing == an {
			copy(a.animators[i:], a.animators[i+1:])
			a.animators[len(a.animators)-1] = nil
			a.animators = a.animators[:len(a.animators)-1]
			return
		}
	}
}

// Update advances all registered animators by dt seconds and drops the ones
// that report finished. It iterates a snapshot so done hooks may freely stop
// running animations or schedule new ones; additions take effect next tick.
func (a *Animation) Update(dt float32) {
	if len(a.animators) == 0 {
		return
	}
	a.scratch = append(a.scratch[:0], a.animators...)
	for _, an := range a.scratch {
		if an.Update(dt) {
			a.RemoveAnimator(an)
		}
	}
}

// Len returns the number of registered animators.
func (a *Animation) Len() int {
	return len(a.animators)
}

// Has reports whether an is currently registered.
func (a *Animation) Has(an *Animator) bool {
	for _, existing := range a.animators {
		if existing == an {
			return true
		}
	}
	return false
}
