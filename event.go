package rowan

// Handler is a callback registered for a named event. The args are whatever
// the trigger site supplied.
type Handler func(args ...any)

// EventTarget is the pub-sub capability surface an Element exposes: external
// drivers (input routing, tree containers) deliver events through it.
type EventTarget interface {
	On(event string, h Handler) int
	Once(event string, h Handler) int
	Off(event string, token int)
	OffAll(event string)
	Trigger(event string, args ...any)
}

// handlerEntry pairs a registered handler with its removal token.
// Func values are not comparable, so Off works by token.
type handlerEntry struct {
	token int
	fn    Handler
	once  bool
}

// Eventful is the concrete event capability embedded in Element. The zero
// value is ready to use. Dispatch is synchronous and single-threaded, in
// registration order.
type Eventful struct {
	handlers  map[string][]handlerEntry
	nextToken int
}

// On registers h for the named event and returns a token for Off.
func (e *Eventful) On(event string, h Handler) int {
	return e.register(event, h, false)
}

// Once registers h to fire at most once; it is removed before it runs.
func (e *Eventful) Once(event string, h Handler) int {
	return e.register(event, h, true)
}

func (e *Eventful) register(event string, h Handler, once bool) int {
	if h == nil {
		return 0
	}
	if e.handlers == nil {
		e.handlers = make(map[string][]handlerEntry)
	}
	e.nextToken++
	e.handlers[event] = append(e.handlers[event], handlerEntry{
		token: e.nextToken,
		fn:    h,
		once:  once,
	})
	return e.nextToken
}

// Off removes the handler registered under token for the named event.
// A stale or unknown token is a no-op.
func (e *Eventful) Off(event string, token int) {
	list := e.handlers[event]
	for i, entry := range list {
		if entry.token == token {
			e.handlers[event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// OffAll removes every handler for the named event.
func (e *Eventful) OffAll(event string) {
	delete(e.handlers, event)
}

// Trigger invokes all handlers registered for the named event, in
// registration order. Once-handlers are removed before invocation, so a
// handler re-triggering the same event cannot run itself twice.
func (e *Eventful) Trigger(event string, args ...any) {
	list := e.handlers[event]
	if len(list) == 0 {
		return
	}
	// Snapshot so handlers may register/remove without corrupting this pass.
	snapshot := make([]handlerEntry, len(list))
	copy(snapshot, list)

	hasOnce := false
	for _, entry := range snapshot {
		if entry.once {
			hasOnce = true
			break
		}
	}
	if hasOnce {
		kept := list[:0]
		for _, entry := range list {
			if !entry.once {
				kept = append(kept, entry)
			}
		}
		e.handlers[event] = kept
	}

	for _, entry := range snapshot {
		entry.fn(args...)
	}
}

// HasListeners reports whether any handler is registered for the event.
func (e *Eventful) HasListeners(event string) bool {
	return len(e.handlers[event]) > 0
}
