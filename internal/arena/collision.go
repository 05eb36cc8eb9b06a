package arena

import "fmt"

// Handler reacts to a pair of actors. a has the first kind the handler was
// registered with, b the second.
type Handler func(a, b Actor, w World)

// Registry maps pairs of kinds to collision handlers, plus a parallel table of
// free handlers that fire when a pair of kinds had no overlap at all during a
// dispatch pass.
type Registry struct {
	on   [MaxKinds][MaxKinds]Handler
	free [MaxKinds][MaxKinds]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register installs h for overlapping (ka, kb) pairs. For distinct kinds the
// mirrored entry is installed too, so h always receives its arguments in
// (ka, kb) order. Registering a pair again replaces the earlier handler.
// Panics if a kind is out of range.
func (r *Registry) Register(ka, kb Kind, h Handler) {
	store(&r.on, ka, kb, h)
}

// RegisterFree installs h for pairs of kinds that did not overlap anywhere
// during a pass. Mirroring works as in Register.
func (r *Registry) RegisterFree(ka, kb Kind, h Handler) {
	store(&r.free, ka, kb, h)
}

// Handler returns the collision handler for (ka, kb), or nil.
func (r *Registry) Handler(ka, kb Kind) Handler {
	if ka >= MaxKinds || kb >= MaxKinds {
		return nil
	}
	return r.on[ka][kb]
}

// FreeHandler returns the free handler for (ka, kb), or nil.
func (r *Registry) FreeHandler(ka, kb Kind) Handler {
	if ka >= MaxKinds || kb >= MaxKinds {
		return nil
	}
	return r.free[ka][kb]
}

func store(table *[MaxKinds][MaxKinds]Handler, ka, kb Kind, h Handler) {
	if ka >= MaxKinds || kb >= MaxKinds {
		panic(fmt.Sprintf("arena: kind pair (%d, %d) outside table of %d", ka, kb, MaxKinds))
	}
	table[ka][kb] = h
	if ka == kb {
		return
	}
	if h == nil {
		table[kb][ka] = nil
		return
	}
	table[kb][ka] = func(a, b Actor, w World) { h(b, a, w) }
}

type freeExample struct {
	a, b Actor
}

func unordered(a, b Kind) (Kind, Kind) {
	if a > b {
		return b, a
	}
	return a, b
}

// Dispatch tests every pair (i < j) of actors once. Overlapping pairs invoke
// their handler immediately, in list order; bodies are read per pair so a
// push-out applied by one handler is seen by the next test. Afterwards each
// free handler fires at most once, with the first non-overlapping example of
// its pair, and only if no pair of those kinds overlapped during the pass.
func (r *Registry) Dispatch(actors []Actor, w World) {
	var (
		collided [MaxKinds][MaxKinds]bool
		sampled  [MaxKinds][MaxKinds]bool
		examples []freeExample
	)

	for i, a := range actors {
		ka := a.Kind()
		if ka >= MaxKinds {
			continue
		}
		for _, b := range actors[i+1:] {
			kb := b.Kind()
			if kb >= MaxKinds {
				continue
			}
			lo, hi := unordered(ka, kb)

			if a.Body().Overlaps(b.Body()) {
				collided[lo][hi] = true
				if h := r.on[ka][kb]; h != nil {
					h(a, b, w)
				}
				continue
			}

			if r.free[ka][kb] != nil && !sampled[lo][hi] {
				sampled[lo][hi] = true
				examples = append(examples, freeExample{a: a, b: b})
			}
		}
	}

	for _, ex := range examples {
		ka, kb := ex.a.Kind(), ex.b.Kind()
		lo, hi := unordered(ka, kb)
		if collided[lo][hi] {
			continue
		}
		r.free[ka][kb](ex.a, ex.b, w)
	}
}
