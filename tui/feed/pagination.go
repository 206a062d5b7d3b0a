package feed

// Sentinel signals "load more" when the tail of the list first becomes
// visible. It fires at most once per attached tail so a sentinel that
// stays on screen cannot queue duplicate fetches; the in-flight gate
// itself lives in the feed model, not here.
type Sentinel struct {
	id    string
	fired bool
}

// Attach arms the sentinel on the current tail id. Attaching the same id
// again keeps the fired state, so an unchanged tail never re-fires.
func (s *Sentinel) Attach(id string) {
	if s.id == id {
		return
	}
	s.id = id
	s.fired = false
}

// Observe reports whether the armed sentinel just became visible. Any
// nonzero fraction counts.
func (s *Sentinel) Observe(id string, fraction float64) bool {
	if id == "" || id != s.id || s.fired || fraction <= 0 {
		return false
	}
	s.fired = true
	return true
}
