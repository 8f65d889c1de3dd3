package canopy

// tickStats holds per-tick input counters. They accumulate on every tick and
// are reset after each debug log.
type tickStats struct {
	events       int // events drained
	unpositioned int // button events dropped for lack of a cursor
	hits         int // objects hit by button events
}

// debugLog reports the tick's input counters at debug level and resets them.
func (s *Scene) debugLog() {
	st := s.stats
	s.stats = tickStats{}
	if !s.debug {
		return
	}
	Logger().Debug("canopy: tick",
		"events", st.events,
		"unpositioned", st.unpositioned,
		"hits", st.hits,
		"queued", s.queue.Len(),
		"dropped_total", s.queue.Dropped(),
		"objects", s.store.Len(),
		"indexed", s.index.Len(),
	)
}
