package timeseries

// Listener receives synchronous change notifications from a Series.
// Nil callbacks are skipped. A callback must not subscribe or
// unsubscribe listeners on the notifying series.
type Listener struct {
	// OnValueChange fires when values are added, removed, or set.
	OnValueChange func()
	// OnTimestampChange fires when timestamps are set, cleared, or
	// removed alongside a value.
	OnTimestampChange func()
}

// Subscribe registers a listener for change notifications. Each
// mutation fires the applicable callback once per listener before the
// mutating call returns.
func (s *Series) Subscribe(l *Listener) {
	s.listeners = append(s.listeners, l)
}

// Unsubscribe removes a previously subscribed listener, matching by
// pointer identity. It reports whether the listener was found.
func (s *Series) Unsubscribe(l *Listener) bool {
	for i, reg := range s.listeners {
		if reg == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Series) invalidateValues() {
	s.hasMissing.Invalidate()
}

func (s *Series) invalidateTimestamps() {
	s.equallySpaced.Invalidate()
}

func (s *Series) notifyValueChange() {
	for _, l := range s.listeners {
		if l.OnValueChange != nil {
			l.OnValueChange()
		}
	}
}

func (s *Series) notifyTimestampChange() {
	for _, l := range s.listeners {
		if l.OnTimestampChange != nil {
			l.OnTimestampChange()
		}
	}
}
