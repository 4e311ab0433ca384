package instance

import "github.com/tsmlgo/go-tsdata/timeseries"

// Listener receives synchronous change notifications from an Instance.
// Nil callbacks are skipped. A callback must not subscribe or
// unsubscribe listeners on the notifying instance.
type Listener struct {
	// OnClassChange fires when the class label, regression target, or
	// vocabulary reference changes.
	OnClassChange func()
	// OnValueChange fires when values in any dimension change.
	OnValueChange func()
	// OnTimestampChange fires when timestamps in any dimension change.
	OnTimestampChange func()
	// OnDimensionChange fires when dimensions are added, removed, or
	// replaced.
	OnDimensionChange func()
}

// Subscribe registers a listener for change notifications.
func (inst *Instance) Subscribe(l *Listener) {
	inst.listeners = append(inst.listeners, l)
}

// Unsubscribe removes a previously subscribed listener, matching by
// pointer identity. It reports whether the listener was found.
func (inst *Instance) Unsubscribe(l *Listener) bool {
	for i, reg := range inst.listeners {
		if reg == l {
			inst.listeners = append(inst.listeners[:i], inst.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// newDimListener builds the internal listener subscribed to a contained
// series. Child mutations invalidate only the dependent aggregate group
// and re-emit the matching notification kind upward.
func (inst *Instance) newDimListener() *timeseries.Listener {
	return &timeseries.Listener{
		OnValueChange: func() {
			inst.invalidateValues()
			inst.notifyValueChange()
		},
		OnTimestampChange: func() {
			inst.invalidateTimestamps()
			inst.notifyTimestampChange()
		},
	}
}

// invalidateValues marks the value- and length-dependent aggregates
// stale. Value mutations include adds and removes, which change
// dimension lengths.
func (inst *Instance) invalidateValues() {
	inst.hasMissing.Invalidate()
	inst.minLength.Invalidate()
	inst.maxLength.Invalidate()
	inst.equalLength.Invalidate()
}

func (inst *Instance) invalidateTimestamps() {
	inst.equallySpaced.Invalidate()
	inst.hasTimestamps.Invalidate()
}

func (inst *Instance) notifyClassChange() {
	for _, l := range inst.listeners {
		if l.OnClassChange != nil {
			l.OnClassChange()
		}
	}
}

func (inst *Instance) notifyValueChange() {
	for _, l := range inst.listeners {
		if l.OnValueChange != nil {
			l.OnValueChange()
		}
	}
}

func (inst *Instance) notifyTimestampChange() {
	for _, l := range inst.listeners {
		if l.OnTimestampChange != nil {
			l.OnTimestampChange()
		}
	}
}

func (inst *Instance) notifyDimensionChange() {
	for _, l := range inst.listeners {
		if l.OnDimensionChange != nil {
			l.OnDimensionChange()
		}
	}
}
