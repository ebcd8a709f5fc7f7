package roster

import "time"

type refreshKind int

const (
	refreshEveryTick refreshKind = iota
	refreshAt
	refreshStop
)

// RefreshPeriod states when a system should next run: on every tick, not
// before a given time, or never again.
type RefreshPeriod struct {
	kind refreshKind
	at   time.Time
}

var (
	RefreshEveryTick = RefreshPeriod{kind: refreshEveryTick}
	RefreshStop      = RefreshPeriod{kind: refreshStop}
)

// RefreshAt delays the next run until now reaches t.
func RefreshAt(t time.Time) RefreshPeriod {
	return RefreshPeriod{kind: refreshAt, at: t}
}

func (p RefreshPeriod) due(now time.Time) bool {
	switch p.kind {
	case refreshEveryTick:
		return true
	case refreshAt:
		return !now.Before(p.at)
	}
	return false
}

// soonest keeps the earlier of two pending periods.
func (p RefreshPeriod) soonest(other RefreshPeriod) RefreshPeriod {
	switch {
	case p.kind == refreshEveryTick || other.kind == refreshStop:
		return p
	case other.kind == refreshEveryTick || p.kind == refreshStop:
		return other
	case p.at.Before(other.at):
		return p
	}
	return other
}

// SystemManager runs host systems sequentially in registration order. Each
// system reports its own next refresh; systems returning RefreshStop stay
// registered but dormant until SetRefresh revives them.
type SystemManager struct {
	systems []System
	refresh []RefreshPeriod
	names   map[string]int
}

func newSystemManager() *SystemManager {
	return &SystemManager{
		names: make(map[string]int),
	}
}

// AddSystem registers a system, due on the next update. Names must be
// unique; a duplicate replaces nothing and is ignored.
func (sm *SystemManager) AddSystem(system System) {
	if _, exists := sm.names[system.Name()]; exists {
		return
	}
	sm.names[system.Name()] = len(sm.systems)
	sm.systems = append(sm.systems, system)
	sm.refresh = append(sm.refresh, RefreshEveryTick)
}

// SetRefresh overrides the named system's next refresh. Unknown names are
// ignored.
func (sm *SystemManager) SetRefresh(name string, period RefreshPeriod) {
	if id, ok := sm.names[name]; ok {
		sm.refresh[id] = period
	}
}

// Update runs every due system once, dispatching the bus after each so a
// system's events are delivered before the next system runs. It returns the
// soonest pending refresh across all systems; RefreshStop means nothing is
// scheduled.
func (sm *SystemManager) Update(bus *EventBus) RefreshPeriod {
	result := RefreshStop
	now := time.Now()
	for i, system := range sm.systems {
		period := sm.refresh[i]
		if period.due(now) {
			period = system.Run(now)
			sm.refresh[i] = period
			if bus != nil {
				bus.Dispatch()
			}
		}
		result = result.soonest(period)
	}
	return result
}
