package domain

import (
	"maps"
	"slices"
	"time"
)

// Names of the dependencies the service reports on.
const (
	ServiceDatabase  = "database"
	ServiceScheduler = "scheduler"
	ServiceDashboard = "dashboard"
)

// ServiceNames lists the reported dependencies in probe order.
func ServiceNames() []string {
	return []string{ServiceDatabase, ServiceScheduler, ServiceDashboard}
}

// Overall is the aggregate health of all dependencies.
type Overall string

const (
	OverallHealthy   Overall = "healthy"
	OverallUnhealthy Overall = "unhealthy"
)

// String implements fmt.Stringer.
func (o Overall) String() string {
	return string(o)
}

// Snapshot is an immutable view of every dependency's status at one instant.
// A new Snapshot replaces the previous one wholesale; nothing mutates an
// existing Snapshot after construction.
type Snapshot struct {
	overall   Overall
	timestamp time.Time
	services  map[string]DependencyStatus
}

// NewSnapshot builds a Snapshot from per-dependency statuses taken at the
// given instant. The overall status is unhealthy iff at least one service is
// unhealthy; unknown services do not count against it. The services map is
// copied, so later changes by the caller are not visible.
func NewSnapshot(at time.Time, services map[string]DependencyStatus) Snapshot {
	return Snapshot{
		overall:   deriveOverall(services),
		timestamp: at.UTC(),
		services:  maps.Clone(services),
	}
}

// InitialSnapshot returns the Snapshot in effect before any probe has run:
// every known service is unknown and the overall status is healthy.
func InitialSnapshot(at time.Time) Snapshot {
	services := make(map[string]DependencyStatus, len(ServiceNames()))
	for _, name := range ServiceNames() {
		services[name] = Unknown()
	}
	return NewSnapshot(at, services)
}

// Overall returns the aggregate status.
func (s Snapshot) Overall() Overall {
	if s.overall == "" {
		return OverallHealthy
	}
	return s.overall
}

// IsHealthy reports whether the aggregate status is healthy.
func (s Snapshot) IsHealthy() bool {
	return s.Overall() == OverallHealthy
}

// Timestamp returns the UTC instant the Snapshot was assembled.
func (s Snapshot) Timestamp() time.Time {
	return s.timestamp
}

// Service returns the status recorded for name. The second result is false
// when the Snapshot has no entry for name.
func (s Snapshot) Service(name string) (DependencyStatus, bool) {
	st, ok := s.services[name]
	return st, ok
}

// Services returns a copy of the per-dependency statuses.
func (s Snapshot) Services() map[string]DependencyStatus {
	if s.services == nil {
		return map[string]DependencyStatus{}
	}
	return maps.Clone(s.services)
}

// UnhealthyServices returns the sorted names of unhealthy dependencies.
func (s Snapshot) UnhealthyServices() []string {
	var names []string
	for name, st := range s.services {
		if st.IsUnhealthy() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func deriveOverall(services map[string]DependencyStatus) Overall {
	for _, st := range services {
		if st.IsUnhealthy() {
			return OverallUnhealthy
		}
	}
	return OverallHealthy
}
