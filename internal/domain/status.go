package domain

import "unicode/utf8"

// MaxReasonLength bounds the failure reason carried by an Unhealthy status.
const MaxReasonLength = 100

// StatusKind is the verdict of a single dependency check.
type StatusKind int

const (
	// KindUnknown is the zero value: no probe has produced a verdict yet,
	// or the probe could not tell.
	KindUnknown StatusKind = iota
	KindHealthy
	KindUnhealthy
)

// String implements fmt.Stringer.
func (k StatusKind) String() string {
	switch k {
	case KindHealthy:
		return "healthy"
	case KindUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// DependencyStatus is the verdict for one dependency plus, for unhealthy
// verdicts, a bounded reason. The zero value is Unknown.
type DependencyStatus struct {
	kind   StatusKind
	reason string
}

// Healthy returns a healthy status.
func Healthy() DependencyStatus {
	return DependencyStatus{kind: KindHealthy}
}

// Unknown returns an unknown status.
func Unknown() DependencyStatus {
	return DependencyStatus{}
}

// Unhealthy returns an unhealthy status. The reason is truncated to the
// first MaxReasonLength characters.
func Unhealthy(reason string) DependencyStatus {
	return DependencyStatus{kind: KindUnhealthy, reason: truncate(reason, MaxReasonLength)}
}

// Kind returns the verdict.
func (s DependencyStatus) Kind() StatusKind {
	return s.kind
}

// Reason returns the failure reason. Empty unless the status is unhealthy.
func (s DependencyStatus) Reason() string {
	return s.reason
}

// IsHealthy reports whether the verdict is healthy.
func (s DependencyStatus) IsHealthy() bool {
	return s.kind == KindHealthy
}

// IsUnhealthy reports whether the verdict is unhealthy.
func (s DependencyStatus) IsUnhealthy() bool {
	return s.kind == KindUnhealthy
}

// String renders the wire form: "healthy", "unknown", or
// "unhealthy: <reason>".
func (s DependencyStatus) String() string {
	if s.kind == KindUnhealthy && s.reason != "" {
		return s.kind.String() + ": " + s.reason
	}
	return s.kind.String()
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
