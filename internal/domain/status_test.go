package domain

import (
	"strings"
	"testing"
)

func TestDependencyStatus_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status DependencyStatus
		want   string
	}{
		{
			name:   "healthy",
			status: Healthy(),
			want:   "healthy",
		},
		{
			name:   "unknown",
			status: Unknown(),
			want:   "unknown",
		},
		{
			name:   "zero value is unknown",
			status: DependencyStatus{},
			want:   "unknown",
		},
		{
			name:   "unhealthy with reason",
			status: Unhealthy("HTTP 404"),
			want:   "unhealthy: HTTP 404",
		},
		{
			name:   "unhealthy without reason",
			status: Unhealthy(""),
			want:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnhealthy_TruncatesReason(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 60) + strings.Repeat("b", 80)

	st := Unhealthy(long)

	if got := st.Reason(); got != long[:MaxReasonLength] {
		t.Errorf("Reason() = %q, want first %d characters", got, MaxReasonLength)
	}
	if len(st.Reason()) != MaxReasonLength {
		t.Errorf("len(Reason()) = %d, want %d", len(st.Reason()), MaxReasonLength)
	}
}

func TestUnhealthy_TruncatesByCharacterNotByte(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 150)

	st := Unhealthy(long)

	if got := []rune(st.Reason()); len(got) != MaxReasonLength {
		t.Errorf("rune count = %d, want %d", len(got), MaxReasonLength)
	}
}

func TestUnhealthy_ShortReasonUnchanged(t *testing.T) {
	t.Parallel()

	if got := Unhealthy("connection refused").Reason(); got != "connection refused" {
		t.Errorf("Reason() = %q, want %q", got, "connection refused")
	}
}

func TestDependencyStatus_KindPredicates(t *testing.T) {
	t.Parallel()

	if !Healthy().IsHealthy() || Healthy().IsUnhealthy() {
		t.Error("Healthy() predicates wrong")
	}
	if !Unhealthy("x").IsUnhealthy() || Unhealthy("x").IsHealthy() {
		t.Error("Unhealthy() predicates wrong")
	}
	if Unknown().IsHealthy() || Unknown().IsUnhealthy() {
		t.Error("Unknown() must be neither healthy nor unhealthy")
	}
	if Healthy().Reason() != "" {
		t.Errorf("Healthy().Reason() = %q, want empty", Healthy().Reason())
	}
}

func TestUnhealthy_ReasonContainingHealthyIsStillUnhealthy(t *testing.T) {
	t.Parallel()

	st := Unhealthy("healthy")
	if st.Kind() != KindUnhealthy {
		t.Errorf("Kind() = %v, want %v", st.Kind(), KindUnhealthy)
	}
}
