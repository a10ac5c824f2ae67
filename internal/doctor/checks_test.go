package doctor

import (
	"errors"
	"testing"
)

func TestCheckStatusString(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.status.String(); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

// mockCheck is a test implementation of Check.
type mockCheck struct {
	name     string
	category string
	result   CheckResult
	fixErr   error
	fixCalls int
}

func (m *mockCheck) Name() string     { return m.name }
func (m *mockCheck) Category() string { return m.category }
func (m *mockCheck) Run() CheckResult { return m.result }
func (m *mockCheck) Fix() error {
	m.fixCalls++
	return m.fixErr
}

func TestRunAllPreservesOrder(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "first", result: CheckResult{Name: "first", Status: StatusPass}},
		&mockCheck{name: "second", result: CheckResult{Name: "second", Status: StatusWarn}},
		&mockCheck{name: "third", result: CheckResult{Name: "third", Status: StatusFail}},
	}

	results := RunAll(checks)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Name != want {
			t.Errorf("result %d: got %q, want %q", i, results[i].Name, want)
		}
	}
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)
	if counts[StatusPass] != 2 || counts[StatusWarn] != 1 || counts[StatusFail] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestHasFailuresAndIssues(t *testing.T) {
	clean := []CheckResult{{Status: StatusPass}}
	warned := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	failed := []CheckResult{{Status: StatusFail}}

	if HasFailures(clean) || HasFailures(warned) {
		t.Error("pass/warn results must not report failures")
	}
	if !HasFailures(failed) {
		t.Error("fail result must report failures")
	}
	if HasIssues(clean) {
		t.Error("pass-only results must not report issues")
	}
	if !HasIssues(warned) {
		t.Error("warn result must report issues")
	}
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusFail, Fixable: true},
		{Status: StatusWarn, Fixable: true},
		{Status: StatusPass, Fixable: true}, // passing checks don't need fixing
		{Status: StatusFail, Fixable: false},
	}

	if got := FixableCount(results); got != 2 {
		t.Errorf("got %d fixable, want 2", got)
	}
}

func TestMockFixTracking(t *testing.T) {
	m := &mockCheck{fixErr: errors.New("nope")}
	if err := m.Fix(); err == nil {
		t.Error("expected fix error")
	}
	if m.fixCalls != 1 {
		t.Errorf("got %d fix calls, want 1", m.fixCalls)
	}
}
