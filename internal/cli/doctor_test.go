package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/doctor"
)

func TestCollectChecksCoversAllCategories(t *testing.T) {
	checks := collectChecks("", config.DefaultConfig())
	require.NotEmpty(t, checks)

	categories := make(map[string]bool)
	for _, c := range checks {
		categories[c.Category()] = true
	}
	for _, want := range []string{"CONFIG", "CONTENT", "STATE", "TERMINAL"} {
		assert.True(t, categories[want], "missing %s checks", want)
	}
}

func TestAttemptFixesOnlyTouchesFixableIssues(t *testing.T) {
	fixable := &mockFixableCheck{result: doctor.CheckResult{Status: doctor.StatusFail, Fixable: true}}
	passing := &mockFixableCheck{result: doctor.CheckResult{Status: doctor.StatusPass, Fixable: true}}
	broken := &mockFixableCheck{result: doctor.CheckResult{Status: doctor.StatusFail}}

	checks := []doctor.Check{fixable, passing, broken}
	results := doctor.RunAll(checks)

	attemptFixes(checks, results)

	assert.Equal(t, 1, fixable.fixCalls)
	assert.Zero(t, passing.fixCalls, "passing checks are not re-fixed")
	assert.Zero(t, broken.fixCalls, "unfixable checks are left alone")
}

type mockFixableCheck struct {
	result   doctor.CheckResult
	fixCalls int
}

func (m *mockFixableCheck) Name() string            { return "mock" }
func (m *mockFixableCheck) Category() string        { return "MOCK" }
func (m *mockFixableCheck) Run() doctor.CheckResult { return m.result }
func (m *mockFixableCheck) Fix() error {
	m.fixCalls++
	return nil
}
