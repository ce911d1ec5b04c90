package model

import (
	"strings"
	"testing"

	"github.com/aibeing/being-tui/exchange"
)

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		st   exchange.Status
		want string
	}{
		{exchange.StatusCompleted, "✓ COMPLETED"},
		{exchange.StatusExecuted, "✓ EXECUTED"},
		{exchange.StatusExecuting, "⟳ EXECUTING"},
		{exchange.StatusPending, "⏳ PENDING"},
		{exchange.StatusSkipped, "⊘ SKIPPED"},
		{exchange.StatusFailed, "✗ FAILED"},
	}
	for _, c := range cases {
		if got := StatusBadge(c.st); !strings.Contains(got, c.want) {
			t.Errorf("StatusBadge(%s) = %q, want it to contain %q", c.st, got, c.want)
		}
	}
}

func TestEnforcementNotice(t *testing.T) {
	if got := EnforcementNotice(nil); got != "" {
		t.Errorf("nil enforcement: want empty, got %q", got)
	}
	if got := EnforcementNotice(&exchange.Enforcement{Decision: exchange.EnforceAllow}); got != "" {
		t.Errorf("allow: want empty, got %q", got)
	}
	blocked := EnforcementNotice(&exchange.Enforcement{Decision: exchange.EnforceBlock})
	if !strings.Contains(blocked, "I can't help with that request") {
		t.Errorf("block notice missing, got %q", blocked)
	}
	rewritten := EnforcementNotice(&exchange.Enforcement{Decision: exchange.EnforceRewrite})
	if !strings.Contains(rewritten, "I rephrased this") {
		t.Errorf("rewrite notice missing, got %q", rewritten)
	}
}

func TestSafetyNotice(t *testing.T) {
	if got := SafetyNotice(nil); got != "" {
		t.Errorf("nil safety: want empty, got %q", got)
	}
	if got := SafetyNotice(&exchange.Safety{Level: exchange.SafetySafe}); got != "" {
		t.Errorf("safe level: want empty, got %q", got)
	}
	if got := SafetyNotice(&exchange.Safety{Level: exchange.SafetyHighRisk}); !strings.Contains(got, "high_risk") {
		t.Errorf("high_risk notice missing, got %q", got)
	}
}
