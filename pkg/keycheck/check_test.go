package keycheck

import (
	"strings"
	"testing"

	"github.com/verneri/envdoctor/pkg/check"
)

type mockEnvGetter struct {
	Vars map[string]string
}

func (m *mockEnvGetter) LookupEnv(key string) (string, bool) {
	val, ok := m.Vars[key]
	return val, ok
}

func TestKeyCheck_Run(t *testing.T) {
	longKey := "sk-ant-" + strings.Repeat("a", 50)
	wrongPrefixKey := "sk-oth-" + strings.Repeat("a", 50)

	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "unset variable fails",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Prefix: "sk-ant-",
				MinLen: 50,
				Getter: &mockEnvGetter{Vars: map[string]string{}},
			},
			wantStatus: check.StatusFail,
			wantDetail: "not set",
		},
		{
			name: "empty variable fails",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Prefix: "sk-ant-",
				MinLen: 50,
				Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": ""}},
			},
			wantStatus: check.StatusFail,
			wantDetail: "not set",
		},
		{
			name: "whitespace-only variable fails",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": "   "}},
			},
			wantStatus: check.StatusFail,
			wantDetail: "not set",
		},
		{
			name: "unset variable includes remediation",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Getter: &mockEnvGetter{Vars: map[string]string{}},
			},
			wantStatus: check.StatusFail,
			wantDetail: "fix: export ANTHROPIC_API_KEY=<your key>",
		},
		{
			name: "short value warns",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Prefix: "sk-ant-",
				MinLen: 50,
				Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": "sk-ant-short"}},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "value length 12 < expected minimum 50",
		},
		{
			name: "wrong prefix warns",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Prefix: "sk-ant-",
				MinLen: 50,
				Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": wrongPrefixKey}},
			},
			wantStatus: check.StatusWarn,
			wantDetail: `value does not start with "sk-ant-"`,
		},
		{
			name: "well-formed key passes",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Prefix: "sk-ant-",
				MinLen: 50,
				Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": longKey}},
			},
			wantStatus: check.StatusPass,
		},
		{
			name: "no prefix heuristic skips prefix",
			check: Check{
				Name:   "OPENAI_API_KEY",
				MinLen: 30,
				Getter: &mockEnvGetter{Vars: map[string]string{"OPENAI_API_KEY": strings.Repeat("x", 40)}},
			},
			wantStatus: check.StatusPass,
		},
		{
			name: "secondary key length 10 warns",
			check: Check{
				Name:   "OPENAI_API_KEY",
				MinLen: 30,
				Getter: &mockEnvGetter{Vars: map[string]string{"OPENAI_API_KEY": strings.Repeat("x", 10)}},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "value length 10 < expected minimum 30",
		},
		{
			name: "surrounding whitespace is trimmed before heuristics",
			check: Check{
				Name:   "OPENAI_API_KEY",
				MinLen: 30,
				Getter: &mockEnvGetter{Vars: map[string]string{"OPENAI_API_KEY": "  " + strings.Repeat("x", 30) + "\n"}},
			},
			wantStatus: check.StatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", result.Status, tt.wantStatus)
			}

			if tt.wantDetail != "" {
				found := false
				for _, d := range result.Details {
					if d == tt.wantDetail {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected detail %q not found in %v", tt.wantDetail, result.Details)
				}
			}
		})
	}
}

func TestKeyCheck_NeverPrintsFullValue(t *testing.T) {
	secret := "sk-ant-" + strings.Repeat("a", 50)
	c := Check{
		Name:   "ANTHROPIC_API_KEY",
		Prefix: "sk-ant-",
		MinLen: 50,
		Getter: &mockEnvGetter{Vars: map[string]string{"ANTHROPIC_API_KEY": secret}},
	}

	result := c.Run()
	for _, d := range result.Details {
		if strings.Contains(d, secret) {
			t.Errorf("detail %q leaks the full key value", d)
		}
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc", "•••"},
		{"abcdef", "•••"},
		{"sk-secret-key-xyz", "sk-•••xyz"},
	}

	for _, tt := range tests {
		if got := maskValue(tt.input); got != tt.want {
			t.Errorf("maskValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
