package resource

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties file: %v", err)
	}
	return path
}

func TestInitResolvesEnvPatterns(t *testing.T) {
	t.Setenv("RESOURCE_TEST_SET_VAR", "from-env")

	path := writeProperties(t, `app:
  plain: "just-a-string"
  set-with-default: "${RESOURCE_TEST_SET_VAR:fallback}"
  unset-with-default: "${RESOURCE_TEST_UNSET_VAR:fallback}"
  set-empty-default: "${RESOURCE_TEST_SET_VAR:}"
  unset-empty-default: "${RESOURCE_TEST_UNSET_VAR:}"
  unset-no-default: "${RESOURCE_TEST_UNSET_VAR}"
`)
	Init(path)

	tests := []struct {
		key      string
		expected string
	}{
		{"app.plain", "just-a-string"},
		{"app.set-with-default", "from-env"},
		{"app.unset-with-default", "fallback"},
		{"app.set-empty-default", "from-env"},
		{"app.unset-empty-default", ""},
		{"app.unset-no-default", ""},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			if got := GetString(test.key); got != test.expected {
				t.Errorf("%s: expected %q, got %q", test.key, test.expected, got)
			}
		})
	}
}
