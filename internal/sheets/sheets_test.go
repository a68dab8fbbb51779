package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCredentials(t *testing.T) {
	dir := t.TempDir()

	second := filepath.Join(dir, "cred-2.json")
	err := os.WriteFile(second, []byte("{}"), 0o600)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		paths     []string
		expected  string
		expectErr bool
	}{
		{
			name:     "first missing, second exists",
			paths:    []string{filepath.Join(dir, "cred-1.json"), second},
			expected: second,
		},
		{
			name:     "first exists",
			paths:    []string{second, filepath.Join(dir, "cred-1.json")},
			expected: second,
		},
		{
			name:      "none exist",
			paths:     []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")},
			expectErr: true,
		},
		{
			name:      "empty list",
			paths:     nil,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ResolveCredentials(tt.paths)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, path)
			}
		})
	}
}
