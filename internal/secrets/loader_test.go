package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	withSecret := filepath.Join(dir, "dsn")
	if err := os.WriteFile(withSecret, []byte("  postgres://compass@localhost/compass \n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty secret: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		expect  string
		wantErr bool
	}{
		{
			name:   "file wins over inline value",
			src:    Source{Name: "catalog dsn", File: withSecret, Value: "inline"},
			expect: "postgres://compass@localhost/compass",
		},
		{
			name:   "inline value is trimmed",
			src:    Source{Name: "bls api key", Value: "  key  "},
			expect: "key",
		},
		{
			name:    "empty file",
			src:     Source{Name: "catalog dsn", File: empty},
			wantErr: true,
		},
		{
			name:    "missing file",
			src:     Source{Name: "catalog dsn", File: filepath.Join(dir, "missing")},
			wantErr: true,
		},
		{
			name:    "nothing configured",
			src:     Source{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got secret %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestLoadNotConfigured(t *testing.T) {
	_, err := Load(Source{Name: "bls api key"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	secret, err := LoadOptional(Source{Name: "bls api key"})
	if err != nil {
		t.Fatalf("unexpected error for optional secret: %v", err)
	}
	if secret != "" {
		t.Fatalf("expected empty optional secret, got %q", secret)
	}

	if _, err := LoadOptional(Source{Name: "bls api key", File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing file even when optional")
	}
}
