package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/schema"
)

// LoadContract reads a contract fixture (JSON or YAML). Testing helpers fail
// the test on error to keep setup concise.
func LoadContract(t *testing.T, path string) schema.Contract {
	t.Helper()

	contract, err := LoadContractFromPath(path)
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return contract
}

// LoadContractFromPath returns a Contract without requiring testing.T.
func LoadContractFromPath(path string) (schema.Contract, error) {
	if path == "" {
		return schema.Contract{}, errors.New("testsupport: contract path is required")
	}
	contract, err := schema.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return schema.Contract{}, fmt.Errorf("testsupport: load contract: %w", err)
	}
	return contract, nil
}

// NewForm builds a form from the default tenant contract.
func NewForm(t *testing.T, options ...form.Option) *form.Form {
	t.Helper()

	f, err := form.New(schema.DefaultContract(), options...)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return f
}

// WriteGolden writes arbitrary data as indented JSON when UPDATE_GOLDENS is
// set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
