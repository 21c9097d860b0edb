package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "labels.csv", "fitted,real\n1,1\n1,0\n0,0\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "labels" {
		t.Fatalf("expected name labels got %q", s.Name)
	}
	if len(s.Fitted) != 3 || len(s.Real) != 3 {
		t.Fatalf("expected 3 rows got %d and %d", len(s.Fitted), len(s.Real))
	}
	if s.Fitted[1] != "1" || s.Real[1] != "0" {
		t.Fatalf("unexpected row 1: %q %q", s.Fitted[1], s.Real[1])
	}
}

func TestLoadCSVColumnOrder(t *testing.T) {
	path := writeFile(t, "swapped.csv", "real,fitted\n0,1\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Fitted[0] != "1" || s.Real[0] != "0" {
		t.Fatalf("columns must be matched by header name: %q %q", s.Fitted[0], s.Real[0])
	}
}

func TestLoadCSVMissingHeader(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n1,2\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing fitted/real header")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "curve.json", `{"fitted": [5, 5.5], "real": [3, 6]}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fitted, real, err := s.Numeric()
	if err != nil {
		t.Fatalf("numeric: %v", err)
	}
	if fitted[1] != 5.5 || real[0] != 3 {
		t.Fatalf("unexpected values %v %v", fitted, real)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "classes.yaml", "fitted: [spam, ham]\nreal: [spam, spam]\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Fitted[1] != "ham" || s.Real[1] != "spam" {
		t.Fatalf("unexpected values %v %v", s.Fitted, s.Real)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "data.txt", "whatever")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestNumericConversionError(t *testing.T) {
	s := &Set{Fitted: []string{"1", "oops"}, Real: []string{"1", "2"}}
	if _, _, err := s.Numeric(); err == nil {
		t.Fatalf("expected conversion error")
	}
}
