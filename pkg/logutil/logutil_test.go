package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[test] ")

	var sb strings.Builder
	SetOutput(&sb)
	defer SetOutput(os.Stderr)

	logger.Println("out to writer")
	if !strings.Contains(sb.String(), "out to writer") {
		t.Errorf("log written to old output after SetOutput")
	}

	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile(%q) -> %v, want nil", fname, err)
	}
	logger.Println("out to file")
	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("ReadFile -> %v", err)
	}
	if !strings.Contains(string(content), "out to file") {
		t.Errorf("log file %q does not contain entry", content)
	}

	if err := SetOutputFile(""); err != nil {
		t.Errorf(`SetOutputFile("") -> %v, want nil`, err)
	}
}
