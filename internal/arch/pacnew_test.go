package arch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReportLeftoverConfigsNoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pacman.conf"))
	writeFile(t, filepath.Join(root, "sub", "hosts"))

	var out bytes.Buffer
	ReportLeftoverConfigs(root, &out)
	if out.Len() != 0 {
		t.Fatalf("expected no output at all, got %q", out.String())
	}
}

func TestReportLeftoverConfigsSingleMatch(t *testing.T) {
	root := t.TempDir()
	match := filepath.Join(root, "pacman.conf.pacnew")
	writeFile(t, match)
	writeFile(t, filepath.Join(root, "pacman.conf"))

	var out bytes.Buffer
	ReportLeftoverConfigs(root, &out)
	lines := strings.Split(strings.Trim(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one path, got %q", out.String())
	}
	if !strings.Contains(lines[0], "backup configuration") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if lines[1] != match {
		t.Fatalf("path line = %q, want %q", lines[1], match)
	}
}

func TestReportLeftoverConfigsBothSuffixes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "mirrorlist.pacnew"))
	writeFile(t, filepath.Join(root, "b", "passwd.pacsave"))
	writeFile(t, filepath.Join(root, "b", "passwd.bak"))

	var out bytes.Buffer
	ReportLeftoverConfigs(root, &out)
	got := out.String()
	if !strings.Contains(got, "mirrorlist.pacnew") || !strings.Contains(got, "passwd.pacsave") {
		t.Fatalf("missing matches: %q", got)
	}
	if strings.Contains(got, "passwd.bak") {
		t.Fatalf("unexpected match: %q", got)
	}
}

func TestReportLeftoverConfigsMissingRootIsSilent(t *testing.T) {
	var out bytes.Buffer
	ReportLeftoverConfigs(filepath.Join(t.TempDir(), "does-not-exist"), &out)
	if out.Len() != 0 {
		t.Fatalf("scan must never fail or print on traversal errors, got %q", out.String())
	}
}
