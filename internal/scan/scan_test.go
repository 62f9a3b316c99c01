package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		has     []string
		hasNot  []string
		wantLen int
	}{
		{
			name:    "empty list selects defaults",
			list:    "",
			has:     []string{"go", "rs", "py", "md"},
			wantLen: len(DefaultExtensions),
		},
		{
			name:    "explicit list overrides defaults",
			list:    "go,rs",
			has:     []string{"go", "rs"},
			hasNot:  []string{"py"},
			wantLen: 2,
		},
		{
			name:    "dots case and spaces normalized",
			list:    " .Go , RS ,",
			has:     []string{"go", "rs"},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseExtensions(tt.list)
			if len(set) != tt.wantLen {
				t.Fatalf("expected %d extensions, got %d", tt.wantLen, len(set))
			}
			for _, e := range tt.has {
				if _, ok := set[e]; !ok {
					t.Fatalf("expected %q in set", e)
				}
			}
			for _, e := range tt.hasNot {
				if _, ok := set[e]; ok {
					t.Fatalf("did not expect %q in set", e)
				}
			}
		})
	}
}

func TestCollectFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.go"), "package b\n")
	writeFile(t, filepath.Join(dir, "a.go"), "package a\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not in the allow-list\n")
	writeFile(t, filepath.Join(dir, ".hidden.go"), "package hidden\n")
	writeFile(t, filepath.Join(dir, ".git", "config.go"), "package fake\n")
	writeFile(t, filepath.Join(dir, "sub", "c.go"), "package c\n")

	files, err := Collect(dir, Options{Extensions: ParseExtensions("go"), MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "b.go"),
		filepath.Join(dir, "sub", "c.go"),
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestCollectExcludesOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.go"), "package small\n")
	writeFile(t, filepath.Join(dir, "large.go"), strings.Repeat("// padding\n", 200))

	files, err := Collect(dir, Options{Extensions: ParseExtensions("go"), MaxBytes: 64})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "small.go" {
		t.Fatalf("expected only small.go, got %v", files)
	}
}

func TestCollectMaxBytesZeroKeepsOnlyEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "code.go"), "package code\n")
	writeFile(t, filepath.Join(dir, "empty.go"), "")

	files, err := Collect(dir, Options{Extensions: ParseExtensions("go"), MaxBytes: 0})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "empty.go" {
		t.Fatalf("expected only empty.go, got %v", files)
	}
}

func TestCollectExcludesBinaryContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real.go"), "package real\n")
	if err := os.WriteFile(filepath.Join(dir, "blob.go"), []byte{0x7F, 'E', 'L', 'F', 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	files, err := Collect(dir, Options{Extensions: ParseExtensions("go"), MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "real.go" {
		t.Fatalf("expected only real.go, got %v", files)
	}
}

func TestCollectSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.py")
	writeFile(t, path, "print('hi')\n")

	files, err := Collect(path, Options{Extensions: ParseExtensions(""), MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("expected [%s], got %v", path, files)
	}
}

func TestCollectSingleFileRootFilteredOut(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.exe")
	writeFile(t, path, "whatever")

	files, err := Collect(path, Options{Extensions: ParseExtensions(""), MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty queue, got %v", files)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope"), Options{Extensions: ParseExtensions("")}); err == nil {
		t.Fatalf("expected error for missing root")
	}
}
