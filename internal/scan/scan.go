// Package scan builds the ordered queue of files the session plays through.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/codescroll/internal/fs"
)

// DefaultExtensions is the built-in allow-list used when --exts is not given.
var DefaultExtensions = []string{
	"rs", "toml", "c", "h", "cpp", "hpp", "cc", "cs", "go", "py", "js", "ts",
	"jsx", "tsx", "java", "kt", "swift", "php", "rb", "lua", "sh", "ps1",
	"sql", "html", "css", "json", "yml", "yaml", "md",
}

// Options control which files make it into the queue.
type Options struct {
	Extensions map[string]struct{} // lowercase, no leading dot
	MaxBytes   int64               // files larger than this are excluded; 0 keeps only empty files
}

// ParseExtensions turns a comma-separated extension list into the allow-set.
// An empty list selects DefaultExtensions. Leading dots and case are ignored.
func ParseExtensions(list string) map[string]struct{} {
	set := make(map[string]struct{})

	items := DefaultExtensions
	if strings.TrimSpace(list) != "" {
		items = strings.Split(list, ",")
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		item = strings.TrimPrefix(item, ".")
		if item == "" {
			continue
		}
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

// Collect resolves root (a file or a directory) into a sorted list of
// playable file paths. Unreadable entries are skipped; dotfiles and dot
// directories are never descended into.
func Collect(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("collect files from %s: %w", root, err)
	}

	if !info.IsDir() {
		if allowed(root, info.Size(), opts) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var out []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if allowed(path, fi.Size(), opts) {
			out = append(out, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("collect files from %s: %w", root, walkErr)
	}

	sort.Strings(out)
	return out, nil
}

func allowed(path string, size int64, opts Options) bool {
	if size > opts.MaxBytes {
		return false
	}

	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") && len(name) > 1 {
		return false
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := opts.Extensions[ext]; !ok {
		return false
	}

	// Extension matched but the content may still be binary (vendored blobs
	// renamed .js, fixtures, and the like).
	sample, err := fsutil.ReadTextSample(path)
	if err != nil {
		return false
	}
	return fsutil.IsTextFile(path, sample)
}
