package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Keys returns the table's keys in ascending lexicographic order, the order
// entries are serialized in.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// WriteTo serializes the table as one KEY<TAB>VENDOR line per entry, keys
// ascending, no header.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, key := range t.Keys() {
		n, err := fmt.Fprintf(w, "%s\t%s\n", key, t[key])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteFile serializes the table to path, creating the parent directory if
// needed.
func (t Table) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("registry: failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("registry: failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := t.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("registry: failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("registry: failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("registry: failed to write %s: %w", path, err)
	}
	return nil
}

// Read parses a previously serialized flat table. Blank lines and lines
// without a tab are skipped.
func Read(r io.Reader) (Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, vendor, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		if !validKey(key) || vendor == "" {
			continue
		}
		t[key] = vendor
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("registry: failed to read table: %w", err)
	}
	return t, nil
}

// OpenFile reads a flat table file written by WriteFile.
func OpenFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
