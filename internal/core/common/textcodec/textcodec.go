// Package textcodec implements the line-oriented pipe-delimited format all
// stores persist to. One record per line, fields joined by '|', every field
// trimmed on read. There is no quoting or escaping: a field value containing
// '|' or a newline corrupts its line. That is a documented limitation of the
// format, not something the codec tries to repair.
package textcodec

import (
	"bufio"
	"os"
	"strings"
)

const Delimiter = "|"

// Join renders one record line.
func Join(fields ...string) string {
	return strings.Join(fields, Delimiter)
}

// Split breaks a line into trimmed fields and reports whether at least min
// fields are present. Callers ignore fields beyond the ones they name.
func Split(line string, min int) ([]string, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < min {
		return nil, false
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
}

// ReadLines loads every non-blank trimmed line of path. A missing file is
// not an error: the caller gets an empty slice, mirroring "no records yet".
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}

// WriteLines truncates path and rewrites all records. Stores call this after
// every mutation; there is no incremental update.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
