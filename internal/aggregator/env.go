package aggregator

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// EnvEntry represents a single key-value pair from a .env file.
type EnvEntry struct {
	Key         string
	Value       string
	Placeholder bool // commented "#KEY=" stub
}

// FilePermSecure is the mode of a .env file created by AddEnvStub.
const FilePermSecure = 0600

// lineSep is the platform line separator used for appended blocks.
var lineSep = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// AddEnvStub appends a block headed by label with one commented placeholder
// per variable. If the file already contains label the call is a no-op.
// It reports whether the file was changed.
func AddEnvStub(path, label string, vars []string) (bool, error) {
	if label == "" {
		return false, errors.New("env stub label is required")
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("reading env file %s: %w", path, err)
	}
	if bytes.Contains(existing, []byte(label)) {
		return false, nil
	}

	var b strings.Builder
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		b.WriteString(lineSep)
	}
	b.WriteString("## ")
	b.WriteString(label)
	b.WriteString(lineSep)
	for _, v := range vars {
		b.WriteString("#")
		b.WriteString(v)
		b.WriteString("=")
		b.WriteString(lineSep)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePermSecure)
	if err != nil {
		return false, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return false, fmt.Errorf("writing env file %s: %w", path, err)
	}
	return true, nil
}

// ParseEnvFile reads a .env file and returns its entries in file order.
// Values are decoded by godotenv, so quoting and "export" prefixes behave as
// they do at runtime. Commented "#KEY=" lines are returned as placeholders;
// other comments and blank lines are skipped. A key set more than once is
// reported once with its final value.
func ParseEnvFile(path string) ([]EnvEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}

	var entries []EnvEntry
	seen := make(map[string]bool, len(values))
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "#"); ok {
			key, _, found := strings.Cut(rest, "=")
			key = strings.TrimSpace(key)
			if !found || key == "" || strings.ContainsAny(key, " \t") {
				continue
			}
			entries = append(entries, EnvEntry{Key: key, Placeholder: true})
			continue
		}

		key, _, found := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		key = strings.TrimSpace(key)
		value, ok := values[key]
		if !found || !ok || seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, EnvEntry{Key: key, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

// UnsetPlaceholders returns the placeholder keys that have no set value
// elsewhere in the file.
func UnsetPlaceholders(entries []EnvEntry) []string {
	set := make(map[string]bool)
	for _, e := range entries {
		if !e.Placeholder {
			set[e.Key] = true
		}
	}
	seen := make(map[string]bool)
	var keys []string
	for _, e := range entries {
		if e.Placeholder && !set[e.Key] && !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
