package lemma

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MapLemmatizer resolves lemmas through a preloaded token→lemma table
// with identity fallback. The table is never mutated after construction,
// so lookups are safe for concurrent use.
type MapLemmatizer struct {
	table map[string]string
}

// NewMapLemmatizer wraps an already-built lookup table. A nil table is
// valid and makes every lookup fall back to the token itself.
func NewMapLemmatizer(table map[string]string) *MapLemmatizer {
	return &MapLemmatizer{table: table}
}

// LoadTSV reads a token<TAB>lemma table from a file. Blank lines and
// lines starting with '#' are skipped; both columns are lowercased.
func LoadTSV(path string) (*MapLemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lemma table: %w", err)
	}
	defer f.Close()

	table := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed lemma table line %d: %q", lineNo, line)
		}
		token := strings.ToLower(strings.TrimSpace(parts[0]))
		lem := strings.ToLower(strings.TrimSpace(parts[1]))
		if token == "" || lem == "" {
			return nil, fmt.Errorf("malformed lemma table line %d: %q", lineNo, line)
		}
		table[token] = lem
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lemma table: %w", err)
	}

	return &MapLemmatizer{table: table}, nil
}

// Lemma returns the mapped lemma, or the token unchanged when absent.
func (m *MapLemmatizer) Lemma(token string) string {
	if lem, ok := m.table[token]; ok {
		return lem
	}
	return token
}

// Len returns the number of entries in the lookup table.
func (m *MapLemmatizer) Len() int {
	return len(m.table)
}
