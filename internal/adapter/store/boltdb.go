package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketLemmas    = []byte("lemmas")
	bucketWordlists = []byte("wordlists")
	bucketStats     = []byte("stats")
	keyStats        = []byte("resource_stats")
)

// ResourceStore persists the compiled analysis resources: the
// token→lemma lookup table and the named word lists. The database is
// written once by `lexdiv compile` and read-only afterwards.
type ResourceStore struct {
	db *bbolt.DB
}

// Stats describes the compiled resource bundle.
type Stats struct {
	LemmaCount    int       `json:"lemma_count"`
	WordlistCount int       `json:"wordlist_count"`
	CompiledAt    time.Time `json:"compiled_at"`
}

// Open opens (creating if needed) a resource database at path.
func Open(path string) (*ResourceStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open resource db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketLemmas, bucketWordlists, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ResourceStore{db: db}, nil
}

// Close closes the underlying database.
func (s *ResourceStore) Close() error {
	return s.db.Close()
}

// PutLemmas writes the whole lookup table in one transaction.
func (s *ResourceStore) PutLemmas(table map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketLemmas)
		for token, lem := range table {
			if err := b.Put([]byte(token), []byte(lem)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadLemmas reads the full lookup table into memory. The table is
// loaded once at startup and treated as immutable for the run.
func (s *ResourceStore) LoadLemmas() (map[string]string, error) {
	table := make(map[string]string)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLemmas).ForEach(func(k, v []byte) error {
			table[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma table: %w", err)
	}
	return table, nil
}

// ImportLemmas reads a token<TAB>lemma stream and writes it to the
// store, returning the number of entries imported.
func (s *ResourceStore) ImportLemmas(r io.Reader) (int, error) {
	table := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return 0, fmt.Errorf("malformed lemma line %d: %q", lineNo, line)
		}
		token := strings.ToLower(strings.TrimSpace(parts[0]))
		lem := strings.ToLower(strings.TrimSpace(parts[1]))
		if token == "" || lem == "" {
			return 0, fmt.Errorf("malformed lemma line %d: %q", lineNo, line)
		}
		table[token] = lem
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read lemma stream: %w", err)
	}

	if err := s.PutLemmas(table); err != nil {
		return 0, err
	}
	return len(table), nil
}

// PutWordlist stores a named word list.
func (s *ResourceStore) PutWordlist(name string, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWordlists).Put([]byte(strings.ToUpper(name)), data)
	})
}

// Load returns a stored word list as a set, satisfying
// port.WordlistProvider so a compiled database can replace the
// filesystem wordlist directory.
func (s *ResourceStore) Load(name string) (map[string]struct{}, error) {
	var words []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketWordlists).Get([]byte(strings.ToUpper(name)))
		if data == nil {
			return fmt.Errorf("wordlist not found: %s", name)
		}
		return json.Unmarshal(data, &words)
	})
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// ListWordlists returns the names of all stored word lists.
func (s *ResourceStore) ListWordlists() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWordlists).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// PutStats records bundle statistics.
func (s *ResourceStore) PutStats(stats Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// GetStats returns bundle statistics; zero value if never compiled.
func (s *ResourceStore) GetStats() (Stats, error) {
	var stats Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}
