package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownWordlist is returned when a named list is not recognized.
var ErrUnknownWordlist = errors.New("unknown wordlist")

// builtinFiles maps the builtin list names to their filenames inside the
// wordlist directory. NGSL is the 2000-most-common-words list, SUPP its
// supplementary vocabulary, ENABLE1 the broad dictionary list.
var builtinFiles = map[string]string{
	"NGSL":    "ngsl_2k.txt",
	"PSL3":    "psl3.txt",
	"ENABLE1": "enable1.txt",
	"SUPP":    "supplementary.txt",
}

// BuiltinNames returns the recognized wordlist names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFiles))
	for name := range builtinFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileProvider loads named word lists from newline-delimited files in a
// directory. Lists are read once and cached; the cached sets are shared
// and must not be mutated by callers.
type FileProvider struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]map[string]struct{}
}

// NewFileProvider creates a provider reading from dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{
		dir:   dir,
		cache: make(map[string]map[string]struct{}),
	}
}

// Load returns the named word list as a set.
func (p *FileProvider) Load(name string) (map[string]struct{}, error) {
	key := strings.ToUpper(name)

	p.mu.RLock()
	set, ok := p.cache[key]
	p.mu.RUnlock()
	if ok {
		return set, nil
	}

	file, ok := builtinFiles[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownWordlist, name, strings.Join(BuiltinNames(), ", "))
	}

	set, err := readWordlist(filepath.Join(p.dir, file))
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[key] = set
	p.mu.Unlock()

	return set, nil
}

func readWordlist(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	return set, nil
}

// Union returns a new set containing every word of both inputs. Neither
// input is modified.
func Union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for w := range a {
		out[w] = struct{}{}
	}
	for w := range b {
		out[w] = struct{}{}
	}
	return out
}
