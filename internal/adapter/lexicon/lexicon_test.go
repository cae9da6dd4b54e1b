package lexicon

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, dir, file string, words string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(words), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileProvider_Load(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "ngsl_2k.txt", "The\ndog\n\nCAT\n")

	p := NewFileProvider(dir)
	set, err := p.Load("NGSL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 3 {
		t.Errorf("expected 3 words, got %d", len(set))
	}
	for _, w := range []string{"the", "dog", "cat"} {
		if _, ok := set[w]; !ok {
			t.Errorf("expected %q in list", w)
		}
	}

	// Name lookup is case-insensitive and cached.
	again, err := p.Load("ngsl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 3 {
		t.Errorf("expected cached set of 3 words, got %d", len(again))
	}
}

func TestFileProvider_UnknownName(t *testing.T) {
	p := NewFileProvider(t.TempDir())

	_, err := p.Load("BNC")
	if !errors.Is(err, ErrUnknownWordlist) {
		t.Errorf("expected ErrUnknownWordlist, got %v", err)
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	p := NewFileProvider(t.TempDir())

	if _, err := p.Load("NGSL"); err == nil {
		t.Error("expected error for missing wordlist file")
	}
}

func TestSet(t *testing.T) {
	base := map[string]struct{}{"dog": {}, "cat": {}}
	s := NewSet(base, "i", "a")

	for _, w := range []string{"dog", "cat", "i", "a"} {
		if !s.IsKnown(w) {
			t.Errorf("expected %q known", w)
		}
	}
	if s.IsKnown("xylofone") {
		t.Error("expected misspelling unknown")
	}

	// The source map must not see the extras.
	if _, ok := base["i"]; ok {
		t.Error("NewSet mutated its input")
	}
}

func TestUnion(t *testing.T) {
	a := map[string]struct{}{"one": {}, "two": {}}
	b := map[string]struct{}{"two": {}, "three": {}}

	u := Union(a, b)
	if len(u) != 3 {
		t.Errorf("expected 3 words, got %d", len(u))
	}
	if len(a) != 2 || len(b) != 2 {
		t.Error("Union mutated an input")
	}
}

func TestHTTPLexicon(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Path {
		case "/words/dog":
			w.Write([]byte(`{"word":"dog","known":true}`))
		case "/words/xylofone":
			w.Write([]byte(`{"word":"xylofone","known":false}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	l := NewHTTPLexicon(srv.URL)

	if !l.IsKnown("dog") {
		t.Error("expected dog known")
	}
	if l.IsKnown("xylofone") {
		t.Error("expected xylofone unknown")
	}
	if l.IsKnown("missing") {
		t.Error("expected 404 to mean unknown")
	}

	// Second lookup is served from cache.
	l.IsKnown("dog")
	if calls != 3 {
		t.Errorf("expected 3 upstream calls, got %d", calls)
	}
}
