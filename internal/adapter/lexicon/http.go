package lexicon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// HTTPLexicon checks word validity against a remote dictionary service.
// Lookup failures are reported as unknown: the oracle makes no
// completeness guarantee, so a missed word is measurement noise rather
// than an error. Results are cached for the lifetime of the process.
type HTTPLexicon struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	cache map[string]bool
}

type lookupResponse struct {
	Word  string `json:"word"`
	Known bool   `json:"known"`
}

// NewHTTPLexicon creates a lexicon backed by the service at baseURL.
// The service is expected to answer GET {baseURL}/words/{word} with a
// JSON body {"word": ..., "known": bool}.
func NewHTTPLexicon(baseURL string) *HTTPLexicon {
	return &HTTPLexicon{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]bool),
	}
}

// IsKnown reports whether the service recognizes the word.
func (l *HTTPLexicon) IsKnown(word string) bool {
	l.mu.RLock()
	known, ok := l.cache[word]
	l.mu.RUnlock()
	if ok {
		return known
	}

	known = l.lookup(word)

	l.mu.Lock()
	l.cache[word] = known
	l.mu.Unlock()

	return known
}

func (l *HTTPLexicon) lookup(word string) bool {
	endpoint := fmt.Sprintf("%s/words/%s", l.baseURL, url.PathEscape(word))

	resp, err := l.client.Get(endpoint)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false
	}
	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}

	return body.Known
}
