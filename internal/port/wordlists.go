package port

// WordlistProvider loads named word lists. The returned set is shared and
// must be treated as read-only by callers. Unknown names are a
// configuration error.
type WordlistProvider interface {
	Load(name string) (map[string]struct{}, error)
}
