package trip

import "strings"

// Delimiter separates destinations in free-text entry.
const Delimiter = ","

// Tokenize splits delimiter-separated free text into candidate destination
// entries: each piece is trimmed and empty pieces are dropped. Order is
// preserved; deduplication is the destination list's job.
func Tokenize(text string) []string {
	var tokens []string
	for _, piece := range strings.Split(text, Delimiter) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tokens = append(tokens, piece)
	}
	return tokens
}

// normalizeKey is the comparison key for deduplication: lower-cased trimmed.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AddDestinations appends each token to list unless an entry already exists
// that matches case-insensitively after trimming. Surviving tokens keep their
// first-seen casing and encounter order. Malformed input (empty,
// whitespace-only, duplicate) is silently normalized away, never rejected.
func AddDestinations(list []string, tokens ...string) []string {
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if containsDestination(list, tok) {
			continue
		}
		list = append(list, tok)
	}
	return list
}

// containsDestination reports whether list already holds entry under the
// case-insensitive trimmed comparison.
func containsDestination(list []string, entry string) bool {
	key := normalizeKey(entry)
	for _, existing := range list {
		if normalizeKey(existing) == key {
			return true
		}
	}
	return false
}

// RemoveDestination removes the exact entry from list, preserving the order of
// the remaining entries. Removing an absent entry is a no-op.
func RemoveDestination(list []string, entry string) []string {
	for i, existing := range list {
		if existing == entry {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// RemoveLastDestination removes the most recently added entry. It is a no-op
// on an empty list.
func RemoveLastDestination(list []string) []string {
	if len(list) == 0 {
		return list
	}
	return list[:len(list)-1]
}
