package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a display name for storage and comparison:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; board and topic names are shown as entered.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSourceID strips whitespace and a leading "PMID" label from an
// article source id, so "PMID: 12345" and "12345" refer to the same article.
func NormalizeSourceID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) >= 4 && strings.EqualFold(id[:4], "pmid") {
		id = strings.TrimLeft(id[4:], ": \t")
	}
	return id
}
