package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	wikiBase    = "https://en.wikipedia.org/wiki/"
	wikiDefault = wikiBase + "Coffee"
)

var whitespace = regexp.MustCompile(`\s+`)

// slugify lowercases the title and collapses whitespace runs to
// underscores, matching the article naming the reference host uses.
func slugify(title string) (string, error) {
	slug := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "_")
	if slug == "" {
		return "", errors.New("empty title")
	}
	return slug, nil
}

// ReferenceChain is the candidate order for recipe reference lookups:
// the exact article for the title, then the title with a "_coffee"
// suffix, then the fixed general article. The terminal default bounds
// worst-case failure; it does not promise the content matches.
func ReferenceChain() []Candidate {
	return []Candidate{
		func(seed string) (string, error) {
			slug, err := slugify(seed)
			if err != nil {
				return "", err
			}
			return wikiBase + slug, nil
		},
		func(seed string) (string, error) {
			slug, err := slugify(seed)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s%s_coffee", wikiBase, slug), nil
		},
		func(string) (string, error) {
			return wikiDefault, nil
		},
	}
}
