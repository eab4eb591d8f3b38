package weights

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	whitespaceRunRegex = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	nonSlugCharsRegex  = regexp.MustCompile(`[^a-z0-9-]`)
)

const fallbackSlug = "custom"

// Slugify turns an exercise name into an id: lower case, whitespace runs
// become "-", anything outside [a-z0-9-] is dropped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimFunc(name, isSlugSpace))
	s = whitespaceRunRegex.ReplaceAllString(s, "-")
	s = nonSlugCharsRegex.ReplaceAllString(s, "")
	if s == "" {
		return fallbackSlug
	}
	return s
}

// unicode.IsSpace misses the byte order mark
func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// uniqueID returns base, or base-1, base-2, ... whichever is first free.
func uniqueID(base string, list []Exercise) string {
	taken := make(map[string]struct{}, len(list))
	for _, ex := range list {
		taken[ex.ID] = struct{}{}
	}

	id := base
	for n := 1; ; n++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		id = base + "-" + strconv.Itoa(n)
	}
}
