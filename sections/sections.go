// Package sections splits document bodies into heading-addressed segments
// and compiles them into renderable HTML.
package sections

import (
	"strconv"
	"strings"
)

// OverviewKey is the reserved key for content preceding the first boundary
// heading.
const OverviewKey = "overview"

// boundaryPrefix marks the one heading depth that demarcates sections.
// Shallower and deeper headings are ordinary content.
const boundaryPrefix = "### "

// SectionMap holds raw section text keyed by slugified heading, preserving
// the order sections appear in the document. Keys, not order, are the
// addressing mechanism for consumers; order is kept for stable iteration.
type SectionMap struct {
	keys []string
	text map[string]string
}

// Keys returns the section keys in order of appearance.
func (m *SectionMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the raw text for key.
func (m *SectionMap) Get(key string) (string, bool) {
	s, ok := m.text[key]
	return s, ok
}

// Len returns the number of sections.
func (m *SectionMap) Len() int { return len(m.keys) }

func (m *SectionMap) add(key, text string) {
	m.keys = append(m.keys, key)
	m.text[key] = text
}

// SplitByHeading segments a document body at H3 headings.
//
// Each emitted section's text includes its own heading line, so downstream
// compilation preserves anchors. Content before the first boundary heading
// lands under OverviewKey; an empty overview entry is still emitted so
// single-document fetches can rely on the key, except when a heading itself
// slugifies to "overview" and would otherwise be displaced to "overview-2".
// Key collisions get -2, -3, ... suffixes in order of appearance. An empty
// body yields a single empty overview entry.
func SplitByHeading(body string) *SectionMap {
	leading, parts := segment(body)

	m := &SectionMap{text: map[string]string{}}

	emitOverview := true
	if leading == "" {
		for _, p := range parts {
			if p.slug == OverviewKey {
				emitOverview = false
				break
			}
		}
	}
	if emitOverview {
		m.add(OverviewKey, leading)
	}
	for _, p := range parts {
		m.add(m.uniqueKey(p.slug), p.text)
	}
	return m
}

type rawSection struct {
	slug string
	text string
}

// segment splits body lines at boundary headings. leading is the trimmed
// content before the first boundary.
func segment(body string) (leading string, parts []rawSection) {
	lines := strings.Split(body, "\n")

	var buf []string
	slug := ""
	started := false
	flush := func() {
		text := strings.Join(buf, "\n")
		if !started {
			leading = strings.TrimSpace(text)
		} else {
			parts = append(parts, rawSection{slug: slug, text: strings.TrimRight(text, "\n ")})
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, boundaryPrefix) {
			flush()
			started = true
			slug = Slugify(strings.TrimPrefix(line, boundaryPrefix))
		}
		buf = append(buf, line)
	}
	flush()
	return leading, parts
}

// uniqueKey disambiguates colliding keys with a numeric suffix.
func (m *SectionMap) uniqueKey(key string) string {
	if key == "" {
		key = "section"
	}
	if _, taken := m.text[key]; !taken {
		return key
	}
	for i := 2; ; i++ {
		candidate := key + "-" + strconv.Itoa(i)
		if _, taken := m.text[candidate]; !taken {
			return candidate
		}
	}
}

// Slugify converts heading text to a section key: lower-cased, whitespace to
// hyphens, punctuation stripped except hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var sb strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '\t':
			if !lastHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
		// Any other punctuation is dropped.
	}
	return strings.TrimSuffix(sb.String(), "-")
}
