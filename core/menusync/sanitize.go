package menusync

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
	classPattern = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	attrKeyChars = regexp.MustCompile(`[^a-z0-9_:.-]`)
)

var linkTargets = map[string]struct{}{
	"_self":   {},
	"_blank":  {},
	"_parent": {},
	"_top":    {},
}

// cleanText normalizes a single-line field: NFC, no tags, no control characters, single spaces.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// cleanMultiline is cleanText for fields that may keep line breaks.
func cleanMultiline(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		out = append(out, cleanText(line))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// cleanURL keeps absolute http(s), mailto and tel URLs, root-relative paths and fragments.
// Anything else becomes empty.
func cleanURL(raw string) string {
	raw = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == ' ' {
			return -1
		}
		return r
	}, raw))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "#") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return ""
		}
		return u.String()
	case "mailto", "tel":
		if u.Opaque == "" && u.Path == "" {
			return ""
		}
		return u.String()
	case "":
		// Root-relative only; "//host" is scheme-relative and rejected.
		if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
			return u.String()
		}
	}
	return ""
}

func cleanLinkTarget(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := linkTargets[s]; ok {
		return s
	}
	return ""
}

// cleanClasses splits every entry on whitespace, reduces tokens to class-safe characters and
// drops duplicates, keeping the first occurrence.
func cleanClasses(classes []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range classes {
		for _, token := range strings.Fields(entry) {
			token = classPattern.ReplaceAllString(token, "")
			if token == "" {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}

// cleanKey reduces an identifier (content type, taxonomy, attribute key) to lower-case key characters.
func cleanKey(s string) string {
	return attrKeyChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

func cleanAttributes(attrs map[string]string) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	// Keys that clean to the same key keep the value of the first raw key in sorted order.
	for _, k := range sortedKeys(attrs) {
		key := cleanKey(k)
		if key == "" {
			continue
		}
		if _, taken := out[key]; taken {
			continue
		}
		out[key] = cleanText(attrs[k])
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cleanItem applies the field cleaners to p. Applying it twice changes nothing.
func cleanItem(p PortableItem) PortableItem {
	p.ReferenceType = cleanKey(p.ReferenceType)
	p.Label = cleanText(p.Label)
	p.URL = cleanURL(p.URL)
	p.LinkTarget = cleanLinkTarget(p.LinkTarget)
	p.CSSClasses = cleanClasses(p.CSSClasses)
	p.RelAttributes = cleanText(p.RelAttributes)
	p.Description = cleanMultiline(p.Description)
	p.TitleAttribute = cleanText(p.TitleAttribute)
	p.Attributes = cleanAttributes(p.Attributes)
	if !p.Kind.IsReference() {
		p.ReferenceType = ""
		p.ReferenceID = 0
	}
	if p.ParentSourceItemID < 0 {
		p.ParentSourceItemID = 0
	}
	return p
}

// cleanMenu returns a cleaned copy of a menu that did not come from extraction, such as a
// stored snapshot or an API payload.
func cleanMenu(m *PortableMenu) *PortableMenu {
	out := *m
	out.Name = cleanText(m.Name)
	out.Slug = strings.TrimSpace(m.Slug)
	out.DisplaySlots = nil
	for _, slot := range m.DisplaySlots {
		if slot = strings.TrimSpace(slot); slot != "" {
			out.DisplaySlots = append(out.DisplaySlots, slot)
		}
	}
	out.Items = make([]PortableItem, len(m.Items))
	for i, it := range m.Items {
		out.Items[i] = cleanItem(it)
	}
	return &out
}
