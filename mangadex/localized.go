package mangadex

import (
	"sort"

	"golang.org/x/text/language"
)

// LocalizedString maps a locale code such as "en" or "ja-ro" to text.
type LocalizedString map[string]string

// Best returns the entry that best matches prefs. Without a usable match it
// falls back to "en", then to the lowest locale key.
func (l LocalizedString) Best(prefs ...language.Tag) (string, bool) {
	if len(l) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(prefs) > 0 {
		var tags []language.Tag
		var tagKeys []string
		for _, k := range keys {
			tag, err := language.Parse(k)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
			tagKeys = append(tagKeys, k)
		}
		if len(tags) > 0 {
			_, i, confidence := language.NewMatcher(tags).Match(prefs...)
			if confidence != language.No {
				return l[tagKeys[i]], true
			}
		}
	}

	if v, ok := l["en"]; ok {
		return v, true
	}
	return l[keys[0]], true
}
