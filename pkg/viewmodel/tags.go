package viewmodel

import "strings"

// AddTag appends the trimmed tag unless it is blank or already present.
// The boolean reports whether tags changed.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags, false
	}
	for _, existing := range tags {
		if existing == tag {
			return tags, false
		}
	}

	out := make([]string, 0, len(tags)+1)
	out = append(out, tags...)
	return append(out, tag), true
}

func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, existing := range tags {
		if existing != tag {
			out = append(out, existing)
		}
	}
	return out
}
