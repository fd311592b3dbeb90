package parser

import "strings"

// ParseTags splits "Lead, #important,client" into tag names.
// A leading # is dropped; blanks and repeats are skipped.
func ParseTags(input string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, part := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' }) {
		tag := strings.TrimPrefix(strings.TrimSpace(part), "#")
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		tags = append(tags, tag)
	}
	return tags
}
