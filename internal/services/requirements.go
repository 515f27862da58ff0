package services

import "strings"

// ParseRequirements normalizes a comma-delimited free-text field into a
// list: segments are trimmed and empty segments dropped. Used for both
// job requirements and profile skills.
func ParseRequirements(raw string) []string {
	out := []string{}
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}
