package models

import "strings"

// ClampProgress coerces a progress value into [0,100].
func ClampProgress(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// ParseTags splits a comma-separated tag string into a normalized slice.
// Empty segments are dropped.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// JoinTags renders a tag slice back into the comma-separated form used by
// editing surfaces.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
