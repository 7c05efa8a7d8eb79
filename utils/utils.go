package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// NilIfBlank returns nil for an empty or whitespace-only string.
func NilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
