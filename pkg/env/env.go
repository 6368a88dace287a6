// Package env reads loose environment variables that sit outside the
// envconfig-managed GREENLOOP_ prefix.
package env

import (
	"os"
	"strings"
)

// Lookup returns the trimmed value of key. Blank values count as unset.
func Lookup(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}

// Get returns the value of key or fallback.
func Get(key, fallback string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return fallback
}

// First returns the first set value among keys, or "".
func First(keys ...string) string {
	for _, key := range keys {
		if val, ok := Lookup(key); ok {
			return val
		}
	}
	return ""
}
