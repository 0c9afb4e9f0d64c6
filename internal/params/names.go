package params

import (
	"sort"
	"strings"

	"github.com/slackbridge/slackbridge/internal/constants"
)

// NormalizePrefix trims trailing separators so "/a/" and "/a" name the same prefix.
func NormalizePrefix(prefix string) string {
	return strings.TrimRight(strings.TrimSpace(prefix), constants.ParameterPathSeparator)
}

// JoinName builds the full parameter name of key under prefix.
func JoinName(prefix, key string) string {
	return NormalizePrefix(prefix) + constants.ParameterPathSeparator +
		strings.TrimLeft(key, constants.ParameterPathSeparator)
}

// ListPrefix returns the value used to match names below prefix.
func ListPrefix(prefix string) string {
	return NormalizePrefix(prefix) + constants.ParameterPathSeparator
}

// RelativeName strips prefix from a full parameter name.
// It reports false when name is not below prefix.
func RelativeName(prefix, name string) (string, bool) {
	rel, ok := strings.CutPrefix(name, ListPrefix(prefix))
	if !ok || rel == "" {
		return "", false
	}
	return rel, true
}

// SortedKeys returns the keys of values in lexical order.
func SortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
