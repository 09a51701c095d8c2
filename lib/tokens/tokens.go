package tokens

import (
	"encoding/json"
	"sort"
	"strings"
)

// Tokenize replaces every occurrence of each key of values in input. Longer
// keys are replaced first so a key that prefixes another cannot clobber it.
func Tokenize(input string, values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, values[k])
	}
	return strings.NewReplacer(pairs...).Replace(input)
}

// JSONEscape returns values with every value escaped for use inside a JSON
// string literal.
func JSONEscape(values map[string]string) map[string]string {
	escaped := make(map[string]string, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			escaped[k] = v
			continue
		}
		escaped[k] = string(b[1 : len(b)-1])
	}
	return escaped
}
