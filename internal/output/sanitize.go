package output

// Sentinel replaces values that TOML cannot carry while keeping their key.
const Sentinel = "NONE"

// Sanitize returns a copy of m in which every empty string, nil and empty
// map value has been replaced with Sentinel, at every nesting level. Map
// elements of slices are sanitized recursively; other slice elements and
// empty slices are left as they are.
//
// TOML has no null. The sentinel is not standard TOML; it keeps the
// encoded key set identical to the input's.
func Sanitize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case []any:
			items := make([]any, len(val))
			for i, item := range val {
				if nested, ok := item.(map[string]any); ok {
					items[i] = Sanitize(nested)
				} else {
					items[i] = item
				}
			}
			v = items
		case map[string]any:
			v = Sanitize(val)
		}

		if isEmpty(v) {
			out[k] = Sentinel
		} else {
			out[k] = v
		}
	}
	return out
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	}
	return false
}
