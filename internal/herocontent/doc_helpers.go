package herocontent

// Helpers for reading and copying the duck-typed documents returned by the
// store. Raw documents have no schema enforcement, so every read tolerates
// missing keys and wrong types by degrading to the zero value.

func asMap(value any) Document {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return Document{}
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// aliasedString reads the first key present in the document, matching the
// legacy writers that stored the same concept under different names. Presence
// wins over the fallback key even when the value is empty.
func aliasedString(raw Document, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key]; ok {
			return stringValue(value)
		}
	}
	return ""
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		if strs, ok := value.([]string); ok {
			return cloneStrings(strs)
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringValue(item))
	}
	return out
}

func anyList(value any) []any {
	items, ok := value.([]any)
	if !ok {
		return []any{}
	}
	return deepCopyList(items)
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func filterEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func deepCopyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return deepCopyMap(typed)
	case []any:
		return deepCopyList(typed)
	default:
		return value
	}
}

func deepCopyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = deepCopyValue(value)
	}
	return out
}

func deepCopyList(src []any) []any {
	out := make([]any, len(src))
	for i, value := range src {
		out[i] = deepCopyValue(value)
	}
	return out
}

// CloneDocument deep-copies a raw document. Repositories use it to keep
// caller-owned data from aliasing stored state.
func CloneDocument(doc Document) Document {
	return deepCopyMap(doc)
}
