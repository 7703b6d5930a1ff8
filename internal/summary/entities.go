package summary

// Entity fields come back as free-form JSON; keywords in particular have been
// observed both as a single string and as a list depending on model version.

// MainCompany returns the entities' main_company field when present.
func MainCompany(entities map[string]interface{}) string {
	if entities == nil {
		return ""
	}
	if v, ok := entities["main_company"].(string); ok {
		return v
	}
	return ""
}

// Keywords normalizes the entities' keywords field to a string slice,
// accepting either a single string or a list of strings. Non-string list
// elements are skipped.
func Keywords(entities map[string]interface{}) []string {
	if entities == nil {
		return nil
	}
	switch v := entities["keywords"].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v
	default:
		return nil
	}
}
