// AngelaMos | 2026
// merge.go

package settings

// Policy says how an update field is combined with the stored value.
type Policy int

const (
	// Replace overwrites the stored value. Arrays always replace.
	Replace Policy = iota
	// ShallowMerge copies the supplied object's keys over the stored
	// object. A null leaves the stored object untouched.
	ShallowMerge
	// KeyedMerge shallow-merges each supplied entry into the stored entry
	// of the same key. Keys not already stored are dropped.
	KeyedMerge
)

// Policies maps top-level document fields to their merge policy. Fields
// not listed use Replace.
type Policies map[string]Policy

var (
	websitePolicies = Policies{
		"businessInfo": ShallowMerge,
		"socialMedia":  ShallowMerge,
		"seo":          ShallowMerge,
		"logo":         ShallowMerge,
		"favicon":      ShallowMerge,
	}
	homePolicies    = Policies{}
	contactPolicies = Policies{
		"contactUsFormFields": KeyedMerge,
	}
	aboutUsPolicies = Policies{}
)

// Merge applies patch to current under policies and returns a new map.
// Neither input is modified.
func Merge(current, patch map[string]any, policies Policies) map[string]any {
	out := make(map[string]any, len(current)+len(patch))
	for k, v := range current {
		out[k] = v
	}

	for key, val := range patch {
		policy := policies[key]
		if policy == Replace {
			out[key] = val
			continue
		}

		if val == nil {
			continue
		}

		obj, ok := val.(map[string]any)
		if !ok {
			out[key] = val
			continue
		}

		switch policy {
		case ShallowMerge:
			out[key] = shallowMerge(asObject(out[key]), obj)
		case KeyedMerge:
			out[key] = keyedMerge(asObject(out[key]), obj)
		}
	}

	return out
}

func shallowMerge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

func keyedMerge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}

	for k, v := range patch {
		stored, exists := base[k]
		if !exists {
			continue
		}
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out[k] = shallowMerge(asObject(stored), entry)
	}

	return out
}

func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
