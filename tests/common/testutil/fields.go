//go:build unit || e2e

package testutil

// Field builds a mutation for DtoMap. A nil value drops the key entirely,
// which is how required-field omission cases are expressed.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
