// Package unwrap extracts the payload from platform API responses, which may
// return a bare array or nest it under one of several conventional keys.
package unwrap

// Keys returns a fresh candidate-key list: the resource specific keys first,
// followed by the conventional wrapper keys.
func Keys(resource ...string) []string {
	keys := make([]string, 0, len(resource)+3)
	keys = append(keys, resource...)
	return append(keys, "data", "items", "results")
}

// Payload returns the value stored under the first key of keys present on
// response. A key counts as present even if it holds null. Arrays, nil, and
// objects carrying none of the keys are returned unchanged. A nil keys list
// falls back to Keys().
func Payload(response any, keys []string) any {
	if response == nil {
		return nil
	}

	object, ok := response.(map[string]any)
	if !ok {
		// arrays and scalars are already the expected shape
		return response
	}

	if keys == nil {
		keys = Keys()
	}

	for _, key := range keys {
		if value, present := object[key]; present {
			return value
		}
	}

	return response
}

// List is Payload followed by a best-effort conversion to a slice. ok is false
// when the payload is not an array.
func List(response any, keys []string) (items []any, ok bool) {
	items, ok = Payload(response, keys).([]any)
	return
}
