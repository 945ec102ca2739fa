// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cloud

import (
	"github.com/juju/errors"
)

// ConformYAML ensures all keys of any nested maps are strings. YAML
// unmarshals nested maps as map[interface{}]interface{}, which makes
// structural comparison against definitions built in code impossible.
// Slices are conformed element-wise.
func ConformYAML(input interface{}) (interface{}, error) {
	switch typed := input.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{})
		for key, value := range typed {
			conformed, err := ConformYAML(value)
			if err != nil {
				return nil, errors.Trace(err)
			}
			out[key] = conformed
		}
		return out, nil

	case map[interface{}]interface{}:
		out := make(map[string]interface{})
		for key, value := range typed {
			typedKey, ok := key.(string)
			if !ok {
				return nil, errors.Errorf("map keyed with non-string value %v", key)
			}
			out[typedKey] = value
		}
		return ConformYAML(out)

	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, value := range typed {
			conformed, err := ConformYAML(value)
			if err != nil {
				return nil, errors.Trace(err)
			}
			out[i] = conformed
		}
		return out, nil

	default:
		return input, nil
	}
}
