// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package cloud holds the definition format used when registering
// clouds with a juju client, and the parsing of clouds.yaml-style
// metadata files that carry them.
package cloud

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/names/v5"
	"github.com/juju/schema"
	"gopkg.in/yaml.v2"
)

// Definition describes one cloud as the client's registry records it:
// a free-form mapping of configuration keys (type, endpoint,
// auth-types, regions, ...) to string or nested-mapping values.
type Definition map[string]interface{}

// Copy returns a deep copy of the definition, so callers can derive
// modified variants without touching the original.
func (d Definition) Copy() Definition {
	if d == nil {
		return nil
	}
	out := make(Definition, len(d))
	for key, value := range d {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			out[k] = copyValue(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, v := range typed {
			out[i] = copyValue(v)
		}
		return out
	default:
		return typed
	}
}

// metadata mirrors the top-level shape of a clouds.yaml file.
type metadata struct {
	Clouds map[string]interface{} `yaml:"clouds"`
}

var definitionChecker = schema.StringMap(schema.Any())

// ParseCloudMetadata reads cloud definitions out of clouds.yaml-style
// data: a "clouds" key mapping cloud names to definitions. Empty data,
// or data without a clouds key, yields an empty result. Definitions
// are structurally coerced only; use ValidateDefinition for the
// stricter checks applied to batch input.
func ParseCloudMetadata(data []byte) (map[string]Definition, error) {
	var raw metadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "cannot unmarshal cloud metadata")
	}
	clouds := make(map[string]Definition, len(raw.Clouds))
	for name, value := range raw.Clouds {
		if value == nil {
			clouds[name] = nil
			continue
		}
		coerced, err := definitionChecker.Coerce(value, nil)
		if err != nil {
			return nil, errors.Annotatef(err, "cloud %q", name)
		}
		conformed, err := ConformYAML(coerced)
		if err != nil {
			return nil, errors.Annotatef(err, "cloud %q", name)
		}
		clouds[name] = Definition(conformed.(map[string]interface{}))
	}
	return clouds, nil
}

// ParseCloudMetadataFile parses the clouds.yaml-style file at path.
func ParseCloudMetadataFile(path string) (map[string]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	clouds, err := ParseCloudMetadata(data)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot parse %q", path)
	}
	return clouds, nil
}

// ValidateDefinition checks that a nominal cloud supplied as batch
// input is something the client could plausibly accept: a valid cloud
// name and a definition carrying at least a type.
func ValidateDefinition(name string, definition Definition) error {
	if !names.IsValidCloud(name) {
		return errors.NotValidf("cloud name %q", name)
	}
	if definition == nil {
		return errors.NotValidf("empty definition for cloud %q", name)
	}
	if _, ok := definition["type"].(string); !ok {
		return errors.NotValidf("cloud %q without a type", name)
	}
	return nil
}
