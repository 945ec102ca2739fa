// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess

import (
	"strings"

	"github.com/juju/cloudassess/cloud"
)

// CloudSpec names a single assessment attempt. Label keys the outcome
// sets and the diagnostic output; Name is the name actually handed to
// the client, which differs from Label for probes that attack the name
// itself.
type CloudSpec struct {
	Label      string
	Name       string
	Definition cloud.Definition
}

const (
	bogusAuthSuffix = "bogus-auth"
	longNameSuffix  = "long-name"

	// longNameLength is comfortably beyond the longest cloud name any
	// client release has accepted.
	longNameLength = 4096
)

// IterClouds expands one nominal cloud into the full sequence of
// assessment attempts: the nominal definition first, unmodified, then
// a variant with its auth configuration invalidated, then a variant
// registered under an over-length name. The expansion never mutates
// the input definition.
func IterClouds(name string, definition cloud.Definition) []CloudSpec {
	return []CloudSpec{
		{Label: name, Name: name, Definition: definition},
		bogusAuthVariant(name, definition),
		longNameVariant(name, definition),
	}
}

func bogusAuthVariant(name string, definition cloud.Definition) CloudSpec {
	variant := definition.Copy()
	variant["auth-types"] = []interface{}{"bogus"}
	label := name + "-" + bogusAuthSuffix
	return CloudSpec{Label: label, Name: label, Definition: variant}
}

func longNameVariant(name string, definition cloud.Definition) CloudSpec {
	return CloudSpec{
		Label:      name + "-" + longNameSuffix,
		Name:       name + strings.Repeat("a", longNameLength),
		Definition: definition,
	}
}
