// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess

import (
	"fmt"
	"io"
	"reflect"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"

	"github.com/juju/cloudassess/cloud"
)

// CompareClouds checks the definition read back from the client's
// registry against the one we asked it to register. A nil actual means
// the cloud never appeared in the registry at all, and yields a
// NotFound error. A structural mismatch dumps both definitions to diag
// in sorted-key YAML form, then yields a *MismatchError. Equality is
// structural, key by key, recursively through nested mappings.
func CompareClouds(diag io.Writer, expected, actual cloud.Definition) error {
	if actual == nil {
		return errors.NotFoundf("cloud")
	}
	if reflect.DeepEqual(map[string]interface{}(expected), map[string]interface{}(actual)) {
		return nil
	}
	if err := dumpComparison(diag, expected, actual); err != nil {
		return errors.Annotate(err, "cannot render cloud mismatch")
	}
	return &MismatchError{Expected: expected, Actual: actual}
}

// dumpComparison writes both sides of a failed comparison. The layout
// is parsed by external tooling; keep it stable.
func dumpComparison(w io.Writer, expected, actual cloud.Definition) error {
	expectedYAML, err := yaml.Marshal(expected)
	if err != nil {
		return errors.Trace(err)
	}
	actualYAML, err := yaml.Marshal(actual)
	if err != nil {
		return errors.Trace(err)
	}
	_, err = fmt.Fprintf(w, "Expected:\n%s\nActual:\n%s", expectedYAML, actualYAML)
	return errors.Trace(err)
}
