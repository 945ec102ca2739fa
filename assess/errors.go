// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess

import (
	"github.com/juju/errors"

	"github.com/juju/cloudassess/cloud"
)

// MismatchError reports that the client's registry holds a definition
// that differs structurally from the one we asked it to register. The
// missing-cloud case is reported separately, as a juju/errors NotFound
// error.
type MismatchError struct {
	Expected cloud.Definition
	Actual   cloud.Definition
}

// Error is part of the error interface.
func (*MismatchError) Error() string {
	return "cloud mismatch"
}

// IsMismatchError reports whether err was caused by a cloud definition
// mismatch.
func IsMismatchError(err error) bool {
	_, ok := errors.Cause(err).(*MismatchError)
	return ok
}
