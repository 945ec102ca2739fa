// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// WriteStatus renders one status line to w: the status label, then the
// names sorted lexicographically and comma-joined, or "none" when the
// set is empty. The line is parsed by external tooling and must stay
// byte-stable regardless of set iteration order.
func WriteStatus(w io.Writer, status string, names set.Strings) error {
	rendered := "none"
	if !names.IsEmpty() {
		rendered = strings.Join(names.SortedValues(), ", ")
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", status, rendered)
	return errors.Trace(err)
}
