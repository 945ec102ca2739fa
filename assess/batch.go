// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess

import (
	"sort"

	"github.com/juju/collections/set"

	"github.com/juju/cloudassess/cloud"
)

// Result holds the outcome of one batch run. Every label submitted to
// the batch, nominal or variant, lands in exactly one of the two sets.
type Result struct {
	Succeeded set.Strings
	Failed    set.Strings
}

// RunBatch assesses every nominal cloud in clouds together with its
// adversarial variants. A failing attempt is logged and recorded in
// the failure set at that single attempt's granularity; it never
// prevents the remaining attempts from running. The batch performs
// exactly len(clouds) * 3 attempts, with no retries.
func (a *Assessor) RunBatch(clouds map[string]cloud.Definition) Result {
	result := Result{
		Succeeded: set.NewStrings(),
		Failed:    set.NewStrings(),
	}
	names := make([]string, 0, len(clouds))
	for name := range clouds {
		names = append(names, name)
	}
	// The outcome sets are order-insensitive; sorting just makes the
	// diagnostic log stable between runs.
	sort.Strings(names)
	for _, name := range names {
		for _, spec := range IterClouds(name, clouds[name]) {
			if err := a.AssessCloud(spec.Name, spec.Definition); err != nil {
				a.logger.Errorf("assessment of cloud %q failed: %v", spec.Label, err)
				result.Failed.Add(spec.Label)
				continue
			}
			result.Succeeded.Add(spec.Label)
		}
	}
	return result
}
