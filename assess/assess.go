// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package assess drives interactive cloud registration through a juju
// client and verifies that what the client persisted matches what was
// asked of it. Each nominal cloud is probed along with a fixed set of
// adversarial variants, individual failures are isolated, and the
// batch outcome is reported as two deterministic status lines.
package assess

import (
	"io"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/cloudassess/cloud"
)

// Client is the surface of the orchestration client the harness
// drives. Implementations register clouds and expose a read-only
// snapshot of their registry.
type Client interface {
	// AddCloudInteractive runs one interactive add-cloud session for
	// the named cloud.
	AddCloudInteractive(name string, definition cloud.Definition) error

	// ListClouds returns a snapshot of the clouds the client knows.
	ListClouds() (map[string]cloud.Definition, error)
}

// Assessor runs add-cloud attempts against a client and checks the
// persisted result. Mismatch dumps go to diag; per-variant batch
// failures go to logger.
type Assessor struct {
	client Client
	diag   io.Writer
	logger loggo.Logger
}

// NewAssessor returns an Assessor driving client, writing mismatch
// diagnostics to diag and batch failure reports to logger.
func NewAssessor(client Client, diag io.Writer, logger loggo.Logger) *Assessor {
	return &Assessor{
		client: client,
		diag:   diag,
		logger: logger,
	}
}

// AssessCloud registers one cloud through the client, reads the
// registry back, and compares the entry against the requested
// definition. All failures propagate unmodified; isolating them is
// the batch runner's job.
func (a *Assessor) AssessCloud(name string, definition cloud.Definition) error {
	if err := a.client.AddCloudInteractive(name, definition); err != nil {
		return errors.Trace(err)
	}
	clouds, err := a.client.ListClouds()
	if err != nil {
		return errors.Trace(err)
	}
	// A missing entry surfaces as a nil definition, which CompareClouds
	// treats as never-registered.
	return errors.Trace(CompareClouds(a.diag, definition, clouds[name]))
}
