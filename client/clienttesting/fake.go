// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package clienttesting provides an in-memory add-cloud client whose
// behaviour is a deterministic function of each call's inputs, for
// tests that must not depend on call ordering.
package clienttesting

import (
	"github.com/juju/errors"

	"github.com/juju/cloudassess/cloud"
)

// Fake is an in-memory implementation of the harness client
// capability. The zero behaviour registers every cloud faithfully;
// the hooks below bend individual calls.
type Fake struct {
	// RejectAdd, when set, is consulted before an add attempt is
	// recorded; a non-nil return fails the attempt.
	RejectAdd func(name string, definition cloud.Definition) error

	// StoreAs, when set, decides what an add attempt actually lands in
	// the registry; returning nil stores nothing, modelling a
	// registration the client silently dropped.
	StoreAs func(name string, definition cloud.Definition) cloud.Definition

	// MaxNameLength mirrors the client's cloud name limit. Zero means
	// no limit.
	MaxNameLength int

	// ListErr, when set, fails every registry read.
	ListErr error

	clouds map[string]cloud.Definition
}

// NewFake returns a Fake with an empty registry.
func NewFake() *Fake {
	return &Fake{clouds: make(map[string]cloud.Definition)}
}

// SetCloud seeds the registry directly, bypassing the add hooks.
func (f *Fake) SetCloud(name string, definition cloud.Definition) {
	f.clouds[name] = definition.Copy()
}

// AddCloudInteractive implements the client capability.
func (f *Fake) AddCloudInteractive(name string, definition cloud.Definition) error {
	if f.MaxNameLength > 0 && len(name) > f.MaxNameLength {
		return errors.Errorf("cloud name %.8q... too long", name)
	}
	if f.RejectAdd != nil {
		if err := f.RejectAdd(name, definition); err != nil {
			return errors.Trace(err)
		}
	}
	stored := definition.Copy()
	if f.StoreAs != nil {
		stored = f.StoreAs(name, definition)
	}
	if stored == nil {
		return nil
	}
	f.clouds[name] = stored
	return nil
}

// ListClouds implements the client capability.
func (f *Fake) ListClouds() (map[string]cloud.Definition, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	snapshot := make(map[string]cloud.Definition, len(f.clouds))
	for name, definition := range f.clouds {
		snapshot[name] = definition.Copy()
	}
	return snapshot, nil
}
