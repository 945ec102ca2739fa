// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package assess_test

import (
	"bytes"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/cloudassess/assess"
	"github.com/juju/cloudassess/client/clienttesting"
	"github.com/juju/cloudassess/cloud"
)

type batchSuite struct {
	testing.IsolationSuite

	diag   bytes.Buffer
	writer loggo.TestWriter
	logger loggo.Logger
}

var _ = gc.Suite(&batchSuite{})

func (s *batchSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.diag.Reset()
	s.writer.Clear()
	context := loggo.NewContext(loggo.TRACE)
	c.Assert(context.AddWriter("test", &s.writer), jc.ErrorIsNil)
	s.logger = context.GetLogger("test.batch")
}

func (s *batchSuite) newAssessor(client assess.Client) *assess.Assessor {
	return assess.NewAssessor(client, &s.diag, s.logger)
}

func (s *batchSuite) failureEntries() []loggo.Entry {
	var entries []loggo.Entry
	for _, entry := range s.writer.Log() {
		if entry.Level == loggo.ERROR {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (s *batchSuite) TestRunBatchAllSucceed(c *gc.C) {
	fake := clienttesting.NewFake()
	result := s.newAssessor(fake).RunBatch(map[string]cloud.Definition{
		"a": {"type": "foo"},
	})
	c.Assert(result.Succeeded.SortedValues(), jc.DeepEquals, []string{
		"a", "a-bogus-auth", "a-long-name",
	})
	c.Assert(result.Failed.IsEmpty(), jc.IsTrue)
	c.Assert(s.failureEntries(), gc.HasLen, 0)
}

func (s *batchSuite) TestRunBatchIsolatesFailures(c *gc.C) {
	fake := clienttesting.NewFake()
	// Every attempt except a's nominal registration fails.
	fake.RejectAdd = func(name string, _ cloud.Definition) error {
		if name == "a" {
			return nil
		}
		return errors.Errorf("rejected %.16q", name)
	}
	result := s.newAssessor(fake).RunBatch(map[string]cloud.Definition{
		"a": {"type": "foo"},
		"b": {"type": "bar"},
	})

	c.Assert(result.Succeeded.SortedValues(), jc.DeepEquals, []string{"a"})
	c.Assert(result.Failed.SortedValues(), jc.DeepEquals, []string{
		"a-bogus-auth", "a-long-name", "b", "b-bogus-auth", "b-long-name",
	})
	// Each failure is reported to the diagnostic channel exactly once.
	entries := s.failureEntries()
	c.Assert(entries, gc.HasLen, 5)
	reported := set.NewStrings()
	for _, entry := range entries {
		c.Check(entry.Message, gc.Matches, `assessment of cloud ".*" failed: .*`)
		reported.Add(entry.Message)
	}
	c.Assert(reported.Size(), gc.Equals, 5)
}

func (s *batchSuite) TestRunBatchOutcomeSetsPartitionExpansion(c *gc.C) {
	fake := clienttesting.NewFake()
	fake.MaxNameLength = 68
	fake.RejectAdd = func(_ string, definition cloud.Definition) error {
		if authTypes, ok := definition["auth-types"].([]interface{}); ok {
			for _, authType := range authTypes {
				if authType == "bogus" {
					return errors.New("unsupported auth type")
				}
			}
		}
		return nil
	}
	clouds := map[string]cloud.Definition{
		"a": {"type": "foo"},
		"b": {"type": "bar"},
	}
	result := s.newAssessor(fake).RunBatch(clouds)

	expansion := set.NewStrings()
	for name, definition := range clouds {
		for _, spec := range assess.IterClouds(name, definition) {
			expansion.Add(spec.Label)
		}
	}
	c.Assert(result.Succeeded.Intersection(result.Failed).IsEmpty(), jc.IsTrue)
	c.Assert(result.Succeeded.Union(result.Failed), jc.DeepEquals, expansion)
	c.Assert(result.Succeeded.SortedValues(), jc.DeepEquals, []string{"a", "b"})
	c.Assert(result.Failed.SortedValues(), jc.DeepEquals, []string{
		"a-bogus-auth", "a-long-name", "b-bogus-auth", "b-long-name",
	})
}

func (s *batchSuite) TestRunBatchMismatchDumpsDiagnostics(c *gc.C) {
	fake := clienttesting.NewFake()
	fake.StoreAs = func(_ string, definition cloud.Definition) cloud.Definition {
		// Persist every registration with its endpoint dropped.
		stored := definition.Copy()
		delete(stored, "endpoint")
		return stored
	}
	result := s.newAssessor(fake).RunBatch(map[string]cloud.Definition{
		"foo": {"type": "maas", "endpoint": "http://bar.example.com"},
	})
	c.Assert(result.Succeeded.Contains("foo"), jc.IsFalse)
	c.Assert(result.Failed.Contains("foo"), jc.IsTrue)
	c.Assert(s.diag.String(), jc.Contains, "Expected:\nendpoint: http://bar.example.com\ntype: maas\n")
}

func (s *batchSuite) TestRunBatchEmpty(c *gc.C) {
	fake := clienttesting.NewFake()
	result := s.newAssessor(fake).RunBatch(nil)
	c.Assert(result.Succeeded.IsEmpty(), jc.IsTrue)
	c.Assert(result.Failed.IsEmpty(), jc.IsTrue)
}
