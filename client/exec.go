// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package client implements the production add-cloud client: it runs
// interactive add-cloud sessions against a real juju binary and reads
// the resulting cloud registry back from the client's data directory.
package client

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/retry"

	"github.com/juju/cloudassess/cloud"
)

var logger = loggo.GetLogger("cloudassess.client")

// The juju process writes clouds.yaml non-atomically, so a read racing
// an add-cloud from a previous attempt can see a torn file. A couple
// of short retries covers it.
const (
	registryReadAttempts = 3
	registryReadDelay    = 50 * time.Millisecond
)

// ExecClientConfig holds the dependencies of an ExecClient.
type ExecClientConfig struct {
	// JujuPath is the juju binary to drive. Defaults to "juju",
	// resolved on the PATH.
	JujuPath string

	// DataDir is the JUJU_DATA directory the driven binary stores its
	// registry in.
	DataDir string

	// Clock paces registry-read retries.
	Clock clock.Clock
}

// Validate returns an error if the config is unusable.
func (cfg ExecClientConfig) Validate() error {
	if cfg.DataDir == "" {
		return errors.NotValidf("empty DataDir")
	}
	if cfg.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	return nil
}

// ExecClient drives a juju binary. It implements assess.Client.
type ExecClient struct {
	jujuPath string
	dataDir  string
	clock    clock.Clock
}

// NewExecClient returns an ExecClient using the supplied config.
func NewExecClient(cfg ExecClientConfig) (*ExecClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	jujuPath := cfg.JujuPath
	if jujuPath == "" {
		jujuPath = "juju"
	}
	return &ExecClient{
		jujuPath: jujuPath,
		dataDir:  cfg.DataDir,
		clock:    cfg.Clock,
	}, nil
}

// AddCloudInteractive runs one `juju add-cloud` session, answering the
// interactive prompts from the supplied definition.
func (c *ExecClient) AddCloudInteractive(name string, definition cloud.Definition) error {
	session := exec.Command(c.jujuPath, "add-cloud")
	session.Env = append(os.Environ(), "JUJU_DATA="+c.dataDir)
	session.Stdin = strings.NewReader(interactiveAnswers(name, definition))
	out, err := session.CombinedOutput()
	if err != nil {
		return errors.Annotatef(err, "add-cloud %q: %s", name, strings.TrimSpace(string(out)))
	}
	logger.Debugf("added cloud %q: %s", name, strings.TrimSpace(string(out)))
	return nil
}

// interactiveAnswers renders the prompt answers for one add-cloud
// session. The prompt order is fixed by the juju binary: cloud type,
// cloud name, then the API endpoint.
func interactiveAnswers(name string, definition cloud.Definition) string {
	answers := []string{
		fmt.Sprint(definition["type"]),
		name,
	}
	if endpoint, ok := definition["endpoint"]; ok {
		answers = append(answers, fmt.Sprint(endpoint))
	}
	return strings.Join(answers, "\n") + "\n"
}

// ListClouds reads the registry the driven binary persists. A missing
// registry file means no clouds are known yet.
func (c *ExecClient) ListClouds() (map[string]cloud.Definition, error) {
	path := filepath.Join(c.dataDir, "clouds.yaml")
	var clouds map[string]cloud.Definition
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			data, err := os.ReadFile(path)
			if os.IsNotExist(errors.Cause(err)) {
				clouds = make(map[string]cloud.Definition)
				return nil
			} else if err != nil {
				return errors.Trace(err)
			}
			clouds, err = cloud.ParseCloudMetadata(data)
			return errors.Trace(err)
		},
		NotifyFunc: func(err error, attempt int) {
			logger.Debugf("cannot read cloud registry (attempt %d): %v", attempt, err)
		},
		Attempts: registryReadAttempts,
		Delay:    registryReadDelay,
		Clock:    c.clock,
	})
	if err != nil {
		return nil, errors.Annotate(err, "cannot read cloud registry")
	}
	return clouds, nil
}
