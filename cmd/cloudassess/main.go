// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// cloudassess registers every cloud described in a clouds.yaml-style
// file with a juju client, along with adversarial variants of each,
// and verifies the persisted registry entries match what was asked.
// It prints one sorted status line for the succeeded set and one for
// the failed set, and exits non-zero if any attempt failed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/juju/utils/v4"

	"github.com/juju/cloudassess/assess"
	"github.com/juju/cloudassess/client"
	"github.com/juju/cloudassess/cloud"
)

var logger = loggo.GetLogger("cloudassess")

func main() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Main runs the harness and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	flags := gnuflag.NewFlagSet("cloudassess", gnuflag.ContinueOnError)
	flags.SetOutput(stderr)
	jujuPath := flags.String("juju", "juju", "path to the juju binary to drive")
	dataDir := flags.String("data-dir", "", "JUJU_DATA directory for the driven binary")
	loggingConfig := flags.String("logging-config", "<root>=WARNING", "loggo configuration")
	debug := flags.Bool("debug", false, "equivalent to --logging-config=<root>=DEBUG")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: cloudassess [options] <clouds.yaml>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(true, args); err != nil {
		if err == gnuflag.ErrHelp {
			return 0
		}
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	config := *loggingConfig
	if *debug {
		config = "<root>=DEBUG"
	}
	if err := loggo.ConfigureLoggers(config); err != nil {
		fmt.Fprintf(stderr, "ERROR %v\n", err)
		return 2
	}
	if err := run(flags.Arg(0), *jujuPath, *dataDir, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "ERROR %v\n", err)
		return 1
	}
	return 0
}

func run(cloudsPath, jujuPath, dataDir string, stdout, stderr io.Writer) error {
	cloudsPath, err := utils.NormalizePath(cloudsPath)
	if err != nil {
		return errors.Trace(err)
	}
	clouds, err := cloud.ParseCloudMetadataFile(cloudsPath)
	if err != nil {
		return errors.Trace(err)
	}
	if len(clouds) == 0 {
		return errors.Errorf("no clouds defined in %q", cloudsPath)
	}
	for name, definition := range clouds {
		if err := cloud.ValidateDefinition(name, definition); err != nil {
			return errors.Trace(err)
		}
	}
	if dataDir == "" {
		dataDir = os.Getenv("JUJU_DATA")
	}
	if dataDir, err = utils.NormalizePath(dataDir); err != nil {
		return errors.Trace(err)
	}
	cl, err := client.NewExecClient(client.ExecClientConfig{
		JujuPath: jujuPath,
		DataDir:  dataDir,
		Clock:    clock.WallClock,
	})
	if err != nil {
		return errors.Trace(err)
	}

	assessor := assess.NewAssessor(cl, stderr, logger)
	result := assessor.RunBatch(clouds)
	if err := assess.WriteStatus(stdout, "Succeeded", result.Succeeded); err != nil {
		return errors.Trace(err)
	}
	if err := assess.WriteStatus(stdout, "Failed", result.Failed); err != nil {
		return errors.Trace(err)
	}
	if !result.Failed.IsEmpty() {
		return errors.Errorf("%d cloud assessments failed", result.Failed.Size())
	}
	return nil
}
