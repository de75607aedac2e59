// Copyright 2024 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/blinklabs-io/btcprim/internal/cli"
	"github.com/blinklabs-io/btcprim/internal/config"
	"github.com/blinklabs-io/btcprim/internal/logging"
	"github.com/blinklabs-io/btcprim/internal/version"
)

var cmdlineFlags struct {
	configFile string
	network    string
	output     string
}

func main() {
	flag.StringVar(
		&cmdlineFlags.configFile,
		"config",
		"",
		"path to config file to load",
	)
	flag.StringVar(
		&cmdlineFlags.network,
		"network",
		"",
		"network to use, overriding the config",
	)
	flag.StringVar(
		&cmdlineFlags.output,
		"output",
		"",
		"output format (text or json), overriding the config",
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <command> [args]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		cli.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	// Command line flags take precedence over the config file and environment
	overrides := map[string]string{
		"NETWORK":       cmdlineFlags.network,
		"OUTPUT_FORMAT": cmdlineFlags.output,
	}
	for key, val := range overrides {
		if val == "" {
			continue
		}
		if err := os.Setenv(key, val); err != nil {
			fmt.Printf("Failed to apply flag override: %s\n", err)
			os.Exit(1)
		}
	}

	// Load config
	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}

	// Configure logging
	if err := logging.Setup(); err != nil {
		fmt.Printf("Failed to configure logging: %s\n", err)
		os.Exit(1)
	}
	logger := logging.GetLogger()
	// Sync logger on exit
	defer func() {
		if err := logger.Sync(); err != nil {
			// We don't actually care about the error here, but we have to do something
			// to appease the linter
			return
		}
	}()

	logger.Debug(
		fmt.Sprintf("btcprim %s started", version.GetVersionString()),
	)

	params, err := cfg.ChainParams()
	if err != nil {
		logger.Fatalf("failed to load network parameters: %s", err)
	}
	env := &cli.Env{
		Params: params,
		Format: cfg.Output.Format,
		Out:    os.Stdout,
	}
	if err := cli.Run(env, flag.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			flag.Usage()
			// Deferred functions do not run on os.Exit
			_ = logger.Sync()
			os.Exit(2)
		}
		logger.Errorf("command failed: %s", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
