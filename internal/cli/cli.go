// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package cli implements the btcprim subcommands
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/blinklabs-io/btcprim/chaincfg"
	"github.com/blinklabs-io/btcprim/internal/config"
	"github.com/blinklabs-io/btcprim/internal/logging"
	"github.com/blinklabs-io/btcprim/internal/version"
)

var ErrUsage = errors.New("usage error")

// Env is the context shared by all subcommands
type Env struct {
	Params *chaincfg.Params
	Format string
	Out    io.Writer
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(env *Env, fs *flag.FlagSet, args []string) (Result, error)
}

var commands = []command{
	{
		name:    "bits",
		usage:   "bits <compact>",
		summary: "decode a compact target",
		run:     runBits,
	},
	{
		name:    "target",
		usage:   "target <hex>",
		summary: "encode a 256-bit target",
		run:     runTarget,
	},
	{
		name:    "header",
		usage:   "header <header-hex>",
		summary: "hash a block header and check its proof of work",
		run:     runHeader,
	},
	{
		name:    "retarget",
		usage:   "retarget <bits> <timespan-seconds>",
		summary: "compute the next difficulty target",
		run:     runRetarget,
	},
	{
		name:    "merkle",
		usage:   "merkle [-index N] <txid>...",
		summary: "compute a transaction Merkle root and path",
		run:     runMerkle,
	},
	{
		name:    "witness",
		usage:   "witness [-reserved hex] <wtxid>...",
		summary: "compute a witness root and commitment",
		run:     runWitness,
	},
	{
		name:    "tapleaf",
		usage:   "tapleaf [-version V] <script-hex>",
		summary: "hash a tapscript leaf",
		run:     runTapLeaf,
	},
	{
		name:    "taptweak",
		usage:   "taptweak <x-only-key> [merkle-root]",
		summary: "tweak an internal key into a taproot output",
		run:     runTapTweak,
	},
	{
		name:    "locktime",
		usage:   "locktime [-height H] [-time T] <locktime>",
		summary: "interpret an absolute lock time",
		run:     runLockTime,
	},
	{
		name:    "sequence",
		usage:   "sequence [-blocks B] [-seconds S] <sequence>",
		summary: "interpret an input sequence number",
		run:     runSequence,
	},
	{
		name:    "version",
		usage:   "version",
		summary: "show version information",
		run:     runVersion,
	},
}


// Names returns the available subcommand names
func Names() []string {
	ret := make([]string, 0, len(commands))
	for _, cmd := range commands {
		ret = append(ret, cmd.name)
	}
	return ret
}

// Usage writes the list of subcommands to w
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-46s %s\n", cmd.usage, cmd.summary)
	}
}

// Run executes the subcommand named by args[0] and writes its result
func Run(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	idx := slices.IndexFunc(commands, func(c command) bool {
		return c.name == args[0]
	})
	if idx < 0 {
		return fmt.Errorf(
			"%w: unknown command: %s: available commands: %s",
			ErrUsage,
			args[0],
			strings.Join(Names(), ","),
		)
	}
	cmd := commands[idx]
	logger := logging.GetCommandLogger(cmd.name)
	logger.Debugw("running command", "args", args[1:])

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	res, err := cmd.run(env, fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
		}
		return fmt.Errorf("%s: %w", cmd.name, err)
	}
	return writeResult(env, res)
}

func writeResult(env *Env, res Result) error {
	switch env.Format {
	case config.OutputFormatJson:
		enc := json.NewEncoder(env.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return res.WriteText(env.Out)
	}
}

// parseArgs parses flags and checks the positional argument count
func parseArgs(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	rest := fs.Args()
	if len(rest) < minArgs || (maxArgs >= 0 && len(rest) > maxArgs) {
		return nil, fmt.Errorf("%w: wrong number of arguments", ErrUsage)
	}
	return rest, nil
}

// flagSet reports whether the named flag was given on the command line
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseUint32 accepts decimal or 0x-prefixed hex
func parseUint32(s string) (uint32, error) {
	val, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit value %q: %w", s, err)
	}
	return uint32(val), nil
}

func runVersion(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return nil, err
	}
	return Result{}.
		add("version", version.Version).
		add("commit", version.CommitHash).
		add("full", version.GetFullVersionString()), nil
}
