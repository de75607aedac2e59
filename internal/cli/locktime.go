// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cli

import (
	"flag"

	"github.com/blinklabs-io/btcprim/locktime"
)

func runLockTime(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	height := fs.Uint("height", 0, "current block height")
	mtp := fs.Uint("time", 0, "current median time past")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	val, err := parseUint32(rest[0])
	if err != nil {
		return nil, err
	}
	lock := locktime.FromConsensus(val)
	res := Result{}.
		add("locktime", lock.String()).
		add("unit", lock.Unit().String()).
		add("consensus", lock.ToConsensus())
	if flagSet(fs, "height") || flagSet(fs, "time") {
		satisfied := lock.IsSatisfiedBy(
			locktime.Height(uint32(*height)),
			locktime.Time(uint32(*mtp)),
		)
		res = res.add("satisfied", satisfied)
	}
	return res, nil
}

func runSequence(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	blocks := fs.Uint("blocks", 0, "blocks elapsed since the spent output confirmed")
	seconds := fs.Uint("seconds", 0, "seconds elapsed since the spent output confirmed")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	val, err := parseUint32(rest[0])
	if err != nil {
		return nil, err
	}
	seq := locktime.Sequence(val)
	res := Result{}.
		add("sequence", seq.String()).
		add("final", seq.IsFinal()).
		add("rbf", seq.IsRBF()).
		add("enables_locktime", seq.EnablesAbsoluteLockTime())
	if lock, ok := seq.RelativeLockTime(); ok {
		res = res.add("relative_locktime", lock.String())
	} else {
		res = res.add("relative_locktime", "disabled")
	}
	if flagSet(fs, "blocks") || flagSet(fs, "seconds") {
		res = res.add("satisfied", seq.Satisfies(uint32(*blocks), uint32(*seconds)))
	}
	return res, nil
}
