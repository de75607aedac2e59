// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cli

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/blinklabs-io/btcprim/pow"
)

func runBits(env *Env, fs *flag.FlagSet, args []string) (Result, error) {
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	bits, err := pow.ParseCompactTarget(rest[0])
	if err != nil {
		return nil, err
	}
	target := bits.Target()
	res := Result{}.
		add("bits", bits.String()).
		add("target", target).
		add("canonical_bits", target.Compact().String())
	return addTargetStats(env, res, target), nil
}

func runTarget(env *Env, fs *flag.FlagSet, args []string) (Result, error) {
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	target, err := pow.TargetFromHex(rest[0])
	if err != nil {
		return nil, err
	}
	res := Result{}.
		add("target", target).
		add("bits", target.Compact().String())
	return addTargetStats(env, res, target), nil
}

func addTargetStats(env *Env, res Result, target pow.Target) Result {
	res = res.add("above_pow_limit", target.Cmp(env.Params.PowLimit) > 0)
	if target.IsZero() {
		return res.add("achievable", false)
	}
	return res.
		add("difficulty", target.Difficulty(env.Params.PowLimitBits.Target())).
		add("work", target.Work())
}

func runHeader(env *Env, fs *flag.FlagSet, args []string) (Result, error) {
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	header, err := hex.DecodeString(rest[0])
	if err != nil {
		return nil, fmt.Errorf("invalid header hex: %w", err)
	}
	hash, err := pow.CheckHeader(header, env.Params.PowLimit)
	res := Result{}.add("hash", hash)
	switch {
	case err == nil:
		res = res.add("valid_pow", true)
	case errors.Is(err, pow.ErrHashAboveTarget),
		errors.Is(err, pow.ErrTargetTooHigh),
		errors.Is(err, pow.ErrUnachievableTarget):
		res = res.add("valid_pow", false).add("reason", err.Error())
	default:
		return nil, err
	}
	return res.add("genesis", hash == env.Params.GenesisHash), nil
}

func runRetarget(env *Env, fs *flag.FlagSet, args []string) (Result, error) {
	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return nil, err
	}
	bits, err := pow.ParseCompactTarget(rest[0])
	if err != nil {
		return nil, err
	}
	timespan, err := strconv.ParseInt(rest[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timespan %q: %w", rest[1], err)
	}
	next := pow.NextTarget(bits, timespan, env.Params.RetargetParams())
	return Result{}.
		add("network", env.Params.Name).
		add("previous_bits", bits.String()).
		add("next_bits", next.String()).
		add("next_target", next.Target()), nil
}
