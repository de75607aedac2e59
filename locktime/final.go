// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package locktime

// IsFinalTx reports whether a transaction with the given lock time and
// input sequences may be included in a block at height whose median time
// past is mtp. A zero lock time, or one strictly below the matching value,
// is always final. Otherwise every input must have a final sequence.
func IsFinalTx(lock LockTime, height Height, mtp Time, sequences []Sequence) bool {
	if lock == nil || lock.ToConsensus() == 0 {
		return true
	}
	switch l := lock.(type) {
	case Height:
		if l < height {
			return true
		}
	case Time:
		if l < mtp {
			return true
		}
	}
	for _, seq := range sequences {
		if !seq.IsFinal() {
			return false
		}
	}
	return true
}
