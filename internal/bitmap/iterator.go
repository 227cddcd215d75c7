// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package bitmap

import aclerrors "grimm.is/aclcheck/internal/errors"

// OnesIterator yields the ascending positions of set bits in [start, stop)
// of the Bitmap it was built from, without decompressing the vector.
// It borrows the Bitmap's run slice for its lifetime and must not be used
// across a mutating operation on that Bitmap.
type OnesIterator struct {
	runs       []uint32
	activeWord uint32
	activeBits uint32
	size       uint32

	stop uint32

	pos        int // index of the run the cursor currently sits in
	runStart   int64
	runEnd     int64
	lastOne    int64
	reachedEnd bool
}

// runLength returns the number of bits a run word represents: groupBits
// for a Literal, groupBits*count for a Fill.
func runLength(word uint32) int64 {
	if word > literalAll {
		return groupBits * int64(word&countMask)
	}
	return groupBits
}

// IterOnes returns an iterator over the set bit positions in [start, stop).
func (b *Bitmap) IterOnes(start, stop uint32) (*OnesIterator, error) {
	if stop < start {
		return nil, aclerrors.Errorf(aclerrors.KindInvalidRange, "bitmap: iterator stop %d < start %d", stop, start)
	}

	stopClamped := stop
	if stop > b.size {
		stopClamped = b.size
	}

	it := &OnesIterator{
		runs:       b.runs,
		activeWord: b.activeWord,
		activeBits: b.activeBits,
		size:       b.size,
		stop:       stopClamped,
		lastOne:    int64(start) - 1,
	}

	activeStart := int64(b.size - b.activeBits)

	if len(it.runs) == 0 || int64(start) >= activeStart {
		it.pos = len(it.runs)
		it.runStart = activeStart
		it.runEnd = int64(b.size) - 1
		return it, nil
	}

	it.runStart = 0
	it.runEnd = runLength(it.runs[0]) - 1

	for !(int64(start) >= it.runStart && int64(start) <= it.runEnd) {
		it.pos++
		it.runStart = it.runEnd + 1
		it.runEnd = it.runStart + runLength(it.runs[it.pos]) - 1
	}

	return it, nil
}

// Next returns the next set bit position, or (0, false) when exhausted.
func (it *OnesIterator) Next() (uint32, bool) {
	if it.reachedEnd {
		return 0, false
	}

	indexToCheck := it.lastOne + 1

	if indexToCheck >= int64(it.stop) {
		it.reachedEnd = true
		return 0, false
	}

	for it.pos < len(it.runs) {
		if indexToCheck > it.runEnd {
			it.pos++
			if it.pos >= len(it.runs) {
				break
			}
			it.runStart = it.runEnd + 1
			it.runEnd = it.runStart + runLength(it.runs[it.pos]) - 1
		}

		word := it.runs[it.pos]

		if word > literalAll {
			if word >= fillOneTag {
				it.lastOne = indexToCheck
				return uint32(it.lastOne), true
			}
			indexToCheck = it.runEnd + 1
			if indexToCheck >= int64(it.stop) {
				it.reachedEnd = true
				return 0, false
			}
			continue
		}

		for indexToCheck <= it.runEnd {
			mask := uint32(0x40000000) >> (uint32(indexToCheck-it.runStart) % groupBits)
			if word&mask == mask {
				it.lastOne = indexToCheck
				return uint32(it.lastOne), true
			}
			indexToCheck++
			if indexToCheck >= int64(it.stop) {
				it.reachedEnd = true
				return 0, false
			}
		}
	}

	for indexToCheck < int64(it.size) {
		mask := uint32(0x80000000) >> (uint32(indexToCheck-it.runStart) % groupBits)
		if it.activeWord&mask == mask {
			it.lastOne = indexToCheck
			return uint32(it.lastOne), true
		}
		indexToCheck++
		if indexToCheck >= int64(it.stop) {
			break
		}
	}

	it.reachedEnd = true
	return 0, false
}
