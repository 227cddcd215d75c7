// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package trie

import "grimm.is/aclcheck/internal/bitmap"

// NumDimensions is the fixed number of rule dimensions indexed by a Forest:
// protocol, source address, destination address, source port, destination port.
const NumDimensions = 5

// Dimension indices, matching the fixed ordering used throughout the
// Forest, Rule, and Classifier.
const (
	DimProtocol = 0
	DimSrcIP    = 1
	DimDstIP    = 2
	DimSrcPort  = 3
	DimDstPort  = 4
)

// Forest owns one Trie per dimension for a single ACL's analysis.
type Forest struct {
	tries   [NumDimensions]*Trie
	aclSize uint32
}

// NewForest builds a forest of five empty tries sized for aclSize rules.
func NewForest(aclSize uint32) *Forest {
	f := &Forest{aclSize: aclSize}
	for i := range f.tries {
		f.tries[i] = New(aclSize)
	}
	return f
}

// AddRule inserts position's five per-dimension prefixes and returns the
// candidate bitmap: earlier positions comparable in every dimension at
// once, obtained by ANDing each dimension's own candidate bitmap.
func (f *Forest) AddRule(position uint32, prefixes [NumDimensions][]bool) (*bitmap.Bitmap, error) {
	result := bitmap.New(f.aclSize, true)

	for d := 0; d < NumDimensions; d++ {
		c, err := f.tries[d].Insert(prefixes[d], position)
		if err != nil {
			return nil, err
		}
		if err := result.AndAssign(c); err != nil {
			return nil, err
		}
	}

	return result, nil
}
