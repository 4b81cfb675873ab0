// Copyright 2021 Datafuse Labs.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import "github.com/RoaringBitmap/roaring/v2"

// Validity is a per-row validity bitmap. A set bit means the row holds a
// valid, non-null value. Validity values are immutable once a column owns
// them; Append is only legal while a single producer is still building one.
type Validity struct {
	bits   *roaring.Bitmap
	length int
}

// NewValidity returns a bitmap of the given length with every bit set to
// valid.
func NewValidity(length int, valid bool) *Validity {
	v := &Validity{bits: roaring.New(), length: length}
	if valid && length > 0 {
		v.bits.AddRange(0, uint64(length))
	}
	return v
}

// NewValidityFromBools builds a bitmap from a bool slice, true meaning valid.
func NewValidityFromBools(valid []bool) *Validity {
	v := &Validity{bits: roaring.New(), length: len(valid)}
	for i, ok := range valid {
		if ok {
			v.bits.Add(uint32(i))
		}
	}
	return v
}

// Append adds one bit at the end of the bitmap.
func (v *Validity) Append(valid bool) {
	if valid {
		v.bits.Add(uint32(v.length))
	}
	v.length++
}

// Len returns the number of rows covered by the bitmap.
func (v *Validity) Len() int { return v.length }

// ValidAt reports whether the row holds a valid value.
func (v *Validity) ValidAt(row int) bool { return v.bits.Contains(uint32(row)) }

// AllNull reports whether no row is valid.
func (v *Validity) AllNull() bool { return v.bits.IsEmpty() }

// AllValid reports whether every row is valid.
func (v *Validity) AllValid() bool { return v.bits.GetCardinality() == uint64(v.length) }

// NullCount returns the number of null rows.
func (v *Validity) NullCount() int { return v.length - int(v.bits.GetCardinality()) }

// Clone returns a deep copy.
func (v *Validity) Clone() *Validity {
	return &Validity{bits: v.bits.Clone(), length: v.length}
}

// And intersects two bitmaps of equal length. A row of the result is valid
// only if it is valid on both sides.
func (v *Validity) And(other *Validity) *Validity {
	return &Validity{bits: roaring.And(v.bits, other.bits), length: v.length}
}

// Slice returns the bitmap restricted to [offset, offset+length), rebased to
// zero.
func (v *Validity) Slice(offset, length int) *Validity {
	out := &Validity{bits: roaring.New(), length: length}
	it := v.bits.Iterator()
	it.AdvanceIfNeeded(uint32(offset))
	for it.HasNext() {
		row := int(it.Next())
		if row >= offset+length {
			break
		}
		out.bits.Add(uint32(row - offset))
	}
	return out
}

// Replicate repeats row i (offsets[i] - offsets[i-1]) times, following the
// column replicate law: offsets is non-decreasing, len(offsets) equals the
// bitmap length and offsets[i] is the cumulative output length.
func (v *Validity) Replicate(offsets []int) *Validity {
	if len(offsets) == 0 {
		return NewValidity(0, false)
	}
	out := &Validity{bits: roaring.New(), length: offsets[len(offsets)-1]}
	prev := 0
	for i, end := range offsets {
		if v.ValidAt(i) && end > prev {
			out.bits.AddRange(uint64(prev), uint64(end))
		}
		prev = end
	}
	return out
}

// MemorySize returns the approximate heap footprint in bytes.
func (v *Validity) MemorySize() int { return int(v.bits.GetSizeInBytes()) }
