package hmapsizes

import (
	"encoding/binary"
	"fmt"
	"slices"
	"sort"

	"github.com/zeebo/xxh3"

	hmerrors "github.com/tamirms/hmapsizes/errors"
	"github.com/tamirms/hmapsizes/internal/growth"
	"github.com/tamirms/hmapsizes/internal/witness"
)

// Entry is one row of the size table: the power level it was seeded from,
// the capacity limit, the table length and the reduction bias.
type Entry = growth.Entry

// Table is the generated witness set and size entries. It is immutable once
// returned by Generate.
type Table struct {
	witnesses witness.Set
	entries   []Entry
}

// Len returns the number of size entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the i-th size entry.
func (t *Table) Entry(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the size entries in ascending power order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Witnesses returns a copy of the witness primes in ascending order.
func (t *Table) Witnesses() []uint32 {
	return slices.Clone([]uint32(t.witnesses))
}

// Select returns the index of the smallest entry whose capacity limit is at
// least n. This is how the pointer map picks its initial table.
func (t *Table) Select(n uint32) (int, error) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Limit >= n
	})
	if i == len(t.entries) {
		return 0, fmt.Errorf("%w: capacity %d", hmerrors.ErrCapacityOutOfRange, n)
	}
	return i, nil
}

// Grow returns the index of the entry following i, the rehash target of a
// table that exceeded its limit.
func (t *Table) Grow(i int) (int, error) {
	if i < 0 || i+1 >= len(t.entries) {
		return 0, fmt.Errorf("%w: no entry after index %d", hmerrors.ErrCapacityOutOfRange, i)
	}
	return i + 1, nil
}

// Verify checks the table against the sizing invariants: witnesses keep the
// default seed and increase strictly, powers run from MinPower to MaxPower
// without gaps, and every size is odd, accepted by the witness set, strictly
// larger than the previous one and carries the matching limit and bias.
// Violations wrap ErrInvalidTable.
func (t *Table) Verify() error {
	if !slices.Equal(witness.DefaultSeed, []uint32(t.witnesses[:min(len(t.witnesses), len(witness.DefaultSeed))])) {
		return fmt.Errorf("%w: witness set does not start with the default seed", hmerrors.ErrInvalidTable)
	}
	for i := 1; i < len(t.witnesses); i++ {
		if t.witnesses[i] <= t.witnesses[i-1] {
			return fmt.Errorf("%w: witness %d not above %d", hmerrors.ErrInvalidTable, t.witnesses[i], t.witnesses[i-1])
		}
	}

	if len(t.entries) != MaxPower-MinPower+1 {
		return fmt.Errorf("%w: %d entries, want %d", hmerrors.ErrInvalidTable, len(t.entries), MaxPower-MinPower+1)
	}
	for i, e := range t.entries {
		if e.Power != MinPower+i {
			return fmt.Errorf("%w: entry %d has power %d, want %d", hmerrors.ErrInvalidTable, i, e.Power, MinPower+i)
		}
		if e.Size%2 == 0 {
			return fmt.Errorf("%w: power %d size %d is even", hmerrors.ErrInvalidTable, e.Power, e.Size)
		}
		if !t.witnesses.Coprime(uint64(e.Size)) {
			return fmt.Errorf("%w: power %d size %d has a witness factor", hmerrors.ErrInvalidTable, e.Power, e.Size)
		}
		if i > 0 && e.Size <= t.entries[i-1].Size {
			return fmt.Errorf("%w: power %d size %d not above %d", hmerrors.ErrInvalidTable, e.Power, e.Size, t.entries[i-1].Size)
		}
		if want := growth.Limit(e.Size); e.Limit != want {
			return fmt.Errorf("%w: power %d limit %d, want %d", hmerrors.ErrInvalidTable, e.Power, e.Limit, want)
		}
		if want := growth.Bias(e.Size); e.Bias != want {
			return fmt.Errorf("%w: power %d bias %d, want %d", hmerrors.ErrInvalidTable, e.Power, e.Bias, want)
		}
		if !e.ProbeCoprime() {
			return fmt.Errorf("%w: power %d size %d shares a factor with a probe step", hmerrors.ErrInvalidTable, e.Power, e.Size)
		}
	}
	return nil
}

// Fingerprint returns the xxHash3 digest of the table's binary form:
// witnesses, then (power, limit, size, bias) per entry, each as a
// little-endian uint32.
func (t *Table) Fingerprint() uint64 {
	buf := make([]byte, 0, 4*(len(t.witnesses)+4*len(t.entries)))
	for _, q := range t.witnesses {
		buf = binary.LittleEndian.AppendUint32(buf, q)
	}
	for _, e := range t.entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Power))
		buf = binary.LittleEndian.AppendUint32(buf, e.Limit)
		buf = binary.LittleEndian.AppendUint32(buf, e.Size)
		buf = binary.LittleEndian.AppendUint32(buf, e.Bias)
	}
	return xxh3.Hash(buf)
}
