package diagnostic

// FrequencyTable counts, per column, how many records carry a 1 bit.
// It is immutable once built.
type FrequencyTable struct {
	width int
	total int
	ones  []int
}

// Build counts the one bits of every column in a single pass over records.
// It fails with ErrEmptyInput for no records and ErrMalformedRecord when
// record widths differ.
func Build(records []Record) (*FrequencyTable, error) {
	idx, err := newColumnIndex(records)
	if err != nil {
		return nil, err
	}
	return idx.frequencies(), nil
}

func (idx *columnIndex) frequencies() *FrequencyTable {
	table := &FrequencyTable{
		width: idx.width,
		total: len(idx.records),
		ones:  make([]int, idx.width),
	}
	for col := range table.ones {
		table.ones[col] = idx.ones(col)
	}
	return table
}

// Width returns the shared record width W.
func (t *FrequencyTable) Width() int { return t.width }

// Total returns the number of records counted.
func (t *FrequencyTable) Total() int { return t.total }

// Ones returns the number of records with a 1 bit at col.
func (t *FrequencyTable) Ones(col int) int { return t.ones[col] }

// Counts returns a copy of the per-column one counts.
func (t *FrequencyTable) Counts() []int {
	out := make([]int, len(t.ones))
	copy(out, t.ones)
	return out
}

// GammaRate sets a column's bit when strictly more than half of the records
// have a 1 there. An exact tie yields 0.
func (t *FrequencyTable) GammaRate() uint64 {
	return t.assemble(func(ones int) bool { return 2*ones > t.total })
}

// EpsilonRate sets a column's bit when strictly less than half of the
// records have a 1 there. An exact tie yields 0, so under a tie column
// epsilon is not the bitwise complement of gamma.
func (t *FrequencyTable) EpsilonRate() uint64 {
	return t.assemble(func(ones int) bool { return 2*ones < t.total })
}

// PowerConsumption is GammaRate * EpsilonRate.
func (t *FrequencyTable) PowerConsumption() uint64 {
	return t.GammaRate() * t.EpsilonRate()
}

func (t *FrequencyTable) assemble(set func(ones int) bool) uint64 {
	var rate uint64
	for _, ones := range t.ones {
		rate <<= 1
		if set(ones) {
			rate |= 1
		}
	}
	return rate
}
