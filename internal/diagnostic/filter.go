package diagnostic

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/conneroisu/subsea/internal/logging"
)

// Criteria decides which partition survives a filtering round.
type Criteria struct {
	// PreferMajority keeps the records sharing the more common bit;
	// otherwise the less common bit wins.
	PreferMajority bool
	// TieBreak is the bit kept when both partitions are the same size.
	TieBreak Bit
}

var (
	// OxygenGenerator keeps the most common bit, preferring 1 on ties.
	OxygenGenerator = Criteria{PreferMajority: true, TieBreak: One}
	// CO2Scrubber keeps the least common bit, preferring 0 on ties.
	CO2Scrubber = Criteria{PreferMajority: false, TieBreak: Zero}
)

// Select returns the bit whose partition survives given the partition sizes.
func (c Criteria) Select(zeros, ones int) Bit {
	switch {
	case zeros == ones:
		return c.TieBreak
	case (ones > zeros) == c.PreferMajority:
		return One
	default:
		return Zero
	}
}

func (c Criteria) String() string {
	pref := "minority"
	if c.PreferMajority {
		pref = "majority"
	}
	return fmt.Sprintf("%s/tie=%s", pref, c.TieBreak)
}

// Round records one partitioning step of a filter run.
type Round struct {
	Column    int `json:"column" yaml:"column"`
	Zeros     int `json:"zeros" yaml:"zeros"`
	Ones      int `json:"ones" yaml:"ones"`
	Kept      Bit `json:"kept" yaml:"kept"`
	Surviving int `json:"surviving" yaml:"surviving"`
}

// Trace is the full history of a filter run and its outcome.
type Trace struct {
	Criteria Criteria
	Rounds   []Round
	Record   Record
	Value    uint64
}

// filterState is the working set of a single run: the ids of the records
// still in play and the next column to inspect.
type filterState struct {
	surviving *roaring.Bitmap
	column    int
}

// Filter narrows a fixed record set down to one record under a Criteria.
// A Filter is read-only after construction; concurrent runs share nothing
// mutable.
type Filter struct {
	idx    *columnIndex
	logger logging.Logger
}

// NewFilter validates records and indexes them for filtering.
func NewFilter(records []Record, opts ...Option) (*Filter, error) {
	o := collectOptions(opts)
	idx, err := newColumnIndex(records)
	if err != nil {
		return nil, err
	}
	return &Filter{idx: idx, logger: o.logger.WithComponent(component)}, nil
}

// Width returns the record width W.
func (f *Filter) Width() int { return f.idx.width }

// Len returns the number of records being filtered.
func (f *Filter) Len() int { return len(f.idx.records) }

// Frequencies returns the frequency table of the whole record set.
func (f *Filter) Frequencies() *FrequencyTable { return f.idx.frequencies() }

// Run filters until one record remains and returns it decoded.
func (f *Filter) Run(ctx context.Context, criteria Criteria) (uint64, error) {
	trace, err := f.Trace(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return trace.Value, nil
}

// Trace runs the filter and keeps every round. It fails with
// ErrExhaustedColumns when more than one record survives the last column,
// which only happens for duplicate records.
func (f *Filter) Trace(ctx context.Context, criteria Criteria) (*Trace, error) {
	state := filterState{surviving: f.idx.all.Clone()}
	trace := &Trace{Criteria: criteria}

	for state.surviving.GetCardinality() > 1 {
		if state.column >= f.idx.width {
			return nil, exhaustedColumns(f.idx.width, state.surviving.GetCardinality()).
				WithContext("criteria", criteria.String())
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var round Round
		state, round = f.step(state, criteria)
		trace.Rounds = append(trace.Rounds, round)

		f.logger.Debug(ctx, "filter round",
			"criteria", criteria.String(),
			"column", round.Column,
			"zeros", round.Zeros,
			"ones", round.Ones,
			"kept", round.Kept.String(),
			"surviving", round.Surviving)
	}

	trace.Record = f.idx.record(state.surviving.Minimum())
	trace.Value = trace.Record.Value()
	return trace, nil
}

// step applies one transition. When every survivor shares the column's bit
// the empty side is never selected; the column simply does not narrow.
func (f *Filter) step(state filterState, criteria Criteria) (filterState, Round) {
	zeros, ones := f.idx.partition(state.surviving, state.column)
	nz, no := int(zeros.GetCardinality()), int(ones.GetCardinality())

	kept := criteria.Select(nz, no)
	if (kept == One && no == 0) || (kept == Zero && nz == 0) {
		kept ^= 1
	}

	next := zeros
	if kept == One {
		next = ones
	}

	round := Round{
		Column:    state.column,
		Zeros:     nz,
		Ones:      no,
		Kept:      kept,
		Surviving: int(next.GetCardinality()),
	}
	return filterState{surviving: next, column: state.column + 1}, round
}

// Run filters records under criteria and returns the surviving record
// decoded as an unsigned integer.
func Run(records []Record, criteria Criteria) (uint64, error) {
	f, err := NewFilter(records)
	if err != nil {
		return 0, err
	}
	return f.Run(context.Background(), criteria)
}

// OxygenGeneratorRating filters with the OxygenGenerator criteria.
func OxygenGeneratorRating(records []Record) (uint64, error) {
	return Run(records, OxygenGenerator)
}

// CO2ScrubberRating filters with the CO2Scrubber criteria.
func CO2ScrubberRating(records []Record) (uint64, error) {
	return Run(records, CO2Scrubber)
}

// LifeSupportRating is OxygenGeneratorRating * CO2ScrubberRating.
func LifeSupportRating(records []Record) (uint64, error) {
	oxygen, err := OxygenGeneratorRating(records)
	if err != nil {
		return 0, err
	}
	co2, err := CO2ScrubberRating(records)
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}
