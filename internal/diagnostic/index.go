package diagnostic

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// columnIndex is an inverted index over a record set: for every column it
// holds the ids (positions in records) of the records with a 1 bit there.
// It is read-only once built and safe to share between goroutines.
type columnIndex struct {
	records []Record
	width   int
	all     *roaring.Bitmap
	columns []*roaring.Bitmap
}

// newColumnIndex validates records and indexes them in a single pass.
func newColumnIndex(records []Record) (*columnIndex, error) {
	width, err := checkWidths(records)
	if err != nil {
		return nil, err
	}

	idx := &columnIndex{
		records: append([]Record(nil), records...),
		width:   width,
		all:     roaring.New(),
		columns: make([]*roaring.Bitmap, width),
	}
	for col := range idx.columns {
		idx.columns[col] = roaring.New()
	}

	for id, record := range records {
		idx.all.Add(uint32(id))
		for col := 0; col < width; col++ {
			if record.Bit(col) == One {
				idx.columns[col].Add(uint32(id))
			}
		}
	}

	idx.all.RunOptimize()
	for _, bm := range idx.columns {
		bm.RunOptimize()
	}

	return idx, nil
}

// ones returns how many records have a 1 bit at col.
func (idx *columnIndex) ones(col int) int {
	return int(idx.columns[col].GetCardinality())
}

// partition splits set by the bit at col. Neither input is modified.
func (idx *columnIndex) partition(set *roaring.Bitmap, col int) (zeros, ones *roaring.Bitmap) {
	ones = roaring.And(set, idx.columns[col])
	zeros = roaring.AndNot(set, idx.columns[col])
	return zeros, ones
}

// record returns the record with the given id.
func (idx *columnIndex) record(id uint32) Record {
	return idx.records[id]
}
