package diagnostic

import (
	"fmt"
	"strings"

	suberrors "github.com/conneroisu/subsea/internal/errors"
)

// MaxWidth is the widest record accepted. Ratings are products of two
// decoded records, and 31-bit operands keep every product inside int64.
const MaxWidth = 31

// Bit is a single binary digit of a record.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// String returns "0" or "1".
func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

// Record is one fixed-width binary string from the diagnostic report,
// indexed left to right from column 0.
type Record struct {
	text  string
	value uint64
}

// ParseRecord validates a single token of '0' and '1' characters.
func ParseRecord(token string) (Record, error) {
	record, err := parseRecord(token)
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

func parseRecord(token string) (Record, *suberrors.SubseaError) {
	if token == "" {
		return Record{}, malformed("empty record")
	}
	if len(token) > MaxWidth {
		return Record{}, malformed(fmt.Sprintf("record %q is %d bits wide, maximum is %d", token, len(token), MaxWidth)).
			WithContext("width", len(token))
	}

	var value uint64
	for i := 0; i < len(token); i++ {
		value <<= 1
		switch token[i] {
		case '0':
		case '1':
			value |= 1
		default:
			return Record{}, malformed(fmt.Sprintf("record %q has invalid character %q at column %d", token, token[i], i)).
				WithContext("column", i)
		}
	}

	return Record{text: token, value: value}, nil
}

// ParseRecords parses every line into a Record. All records must share the
// width of the first one; the first offending line aborts the parse.
func ParseRecords(lines []string) ([]Record, error) {
	if len(lines) == 0 {
		return nil, emptyInput()
	}

	records := make([]Record, 0, len(lines))
	width := -1
	for i, line := range lines {
		token := strings.TrimSpace(line)
		record, err := parseRecord(token)
		if err != nil {
			return nil, err.WithLine(i + 1)
		}

		if width < 0 {
			width = record.Width()
		} else if record.Width() != width {
			return nil, widthMismatch(record, width).WithLine(i + 1)
		}

		records = append(records, record)
	}

	return records, nil
}

// MustParseRecords is ParseRecords for fixed inputs known to be valid.
func MustParseRecords(lines ...string) []Record {
	records, err := ParseRecords(lines)
	if err != nil {
		panic(err)
	}
	return records
}

// Width returns the number of bits in the record.
func (r Record) Width() int {
	return len(r.text)
}

// Bit returns the bit at column i.
func (r Record) Bit(i int) Bit {
	if r.text[i] == '1' {
		return One
	}
	return Zero
}

// Value decodes the record as an unsigned binary integer, most significant
// bit first.
func (r Record) Value() uint64 {
	return r.value
}

// String returns the record's original text.
func (r Record) String() string {
	return r.text
}

// checkWidths reports the common width of records, or an error when the
// slice is empty or widths differ.
func checkWidths(records []Record) (int, error) {
	if len(records) == 0 {
		return 0, emptyInput()
	}

	width := records[0].Width()
	if width == 0 {
		return 0, malformed("empty record").WithLine(1)
	}
	for i, record := range records[1:] {
		if record.Width() != width {
			return 0, widthMismatch(record, width).WithLine(i + 2)
		}
	}

	return width, nil
}
