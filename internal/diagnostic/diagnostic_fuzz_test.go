package diagnostic

import (
	"context"
	"strconv"
	"strings"
	"testing"
)

// FuzzParseRecord checks accepted tokens decode the way strconv does.
func FuzzParseRecord(f *testing.F) {
	for _, seed := range []string{"0", "10110", "01010", "", "10a1", strings.Repeat("1", MaxWidth+1)} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, token string) {
		record, err := ParseRecord(token)
		if err != nil {
			return
		}
		if record.String() != token || record.Width() != len(token) {
			t.Fatalf("record %q round-tripped as %q", token, record.String())
		}
		want, perr := strconv.ParseUint(token, 2, 64)
		if perr != nil {
			t.Fatalf("accepted %q that strconv rejects: %v", token, perr)
		}
		if record.Value() != want {
			t.Errorf("Value(%q) = %d, want %d", token, record.Value(), want)
		}
	})
}

// FuzzFilter feeds arbitrary newline separated input through parse and
// both filters; valid input must resolve to one of its own records.
func FuzzFilter(f *testing.F) {
	f.Add("00100\n11110\n10110\n10111\n10101\n01111\n00111\n11100\n10000\n11001\n00010\n01010")
	f.Add("10\n10")
	f.Add("1\n0\n1x")

	f.Fuzz(func(t *testing.T, text string) {
		records, err := ParseRecords(strings.Split(text, "\n"))
		if err != nil {
			return
		}
		filter, err := NewFilter(records)
		if err != nil {
			t.Fatalf("parsed records rejected by filter: %v", err)
		}

		for _, c := range []Criteria{OxygenGenerator, CO2Scrubber} {
			trace, err := filter.Trace(context.Background(), c)
			if err != nil {
				continue
			}
			found := false
			for _, r := range records {
				if r.String() == trace.Record.String() {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%s resolved to %q which is not an input record", c, trace.Record)
			}
		}
	})
}
