// Package diagnostic decodes the submarine's binary diagnostic report.
//
// A report is a list of equal-width binary records. Two figures are derived
// from it:
//
//   - Power consumption, from a FrequencyTable: the gamma rate takes the
//     most common bit of every column, the epsilon rate the least common,
//     and the two are multiplied.
//   - Life support rating, from two Filter runs: records are repeatedly
//     partitioned by the bit at the current column and only the partition
//     chosen by a Criteria survives, until a single record is left. The
//     oxygen generator and CO2 scrubber ratings use opposite criteria and
//     their product is the rating.
//
// Records are indexed once into per-column roaring bitmaps; table counts are
// bitmap cardinalities and every filter round is an And/AndNot against the
// surviving set. All values are immutable after construction, so Analyze
// evaluates both filter runs concurrently.
//
// # Usage
//
//	records, err := diagnostic.ParseRecords(lines)
//	if err != nil {
//		return err
//	}
//	report, err := diagnostic.Analyze(ctx, records)
//	fmt.Println(report.PowerConsumption, report.LifeSupportRating)
package diagnostic
