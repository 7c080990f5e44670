package lookup

import (
	"cmp"
	"slices"
)

// Resolve votes on every field across the candidates of all documents.
//
// For each field the candidates are pooled in document order. The value seen
// most often wins if it was seen at least twice; ties go to the value seen
// first. When nothing repeats, the first pooled value wins. An empty pool
// leaves the field absent.
func Resolve(all []Candidates) Record {
	var record Record
	for _, f := range Fields {
		record.set(f, vote(pool(all, f)))
	}
	return record
}

func pool(all []Candidates, f Field) []string {
	var values []string
	for _, c := range all {
		values = append(values, c.Values(f)...)
	}
	return values
}

func vote(values []string) Value {
	if len(values) == 0 {
		return Value{}
	}

	counts := make(map[string]int, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			distinct = append(distinct, v)
		}
		counts[v]++
	}

	slices.SortStableFunc(distinct, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})

	if winner := distinct[0]; counts[winner] > 1 {
		return Some(winner)
	}
	return Some(values[0])
}
