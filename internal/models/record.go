package models

import "sort"

// CompletionRecord is the first step at which every city of a country held
// every currency. Once recorded it never changes.
type CompletionRecord struct {
	Country string `json:"country" yaml:"country"`
	Step    int    `json:"step" yaml:"step"`
}

// SortRecords orders records by step ascending, then by country name.
func SortRecords(records []CompletionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Step != records[j].Step {
			return records[i].Step < records[j].Step
		}
		return records[i].Country < records[j].Country
	})
}
