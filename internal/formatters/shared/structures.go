// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"pii-recognition/internal/detector"
)

// Record represents a single finding in flat form for CSV/YAML output
type Record struct {
	Row      int    `json:"row" yaml:"row"`
	Category string `json:"category" yaml:"category"`
	Value    string `json:"value" yaml:"value"`
	Span     string `json:"span" yaml:"span"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Context  string `json:"context,omitempty" yaml:"context,omitempty"`
}

// ConvertRowToRecords flattens one row's findings in category order
func ConvertRowToRecords(rf detector.RowFindings, withContext bool) []Record {
	var records []Record
	for _, cf := range rf.Categories {
		for _, f := range cf.Findings {
			r := Record{
				Row:      rf.Index,
				Category: cf.Category,
				Value:    f.Value,
				Span:     f.Span(),
				Start:    f.Start,
				End:      f.End,
			}
			if withContext {
				r.Context = f.Context
			}
			records = append(records, r)
		}
	}
	return records
}
