// Package stats computes the weekly repeat-offender summary from a batch of
// grievance records. The aggregation is pure: deterministic for a given
// input, no I/O, no clock access. The caller decides which records fall in
// the week and passes only those.
package stats

import (
	"sort"

	"github.com/emre/grievancehub/internal/app/models"
)

// DefaultRepeatThreshold is the weekly grievance count at which a student
// is highlighted as a repeat offender.
const DefaultRepeatThreshold = 3

// WeeklyStat is the per-student summary for one week. It is derived on every
// request and never persisted.
type WeeklyStat struct {
	StudentName    string                 `json:"studentName"`
	Count          int                    `json:"count"`
	Types          []models.GrievanceType `json:"types"`
	RepeatOffender bool                   `json:"repeatOffender"`
}

// Weekly reduces records into one WeeklyStat per student, sorted descending
// by count. Ties keep first-appearance order. Records without a joined
// student are counted under the "Unknown" key rather than dropped. The types
// list holds each distinct type once, in first-seen order.
func Weekly(records []models.Grievance, repeatThreshold int) []WeeklyStat {
	if repeatThreshold < 1 {
		repeatThreshold = DefaultRepeatThreshold
	}

	byName := make(map[string]*WeeklyStat)
	order := make([]string, 0)

	for i := range records {
		name := records[i].StudentName()

		entry, ok := byName[name]
		if !ok {
			entry = &WeeklyStat{StudentName: name}
			byName[name] = entry
			order = append(order, name)
		}

		entry.Count++

		seen := false
		for _, t := range entry.Types {
			if t == records[i].Type {
				seen = true
				break
			}
		}
		if !seen {
			entry.Types = append(entry.Types, records[i].Type)
		}
	}

	result := make([]WeeklyStat, 0, len(order))
	for _, name := range order {
		entry := byName[name]
		entry.RepeatOffender = entry.Count >= repeatThreshold
		result = append(result, *entry)
	}

	// Stable sort keeps first-appearance order for equal counts
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}
