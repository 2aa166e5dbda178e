package family

import "math"

// CasteStat is one per-caste row of the statistics endpoint.
type CasteStat struct {
	Caste        string  `json:"caste"`
	FamilyCount  int64   `json:"family_count"`
	TotalMembers int64   `json:"total_members"`
	Percentage   float64 `json:"percentage"`
}

// casteRow is the raw grouping result from the store, before
// percentages are derived.
type casteRow struct {
	Caste        string
	FamilyCount  int64
	TotalMembers int64
}

// computeCasteStats derives percentages and totals from grouped rows.
// Rows arrive sorted by total_members descending; that order is kept.
// Percentage is 0 for every group when the global total is 0.
func computeCasteStats(rows []casteRow) (stats []CasteStat, totalFamilies, totalPopulation int64) {
	stats = make([]CasteStat, 0, len(rows))

	for _, row := range rows {
		totalFamilies += row.FamilyCount
		totalPopulation += row.TotalMembers
	}

	for _, row := range rows {
		var pct float64
		if totalPopulation > 0 {
			pct = float64(row.TotalMembers) / float64(totalPopulation) * 100
			pct = math.Round(pct*100) / 100
		}
		stats = append(stats, CasteStat{
			Caste:        row.Caste,
			FamilyCount:  row.FamilyCount,
			TotalMembers: row.TotalMembers,
			Percentage:   pct,
		})
	}

	return stats, totalFamilies, totalPopulation
}
