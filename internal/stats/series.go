package stats

import (
	"sort"
	"time"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// DedupDaily buckets samples by local calendar day, keeps only the latest
// sample in each bucket and returns the result sorted ascending by
// timestamp. Applying it to an already-deduplicated series is a no-op.
func DedupDaily(points []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	latest := make(map[string]models.TimeSeriesPoint, len(points))
	for _, p := range points {
		day := time.Unix(p.Timestamp, 0).Local().Format("2006-01-02")
		if cur, ok := latest[day]; !ok || p.Timestamp >= cur.Timestamp {
			latest[day] = p
		}
	}

	out := make([]models.TimeSeriesPoint, 0, len(latest))
	for _, p := range latest {
		out = append(out, p)
	}

	return SortChrono(out)
}

// SortChrono returns the series sorted ascending by timestamp. The input is
// not modified.
func SortChrono(points []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(points))
	copy(out, points)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}
