package history

import (
	"sort"
	"time"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// Filter is the set of criteria applied to the working transaction set.
// Start and end bounds are inclusive ISO dates. Start after end is not an
// error; it silently yields an empty result.
type Filter struct {
	SortOrder model.SortOrder
	Type      model.TypeFilter
	StartDate string
	EndDate   string
}

// lookbackMonths is the default history window.
const lookbackMonths = 12

const dateLayout = "2006-01-02"

// DefaultFilter returns the reset state: latest first, all directions,
// twelve months back from now.
func DefaultFilter(now time.Time) Filter {
	return Filter{
		SortOrder: model.SortLatest,
		Type:      model.TypeAll,
		StartDate: now.AddDate(0, -lookbackMonths, 0).Format(dateLayout),
		EndDate:   now.Format(dateLayout),
	}
}

// Apply derives the filtered, sorted view of records. The input slice is
// never modified. Records with malformed dates are excluded; malformed
// filter bounds exclude everything.
func Apply(records []model.Transaction, f Filter) []model.Transaction {
	start, startErr := time.Parse(dateLayout, f.StartDate)
	end, endErr := time.Parse(dateLayout, f.EndDate)

	var out []model.Transaction
	for _, tx := range records {
		if startErr != nil || endErr != nil {
			break
		}
		day, ok := tx.Day()
		if !ok {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		if f.Type != model.TypeAll && string(tx.Direction) != string(f.Type) {
			continue
		}
		out = append(out, tx)
	}

	// Ties keep input order.
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].When()
		b, _ := out[j].When()
		if f.SortOrder == model.SortOldest {
			return a.Before(b)
		}
		return b.Before(a)
	})

	return out
}
