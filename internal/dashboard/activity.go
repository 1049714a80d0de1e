package dashboard

import (
	"fmt"
	"sort"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// BuildActivityBar summarizes activity evidence for one country as bar-chart
// items, sorted by descending count with ties broken alphabetically. A
// country with no records yields an empty Items list, which is also what an
// unknown country produces; the API does not distinguish the two.
func BuildActivityBar(tbl *catalog.Table, country string) ActivityView {
	counts := tbl.ActivityCounts(country)

	items := make([]ActivityItem, 0, len(counts))
	total := 0
	for evidence, count := range counts {
		items = append(items, ActivityItem{
			Evidence: evidence,
			Count:    count,
			Label:    fmt.Sprintf("%s: %d volcanoes", evidence, count),
		})
		total += count
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Evidence < items[j].Evidence
	})

	return ActivityView{
		Country: country,
		Title:   fmt.Sprintf("Volcano Activity Evidence in %s", country),
		Items:   items,
		Total:   total,
	}
}
