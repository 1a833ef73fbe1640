package services

import (
	"gest35bi/models"
)

// GroupByCategory partitions indicators into one bucket per OEO 1-9, in
// ascending order and always present, followed by an unclassified bucket
// when any indicator falls outside the range. Buckets keep input order.
func GroupByCategory(indicators []models.Indicator) []models.CategoryGroup {
	groups := make([]models.CategoryGroup, 0, int(models.MaxCategory)+1)
	for c := models.MinCategory; c <= models.MaxCategory; c++ {
		groups = append(groups, models.CategoryGroup{
			Key:        c.Key(),
			Label:      c.Label(),
			Category:   c,
			Indicators: []models.Indicator{},
		})
	}

	var unclassified []models.Indicator
	for _, indicator := range indicators {
		if !indicator.Category.Valid() {
			unclassified = append(unclassified, indicator)
			continue
		}
		i := int(indicator.Category - models.MinCategory)
		groups[i].Indicators = append(groups[i].Indicators, indicator)
	}

	if len(unclassified) > 0 {
		groups = append(groups, models.CategoryGroup{
			Key:        models.UnclassifiedKey,
			Label:      models.UnclassifiedLabel,
			Indicators: unclassified,
		})
	}

	return groups
}

// Bucket returns the group with the given key, or nil.
func Bucket(groups []models.CategoryGroup, key string) *models.CategoryGroup {
	for i := range groups {
		if groups[i].Key == key {
			return &groups[i]
		}
	}
	return nil
}

// SummarizeCounts folds aggregation rows into one row per category 1-9 plus
// an unclassified row when legacy documents exist.
func SummarizeCounts(counts []models.CategoryCount) []models.CategorySummary {
	totals := make(map[models.Category]int, len(counts))
	unclassified := 0
	for _, count := range counts {
		if !count.Category.Valid() {
			unclassified += count.Total
			continue
		}
		totals[count.Category] += count.Total
	}

	summary := make([]models.CategorySummary, 0, int(models.MaxCategory)+1)
	for c := models.MinCategory; c <= models.MaxCategory; c++ {
		summary = append(summary, models.CategorySummary{
			Key:      c.Key(),
			Label:    c.Label(),
			Category: c,
			Total:    totals[c],
		})
	}

	if unclassified > 0 {
		summary = append(summary, models.CategorySummary{
			Key:   models.UnclassifiedKey,
			Label: models.UnclassifiedLabel,
			Total: unclassified,
		})
	}

	return summary
}
