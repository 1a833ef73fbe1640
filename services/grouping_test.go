package services

import (
	"testing"

	"gest35bi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(indicators []models.Indicator) []string {
	out := make([]string, 0, len(indicators))
	for _, indicator := range indicators {
		out = append(out, indicator.Name)
	}
	return out
}

func TestGroupByCategory(t *testing.T) {
	input := []models.Indicator{
		{Name: "first three", Category: 3},
		{Name: "one", Category: 1},
		{Name: "second three", Category: 3},
		{Name: "nine", Category: 9},
	}

	groups := GroupByCategory(input)
	require.Len(t, groups, 9)

	for i, group := range groups {
		assert.Equal(t, models.Category(i+1), group.Category)
	}

	assert.Equal(t, []string{"one"}, names(Bucket(groups, "1").Indicators))
	assert.Equal(t, []string{"first three", "second three"}, names(Bucket(groups, "3").Indicators))
	assert.Equal(t, []string{"nine"}, names(Bucket(groups, "9").Indicators))

	for _, key := range []string{"2", "4", "5", "6", "7", "8"} {
		bucket := Bucket(groups, key)
		require.NotNil(t, bucket, key)
		assert.Empty(t, bucket.Indicators, key)
	}

	assert.Nil(t, Bucket(groups, models.UnclassifiedKey))
}

func TestGroupByCategoryUnclassified(t *testing.T) {
	groups := GroupByCategory([]models.Indicator{
		{Name: "legacy", Category: 0},
		{Name: "valid", Category: 5},
		{Name: "out of range", Category: 12},
	})
	require.Len(t, groups, 10)

	last := groups[len(groups)-1]
	assert.Equal(t, models.UnclassifiedKey, last.Key)
	assert.Equal(t, "Não definido", last.Label)
	assert.Equal(t, []string{"legacy", "out of range"}, names(last.Indicators))
	assert.Equal(t, []string{"valid"}, names(Bucket(groups, "5").Indicators))
}

func TestGroupByCategoryEmpty(t *testing.T) {
	groups := GroupByCategory(nil)
	require.Len(t, groups, 9)
	for _, group := range groups {
		assert.NotNil(t, group.Indicators)
		assert.Empty(t, group.Indicators)
	}
}

func TestSummarizeCounts(t *testing.T) {
	summary := SummarizeCounts([]models.CategoryCount{
		{Category: 1, Total: 2},
		{Category: 0, Total: 4},
		{Category: 1, Total: 1},
	})

	require.Len(t, summary, 10)
	assert.Equal(t, 3, summary[0].Total)
	assert.Equal(t, "OEO 1", summary[0].Label)
	assert.Equal(t, models.UnclassifiedKey, summary[9].Key)
	assert.Equal(t, 4, summary[9].Total)
}
