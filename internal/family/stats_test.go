package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCasteStats(t *testing.T) {
	rows := []casteRow{
		{Caste: "Arain", FamilyCount: 1, TotalMembers: 3},
		{Caste: "Jutt", FamilyCount: 1, TotalMembers: 1},
	}

	stats, families, population := computeCasteStats(rows)
	require.Len(t, stats, 2)
	assert.Equal(t, int64(2), families)
	assert.Equal(t, int64(4), population)

	assert.Equal(t, "Arain", stats[0].Caste)
	assert.Equal(t, 75.0, stats[0].Percentage)
	assert.Equal(t, "Jutt", stats[1].Caste)
	assert.Equal(t, 25.0, stats[1].Percentage)
}

func TestComputeCasteStatsEmpty(t *testing.T) {
	stats, families, population := computeCasteStats(nil)
	assert.Empty(t, stats)
	assert.Zero(t, families)
	assert.Zero(t, population)
}

func TestComputeCasteStatsZeroPopulation(t *testing.T) {
	rows := []casteRow{{Caste: "Arain", FamilyCount: 2, TotalMembers: 0}}

	stats, families, population := computeCasteStats(rows)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), families)
	assert.Zero(t, population)
	assert.Zero(t, stats[0].Percentage)
}

func TestComputeCasteStatsRounding(t *testing.T) {
	rows := []casteRow{
		{Caste: "Arain", FamilyCount: 1, TotalMembers: 1},
		{Caste: "Jutt", FamilyCount: 1, TotalMembers: 1},
		{Caste: "Gujjar", FamilyCount: 1, TotalMembers: 1},
	}

	stats, _, _ := computeCasteStats(rows)
	require.Len(t, stats, 3)
	// 1/3 of 100 rounded to two decimals
	assert.Equal(t, 33.33, stats[0].Percentage)
}

func TestComputeCasteStatsKeepsOrder(t *testing.T) {
	rows := []casteRow{
		{Caste: "Arain", FamilyCount: 3, TotalMembers: 12},
		{Caste: "Jutt", FamilyCount: 2, TotalMembers: 7},
		{Caste: "Gujjar", FamilyCount: 1, TotalMembers: 2},
	}

	stats, _, _ := computeCasteStats(rows)
	require.Len(t, stats, 3)
	assert.Equal(t, []string{"Arain", "Jutt", "Gujjar"},
		[]string{stats[0].Caste, stats[1].Caste, stats[2].Caste})
}
