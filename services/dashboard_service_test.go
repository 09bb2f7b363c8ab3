package services

import (
	"testing"
	"time"

	"congtrinh/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecentActivity(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	items := []dto.ActivityItem{
		{Type: "receipt", Date: day(3), Description: "Ứng đợt 1"},
		{Type: "material", Date: day(7), Description: "Xi măng"},
		{Type: "attendance", Date: day(1), Description: "Chấm công"},
		{Type: "receipt", Date: day(10), Description: "Ứng đợt 2"},
		{Type: "external_hire", Date: day(5), Description: "Khoán trần thạch cao"},
		{Type: "expense", Date: day(8), Description: "Vận chuyển"},
		{Type: "material", Date: day(2), Description: "Cát"},
	}

	merged := MergeRecentActivity(items)

	require.Len(t, merged, RecentActivityLimit)
	assert.Equal(t, "Ứng đợt 2", merged[0].Description)
	assert.Equal(t, "Vận chuyển", merged[1].Description)
	assert.Equal(t, "Xi măng", merged[2].Description)
	assert.Equal(t, "Khoán trần thạch cao", merged[3].Description)
	assert.Equal(t, "Ứng đợt 1", merged[4].Description)

	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Date.After(merged[i-1].Date))
	}
}

func TestMergeRecentActivityFewerThanLimit(t *testing.T) {
	items := []dto.ActivityItem{
		{Type: "receipt", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	merged := MergeRecentActivity(items)
	assert.Len(t, merged, 1)
}

func TestMergeRecentActivityEmpty(t *testing.T) {
	assert.Empty(t, MergeRecentActivity(nil))
}
