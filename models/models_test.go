package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("delivered"))
	assert.False(t, ValidStatus(""))
}

func TestStockItemBelowMin(t *testing.T) {
	assert.True(t, StockItem{Quantity: 2, MinStock: 5}.BelowMin())
	assert.True(t, StockItem{Quantity: 5, MinStock: 5}.BelowMin(), "at the threshold counts as below")
	assert.False(t, StockItem{Quantity: 6, MinStock: 5}.BelowMin())
}

func TestPromoExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, PromoProduct{ValidUntil: now.Add(-time.Hour)}.Expired(now))
	assert.False(t, PromoProduct{ValidUntil: now.Add(time.Hour)}.Expired(now))
}

func TestPackContentsValue(t *testing.T) {
	p := Pack{Items: []PackItem{{Name: "Cidre", Value: 6.5}, {Name: "Caramels", Value: 4.2}}}
	assert.InDelta(t, 10.7, p.ContentsValue(), 1e-9)
}

func TestRarityWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range RarityWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSyncReportTotals(t *testing.T) {
	r := SyncReport{
		Producers: SyncCount{Transferred: 2, Failed: 1},
		Lots:      SyncCount{Transferred: 3},
		Promos:    SyncCount{Failed: 2},
	}
	assert.Equal(t, 5, r.Total())
	assert.Equal(t, 3, r.TotalFailed())
}
