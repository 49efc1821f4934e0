package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestReduceSortsBeforeFolding(t *testing.T) {
	movements := []models.StockHistory{
		{MoveID: 2, MoveType: "outgoing", Quantity: 2, CreatedAt: day(t, "2024-01-01")},
		{MoveID: 1, MoveType: "incoming", Quantity: 5, CreatedAt: day(t, "2024-01-02")},
	}

	points := Reduce(nil, movements)

	require.Len(t, points, 2)
	assert.Equal(t, SeriesPoint{Date: "2024-01-01", Quantity: -2}, points[0])
	assert.Equal(t, SeriesPoint{Date: "2024-01-02", Quantity: 3}, points[1])
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	movements := []models.StockHistory{
		{MoveID: 3, MoveType: "incoming", Quantity: 1, CreatedAt: day(t, "2024-03-05")},
		{MoveID: 1, MoveType: "incoming", Quantity: 4, CreatedAt: day(t, "2024-03-01")},
		{MoveID: 2, MoveType: "outgoing", Quantity: 2, CreatedAt: day(t, "2024-03-03")},
	}

	first := Reduce(nil, movements)
	second := Reduce(nil, movements)

	assert.Equal(t, first, second, "reducing is repeatable on the same input")
	assert.Equal(t, 3, movements[0].MoveID, "input order is untouched")
	assert.Equal(t, 1, movements[1].MoveID)
}

func TestReduceKeepsUnknownTypesInSeries(t *testing.T) {
	movements := []models.StockHistory{
		{MoveID: 1, MoveType: "incoming", Quantity: 10, CreatedAt: day(t, "2024-02-01")},
		{MoveID: 2, MoveType: "transfer", Quantity: 99, CreatedAt: day(t, "2024-02-02")},
		{MoveID: 3, MoveType: "outgoing", Quantity: 4, CreatedAt: day(t, "2024-02-03")},
	}

	points := Reduce(nil, movements)

	require.Len(t, points, len(movements), "every record yields a point")
	assert.Equal(t, 10, points[0].Quantity)
	assert.Equal(t, 10, points[1].Quantity, "unknown type contributes nothing")
	assert.Equal(t, 6, points[2].Quantity)
}

func TestReduceNormalizesMoveTypeCase(t *testing.T) {
	movements := []models.StockHistory{
		{MoveID: 1, MoveType: "  INCOMING ", Quantity: 7, CreatedAt: day(t, "2024-04-01")},
		{MoveID: 2, MoveType: "Outgoing", Quantity: 3, CreatedAt: day(t, "2024-04-02")},
	}

	points := Reduce(nil, movements)

	require.Len(t, points, 2)
	assert.Equal(t, 7, points[0].Quantity)
	assert.Equal(t, 4, points[1].Quantity)
}

func TestReduceEmptyInput(t *testing.T) {
	assert.Empty(t, Reduce(nil, nil))
	assert.Empty(t, Reduce(nil, []models.StockHistory{}))
}

func TestReduceStableWithinSameTimestamp(t *testing.T) {
	at := day(t, "2024-05-01")
	movements := []models.StockHistory{
		{MoveID: 1, MoveType: "incoming", Quantity: 2, CreatedAt: at},
		{MoveID: 2, MoveType: "outgoing", Quantity: 5, CreatedAt: at},
	}

	points := Reduce(nil, movements)

	require.Len(t, points, 2)
	assert.Equal(t, 2, points[0].Quantity, "equal timestamps keep input order")
	assert.Equal(t, -3, points[1].Quantity)
}

func TestMonthlyCountsGroupsAndSorts(t *testing.T) {
	movements := []models.StockMove{
		{MoveID: 1, MoveType: "incoming", CreatedAt: day(t, "2024-02-10")},
		{MoveID: 2, MoveType: "outgoing", CreatedAt: day(t, "2024-01-20")},
		{MoveID: 3, MoveType: "incoming", CreatedAt: day(t, "2024-01-05")},
		{MoveID: 4, MoveType: "incoming", CreatedAt: day(t, "2024-02-28")},
		{MoveID: 5, MoveType: "unknown-kind", CreatedAt: day(t, "2024-02-28")},
	}

	counts := MonthlyCounts(nil, movements)

	require.Len(t, counts, 2)
	assert.Equal(t, MonthlyCount{Month: "2024-01", Incoming: 1, Outgoing: 1}, counts[0])
	assert.Equal(t, MonthlyCount{Month: "2024-02", Incoming: 2, Outgoing: 0}, counts[1])
}

func TestMonthlyCountsEmptyInput(t *testing.T) {
	assert.Empty(t, MonthlyCounts(nil, nil))
}
