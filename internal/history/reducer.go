package history

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

const dayLayout = "2006-01-02"

// SeriesPoint is one chart-ready sample of the cumulative stock series.
type SeriesPoint struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// Reduce folds movement records, in any input order, into a chronologically
// cumulative quantity series. Records are stable-sorted by created_at, then
// each one adds its quantity for incoming and subtracts it for outgoing,
// starting from zero. A record with an unrecognized move type contributes
// nothing but still appears in the output, so the series length always equals
// the input length. Pure: the input slice is never mutated.
func Reduce(logger *zap.Logger, movements []models.StockHistory) []SeriesPoint {
	if logger == nil {
		logger = zap.NewNop()
	}

	sorted := make([]models.StockHistory, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]SeriesPoint, 0, len(sorted))
	running := 0

	for _, mov := range sorted {
		switch normalizeMoveType(mov.MoveType) {
		case models.MoveIncoming:
			running += mov.Quantity
		case models.MoveOutgoing:
			running -= mov.Quantity
		default:
			logger.Warn("unknown move type",
				zap.String("move_type", mov.MoveType),
				zap.Int("move_id", mov.MoveID))
		}

		points = append(points, SeriesPoint{
			Date:     mov.CreatedAt.Format(dayLayout),
			Quantity: running,
		})
	}

	return points
}

// MonthlyCount is the number of movements per calendar month, split by type.
type MonthlyCount struct {
	Month    string `json:"month"`
	Incoming int    `json:"incoming"`
	Outgoing int    `json:"outgoing"`
}

// MonthlyCounts groups movements by UTC calendar month for the yearly
// dashboard chart. Movements with an unrecognized type are logged and left
// out of the counts.
func MonthlyCounts(logger *zap.Logger, movements []models.StockMove) []MonthlyCount {
	if logger == nil {
		logger = zap.NewNop()
	}

	groups := make(map[string]*MonthlyCount)
	for _, mov := range movements {
		key := mov.CreatedAt.UTC().Format("2006-01")

		group, ok := groups[key]
		if !ok {
			group = &MonthlyCount{Month: key}
			groups[key] = group
		}

		switch normalizeMoveType(mov.MoveType) {
		case models.MoveIncoming:
			group.Incoming++
		case models.MoveOutgoing:
			group.Outgoing++
		default:
			logger.Warn("unknown move type",
				zap.String("move_type", mov.MoveType),
				zap.Int("move_id", mov.MoveID))
		}
	}

	counts := make([]MonthlyCount, 0, len(groups))
	for _, group := range groups {
		counts = append(counts, *group)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Month < counts[j].Month })
	return counts
}

func normalizeMoveType(moveType string) string {
	return strings.ToLower(strings.TrimSpace(moveType))
}
