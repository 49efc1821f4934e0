package tabulae

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func TestExpirationPresetOverridesDateRange(t *testing.T) {
	var query url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Paginated[models.StockRecord]{})
	})

	filters := models.ExpirationFilters{
		Preset:   "30d",
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
	}
	_, err := client.Stock.Expiration(context.Background(), filters, 25, 0)
	require.NoError(t, err)

	assert.Equal(t, "30d", query.Get("preset"))
	assert.Empty(t, query.Get("from_date"), "explicit range is dropped when a preset is set")
	assert.Empty(t, query.Get("to_date"))
	assert.Equal(t, "25", query.Get("limit"))
}

func TestExpirationDateRangeWithoutPreset(t *testing.T) {
	var query url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Paginated[models.StockRecord]{})
	})

	filters := models.ExpirationFilters{FromDate: "2024-01-01", ToDate: "2024-02-01"}
	_, err := client.Stock.Expiration(context.Background(), filters, 25, 0)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", query.Get("from_date"))
	assert.Equal(t, "2024-02-01", query.Get("to_date"))
	assert.Empty(t, query.Get("preset"))
}

func TestProductHistoryDecodesRecords(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/product/7/history", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"move_id": 12, "created_at": "2024-01-02T10:30:00Z", "move_type": "incoming",
				 "warehouse_id": 1, "product_id": 7, "sku": "SKU-7", "lot": "L1",
				 "quantity": 5, "user_name": "ada"}
			],
			"total": 1, "limit": 100, "offset": 0
		}`))
	})

	page, err := client.Stock.ProductHistory(context.Background(), 7, 100, 0)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	record := page.Data[0]
	assert.Equal(t, 12, record.MoveID)
	assert.Equal(t, "incoming", record.MoveType)
	assert.Equal(t, 5, record.Quantity)
	assert.Equal(t, "ada", record.UserName)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), record.CreatedAt.UTC())
}

func TestMovementListSendsOnlySetFilters(t *testing.T) {
	var query url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Paginated[models.StockMove]{})
	})

	filters := models.MovementFilters{MoveType: "outgoing", DateFrom: "2024-01-01"}
	_, err := client.Movements.List(context.Background(), filters, 50, 100)
	require.NoError(t, err)

	assert.Equal(t, "outgoing", query.Get("move_type"))
	assert.Equal(t, "2024-01-01", query.Get("date_from"))
	assert.False(t, query.Has("date_to"))
	assert.False(t, query.Has("search"))
	assert.False(t, query.Has("user_id"))
	assert.Equal(t, "50", query.Get("limit"))
	assert.Equal(t, "100", query.Get("offset"))
}
