package tabulae

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDetailDecodesString(t *testing.T) {
	var body apiErrorBody
	require.NoError(t, json.Unmarshal([]byte(`{"detail":"Incorrect email or password"}`), &body))

	assert.Equal(t, "Incorrect email or password", body.Detail.Text)
	assert.Nil(t, body.Detail.Fields)
	assert.Equal(t, "Incorrect email or password", body.Detail.String())
}

func TestErrorDetailDecodesFieldList(t *testing.T) {
	raw := `{"detail":[{"msg":"field required"},{"msg":"value is not a valid email"}]}`

	var body apiErrorBody
	require.NoError(t, json.Unmarshal([]byte(raw), &body))

	assert.Empty(t, body.Detail.Text)
	require.Len(t, body.Detail.Fields, 2)
	assert.Equal(t, "field required; value is not a valid email", body.Detail.String())
}

func TestErrorDetailRejectsOtherShapes(t *testing.T) {
	var detail ErrorDetail
	err := json.Unmarshal([]byte(`{"code":42}`), &detail)
	assert.Error(t, err)
}

func TestAPIErrorMessage(t *testing.T) {
	withDetail := &APIError{Status: 401, Detail: ErrorDetail{Text: "Not authenticated"}}
	assert.Equal(t, "Not authenticated", withDetail.Error())

	bare := &APIError{Status: 500}
	assert.Equal(t, "api error: status 500", bare.Error())
}

func TestIsStatusUnwraps(t *testing.T) {
	apiErr := &APIError{Status: http.StatusUnauthorized}
	wrapped := fmt.Errorf("profile request: %w", apiErr)

	assert.True(t, IsUnauthorized(wrapped))
	assert.True(t, IsStatus(wrapped, http.StatusUnauthorized))
	assert.False(t, IsStatus(wrapped, http.StatusNotFound))
	assert.False(t, IsUnauthorized(errors.New("network down")))
}
