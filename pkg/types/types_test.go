package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestItemListItemDecodesDecimalValue(t *testing.T) {
	raw := `{"id":"b9c1","title":"Bicicleta","condition":"good","estimated_value":"149.90","status":"available","owner_username":"ana","category_name":"Deportes"}`

	var item ItemListItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	require.NotNil(t, item.EstimatedValue)
	require.True(t, item.EstimatedValue.Equal(decimal.RequireFromString("149.9")))
}

func TestRequiredFieldsAreValidated(t *testing.T) {
	v := validator.New()

	require.Error(t, v.Struct(AuthResponse{Message: "ok"}))
	require.NoError(t, v.Struct(AuthResponse{Tokens: TokenResponse{AccessToken: "a"}}))

	require.Error(t, v.Struct(Rating{ID: "r1", OverallRating: 7}))
	require.NoError(t, v.Struct(Rating{ID: "r1", OverallRating: 4}))
}
