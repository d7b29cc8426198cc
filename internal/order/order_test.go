package order

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecodeMixedIdentifiers(t *testing.T) {
	t.Parallel()

	var orders []Order
	payload := `[
		{"id": 1, "client_id": "a", "type": "pickup", "price": 100, "coords": {"lat": 43.2, "long": 76.9}},
		{"id": "x-2", "client_id": 7, "type": "delivery", "price": 1250.50, "coords": {"lat": 43.25, "long": 76.95}}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &orders))
	require.Len(t, orders, 2)

	require.Equal(t, ID("1"), orders[0].ID)
	require.Equal(t, ID("a"), orders[0].ClientID)
	require.Equal(t, TypePickup, orders[0].Type)
	require.True(t, decimal.NewFromInt(100).Equal(orders[0].Price))
	require.Equal(t, Coords{Lat: 43.2, Long: 76.9}, orders[0].Coords)

	require.Equal(t, ID("x-2"), orders[1].ID)
	require.Equal(t, ID("7"), orders[1].ClientID)
	require.Equal(t, "1250.5", orders[1].Price.String())
}

func TestIDNumberAndStringCompareEqual(t *testing.T) {
	t.Parallel()

	var a, b ID
	require.NoError(t, json.Unmarshal([]byte(`42`), &a))
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &b))
	require.Equal(t, a, b)

	var empty ID
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	require.Equal(t, ID(""), empty)

	require.Error(t, json.Unmarshal([]byte(`{}`), &empty))
}

func TestIDNumericSpellingsCompareEqual(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`1`, `1.0`, `1e0`, `1.000`} {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(raw), &id), raw)
		require.Equal(t, ID("1"), id, raw)
	}

	var frac ID
	require.NoError(t, json.Unmarshal([]byte(`2.50`), &frac))
	require.Equal(t, ID("2.5"), frac)

	// quoted ids are opaque text
	var quoted ID
	require.NoError(t, json.Unmarshal([]byte(`"007"`), &quoted))
	require.Equal(t, ID("007"), quoted)
}

func TestTypeLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Cargo pickup", TypePickup.Label())
	require.Equal(t, "Delivery", TypeDelivery.Label())
	require.Equal(t, "express", Type("express").Label())
}

func TestEnrichedClientFallbacks(t *testing.T) {
	t.Parallel()

	bare := Enriched{Order: Order{ID: "1"}}
	require.Equal(t, "?", bare.ClientName("?"))
	require.Equal(t, "-", bare.ClientPhone("-"))

	full := Enriched{Order: Order{ID: "1"}, Client: &Client{ID: "a", Name: "Ivan", Phone: "000"}}
	require.Equal(t, "Ivan", full.ClientName("?"))
	require.Equal(t, "000", full.ClientPhone("-"))
}
