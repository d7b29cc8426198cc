package order

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleClients() []Client {
	return []Client{
		{ID: "a", Name: "Ivan", Phone: "000"},
		{ID: "b", Name: "Aigerim", Phone: "111"},
		{ID: "3", Name: "Dana", Phone: "222"},
	}
}

func sampleOrders() []Order {
	return []Order{
		{ID: "1", Type: TypePickup, ClientID: "a", Coords: Coords{Lat: 43.2, Long: 76.9}},
		{ID: "2", Type: TypeDelivery, ClientID: "b", Coords: Coords{Lat: 43.21, Long: 76.91}},
		{ID: "3", Type: TypeDelivery, ClientID: "3", Coords: Coords{Lat: 43.22, Long: 76.92}},
		{ID: "4", Type: TypePickup, ClientID: "a", Coords: Coords{Lat: 43.23, Long: 76.93}},
	}
}

func TestJoinAllMatched(t *testing.T) {
	t.Parallel()

	clients := sampleClients()
	orders := sampleOrders()
	res := Join(orders, clients, KeepOrder)

	require.Len(t, res.Orders, len(orders))
	require.Zero(t, res.Unmatched)

	byID := map[ID]Client{}
	for _, c := range clients {
		byID[c.ID] = c
	}
	for i, e := range res.Orders {
		require.Equal(t, orders[i].ID, e.ID, "join must keep input order")
		require.NotNil(t, e.Client)
		require.Equal(t, byID[e.ClientID], *e.Client)
	}
}

func TestJoinLargeInputKeepsLengthAndMapping(t *testing.T) {
	t.Parallel()

	var clients []Client
	for i := 0; i < 50; i++ {
		clients = append(clients, Client{ID: ID(fmt.Sprintf("c%d", i)), Name: fmt.Sprintf("client %d", i)})
	}
	var orders []Order
	for i := 0; i < 500; i++ {
		orders = append(orders, Order{ID: ID(fmt.Sprint(i)), ClientID: ID(fmt.Sprintf("c%d", i%50))})
	}

	res := Join(orders, clients, DropOrder)
	require.Len(t, res.Orders, 500)
	for _, e := range res.Orders {
		require.Equal(t, e.ClientID, e.Client.ID)
	}
}

func TestJoinMissingClientPolicies(t *testing.T) {
	t.Parallel()

	orders := append(sampleOrders(), Order{ID: "5", Type: TypePickup, ClientID: "ghost"})

	tests := []struct {
		name    string
		policy  MissingClientPolicy
		wantLen int
		check   func(t *testing.T, last Enriched)
	}{
		{
			name:    "keep",
			policy:  KeepOrder,
			wantLen: 5,
			check: func(t *testing.T, last Enriched) {
				require.Equal(t, ID("5"), last.ID)
				require.Nil(t, last.Client)
			},
		},
		{
			name:    "drop",
			policy:  DropOrder,
			wantLen: 4,
			check: func(t *testing.T, last Enriched) {
				require.Equal(t, ID("4"), last.ID)
			},
		},
		{
			name:    "placeholder",
			policy:  PlaceholderClient,
			wantLen: 5,
			check: func(t *testing.T, last Enriched) {
				require.NotNil(t, last.Client)
				require.Equal(t, ID("ghost"), last.Client.ID)
				require.Equal(t, PlaceholderName, last.Client.Name)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Join(orders, sampleClients(), tc.policy)
			require.Len(t, res.Orders, tc.wantLen)
			require.Equal(t, 1, res.Unmatched)
			tc.check(t, res.Orders[len(res.Orders)-1])
		})
	}
}

func TestJoinMatchesNumericIDsByValue(t *testing.T) {
	t.Parallel()

	var orders []Order
	var clients []Client
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 10, "client_id": 1.0}]`), &orders))
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 1, "name": "Ivan"}]`), &clients))

	res := Join(orders, clients, KeepOrder)
	require.Zero(t, res.Unmatched)
	require.Len(t, res.Orders, 1)
	require.NotNil(t, res.Orders[0].Client)
	require.Equal(t, "Ivan", res.Orders[0].Client.Name)
}

func TestJoinEmptyInputs(t *testing.T) {
	t.Parallel()

	res := Join(nil, nil, KeepOrder)
	require.Empty(t, res.Orders)
	require.NotNil(t, res.Orders)
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, err := ParsePolicy("")
	require.NoError(t, err)
	require.Equal(t, KeepOrder, p)

	p, err = ParsePolicy(" Drop ")
	require.NoError(t, err)
	require.Equal(t, DropOrder, p)

	_, err = ParsePolicy("ignore")
	require.Error(t, err)
}
