package order

import (
	"fmt"
	"strings"
)

// MissingClientPolicy decides what Join does with an order whose client_id
// matches no client.
type MissingClientPolicy string

const (
	// KeepOrder keeps the order with a nil Client.
	KeepOrder MissingClientPolicy = "keep"
	// DropOrder leaves the order out of the result.
	DropOrder MissingClientPolicy = "drop"
	// PlaceholderClient attaches a stand-in client carrying the dangling id.
	PlaceholderClient MissingClientPolicy = "placeholder"
)

// PlaceholderName is the name given to stand-in clients.
const PlaceholderName = "Unknown client"

// ParsePolicy reads a policy name. Empty selects KeepOrder.
func ParsePolicy(s string) (MissingClientPolicy, error) {
	switch p := MissingClientPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return KeepOrder, nil
	case KeepOrder, DropOrder, PlaceholderClient:
		return p, nil
	default:
		return "", fmt.Errorf("unknown missing-client policy %q (want keep, drop or placeholder)", s)
	}
}

// JoinResult is the output of Join.
type JoinResult struct {
	Orders []Enriched
	// Unmatched counts orders whose client_id had no client, whatever the policy did with them.
	Unmatched int
}

// Join attaches each order's client by client_id, keeping the input order.
// Clients with duplicate ids resolve to the last one seen.
func Join(orders []Order, clients []Client, policy MissingClientPolicy) JoinResult {
	byID := make(map[ID]*Client, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}

	res := JoinResult{Orders: make([]Enriched, 0, len(orders))}
	for _, o := range orders {
		c, ok := byID[o.ClientID]
		if !ok {
			res.Unmatched++
			switch policy {
			case DropOrder:
				continue
			case PlaceholderClient:
				c = &Client{ID: o.ClientID, Name: PlaceholderName}
			default:
				c = nil
			}
		}
		res.Orders = append(res.Orders, Enriched{Order: o, Client: c})
	}
	return res
}
