package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ID identifies a client or an order. The API sends either JSON strings or
// JSON numbers; both decode to the same canonical text so 1 and "1" compare equal.
type ID string

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a quoted string or a bare number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}
	// 1, 1.0 and 1e0 are one value and must spell the same.
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}
	*id = ID(d.String())
	return nil
}

// Type is the kind of job an order represents.
type Type string

const (
	TypePickup   Type = "pickup"
	TypeDelivery Type = "delivery"
)

// Label is the display name of the order type. Unknown types render as-is.
func (t Type) Label() string {
	switch t {
	case TypePickup:
		return "Cargo pickup"
	case TypeDelivery:
		return "Delivery"
	default:
		return strings.TrimSpace(string(t))
	}
}

// Coords is a WGS 84 position. The API names longitude "long".
type Coords struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Client is the customer attached to an order.
type Client struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order is a pickup or delivery job as served by the API.
type Order struct {
	ID       ID              `json:"id"`
	Type     Type            `json:"type"`
	Price    decimal.Decimal `json:"price"`
	ClientID ID              `json:"client_id"`
	Coords   Coords          `json:"coords"`
}

// Enriched is an order with its client joined in. Client is nil when the
// join found no client and the policy kept the order anyway.
type Enriched struct {
	Order
	Client *Client
}

// ClientName returns the joined client's name, or fallback when there is none.
func (e Enriched) ClientName(fallback string) string {
	if e.Client == nil || strings.TrimSpace(e.Client.Name) == "" {
		return fallback
	}
	return e.Client.Name
}

// ClientPhone returns the joined client's phone, or fallback when there is none.
func (e Enriched) ClientPhone(fallback string) string {
	if e.Client == nil || strings.TrimSpace(e.Client.Phone) == "" {
		return fallback
	}
	return e.Client.Phone
}
