package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jask/orderboard/internal/order"
)

// Client reads orders and clients from the board API.
type Client struct {
	BaseURL     string
	OrdersPath  string
	ClientsPath string
	HTTP        *http.Client
}

// New returns a Client. A zero timeout means requests wait until the context ends.
func New(baseURL, ordersPath, clientsPath string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		OrdersPath:  ordersPath,
		ClientsPath: clientsPath,
		HTTP:        &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// FetchOrders returns the order collection.
func (c *Client) FetchOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	if err := c.getJSON(ctx, "orders", c.OrdersPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchClients returns the client collection.
func (c *Client) FetchClients(ctx context.Context) ([]order.Client, error) {
	var out []order.Client
	if err := c.getJSON(ctx, "clients", c.ClientsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Load fetches orders and clients concurrently and waits for both. If either
// request fails the other is cancelled and nothing is returned.
func (c *Client) Load(ctx context.Context) ([]order.Order, []order.Client, error) {
	var (
		orders  []order.Order
		clients []order.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = c.FetchOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = c.FetchClients(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, clients, nil
}

func (c *Client) getJSON(ctx context.Context, resource, path string, dst any) error {
	u, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Resource: resource, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", resource, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}
