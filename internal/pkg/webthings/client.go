// Package webthings implements the gateway collaborator against the
// WebThings REST API: thing listing, single-property reads and writes, and a
// liveness answer backed by the gateway's websocket connected events.
package webthings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/anicoll/webthings-integration/internal/pkg/config"
	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

var (
	ErrGatewayStatus   = errors.New("unexpected gateway status")
	ErrUnknownProperty = errors.New("unknown property")
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger

	mu        sync.RWMutex
	connected map[string]bool // thing id -> last connected event
}

func New(cfg *config.GatewayConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		token:     cfg.Token,
		httpc:     &http.Client{Timeout: cfg.RequestTimeout},
		logger:    zap.L(),
		connected: make(map[string]bool),
	}
}

// ListThings returns all things known to the gateway, filtered down to ids
// when a filter is given.
func (c *Client) ListThings(ctx context.Context, ids []string) ([]model.Thing, error) {
	var things []model.Thing
	if err := c.do(ctx, http.MethodGet, "/things", nil, &things); err != nil {
		return nil, err
	}
	if ids == nil {
		return things, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	filtered := make([]model.Thing, 0, len(ids))
	for _, thing := range things {
		if _, ok := wanted[thing.ID()]; ok {
			filtered = append(filtered, thing)
		}
	}
	return filtered, nil
}

func (c *Client) ThingID(thing model.Thing) string {
	return thing.ID()
}

// GetProperty reads one named property. The gateway responds with a single
// entry object, {"<name>": <value>}.
func (c *Client) GetProperty(ctx context.Context, thing model.Thing, name string) (any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodGet, c.propertyPath(thing, name), nil, &body); err != nil {
		return nil, err
	}
	value, ok := body[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return value, nil
}

// SetProperty writes one named property and returns the value the gateway
// committed, which may differ from the requested one.
func (c *Client) SetProperty(ctx context.Context, thing model.Thing, name string, value any) (any, error) {
	var body map[string]any
	if err := c.do(ctx, http.MethodPut, c.propertyPath(thing, name), map[string]any{name: value}, &body); err != nil {
		return nil, err
	}
	committed, ok := body[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return committed, nil
}

// IsOnline answers from the websocket connected cache when the gateway has
// reported for this thing, and otherwise probes the device by re-reading the
// seed property and comparing against the just-read value.
func (c *Client) IsOnline(ctx context.Context, thing model.Thing, seedProperty string, seedValue any) (bool, error) {
	id := thing.ID()
	c.mu.RLock()
	online, seen := c.connected[id]
	c.mu.RUnlock()
	if seen {
		return online, nil
	}

	value, err := c.GetProperty(ctx, thing, seedProperty)
	if err != nil {
		return false, err
	}
	if seedValue == nil {
		return true, nil
	}
	return looseEqual(value, seedValue), nil
}

func (c *Client) propertyPath(thing model.Thing, name string) string {
	return fmt.Sprintf("/things/%s/properties/%s", thing.ID(), name)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s returned %d", ErrGatewayStatus, method, path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// looseEqual compares property values across the numeric representations the
// JSON decoding may produce.
func looseEqual(a, b any) bool {
	if a == b {
		return true
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
