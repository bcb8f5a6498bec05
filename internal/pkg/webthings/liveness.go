package webthings

import (
	"context"
	"encoding/json"
	"net/url"

	"go.uber.org/zap"

	"github.com/anicoll/webthings-integration/pkg/sockets"
)

// connectedEvent is the gateway's websocket notification for a thing's
// reachability changing.
type connectedEvent struct {
	ID          string          `json:"id"`
	MessageType string          `json:"messageType"`
	Data        json.RawMessage `json:"data"`
}

// Watch subscribes to the gateway's things websocket and keeps the connected
// cache current. It blocks until the stream fails or ctx is done; IsOnline
// falls back to property probing for things the stream has not reported yet,
// so running Watch is an optimization, not a requirement.
func (c *Client) Watch(ctx context.Context) error {
	endpoint, err := c.websocketURL()
	if err != nil {
		return err
	}

	conn, err := sockets.Dial(ctx, endpoint)
	if err != nil {
		return err
	}
	c.logger.Debug("watching gateway connected events", zap.String("url", endpoint))

	return conn.Listen(ctx, c.handleEvent)
}

func (c *Client) handleEvent(msg []byte) error {
	var event connectedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		c.logger.Warn("malformed gateway event", zap.Error(err))
		return nil
	}
	if event.MessageType != "connected" {
		return nil
	}
	var online bool
	if err := json.Unmarshal(event.Data, &online); err != nil {
		c.logger.Warn("malformed connected event", zap.String("thing", event.ID), zap.Error(err))
		return nil
	}

	c.mu.Lock()
	c.connected[event.ID] = online
	c.mu.Unlock()
	c.logger.Debug("thing reachability changed", zap.String("thing", event.ID), zap.Bool("online", online))
	return nil
}

func (c *Client) websocketURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/things"
	u.RawQuery = url.Values{"jwt": []string{c.token}}.Encode()
	return u.String(), nil
}
