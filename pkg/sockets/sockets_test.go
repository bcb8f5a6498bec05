package sockets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsServer(t *testing.T, handler func(*websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestListen_DeliversMessages(t *testing.T) {
	url := wsServer(t, func(conn *websocket.Conn) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("one")))
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("two")))
		time.Sleep(time.Second)
	})

	conn, err := Dial(context.Background(), url)
	require.NoError(t, err)

	var got []string
	err = conn.Listen(context.Background(), func(msg []byte) error {
		got = append(got, string(msg))
		if len(got) == 2 {
			return errors.New("enough")
		}
		return nil
	})
	assert.EqualError(t, err, "enough")
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestListen_StopsOnContextCancel(t *testing.T) {
	url := wsServer(t, func(conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	conn, err := Dial(ctx, url)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- conn.Listen(ctx, func([]byte) error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second * 5):
		t.Fatal("listen did not stop after cancellation")
	}
}

func TestDial_RefusesBadEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"))
	assert.Error(t, err)
}

func TestListen_SendsPings(t *testing.T) {
	pings := make(chan string, 1)
	url := wsServer(t, func(conn *websocket.Conn) {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			pings <- string(msg)
		}
		time.Sleep(time.Second)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn, err := Dial(ctx, url, WithPingInterval(10*time.Millisecond, []byte("ping")))
	require.NoError(t, err)

	go func() {
		_ = conn.Listen(ctx, func([]byte) error { return nil })
	}()

	select {
	case msg := <-pings:
		assert.Equal(t, "ping", msg)
	case <-time.After(time.Second * 5):
		t.Fatal("no ping received")
	}
}
