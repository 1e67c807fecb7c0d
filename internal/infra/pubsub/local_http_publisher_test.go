package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/service"
)

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.CheckoutEvent{
		PurchaseID:    "p-123",
		Email:         "maya@example.com",
		ItemCount:     2,
		SubtotalCents: 2050,
		At:            time.Now().UTC(),
		RequestID:     "req-1",
	}
	require.NoError(t, publisher.PublishCheckoutEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "p-123", received.Message.MessageID)
	assert.Equal(t, "p-123", received.Message.Attributes["purchase_id"])
	assert.Equal(t, "maya@example.com", received.Message.Attributes["email"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CheckoutEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(2050), decoded.SubtotalCents)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishCheckoutEvent(context.Background(), &service.CheckoutEvent{PurchaseID: "p-1"})
	assert.Error(t, err)
}
