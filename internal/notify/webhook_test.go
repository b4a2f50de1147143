package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

func TestWebhookNotifier_NotifyNewItem(t *testing.T) {
	var received models.MissingItem
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	item := models.MissingItem{ID: "m1", Name: "Hielo", Requester: "Gonzalo"}

	if err := n.NotifyNewItem(context.Background(), item); err != nil {
		t.Fatalf("NotifyNewItem() unexpected error = %v", err)
	}
	if received.Name != "Hielo" || received.Requester != "Gonzalo" {
		t.Errorf("webhook received %+v", received)
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := n.NotifyNewItem(context.Background(), models.MissingItem{Name: "Hielo"}); err == nil {
		t.Error("NotifyNewItem() error = nil, want status error")
	}
}

func TestWebhookNotifier_EmptyURLIsNoop(t *testing.T) {
	n := NewWebhookNotifier("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := n.NotifyNewItem(context.Background(), models.MissingItem{Name: "Hielo"}); err != nil {
		t.Errorf("NotifyNewItem() with empty URL error = %v, want nil", err)
	}
}
