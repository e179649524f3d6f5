package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGroqClientComplete(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "a gentle plan"}},
			},
		})
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", srv.URL, "test-model", 0.7, 3500)
	text, err := client.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "a gentle plan" {
		t.Errorf("text = %q, want %q", text, "a gentle plan")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotReq.Model != "test-model" || gotReq.Temperature != 0.7 || gotReq.MaxTokens != 3500 {
		t.Errorf("request params = %+v", gotReq)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "hello" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestGroqClientCompleteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", srv.URL, "test-model", 0.7, 3500)
	_, err := client.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "completion API error") {
		t.Errorf("error = %v, want completion API error", err)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error = %v, want upstream body included", err)
	}
}

func TestGroqClientCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", srv.URL, "test-model", 0.7, 3500)
	if _, err := client.Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestGroqClientCompleteNotConfigured(t *testing.T) {
	client := NewGroqClient("", "http://unused", "test-model", 0.7, 3500)
	_, err := client.Complete(context.Background(), "hello")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
