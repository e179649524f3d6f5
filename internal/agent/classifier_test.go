package agent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPClassifierClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "scan.png" {
			t.Errorf("filename = %q, want scan.png", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "image-bytes" {
			t.Errorf("file content = %q", data)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"prediction": "benign",
			"confidence": 0.9312,
		})
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	result, err := c.Classify(context.Background(), "scan.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if result["prediction"] != "benign" {
		t.Errorf("prediction = %v, want benign", result["prediction"])
	}
	if result["confidence"] != 0.9312 {
		t.Errorf("confidence = %v, want 0.9312", result["confidence"])
	}
}

func TestHTTPClassifierStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	_, err := c.Classify(context.Background(), "scan.png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "classifier API error") {
		t.Errorf("error = %v", err)
	}
}

func TestHTTPClassifierMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	_, err := c.Classify(context.Background(), "scan.png", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "malformed response") {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}
