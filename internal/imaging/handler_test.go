package imaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stubClassifier struct {
	result map[string]any
	err    error
}

func (s stubClassifier) Classify(ctx context.Context, filename string, image io.Reader) (map[string]any, error) {
	return s.result, s.err
}

func TestFormatResults(t *testing.T) {
	got := formatResults(map[string]any{
		"prediction":       "benign",
		"confidence_score": 0.93118,
		"sample_count":     float64(12),
	})

	want := []resultField{
		{Field: "Confidence Score", Value: "0.93"},
		{Field: "Prediction", Value: "benign"},
		{Field: "Sample Count", Value: "12.00"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFieldTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prediction", "Prediction"},
		{"confidence_score", "Confidence Score"},
		{"tumor_cell_ratio", "Tumor Cell Ratio"},
	}
	for _, tt := range tests {
		if got := fieldTitle(tt.in); got != tt.want {
			t.Errorf("fieldTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("image-bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/image-analysis", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newTestRouter(c stubClassifier) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(c))
	return r
}

func TestAnalyze(t *testing.T) {
	r := newTestRouter(stubClassifier{result: map[string]any{
		"prediction": "malignant",
		"confidence": 0.87,
	}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "biopsy.jpg"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body)
	}

	var body struct {
		Results []resultField `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("results = %+v", body.Results)
	}
	if body.Results[0].Field != "Confidence" || body.Results[0].Value != "0.87" {
		t.Errorf("results[0] = %+v", body.Results[0])
	}
	if body.Results[1].Field != "Prediction" || body.Results[1].Value != "malignant" {
		t.Errorf("results[1] = %+v", body.Results[1])
	}
}

func TestAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	r := newTestRouter(stubClassifier{result: map[string]any{}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "notes.pdf"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	r := newTestRouter(stubClassifier{result: map[string]any{}})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("comment", "no image attached")
	writer.Close()
	req := httptest.NewRequest(http.MethodPost, "/image-analysis", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeClassifierFailureIsDisplayable(t *testing.T) {
	r := newTestRouter(stubClassifier{err: errors.New("endpoint unreachable")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "scan.png"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with displayable error", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "An error occurred during prediction: endpoint unreachable" {
		t.Errorf("error = %q", body["error"])
	}
}
