package imaging

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/platform/httpx"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	classifier agent.Classifier
}

func NewHandler(classifier agent.Classifier) *Handler {
	return &Handler{classifier: classifier}
}

type resultField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Analyze forwards an uploaded histopathological image to the classification
// endpoint and renders each returned field, numeric scores to two decimals.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if !allowedImage(header.Filename) {
		httpx.Error(w, http.StatusBadRequest, "image must be a PNG or JPEG file")
		return
	}

	result, err := h.classifier.Classify(r.Context(), header.Filename, file)
	if err != nil {
		// External failures become a displayable message, never a fault.
		httpx.JSON(w, http.StatusOK, map[string]any{
			"error": "An error occurred during prediction: " + err.Error(),
		})
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"results": formatResults(result)})
}

func allowedImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// formatResults prettifies field names and formats numeric scores to two
// decimal places, in stable field order.
func formatResults(result map[string]any) []resultField {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]resultField, 0, len(keys))
	for _, k := range keys {
		var value string
		switch v := result[k].(type) {
		case float64:
			value = fmt.Sprintf("%.2f", v)
		default:
			value = fmt.Sprint(v)
		}
		fields = append(fields, resultField{Field: fieldTitle(k), Value: value})
	}
	return fields
}

func fieldTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/image-analysis", h.Analyze)
}
