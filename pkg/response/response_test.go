package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"moving-offer-service/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		doc := map[string]string{"service": "Moving"}
		response.OK(c, doc)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		// The document is the body itself, no envelope around it.
		if body["service"] != "Moving" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ValidationFailed(c, []string{"rooms must be a positive number (e.g. 3.5)"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.ErrResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Error != response.MessageValidationFailed {
			t.Errorf("expected %q, got %q", response.MessageValidationFailed, resp.Error)
		}
		if len(resp.Details) != 1 {
			t.Errorf("expected 1 detail, got %d", len(resp.Details))
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, "Failed to generate offer")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "Failed to generate offer" {
			t.Errorf("unexpected message %q", resp.Error)
		}
		if len(resp.Details) != 0 {
			t.Errorf("internal error must not carry details, got %v", resp.Details)
		}
	})
}
