package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-backend/internal/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func errorResponse(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body["error"]
}

func TestRespondWithServiceErrorMapsTypedErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{apperrors.ErrItemMissing, http.StatusNotFound, "no item found"},
		{apperrors.ErrOrderMissing, http.StatusNotFound, "no order found"},
		{apperrors.ErrBranchUnavailable, http.StatusNotFound, "no open branch close to your location"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		respondWithServiceError(c, zap.NewNop(), "GET /test", tc.err)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, rec.Code)
		}
		if got := errorResponse(t, rec); got != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, got)
		}
	}
}

func TestRespondWithServiceErrorMasksUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondWithServiceError(c, zap.NewNop(), "GET /test", errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := errorResponse(t, rec); got != "internal server error" {
		t.Fatalf("expected masked message, got %q", got)
	}
}

func TestRequiredIDQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/items/details?itemId=652d9c3f8e7a4b2a1c0f9e8d", nil)

	id, ok := requiredIDQuery(c, "itemId")
	if !ok {
		t.Fatalf("expected parse to succeed, response %s", rec.Body.String())
	}
	if id.Hex() != "652d9c3f8e7a4b2a1c0f9e8d" {
		t.Fatalf("unexpected id %s", id.Hex())
	}
}

func TestRequiredIDQueryRejectsMalformedValue(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/items/details?itemId=not-an-id", nil)

	if _, ok := requiredIDQuery(c, "itemId"); ok {
		t.Fatal("expected parse to fail")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOptionalIDQueryAbsent(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)

	id, ok := optionalIDQuery(c, "orderId")
	if !ok || id != nil {
		t.Fatalf("expected nil id without error, got %v ok=%v", id, ok)
	}
}

func TestOptionalIDQueryMalformedValueIsStillAnError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/orders?orderId=zzz", nil)

	if _, ok := optionalIDQuery(c, "orderId"); ok {
		t.Fatal("expected parse to fail")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
