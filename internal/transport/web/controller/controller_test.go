package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/require"
)

const testUserID = "user456"

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func itemID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

