package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestJSON(t *testing.T) {
	t.Run("encodes body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusOK, struct {
			Total int `json:"total"`
		}{Total: 3})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"total":3}`, rec.Body.String())
	})

	t.Run("nil body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unencodable value keeps status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSON(rec, http.StatusOK, func() {})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{"validation message is echoed", http.StatusBadRequest, errors.New("article id must not be empty"), "article id must not be empty"},
		{"too long id is echoed", http.StatusBadRequest, errors.New("invalid article id: too long"), "invalid article id: too long"},
		{"unknown 4xx text is masked", http.StatusBadRequest, errors.New("pq: relation missing"), "bad request"},
		{"masked 429 uses status text", http.StatusTooManyRequests, errors.New("bucket empty"), "too many requests"},
		{"5xx is always masked", http.StatusInternalServerError, errors.New("value is required"), "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SafeError(rec, http.StatusBadRequest, nil)
		assert.Empty(t, rec.Body.String())
	})
}

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestSafeError_LogLevels(t *testing.T) {
	t.Run("masked 4xx logs at warn", func(t *testing.T) {
		buf := captureDefaultLog(t)
		SafeError(httptest.NewRecorder(), http.StatusTooManyRequests, errors.New("bucket empty"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "client error", entry["msg"])
		assert.EqualValues(t, http.StatusTooManyRequests, entry["code"])
	})

	t.Run("echoed 4xx is not logged", func(t *testing.T) {
		buf := captureDefaultLog(t)
		SafeError(httptest.NewRecorder(), http.StatusBadRequest, errors.New("limit must be positive"))
		assert.Zero(t, buf.Len())
	})

	t.Run("5xx logs at error", func(t *testing.T) {
		buf := captureDefaultLog(t)
		SafeError(httptest.NewRecorder(), http.StatusBadGateway, errors.New("upstream reset"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "ERROR", entry["level"])
	})
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewAppError(http.StatusServiceUnavailable, "search engine unavailable", cause)

	assert.Equal(t, "connection reset", appErr.Error())
	assert.ErrorIs(t, appErr, cause)

	bare := NewAppError(http.StatusBadRequest, "bad page", nil)
	assert.Equal(t, "bad page", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
