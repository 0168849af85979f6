package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"verid/internal/validate/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Route("/v1", h.Register)
	return r
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestDecodeAlbania(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid NID returns decoded fields", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/decode", `{"nid":"J00101999W"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, "albania", body["country"])
		require.Equal(t, "1990-01-01", body["birthday"])
		require.Equal(t, "M", body["sex"])
		require.Equal(t, true, body["is_national"])
		require.EqualValues(t, 1990, body["year"])
		require.EqualValues(t, 1, body["month"])
		require.EqualValues(t, 1, body["day"])
	})

	t.Run("lowercase input decodes identically", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/decode", `{"nid":"j00101999w"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "1990-01-01", decodeBody(t, w)["birthday"])
	})

	t.Run("garbled input maps to format_error", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/decode", `{"nid":"invalid"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, "format_error", body["error"])
		require.NotEmpty(t, body["error_description"])
	})

	t.Run("bad checksum maps to checksum_error", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/decode", `{"nid":"J00101999A"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "checksum_error", decodeBody(t, w)["error"])
	})

	t.Run("impossible date maps to invalid_date", func(t *testing.T) {
		// Feb 30 with a correct checksum.
		w := post(t, router, "/v1/nid/albania/decode", `{"nid":"J00230123C"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "invalid_date", decodeBody(t, w)["error"])
	})
}

func TestValidateAlbania(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid NID", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/validate", `{"nid":"J00101999W"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, decodeBody(t, w)["valid"])
	})

	t.Run("error kind matches decode endpoint", func(t *testing.T) {
		decode := post(t, router, "/v1/nid/albania/decode", `{"nid":"J0A101123R"}`)
		validate := post(t, router, "/v1/nid/albania/validate", `{"nid":"J0A101123R"}`)
		require.Equal(t, decode.Code, validate.Code)
		require.Equal(t, decodeBody(t, decode)["error"], decodeBody(t, validate)["error"])
	})
}

func TestValidateKosovo(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid number", func(t *testing.T) {
		w := post(t, router, "/v1/nid/kosovo/validate", `{"nid":"1234567892"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, decodeBody(t, w)["valid"])
	})

	t.Run("reserved range bypasses checksum", func(t *testing.T) {
		w := post(t, router, "/v1/nid/kosovo/validate", `{"nid":"9000000001"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong check digit maps to checksum_error", func(t *testing.T) {
		w := post(t, router, "/v1/nid/kosovo/validate", `{"nid":"1234567890"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "checksum_error", decodeBody(t, w)["error"])
	})

	t.Run("non-digit input maps to format_error", func(t *testing.T) {
		w := post(t, router, "/v1/nid/kosovo/validate", `{"nid":"12345678A0"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "format_error", decodeBody(t, w)["error"])
	})
}

func TestRequestEnvelope(t *testing.T) {
	router := newTestRouter(t)

	t.Run("malformed JSON is bad_request", func(t *testing.T) {
		w := post(t, router, "/v1/nid/albania/decode", `{`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "bad_request", decodeBody(t, w)["error"])
	})

	t.Run("missing nid is bad_request", func(t *testing.T) {
		w := post(t, router, "/v1/nid/kosovo/validate", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "bad_request", decodeBody(t, w)["error"])
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/nid/albania/decode", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
