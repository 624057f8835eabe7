package v1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"error", err.Error())
	}
}

// respondError maps err onto its HTTP status. Internal details are logged,
// not returned.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	detail := errors.GetMessage(err)
	if status >= http.StatusInternalServerError && code != errors.CodeUnavailable {
		detail = http.StatusText(status)
	}

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		slog.DebugContext(r.Context(), "request rejected", attrs...)
	}

	respondJSON(w, r, status, ErrorResponse{
		Detail: detail,
		Code:   code.String(),
	})
}

// decodeJSON reads a single JSON document from the request body into dst.
// Fields dst does not declare are ignored.
func decodeJSON(r *http.Request, dst interface{}) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if err == io.EOF {
			return errors.InvalidArgument("request body is required")
		}
		return errors.InvalidArgumentf("malformed request body: %v", err)
	}
	return nil
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("%s must be a positive integer, got %q", param, raw)
	}
	return id, nil
}

// parseIntQuery reads an optional integer query parameter
func parseIntQuery(r *http.Request, param string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", param, raw)
	}
	return value, nil
}

// window is a parsed skip/limit pair. empty is set for an explicit limit=0,
// which lists nothing rather than falling back to the default page size.
type window struct {
	offset int
	limit  int
	empty  bool
}

// parseWindow reads the skip/limit query parameters
func parseWindow(r *http.Request) (window, error) {
	offset, err := parseIntQuery(r, "skip", 0)
	if err != nil {
		return window{}, err
	}
	limit, err := parseIntQuery(r, "limit", paging.DefaultLimit)
	if err != nil {
		return window{}, err
	}
	if _, err := paging.Normalize(offset, limit); err != nil {
		return window{}, err
	}
	return window{offset: offset, limit: limit, empty: limit == 0}, nil
}
