package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.APIVersion != apiVersion {
		t.Fatalf("expected apiVersion=%s, got %q", apiVersion, body.APIVersion)
	}
	return body
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK || rec.Header().Get("Content-Length") == "" {
		t.Fatalf("unexpected response: status=%d headers=%v", rec.Code, rec.Header())
	}
	body := decodeEnvelope(t, rec)
	if body.Data == nil || body.Error != nil {
		t.Fatalf("expected data only, got %+v", body)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "classified error keeps its message",
			err:         fmt.Errorf("%w: bad selector", usecase.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid input: bad selector",
		},
		{
			name:        "unclassified error is hidden",
			err:         crerr.New("pq: password authentication failed"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := decodeEnvelope(t, rec)
			if body.Error == nil || body.Data != nil {
				t.Fatalf("expected error only, got %+v", body)
			}
			if body.Error.Code != tt.wantStatus || body.Error.Message != tt.wantMessage {
				t.Fatalf("unexpected error body: %+v", body.Error)
			}
			if len(body.Error.Errors) != 1 || body.Error.Errors[0].Domain != errorDomain {
				t.Fatalf("unexpected error items: %+v", body.Error.Errors)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "invalid input", err: crerr.Wrap(usecase.ErrInvalidInput, "match id is required"), wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "match not found", err: crerr.WithStack(&usecase.NotFoundError{MatchID: "A5WasEE6"}), wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "standings not found", err: crerr.Wrapf(usecase.ErrStandingsNotFound, "league=%s", "eng-pl"), wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "malformed standings", err: crerr.Mark(crerr.New("bad info"), usecase.ErrMalformedStandingsData), wantStatus: http.StatusInternalServerError, wantReason: "malformedStandingsData"},
		{name: "store unavailable", err: crerr.Mark(crerr.New("dial tcp"), usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{name: "rate limited", err: errRateLimited, wantStatus: http.StatusTooManyRequests, wantReason: "rateLimitExceeded"},
		{name: "unknown", err: crerr.New("boom"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.HTTPStatus != tt.wantStatus || got.Reason != tt.wantReason {
				t.Fatalf("classifyError()=%+v want status=%d reason=%s", got, tt.wantStatus, tt.wantReason)
			}
		})
	}
}
