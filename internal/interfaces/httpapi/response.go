package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
	"github.com/riskibarqy/matchstats/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	apiVersion      = "2.0"
	errorDomain     = "matchstats"
	internalMessage = "internal server error"
)

var errRateLimited = crerr.New("rate limit exceeded")

// envelope follows the Google JSON style guide: data on success, error otherwise.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// errorClass is how a failure is presented to clients.
type errorClass struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalClass = errorClass{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// errorClasses is checked in order and the first sentinel found in the chain wins.
// crerr.Is also honours marks applied in the use-case layer.
var errorClasses = []struct {
	sentinel error
	class    errorClass
}{
	{usecase.ErrInvalidInput, errorClass{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, errorClass{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrMalformedStandingsData, errorClass{http.StatusInternalServerError, "malformedStandingsData", "INTERNAL"}},
	{usecase.ErrDependencyUnavailable, errorClass{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
	{errRateLimited, errorClass{http.StatusTooManyRequests, "rateLimitExceeded", "RESOURCE_EXHAUSTED"}},
}

func classifyError(err error) errorClass {
	for _, c := range errorClasses {
		if crerr.Is(err, c.sentinel) {
			return c.class
		}
	}
	return internalClass
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeEnvelope(ctx, w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError renders err in its class. Unclassified errors never leak their text.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classifyError(err)
	message := internalMessage
	if class != internalClass {
		message = err.Error()
	}
	writeFailure(ctx, w, class, message)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeFailure(ctx, w, internalClass, internalMessage)
}

func writeFailure(ctx context.Context, w http.ResponseWriter, class errorClass, message string) {
	writeEnvelope(ctx, w, class.HTTPStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.HTTPStatus,
			Message: message,
			Status:  class.Status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.Reason, Message: message}},
		},
	})
}

func writeEnvelope(ctx context.Context, w http.ResponseWriter, status int, body envelope) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "error", err)
		http.Error(w, internalMessage, http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}
