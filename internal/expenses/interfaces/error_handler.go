package interfaces

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

const errorTimestampLayout = "2006-01-02T15:04:05.000"

// ErrorDetails is the uniform payload rendered for every failed request.
type ErrorDetails struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Details   string `json:"details"`
	ErrorCode string `json:"errorCode"`
}

// HandleErrors adapts a handler returning an error into an http.HandlerFunc.
// It is the only place producing error responses, handlers just return the
// failure and let classification happen here.
func HandleErrors(
	log *logrus.Logger,
	loggingName string,
	handler func(http.ResponseWriter, *http.Request) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}

		status, errorCode := classifyError(err)
		entry := log.WithError(err).WithFields(logrus.Fields{
			"status":    status,
			"errorCode": errorCode,
			"uri":       r.URL.Path,
		})
		if status >= http.StatusInternalServerError {
			entry.Errorf("Handler.%v.Error", loggingName)
		} else {
			entry.Warnf("Handler.%v.Error", loggingName)
		}

		respondErrorPayload(w, status, err.Error(), errorCode, r.URL.Path)
	}
}

// classifyError is an ordered dispatch over the error taxonomy. Anything
// unclassified is a server-side failure and keeps its message text.
func classifyError(err error) (int, string) {
	switch {
	case expenseErrors.IsNotFoundError(err):
		return http.StatusNotFound, "RESOURCE_NOT_FOUND"
	case expenseErrors.IsValidationError(err):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case expenseErrors.IsConflictError(err):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}

func respondErrorPayload(w http.ResponseWriter, status int, message, errorCode, uri string) {
	respondJSON(w, status, ErrorDetails{
		Timestamp: time.Now().Format(errorTimestampLayout),
		Message:   message,
		Details:   "uri=" + uri,
		ErrorCode: errorCode,
	})
}

// NotFoundHandler renders the uniform payload for paths no route matched.
func NotFoundHandler(log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.WithField("uri", r.URL.Path).Warn("Handler.NotFound")
		respondErrorPayload(w, http.StatusNotFound, "Path not found", "RESOURCE_NOT_FOUND", r.URL.Path)
	}
}
