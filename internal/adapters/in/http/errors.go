package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// HTTPErrorHandler renders failures in the response envelope and logs one
// line per failed request.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err)
		attrs := []any{
			"status", code,
			"error", message,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		}
		if code >= http.StatusInternalServerError {
			logger.Error("request failed", append(attrs, "cause", err.Error())...)
		} else {
			logger.Warn("request failed", attrs...)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, failed(message))
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, internalErrorMessage
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	switch {
	case errs.IsValidation(err),
		drone.IsRuleViolation(err),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
