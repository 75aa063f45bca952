package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	er "github.com/mcorbin/corbierror"
)

func writeError(logger *slog.Logger, c echo.Context, status int, messages ...string) {
	err := c.JSON(status, er.Error{
		Messages: messages,
	})
	if err != nil {
		logger.Error(err.Error())
		c.Response().Status = http.StatusInternalServerError
	}
}

func errorHandler(logger *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		// ctx.Error() can be called with nil in a middleware
		if err == nil {
			return
		}
		errLoggedMsg := err.Error() + " on " + c.Request().Method + " " + c.Request().URL.Path
		corbiError, ok := err.(*er.Error)
		if ok {
			if corbiError.Type == er.Forbidden || corbiError.Type == er.NotFound {
				logger.Warn(errLoggedMsg)
			} else {
				logger.Error(errLoggedMsg)
			}
			finalErr, status := er.HTTPError(*corbiError)
			err := c.JSON(status, finalErr)
			if err != nil {
				logger.Error(err.Error())
				c.Response().Status = http.StatusInternalServerError
			}
			return
		}
		if bindingError, ok := err.(*echo.BindingError); ok {
			logger.Warn(errLoggedMsg)
			writeError(logger, c, http.StatusBadRequest, fmt.Sprintf("invalid value for field %s", bindingError.Field))
			return
		}
		echoError, ok := err.(*echo.HTTPError)
		if !ok {
			logger.Error(errLoggedMsg)
			writeError(logger, c, http.StatusInternalServerError, "internal server error")
			return
		}
		logger.Warn(errLoggedMsg)
		if jsonError, ok := echoError.Internal.(*json.UnmarshalTypeError); ok {
			writeError(logger, c, http.StatusBadRequest, fmt.Sprintf("invalid JSON payload, field %s is incorrect", jsonError.Field))
			return
		}
		switch echoError.Code {
		case http.StatusBadRequest:
			if strings.Contains(echoError.Error(), "Field validation") {
				writeError(logger, c, http.StatusBadRequest, strings.Split(fmt.Sprintf("%+v", echoError.Message), "\n")...)
				return
			}
			writeError(logger, c, http.StatusBadRequest, fmt.Sprintf("%v", echoError.Message))
		case http.StatusUnauthorized:
			writeError(logger, c, http.StatusUnauthorized, "unauthorized")
		case http.StatusMethodNotAllowed:
			writeError(logger, c, http.StatusMethodNotAllowed, "method not allowed")
		case http.StatusNotFound:
			writeError(logger, c, http.StatusNotFound, "not found")
		default:
			writeError(logger, c, http.StatusInternalServerError, "internal server error")
		}
	}
}
