package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
)

var (
	errHTTPForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound  = echo.NewHTTPError(http.StatusNotFound, "not found")
)

type errorPage struct {
	page
	Code int
}

// newAppHTTPErrorHandler returns an echo.HTTPErrorHandler rendering the error
// page. Unknown errors are reported to the logger; each handler already
// isolates backend failures, so anything landing here is a programming error
// or a straight 4xx.
func newAppHTTPErrorHandler(logger core.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			}
		case validator.ValidationErrors, *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.Error()
		default:
			logger.Error(message, errors.Wrap(err, message))
		}

		if debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			data := errorPage{page: page{Title: "Error", Now: nowString(), Error: message}, Code: code}
			if rErr := ctx.Render(code, "error.html", data); rErr != nil {
				ctx.Echo().Logger.Error(rErr)
			}
		}
	}
}
