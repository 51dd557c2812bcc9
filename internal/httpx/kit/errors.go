package kit

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"furniquote/internal/logx"
	"furniquote/internal/quote"
)

var kitLogger = logx.GetScope("httpx")

// APIError is a structured application error with code and message.
type APIError struct {
	HTTPStatus int         `json:"-"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(httpStatus int, code, msg string, details interface{}) *APIError {
	return &APIError{HTTPStatus: httpStatus, Code: code, Message: msg, Details: details}
}

func BadRequest(msg string, details interface{}) error {
	return NewAPIError(http.StatusBadRequest, "E_INVALID_PARAM", msg, details)
}

func NotFound(msg string) error { return NewAPIError(http.StatusNotFound, "E_NOT_FOUND", msg, nil) }

func InternalError(msg string, details interface{}) error {
	return NewAPIError(http.StatusInternalServerError, "E_INTERNAL", msg, details)
}

// ConfirmationRequired rejects a destructive call that was not confirmed.
func ConfirmationRequired(msg string) error {
	return NewAPIError(http.StatusBadRequest, "E_CONFIRMATION_REQUIRED", msg, nil)
}

// FromDomain maps quote errors onto API errors. Other errors are returned as is.
func FromDomain(err error) error {
	var (
		ve *quote.ValidationError
		nf *quote.NotFoundError
		di *quote.DataIntegrityError
		pe *quote.PersistenceError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return NewAPIError(http.StatusBadRequest, "E_INVALID_PARAM", ve.Error(), fiber.Map{"field": ve.Field})
	case errors.As(err, &nf):
		return NewAPIError(http.StatusNotFound, "E_NOT_FOUND", nf.Error(), fiber.Map{"kind": nf.Kind, "id": nf.ID})
	case errors.As(err, &di):
		return NewAPIError(http.StatusConflict, "E_DATA_INTEGRITY", di.Error(), fiber.Map{"item_id": di.ItemID, "material_id": di.MaterialID})
	case errors.Is(err, quote.ErrForbidden):
		return NewAPIError(http.StatusForbidden, "E_FORBIDDEN", "project belongs to another user", nil)
	case errors.As(err, &pe):
		// the cause stays in the log; clients only learn the operation
		kitLogger.Error("persistence failure", zap.String("op", pe.Op), zap.Error(pe.Err))
		return NewAPIError(http.StatusServiceUnavailable, "E_PERSISTENCE", "could not save changes, please retry", fiber.Map{"op": pe.Op})
	}
	return err
}

// ErrorHandler returns a Fiber error handler that emits unified error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		err = FromDomain(err)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fail(c, fe.Code, httpStatusToCode(fe.Code), fe.Message, nil)
		}

		var ae *APIError
		if errors.As(err, &ae) {
			return fail(c, ae.HTTPStatus, ae.Code, ae.Message, ae.Details)
		}

		kitLogger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "E_INTERNAL", "Internal Server Error", nil)
	}
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "E_INVALID_PARAM"
	case http.StatusNotFound:
		return "E_NOT_FOUND"
	case http.StatusUnauthorized:
		return "E_UNAUTHORIZED"
	case http.StatusForbidden:
		return "E_FORBIDDEN"
	case http.StatusRequestEntityTooLarge:
		return "E_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "E_RATE_LIMITED"
	default:
		if status >= 500 {
			return "E_INTERNAL"
		}
		return "E_UNKNOWN"
	}
}
