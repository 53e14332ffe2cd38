package response

import (
	"job-board/internal/action"
	"job-board/internal/domain/apperr"

	"github.com/gofiber/fiber/v3"
)

type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageTooManyRequests     = "too many requests"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

const (
	keyOK       = "common.ok"
	keyInternal = "error.internal"
)

// Translator renders message keys for a locale.
type Translator interface {
	T(locale, key string, values map[string]any) string
	Message(locale, key, fallbackMessage string) string
}

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

// Action writes an action result. A fatal error is returned unchanged so the
// error middleware answers with a generic 500.
func Action[T any](c fiber.Ctx, tr Translator, locale string, okStatus int, res action.Result[T], err error) error {
	if err != nil {
		return err
	}
	if res.Err != nil {
		msg := res.Err.ErrorMessage
		if tr != nil {
			msg = tr.Message(locale, res.Err.ErrorKey, res.Err.ErrorMessage)
		}
		return Error(c, StatusFor(res.Err.ErrorCode), msg, res)
	}

	msg := MessageOK
	if tr != nil {
		msg = tr.T(locale, keyOK, nil)
	}
	return Success(c, okStatus, msg, res)
}

// InternalMessage is the localized text of a 500 response.
func InternalMessage(tr Translator, locale string) string {
	if tr == nil {
		return MessageInternalServerError
	}
	return tr.Message(locale, keyInternal, MessageInternalServerError)
}

func StatusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeNotFound:
		return fiber.StatusNotFound
	case apperr.CodeForbidden:
		return fiber.StatusForbidden
	case apperr.CodeConflict:
		return fiber.StatusConflict
	case apperr.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.CodeInvalidInput, apperr.CodeFilterInvalid:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK, fiber.StatusCreated:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusTooManyRequests:
		return MessageTooManyRequests
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
