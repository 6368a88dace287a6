package errors

import (
	stdErrors "errors"
	"net/http"
)

type Code string

const (
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL_ERROR"
	CodeUnknown         Code = "UNKNOWN_ERROR"
	CodeDependency      Code = "DEPENDENCY_ERROR"
	CodeInvalidResponse Code = "INVALID_RESPONSE"
)

// Metadata describes how a backend failure is surfaced to callers.
// DetailAllowed reports whether a string `detail` from the backend replaces
// PublicMessage.
type Metadata struct {
	HTTPStatus    int
	Retryable     bool
	PublicMessage string
	DetailAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "Datos de solicitud inválidos",
		DetailAllowed: true,
	},
	CodeUnauthorized: {
		HTTPStatus:    http.StatusUnauthorized,
		PublicMessage: "No autorizado. Por favor, inicia sesión nuevamente",
	},
	CodeForbidden: {
		HTTPStatus:    http.StatusForbidden,
		PublicMessage: "No tienes permisos para realizar esta acción",
	},
	CodeNotFound: {
		HTTPStatus:    http.StatusNotFound,
		PublicMessage: "El recurso solicitado no existe",
	},
	CodeConflict: {
		HTTPStatus:    http.StatusConflict,
		PublicMessage: "Conflicto con el estado actual del recurso",
		DetailAllowed: true,
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		Retryable:     true,
		PublicMessage: "Error interno del servidor. Por favor, inténtalo más tarde",
	},
	CodeUnknown: {
		PublicMessage: "Error en la petición",
		DetailAllowed: true,
	},
	CodeDependency: {
		HTTPStatus:    http.StatusServiceUnavailable,
		Retryable:     true,
		PublicMessage: "Error de conexión. Por favor, verifica tu conexión a internet.",
	},
	CodeInvalidResponse: {
		HTTPStatus:    http.StatusBadGateway,
		PublicMessage: "Respuesta inválida del servidor",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeUnknown]
}

// CodeForStatus maps an HTTP status onto the client error taxonomy. 422 is
// folded into CodeValidation alongside 400.
func CodeForStatus(status int) Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusInternalServerError:
		return CodeInternal
	default:
		return CodeUnknown
	}
}

// FieldError is one entry of a 422 validation payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	code        Code
	message     string
	status      int
	detail      string
	fieldErrors []FieldError
	details     any
	cause       error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Status is the HTTP status returned by the backend, or 0 when the request
// never produced a response.
func (e *Error) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

// Detail is the raw string `detail` sent by the backend, kept even when the
// message was replaced by a fixed one.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	return e.detail
}

func (e *Error) FieldErrors() []FieldError {
	if e == nil {
		return nil
	}
	return e.fieldErrors
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithStatus(status int) *Error {
	if e == nil {
		return nil
	}
	e.status = status
	return e
}

func (e *Error) WithDetail(detail string) *Error {
	if e == nil {
		return nil
	}
	e.detail = detail
	return e
}

func (e *Error) WithFieldErrors(fields []FieldError) *Error {
	if e == nil {
		return nil
	}
	e.fieldErrors = fields
	return e
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// Error returns the user-facing message only, so existing message matching
// keeps working. Branch on Code instead where possible.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.message == "" {
		return string(e.code)
	}
	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}
