package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
)

const (
	validationPrefix       = "Errores de validación: "
	validationFallback     = "Error de validación"
	validationFieldMissing = "campo"
)

// normalizeError maps a non-2xx response onto a typed error. The body is read
// as JSON; an unparseable body is replaced by {"message": "HTTP <status>:
// <statusText>"} and still goes through the status mapping.
func normalizeError(status int, text string, raw []byte) *pkgerrors.Error {
	payload := parseErrorPayload(status, text, raw)
	detail, _ := payload["detail"].(string)
	message, _ := payload["message"].(string)

	code := pkgerrors.CodeForStatus(status)
	meta := pkgerrors.MetadataFor(code)

	var msg string
	var fields []pkgerrors.FieldError
	switch status {
	case http.StatusUnprocessableEntity:
		if entries, ok := payload["detail"].([]any); ok {
			fields = fieldErrors(entries)
			msg = validationMessage(fields)
		} else if detail != "" {
			msg = detail
		} else {
			msg = validationFallback
		}
	case http.StatusBadRequest, http.StatusConflict:
		msg = meta.PublicMessage
		if detail != "" {
			msg = detail
		}
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError:
		msg = meta.PublicMessage
	default:
		switch {
		case detail != "":
			msg = detail
		case message != "":
			msg = message
		default:
			msg = fmt.Sprintf("Error %d: %s", status, text)
		}
	}

	apiErr := pkgerrors.New(code, msg).
		WithStatus(status).
		WithDetail(detail).
		WithFieldErrors(fields)
	if d, ok := payload["detail"]; ok && d != nil {
		apiErr.WithDetails(d)
	}
	return apiErr
}

func parseErrorPayload(status int, text string, raw []byte) map[string]any {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return map[string]any{"message": fmt.Sprintf("HTTP %d: %s", status, text)}
	}
	if obj, ok := generic.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func fieldErrors(entries []any) []pkgerrors.FieldError {
	fields := make([]pkgerrors.FieldError, 0, len(entries))
	for _, entry := range entries {
		obj, _ := entry.(map[string]any)
		field := validationFieldMissing
		if loc, ok := obj["loc"].([]any); ok {
			parts := make([]string, 0, len(loc))
			for _, p := range loc {
				parts = append(parts, locPart(p))
			}
			field = strings.Join(parts, ".")
		}
		msg, _ := obj["msg"].(string)
		fields = append(fields, pkgerrors.FieldError{Field: field, Message: msg})
	}
	return fields
}

func validationMessage(fields []pkgerrors.FieldError) string {
	rendered := make([]string, 0, len(fields))
	for _, f := range fields {
		rendered = append(rendered, f.Field+": "+f.Message)
	}
	return validationPrefix + strings.Join(rendered, ", ")
}

func locPart(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
