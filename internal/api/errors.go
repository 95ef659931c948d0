package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starford/cookbook/internal/apperr"
)

// The service wraps every rejection in {"detail": ...} where detail is a
// plain string, an object carrying code/message, or a list of field errors.
// normalizeError flattens all three shapes into one *apperr.APIError so no
// call site ever sniffs the payload again.
func normalizeError(status int, body []byte) error {
	e := &apperr.APIError{Status: status, Message: genericMessage(status)}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return e
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		if s != "" {
			e.Message = s
		}
		return e
	}

	var obj struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &obj); err == nil && obj.Message != "" {
		e.Code = obj.Code
		e.Message = obj.Message
		return e
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &list); err == nil {
		var msgs []string
		for _, item := range list {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		if len(msgs) > 0 {
			e.Message = strings.Join(msgs, "; ")
		}
		return e
	}

	return e
}

func genericMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return "request failed: " + strings.ToLower(text)
	}
	return "request failed"
}
