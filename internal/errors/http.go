package errors

import "errors"

// HTTPError is the JSON body written for a failed HTTP request
type HTTPError struct {
	Error  string              `json:"error"`
	Code   Code                `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// ToHTTP maps an error to a status code and response body. Errors without
// a code are reported as internal without leaking their text.
func ToHTTP(err error) (int, HTTPError) {
	var customErr *Error
	if !errors.As(err, &customErr) {
		return CodeInternal.HTTPStatus(), HTTPError{
			Error: "internal error",
			Code:  CodeInternal,
		}
	}

	body := HTTPError{
		Error: customErr.Message,
		Code:  customErr.Code,
	}
	if fields, ok := customErr.Meta[validationErrorsKey].(map[string][]string); ok {
		body.Fields = fields
	}

	return customErr.Code.HTTPStatus(), body
}
