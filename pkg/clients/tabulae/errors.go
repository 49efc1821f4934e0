package tabulae

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// FieldError is one entry of a field-level validation error list.
type FieldError struct {
	Msg string `json:"msg"`
}

// ErrorDetail is the API's error body, which is either a plain string or a
// list of field errors. The union is decoded explicitly: exactly one branch
// is populated.
type ErrorDetail struct {
	Text   string
	Fields []FieldError
}

// UnmarshalJSON tries the string branch first, then the field-error list.
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		d.Text = text
		d.Fields = nil
		return nil
	}

	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("error detail is neither string nor field list: %w", err)
	}
	d.Text = ""
	d.Fields = fields
	return nil
}

// String renders the detail as a single human-readable message.
func (d ErrorDetail) String() string {
	if d.Text != "" {
		return d.Text
	}

	msgs := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Msg != "" {
			msgs = append(msgs, f.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}

type apiErrorBody struct {
	Detail ErrorDetail `json:"detail"`
}

// APIError is a non-2xx response from the API with its decoded detail.
type APIError struct {
	Status int
	Detail ErrorDetail
}

// Error surfaces the server's message verbatim when one exists.
func (e *APIError) Error() string {
	if msg := e.Detail.String(); msg != "" {
		return msg
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// checkResponse converts a non-2xx resty response into an APIError. The body
// passed in is the value previously registered via SetError.
func checkResponse(resp *resty.Response, body *apiErrorBody) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}
	if body != nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
