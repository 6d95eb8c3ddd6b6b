package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON envelope of every API response.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes data with status 200.
func JSON(w http.ResponseWriter, code string, data any) {
	write(w, http.StatusOK, Response{Code: code, Data: data})
}

// JSONError writes err. HTTPError values keep their status; anything else is
// reported as a 500 without leaking the message.
func JSONError(w http.ResponseWriter, err error) {
	httpErr := ErrInternalServerError
	message := http.StatusText(httpErr.Code)

	var he HTTPError
	if errors.As(err, &he) {
		httpErr = he
		message = err.Error()
	}

	write(w, httpErr.Code, Response{
		Code:  httpErr.Key,
		Error: &ErrorDetail{Code: httpErr.Key, Message: message},
	})
}

func write(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
