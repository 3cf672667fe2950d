// internal/util/errors.go
// Definisi error aplikasi standar

package util

import "fmt"

type AppError struct {
	Code    string // e.g., "bad_input", "not_found", "upstream", "internal"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: "not_found", Message: msg} }
func Internal(msg string) AppError { return AppError{Code: "internal", Message: msg} }

// Upstream menandai kegagalan dari API Notion/OpenAI di hilir.
func Upstream(msg string) AppError { return AppError{Code: "upstream", Message: msg} }

// HTTPStatus memetakan kode error aplikasi ke status HTTP.
func HTTPStatus(err error) int {
	ae, ok := err.(AppError)
	if !ok {
		return 500
	}
	switch ae.Code {
	case "bad_input":
		return 400
	case "not_found":
		return 404
	case "upstream":
		return 502
	default:
		return 500
	}
}
