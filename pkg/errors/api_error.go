package errors

import "fmt"

type APIError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

var (
	ErrValidation = func(msg string) *APIError {
		return &APIError{Code: "validation_error", Message: msg}
	}
	ErrNotFound = func(msg string) *APIError {
		return &APIError{Code: "not_found", Message: msg}
	}
	ErrForbidden = func(msg string) *APIError {
		return &APIError{Code: "forbidden", Message: msg}
	}
	ErrUnauthorized = func(msg string) *APIError {
		return &APIError{Code: "unauthorized", Message: msg}
	}
	ErrMediaProcessing = func(err error) *APIError {
		return &APIError{Code: "media_processing_error", Message: "Medya işlenemedi", Err: err}
	}
	ErrStorage = func(err error) *APIError {
		return &APIError{Code: "storage_error", Message: "Veritabanı hatası", Err: err}
	}
	ErrFileStorage = func(err error) *APIError {
		return &APIError{Code: "storage_error", Message: "Dosya kaydedilemedi", Err: err}
	}
)
