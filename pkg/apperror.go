package pkg

import "fmt"

// AppError is the service-wide error envelope. Use cases return sentinel
// errors; handlers translate them into an AppError carrying the machine
// readable code and the HTTP status to answer with.
//
// Codes in use:
//   - INVALID_REQUEST  (400) validation failures
//   - UNAUTHORIZED     (401) missing/invalid session token
//   - NOT_FOUND        (404) unknown estimate/client/invoice id
//   - CONFLICT         (409) concurrent modification detected
//   - INTERNAL_ERROR   (500) persistence or other unhandled failures

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
