package woocommerce

// RequestError is a transport or HTTP level failure talking to the proxy.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ApplicationError is a well-formed 2xx response with success set to false.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func newApplicationError(message, fallback string) *ApplicationError {
	if message == "" {
		message = fallback
	}
	return &ApplicationError{Message: message}
}
