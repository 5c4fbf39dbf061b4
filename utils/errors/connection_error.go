package errors

// ConnectionError is a failed backend connection with a message fit for the patient.
type ConnectionError struct {
	BaseURL string
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	return e.Message
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
