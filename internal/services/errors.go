package services

// ValidationError marks malformed client input, detected before any mutation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validation(msg string) error {
	return &ValidationError{msg: msg}
}
