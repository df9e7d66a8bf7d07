package models

// ValidationError: input request tidak lengkap atau tidak valid (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
