package services

import (
	"fmt"

	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
)

// ValidationError dipakai bersama semua modul, termasuk pemetaan status di common/controllers.
type ValidationError = commonModels.ValidationError

// FetchError: gagal membaca document store (HTTP 500).
type FetchError struct {
	Collection string
	DocID      string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s/%s: %v", e.Collection, e.DocID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
