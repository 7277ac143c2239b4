package services

import "errors"

// Error kinds surfaced by the services. Wrap them with fmt.Errorf("...: %w")
// so the HTTP layer can map each kind to a status code with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrGeneration = errors.New("quiz generation failed")
	ErrUpload     = errors.New("media upload failed")
	ErrStore      = errors.New("store failure")
)
