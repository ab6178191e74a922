package store

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/taskdeck/models"
)

// ErrNotFound is returned when no task carries the requested id.
var ErrNotFound = errors.New("task not found")

// ValidationError reports input that cannot be stored.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// validateContent maps the model-level rule failure onto the store taxonomy.
func validateContent(content string) error {
	err := models.ValidateContent(content)
	if err == nil {
		return nil
	}
	var fe models.FieldErrors
	if errors.As(err, &fe) && len(fe) > 0 {
		return &ValidationError{Field: fe[0].Field, Message: "task content is required"}
	}
	return &ValidationError{Field: "content", Message: err.Error()}
}
