package quote

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when a caller touches a project it does not own.
var ErrForbidden = errors.New("project belongs to another user")

// ValidationError reports caller input that violates a precondition.
// Nothing is mutated when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// NotFoundError reports a missing project, item, material, etc.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// DataIntegrityError reports an item whose material is gone from the catalog,
// so its rate cannot be resolved.
type DataIntegrityError struct {
	ItemID     string
	MaterialID string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("item %q references unknown material %q", e.ItemID, e.MaterialID)
}

// PersistenceError wraps a failed storage, catalog or blob operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError unless it already is a domain error.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || IsValidation(err) || IsDataIntegrity(err) || IsPersistence(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsDataIntegrity(err error) bool {
	var di *DataIntegrityError
	return errors.As(err, &di)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
