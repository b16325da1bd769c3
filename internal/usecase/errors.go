package usecase

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrReferenceNotFound   = errors.New("referenced record does not exist")
)

// ReferenceError reports a foreign key pointing at a missing row.
// Field is the JSON name of the offending attribute; ID is zero when the
// database rejected the write without telling which key was wrong.
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("invalid %s: object does not exist", e.Field)
	}
	return fmt.Sprintf("invalid %s %d: object does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}

// finder is satisfied by every entity repository.
type finder[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
}

// checkReference returns a *ReferenceError when id does not resolve to a row.
func checkReference[T any](ctx context.Context, repo finder[T], field string, id int64) error {
	row, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return &ReferenceError{Field: field, ID: id}
	}
	return nil
}

// isForeignKeyError reports a foreign key violation as translated by gorm
// (TranslateError is enabled on every connection).
func isForeignKeyError(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
