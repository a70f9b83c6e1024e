// Package dberr maps gorm and driver errors onto the errs taxonomy so the
// repositories report failures the same way.
package dberr

import (
	"errors"

	"dronefleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap classifies err from a storage call made for operation. Not found and
// duplicate key errors become ObjectNotFound and ObjectAlreadyExists for the
// given param and id; anything else, deadlines included, is a
// StorageUnavailableError. Errors already in the taxonomy pass through.
func Wrap(operation, param string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrStorageUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(param, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause(param, id, err)
	default:
		return errs.NewStorageUnavailableError(operation, err)
	}
}
