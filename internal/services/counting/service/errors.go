package service

import (
	"errors"

	"stockcount/internal/core/manifest"
	"stockcount/internal/core/scanner"
	perr "stockcount/internal/platform/errors"
)

// coreErr maps manifest and session errors onto API codes, field names the
// request field the error belongs to
func coreErr(err error, field string) error {
	var (
		dup     *manifest.DuplicateItemError
		invalid *manifest.InvalidLineError
		unknown *manifest.UnknownItemError
	)
	switch {
	case errors.As(err, &dup), errors.As(err, &invalid):
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, err.Error()), field)
	case errors.As(err, &unknown):
		return perr.Wrap(err, perr.ErrorCodeNotFound, err.Error())
	case errors.Is(err, scanner.ErrClosed):
		return perr.Wrap(err, perr.ErrorCodeGone, "session is closed")
	default:
		return err
	}
}

// storeErr keeps coded errors and maps raw driver errors by SQLSTATE
func storeErr(err error, msg string) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromPostgres(err, msg)
}
