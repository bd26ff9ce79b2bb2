package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the repos react to
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTruncation    = "22001"
	pgInvalidText         = "22P02"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgQueryCanceled       = "57014"
	pgReadOnly            = "25006"
	pgCannotConnectNow    = "57P03"
)

var codeBySQLState = map[string]ErrorCode{
	pgUniqueViolation:     ErrorCodeDuplicateKey,
	pgForeignKeyViolation: ErrorCodeInvalidArgument,
	pgNotNullViolation:    ErrorCodeValidation,
	pgCheckViolation:      ErrorCodeValidation,
	pgStringTruncation:    ErrorCodeInvalidArgument,
	pgInvalidText:         ErrorCodeInvalidArgument,
	pgSerialization:       ErrorCodeDB,
	pgDeadlock:            ErrorCodeDB,
	pgLockNotAvailable:    ErrorCodeDB,
	pgQueryCanceled:       ErrorCodeUnavailable, // statement_timeout on the paper tx
	pgReadOnly:            ErrorCodeUnavailable,
	pgCannotConnectNow:    ErrorCodeUnavailable,
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// DBErrorCode maps a Postgres error to a code, ok is false when err carries
// no *pgconn.PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := pgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, ok := codeBySQLState[pgErr.Code]; ok {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err under its mapped code, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresWithField is FromPostgres plus the column the server blamed
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}

// AttachFieldFromPg names the offending column on err
// ColumnName wins, otherwise the last token of the constraint name is used
// (papers_order_id_check gives check and is skipped, paper_lines_status gives status)
func AttachFieldFromPg(err error) error {
	pgErr, ok := pgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	c := strings.TrimSpace(pgErr.ConstraintName)
	if i := strings.LastIndex(c, "_"); i >= 0 {
		c = c[i+1:]
	}
	switch c {
	case "", "key", "pkey", "fkey", "check":
		return err
	}
	return WithField(err, c)
}
