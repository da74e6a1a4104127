// Package dberrors classifies PostgreSQL errors returned through pgx.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	InvalidTextRep      = "22P02"
)

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// IsDuplicateConstraintError reports a unique violation on the named constraint
func IsDuplicateConstraintError(err error, constraintName string) bool {
	code, constraint, ok := pgCode(err)
	return ok && code == UniqueViolation && constraint == constraintName
}

// IsForeignKeyError reports a foreign key violation on any constraint
func IsForeignKeyError(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == ForeignKeyViolation
}

// IsInvalidTextRepresentation reports a value Postgres could not parse, such
// as a malformed uuid
func IsInvalidTextRepresentation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == InvalidTextRep
}
