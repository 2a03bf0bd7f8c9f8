package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeInvalidTextEncoding = "22P02"
)

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// isInvalidUUID reports a malformed id reaching a UUID column.
func isInvalidUUID(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidTextEncoding
}

type scanner interface {
	Scan(dest ...any) error
}
