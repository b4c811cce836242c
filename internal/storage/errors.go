// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors callers branch on. Handlers map these to HTTP statuses.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// WrapDuplicateKeyError attaches the violated constraint's meaning to the
// sentinel so callers keep errors.Is(err, ErrDuplicateKey) working.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}
