package repository

import (
	"errors"
	"regexp"
	"strings"

	repo "storefront/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// Key (slug)=(abc) already exists.
var detailKeyRe = regexp.MustCompile(`Key \(([^)]+)\)=`)

// mapWriteError はPostgresの一意制約違反を DuplicateError にする
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &repo.DuplicateError{Field: duplicateField(pgErr), Err: err}
	}
	return err
}

func duplicateField(pgErr *pgconn.PgError) string {
	if m := detailKeyRe.FindStringSubmatch(pgErr.Detail); m != nil {
		return m[1]
	}
	// idx_products_slug など
	name := pgErr.ConstraintName
	for _, f := range []string{"slug", "sku", "email", "name"} {
		if strings.HasSuffix(name, "_"+f) || strings.HasSuffix(name, "_"+f+"_key") {
			return f
		}
	}
	return ""
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	return err
}
