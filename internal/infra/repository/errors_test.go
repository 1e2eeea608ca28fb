package repository

import (
	"errors"
	"fmt"
	"testing"

	repo "storefront/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name  string
		err   *pgconn.PgError
		field string
	}{
		{"detail", &pgconn.PgError{Code: "23505", Detail: "Key (sku)=(AB-1) already exists."}, "sku"},
		{"constraint only", &pgconn.PgError{Code: "23505", ConstraintName: "idx_products_slug"}, "slug"},
		{"key suffix", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "email"},
		{"unknown", &pgconn.PgError{Code: "23505", ConstraintName: "weird"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapWriteError(fmt.Errorf("insert: %w", tt.err))

			var dup *repo.DuplicateError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, tt.field, dup.Field)
			assert.ErrorIs(t, err, repo.ErrDuplicate)
		})
	}
}

func TestMapWriteError_PassThrough(t *testing.T) {
	assert.NoError(t, mapWriteError(nil))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, fk, mapWriteError(fk))
	assert.NotErrorIs(t, mapWriteError(fk), repo.ErrDuplicate)
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound), repo.ErrNotFound)
	other := errors.New("x")
	assert.Same(t, other, notFound(other))
}
