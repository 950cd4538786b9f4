package crud

import (
	"errors"

	"parcellocker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes reported as constraint violations.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// translate maps storage constraint failures onto errs.ErrConstraintViolation.
// gorm reports them as ErrDuplicatedKey/ErrForeignKeyViolated when the
// connection was opened with TranslateError; the raw pgconn error covers
// handles that were not.
func translate(entity string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConstraintViolationError(entity, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation, checkViolation:
			return errs.NewConstraintViolationError(entity, err)
		}
	}

	return err
}
