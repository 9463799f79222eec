package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for the constraint classes we translate.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
)

// gorm only returns its translated sentinels when the dialector was opened
// with TranslateError, so the raw driver message is checked as well.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return errorMentions(err, sqlStateUniqueViolation, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return errorMentions(err, sqlStateForeignKeyViolation, "violates foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	return errorMentions(err, sqlStateNotNullViolation, "violates not-null constraint")
}

func errorMentions(err error, needles ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}

	return false
}
