package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
)

// translateError maps gorm and driver errors onto domain sentinels. what
// names the operation for the error message.
func translateError(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%s: duplicate key: %w", what, domain.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: referenced row does not exist: %w", what, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// isUniqueViolation catches unique violations a dialect did not translate.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// staleOrMissing resolves an update that matched no row: either the row is
// gone or someone else bumped its version first.
func staleOrMissing(db *gorm.DB, model any, what string, id int64) error {
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return translateError(what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %d: modified concurrently: %w", what, id, domain.ErrConflict)
}
