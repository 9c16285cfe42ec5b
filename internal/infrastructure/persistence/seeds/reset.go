package seeds

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"forestdash/internal/infrastructure/persistence/models"
)

// GormReset deletes every row, children before parents, in one transaction.
func GormReset(gdb *gorm.DB) ResetFunc {
	return func(ctx context.Context) error {
		all := models.All()
		return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i := len(all) - 1; i >= 0; i-- {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
					return fmt.Errorf("failed to clear %T: %w", all[i], err)
				}
			}
			return nil
		})
	}
}
