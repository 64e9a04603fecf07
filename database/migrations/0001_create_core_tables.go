// Package migrations registers the schema migrations of the admin API.
// Each file registers one migration in its init function; the migration
// runner applies them in name order.
package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0001_create_core_tables",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.User{},
				&models.Address{},
				&models.Category{},
				&models.Idol{},
				&models.Order{},
				&models.OrderItem{},
				&models.CustomForm{},
				&models.Charges{},
			)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(
				&models.Charges{},
				&models.CustomForm{},
				&models.OrderItem{},
				&models.Order{},
				&models.Idol{},
				&models.Category{},
				&models.Address{},
				&models.User{},
			)
		},
	})
}
