package repository

import "gorm.io/gorm"

// AutoMigrate keeps the schema in sync with the row models. Called by the
// API entrypoint and the seeder; a managed deployment can run it once and
// disable it.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&clienteModel{},
		&ordenModel{},
		&ordenFotoModel{},
		&facturaModel{},
	)
}
