package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. The storage models are private, so migration lives here too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&commissionRequestModel{},
		&commissionEventModel{},
		&artistModel{},
		&galleryItemModel{},
		&adminUserModel{},
	)
}
