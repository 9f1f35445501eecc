package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Form{},
		&EventDate{},
		&Area{},
		&RentalItem{},
		&Application{},
		&UploadedFile{},
	)
}
