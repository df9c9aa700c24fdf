package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens a GORM MySQL handle. TranslateError is enabled so driver
// duplicate-key failures surface as gorm.ErrDuplicatedKey, which the
// repositories map onto the domain taxonomy.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the users, roles, and users_roles tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &roleRecord{}, &userRoleRecord{})
}
