// Package model holds the GORM models of the development backend.
package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"type:varchar(320);not null;uniqueIndex:idx_accounts_email_lower,expression:lower(email)"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
