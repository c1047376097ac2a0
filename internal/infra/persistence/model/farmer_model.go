// Package model contains the GORM persistence models mirroring the database schema.
package model

// FarmerModel mirrors the 'farmers' table. The unique index on username is
// the atomic backstop for duplicate registration; the pre-check in the
// repository only exists to produce a friendly error.
type FarmerModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	Gender       string `gorm:"type:varchar(50);not null"`
	Location     string `gorm:"type:varchar(255);not null"`

	// Products hang off the username, not the surrogate id, and are removed
	// with their owner at the schema level.
	Products []ProductModel `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FarmerModel) TableName() string {
	return "farmers"
}
