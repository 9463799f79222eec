package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel mirrors the 'blogs' table. AuthorID references users.id and
// cascades on delete.
type BlogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Published bool      `gorm:"not null"` // no gorm default: false must be written explicitly
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
