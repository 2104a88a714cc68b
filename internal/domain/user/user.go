package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex:idx_users_username;not null;column:username" json:"username"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Bio       string    `gorm:"not null;default:'';column:bio" json:"bio"`
	Image     string    `gorm:"not null;default:'';column:image" json:"image"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
