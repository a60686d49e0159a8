package users

import "time"

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Username       string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_users_username" json:"username"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	HashedPassword string  `gorm:"not null" json:"-"`
	Firstname      *string `json:"firstname"`
	Lastname       *string `json:"lastname"`
	IsAdmin        bool    `gorm:"not null" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
