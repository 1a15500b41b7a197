package user

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex;not null"`
	Phone        string    `gorm:"column:phone;size:20;not null"`
	PasswordHash string    `gorm:"column:password;size:255;not null"`
	Address      *string   `gorm:"column:address"`
	Role         string    `gorm:"column:role;size:20;not null;default:citizen"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (User) TableName() string {
	return "users"
}
