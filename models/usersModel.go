package models

import (
	"time"
)

// User represents a user account in the system. The password is write-only:
// it is accepted on input, stored hashed, and never serialized back out.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Phone     string    `gorm:"size:50;column:phone" json:"phone"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserInput is the create/update payload for a user account. On update an
// empty password means "keep the current one".
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
