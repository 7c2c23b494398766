package user

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleHR       UserRole = "hr"
	UserRoleEmployee UserRole = "employee"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"uid"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Role      UserRole  `gorm:"size:20;default:'employee';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
