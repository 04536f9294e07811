package user

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleWarden      Role = "warden"
	RoleAccountant  Role = "accountant"
	RoleMaintenance Role = "maintenance"
	RoleStudent     Role = "student"
)

type User struct {
	ID        uint      `gorm:"primaryKey;column:userid" json:"user_id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Role      Role      `gorm:"size:20;not null;index:idx_users_role_active" json:"role"`
	IsActive  bool      `gorm:"not null;default:false;index:idx_users_role_active" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
