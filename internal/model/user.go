package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleMember    = "member"
)

// ValidRole 角色只允许这三种
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOrganizer || role == RoleMember
}

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:16;not null;default:'member'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
