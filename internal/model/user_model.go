package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleTeamLead UserRole = "team_lead"
	RoleHR       UserRole = "hr"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	Department   string    `gorm:"type:varchar(120)" json:"department"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) TableName() string {
	return "users"
}
