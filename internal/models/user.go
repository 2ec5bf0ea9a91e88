package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// ParseRole lowercases and validates a role coming from a request body.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleClient, RoleFreelancer:
		return r, true
	}
	return "", false
}

type User struct {
	ID    string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;index" json:"email"`

	Password string `json:"-"` // bcrypt hash, never checked by the demo login
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"role"`

	Avatar        string                      `json:"avatar,omitempty"`
	Bio           string                      `gorm:"type:text" json:"bio,omitempty"`
	Location      string                      `json:"location,omitempty"`
	Skills        datatypes.JSONSlice[string] `json:"skills,omitempty"`
	Rating        float64                     `json:"rating"`
	CompletedJobs int                         `json:"completedJobs"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Clone returns a copy whose skills slice does not alias the receiver's.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Skills != nil {
		c.Skills = append(datatypes.JSONSlice[string]{}, u.Skills...)
	}
	return &c
}
