// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// UserRole marks which side of the marketplace a user participates on.
type UserRole string

const (
	// RoleContributor is the default role for a freshly ingested user.
	RoleContributor UserRole = "contributor"
	// RoleMentor is a user who only mentors.
	RoleMentor UserRole = "mentor"
	// RoleBoth is a contributor who also created a mentor profile.
	RoleBoth UserRole = "both"
)

// User is an identity record sourced from GitHub login data.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	GithubID          string    `gorm:"uniqueIndex;not null" json:"githubId"`
	Username          string    `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName       string    `json:"displayName"`
	Email             string    `gorm:"not null" json:"email"`
	Avatar            string    `json:"avatar"`
	ProfileURL        string    `json:"profileUrl"`
	AccessToken       string    `json:"-"`
	Role              UserRole  `gorm:"type:varchar(20);default:'contributor'" json:"role"`
	Timezone          string    `json:"timezone"`
	PreferredLanguage string    `json:"preferredLanguage"`
	PhoneNumber       string    `json:"phoneNumber"`
	IsActive          bool      `gorm:"default:true" json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PublicUser is the subset of user fields joined into search results and
// session listings.
type PublicUser struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Timezone    string `json:"timezone,omitempty"`
}

// Public returns the user's public projection.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		Timezone:    u.Timezone,
	}
}
