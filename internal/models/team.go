package models

import "time"

// TeamMember is a staff profile shown on the about page. Removal is a
// soft delete: inactive members disappear from public views but stay in
// storage.
type TeamMember struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	Image        string    `json:"image,omitempty" db:"image"`
	Email        string    `json:"email,omitempty" db:"email"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	LinkedIn     string    `json:"linkedin,omitempty" db:"linkedin"`
	Twitter      string    `json:"twitter,omitempty" db:"twitter"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// TeamMemberInput is the validated payload for creating or updating a
// team member.
type TeamMemberInput struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	Image        string `json:"image"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}
