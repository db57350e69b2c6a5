package models

import "gorm.io/gorm"

// User is the account owner of profiles, food entries and reports.
// Authentication and session issuance live outside this service; the JWT
// middleware only resolves tokens to a user id.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"unique" json:"email"`
	Timezone string `gorm:"default:UTC" json:"timezone" example:"Asia/Ho_Chi_Minh"`
}
