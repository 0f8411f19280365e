package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is keyed by the identity provider's subject id. Role is never
// client-settable; it is read back from this row and defaults to customer.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"default:customer" json:"role"`
	Profile   Profile   `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile holds the user-editable fields of the account document.
type Profile struct {
	DisplayName  string `json:"displayName"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage"`
}
