package models

// UserProfile rows never outlive their owning User; the unique index on UserID
// is the storage backstop for the one-profile-per-user rule.
type UserProfile struct {
	BaseModel

	FirstName string
	LastName  string
	Bio       string `gorm:"size:500"`
	UserID    uint   `gorm:"not null;uniqueIndex"`
}
