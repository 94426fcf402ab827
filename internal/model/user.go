package model

// User represents an account that owns stores.
//
// The password column holds a bcrypt hash, never plain text; hashing
// happens at the service boundary and the field is excluded from JSON.
type User struct {
	ID       uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"size:128;not null"`
	Email    *string `json:"email,omitempty" gorm:"size:128;uniqueIndex"`
	Password string  `json:"-" gorm:"size:255"`

	// Stores are eager-loaded on single-record reads.
	Stores []*Store `json:"stores,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM.
func (u *User) TableName() string {
	return "users"
}
