package model

// Store represents a shop owned by exactly one user.
//
// The foreign key is enforced by the storage engine; deleting a user
// that still owns stores is rejected by the RESTRICT constraint.
type Store struct {
	ID     uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"size:128;not null"`
	UserID uint64 `json:"userId" gorm:"not null;index"`

	User     *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Products []*Product `json:"products,omitempty" gorm:"foreignKey:StoreID"`
}

// TableName returns the table name for GORM.
func (s *Store) TableName() string {
	return "stores"
}
