package model

// Product represents an item sold by exactly one store.
type Product struct {
	ID      uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string  `json:"name" gorm:"size:128;not null"`
	Price   float64 `json:"price" gorm:"not null"`
	StoreID uint64  `json:"storeId" gorm:"not null;index"`

	Store *Store `json:"store,omitempty" gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (p *Product) TableName() string {
	return "products"
}
