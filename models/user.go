package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	Address   Address   `gorm:"embedded" json:"address"` // default address, editable from the profile
	Cart      Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is embedded in User, CheckoutSession and Order.
type Address struct {
	FullName   string `json:"full_name"`
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// Complete reports whether the address carries everything shipping needs.
func (a Address) Complete() bool {
	return a.FullName != "" && a.Country != "" && a.City != "" && a.Street != "" && a.PostalCode != ""
}
