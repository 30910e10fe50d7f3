package models

import "fmt"

type MenuItem struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(255);not null"`
	Price     Price  `gorm:"type:decimal(10,2);not null"`
	Inventory int    `gorm:"not null;default:0"`
}

func (m *MenuItem) Key() uint { return m.ID }

func (m *MenuItem) SetKey(id uint) { m.ID = id }

func (m MenuItem) String() string {
	return fmt.Sprintf("%s : %s", m.Title, m.Price)
}
