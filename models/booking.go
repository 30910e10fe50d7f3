package models

import (
	"fmt"
	"time"
)

// Booking is a table reservation. Overlapping bookings are allowed.
type Booking struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	NoOfGuests  int       `gorm:"not null"`
	BookingDate time.Time `gorm:"not null"`
}

func (b *Booking) Key() uint { return b.ID }

func (b *Booking) SetKey(id uint) { b.ID = id }

func (b Booking) String() string {
	return fmt.Sprintf("(%d) : %s", b.ID, b.Name)
}
