package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/repository"
	"github.com/littlelemon/restaurant-api/serializers"
	"github.com/littlelemon/restaurant-api/utils"
)

// BookingController serves table reservations. No capacity or overlap
// checks are made.
type BookingController struct {
	Bookings repository.Gateway[models.Booking]
}

func NewBookingController(bookings repository.Gateway[models.Booking]) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeBookings(bookings))
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeBooking(data, false)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	booking := in.Record()
	if err := bc.Bookings.Create(c.Request.Context(), &booking); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking created: %s for %d guests at %s",
		booking, booking.NoOfGuests, serializers.FormatDateTime(booking.BookingDate))
	c.JSON(http.StatusCreated, serializers.EncodeBooking(&booking))
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeBooking(booking))
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeBooking(data, false)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	booking := in.Record()
	if err := bc.Bookings.Update(c.Request.Context(), id, &booking); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeBooking(&booking))
}

func (bc *BookingController) PartialUpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeBooking(data, true)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	booking, err := bc.Bookings.PartialUpdate(c.Request.Context(), id, in.Apply)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeBooking(booking))
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := bc.Bookings.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d deleted", id)
	c.Status(http.StatusNoContent)
}
