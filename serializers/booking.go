package serializers

import (
	"time"

	"github.com/littlelemon/restaurant-api/models"
)

type BookingInput struct {
	Name        *string    `json:"name" validate:"required,min=1,max=255"`
	NoOfGuests  *int       `json:"no_of_guests" validate:"required,min=-2147483648,max=2147483647"`
	BookingDate *time.Time `json:"bookingDate" validate:"required"`
}

type BookingResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NoOfGuests  int    `json:"no_of_guests"`
	BookingDate string `json:"bookingDate"`
}

var bookingFields = []field{
	{wire: "name", goName: "Name"},
	{wire: "no_of_guests", goName: "NoOfGuests"},
	{wire: "bookingDate", goName: "BookingDate"},
}

func DecodeBooking(data Data, partial bool) (*BookingInput, error) {
	in := &BookingInput{}
	errs := ValidationError{}

	if raw, ok := data["name"]; ok {
		if v, msg := charValue(raw); msg != "" {
			errs.add("name", msg)
		} else {
			in.Name = &v
		}
	}
	if raw, ok := data["no_of_guests"]; ok {
		if v, msg := intValue(raw); msg != "" {
			errs.add("no_of_guests", msg)
		} else {
			in.NoOfGuests = &v
		}
	}
	if raw, ok := data["bookingDate"]; ok {
		if v, msg := dateTimeValue(raw); msg != "" {
			errs.add("bookingDate", msg)
		} else {
			in.BookingDate = &v
		}
	}

	checkConstraints(in, selectFields(bookingFields, data, partial), errs)
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *BookingInput) Record() models.Booking {
	var b models.Booking
	in.Apply(&b)
	return b
}

func (in *BookingInput) Apply(b *models.Booking) {
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.NoOfGuests != nil {
		b.NoOfGuests = *in.NoOfGuests
	}
	if in.BookingDate != nil {
		b.BookingDate = *in.BookingDate
	}
}

func EncodeBooking(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		NoOfGuests:  b.NoOfGuests,
		BookingDate: FormatDateTime(b.BookingDate),
	}
}

func EncodeBookings(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, EncodeBooking(&bookings[i]))
	}
	return out
}
