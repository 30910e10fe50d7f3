package serializers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/littlelemon/restaurant-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBooking(t *testing.T) {
	in, err := DecodeBooking(mustData(t, `{"name": "Rogue", "no_of_guests": 6, "bookingDate": "2023-08-01T00:00:00Z"}`), false)
	require.NoError(t, err)

	b := in.Record()
	assert.Equal(t, "Rogue", b.Name)
	assert.Equal(t, 6, b.NoOfGuests)
	assert.True(t, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC).Equal(b.BookingDate))
}

func TestDecodeBookingRequiresAllFields(t *testing.T) {
	_, err := DecodeBooking(Data{}, false)
	errs := fieldErrors(t, err)

	assert.Equal(t, []string{msgRequired}, errs["name"])
	assert.Equal(t, []string{msgRequired}, errs["no_of_guests"])
	assert.Equal(t, []string{msgRequired}, errs["bookingDate"])
}

func TestDecodeBookingBadValues(t *testing.T) {
	_, err := DecodeBooking(mustData(t, `{"name": "", "no_of_guests": "six", "bookingDate": "next friday"}`), false)
	errs := fieldErrors(t, err)

	assert.Equal(t, []string{msgBlank}, errs["name"])
	assert.Equal(t, []string{msgInteger}, errs["no_of_guests"])
	assert.Equal(t, []string{msgDateTime}, errs["bookingDate"])

	_, err = DecodeBooking(mustData(t, `{"name": "a", "no_of_guests": 1, "bookingDate": 1693526400}`), false)
	assert.Equal(t, []string{msgDateTime}, fieldErrors(t, err)["bookingDate"])
}

func TestDecodeBookingPartial(t *testing.T) {
	in, err := DecodeBooking(mustData(t, `{"no_of_guests": 99}`), true)
	require.NoError(t, err)

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	b := models.Booking{ID: 1, Name: "Bard 1", NoOfGuests: 1, BookingDate: date}
	in.Apply(&b)

	assert.Equal(t, models.Booking{ID: 1, Name: "Bard 1", NoOfGuests: 99, BookingDate: date}, b)
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2023, 9, 1, 18, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2023-09-01T18:30:00Z",
		"2023-09-01T18:30Z",
		"2023-09-01 18:30:00",
		"2023-09-01T18:30",
		"2023-09-01T20:30:00+02:00",
		"2023-09-01T20:30:00+0200",
		"2023-09-01T13:30:00-05",
		"2023-09-01T18:30:00.000000Z",
	} {
		got, ok := ParseDateTime(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location(), in)
	}

	for _, bad := range []string{"", "2023-09-01", "01/09/2023 18:30", "2023-13-01T00:00:00Z"} {
		_, ok := ParseDateTime(bad)
		assert.False(t, ok, bad)
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "2023-09-01T00:00:00Z", FormatDateTime(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)))

	local := time.Date(2023, 9, 1, 2, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, "2023-09-01T00:00:00Z", FormatDateTime(local))

	frac := time.Date(2023, 9, 1, 0, 0, 0, 123456000, time.UTC)
	assert.Equal(t, "2023-09-01T00:00:00.123456Z", FormatDateTime(frac))
}

func TestBookingRoundTrip(t *testing.T) {
	b := models.Booking{ID: 2, Name: "Bard 2", NoOfGuests: 2, BookingDate: time.Date(2023, 9, 2, 0, 0, 0, 500, time.UTC).Truncate(time.Microsecond)}

	body, err := json.Marshal(EncodeBooking(&b))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 2, "name": "Bard 2", "no_of_guests": 2, "bookingDate": "2023-09-02T00:00:00Z"}`, string(body))

	in, err := DecodeBooking(mustData(t, string(body)), false)
	require.NoError(t, err)
	got := in.Record()
	got.ID = b.ID
	assert.Equal(t, b, got)
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{"price": {msgRequired}, "inventory": {msgInteger}}
	assert.Equal(t, "invalid fields: inventory: A valid integer is required.; price: This field is required.", err.Error())
}
