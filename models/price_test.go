package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want Price
	}{
		{"10.9", 1090},
		{"8.50", 850},
		{"9", 900},
		{".5", 50},
		{"5.", 500},
		{"-3.25", -325},
		{"+1.01", 101},
		{"0.005", 1},
		{"0.004", 0},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", ".", "abc", "1.2.3", "1e3", "--1"} {
		_, err := ParsePrice(bad)
		assert.Error(t, err, bad)
	}
}

func TestPriceString(t *testing.T) {
	assert.Equal(t, "10.90", Price(1090).String())
	assert.Equal(t, "0.05", Price(5).String())
	assert.Equal(t, "-0.50", Price(-50).String())
	assert.Equal(t, "9.00", Price(900).String())
}

func TestPriceScan(t *testing.T) {
	var p Price

	require.NoError(t, p.Scan(float64(8.5)))
	assert.Equal(t, Price(850), p)

	require.NoError(t, p.Scan(int64(9)))
	assert.Equal(t, Price(900), p)

	require.NoError(t, p.Scan([]byte("12.34")))
	assert.Equal(t, Price(1234), p)

	require.NoError(t, p.Scan("0.10"))
	assert.Equal(t, Price(10), p)

	assert.Error(t, p.Scan(true))

	v, err := Price(1090).Value()
	require.NoError(t, err)
	assert.Equal(t, "10.90", v)
}

func TestStringForms(t *testing.T) {
	item := MenuItem{Title: "Cheeseburguer", Price: 1090, Inventory: 3}
	assert.Equal(t, "Cheeseburguer : 10.90", item.String())

	booking := Booking{ID: 4, Name: "Rogue", NoOfGuests: 6, BookingDate: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "(4) : Rogue", booking.String())
}
