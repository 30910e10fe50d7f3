package serializers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/littlelemon/restaurant-api/models"
)

const (
	msgRequired = "This field is required."
	msgNull     = "This field may not be null."
	msgBlank    = "This field may not be blank."
	msgString   = "Not a valid string."
	msgInteger  = "A valid integer is required."
	msgNumber   = "A valid number is required."
	msgDateTime = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
)

// Data is a decoded request body: field name to raw JSON value.
type Data map[string]json.RawMessage

// field pairs a wire name with the input struct field validated for it.
type field struct {
	wire   string
	goName string
}

var (
	validate = newValidator()

	trailingZeros = regexp.MustCompile(`\.0*$`)
	decimalText   = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)

	dateTimeLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04:05Z07",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z0700",
		"2006-01-02T15:04Z07",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func decodeValue(raw json.RawMessage) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func charValue(raw json.RawMessage) (string, string) {
	v, err := decodeValue(raw)
	if err != nil {
		return "", msgString
	}
	switch t := v.(type) {
	case nil:
		return "", msgNull
	case string:
		return strings.TrimSpace(t), ""
	case json.Number:
		return t.String(), ""
	default:
		return "", msgString
	}
}

func intValue(raw json.RawMessage) (int, string) {
	v, err := decodeValue(raw)
	if err != nil {
		return 0, msgInteger
	}

	var text string
	switch t := v.(type) {
	case nil:
		return 0, msgNull
	case string:
		text = strings.TrimSpace(t)
	case json.Number:
		text = t.String()
	default:
		return 0, msgInteger
	}
	if len(text) > 1000 {
		return 0, "String value too large."
	}

	n, err := strconv.Atoi(trailingZeros.ReplaceAllString(text, ""))
	if err != nil {
		return 0, msgInteger
	}
	return n, ""
}

func priceValue(raw json.RawMessage) (models.Price, string) {
	v, err := decodeValue(raw)
	if err != nil {
		return 0, msgNumber
	}

	var text string
	switch t := v.(type) {
	case nil:
		return 0, msgNull
	case string:
		text = strings.TrimSpace(t)
	case json.Number:
		text = t.String()
	default:
		return 0, msgNumber
	}
	if !decimalText.MatchString(text) {
		return 0, msgNumber
	}
	if msg := checkPrecision(text, models.PriceMaxDigits, models.PriceDecimalPlaces); msg != "" {
		return 0, msg
	}

	p, err := models.ParsePrice(text)
	if err != nil {
		return 0, msgNumber
	}
	return p, ""
}

// checkPrecision counts significant whole digits and all written decimal
// places, so "0.05" has two digits and "8.50" has three.
func checkPrecision(text string, maxDigits, places int) string {
	text = strings.TrimLeft(text, "+-")
	whole, frac, _ := strings.Cut(text, ".")
	whole = strings.TrimLeft(whole, "0")

	decimals := len(frac)
	digits := len(whole) + decimals

	switch {
	case digits > maxDigits:
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)
	case decimals > places:
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
	case len(whole) > maxDigits-places:
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
	}
	return ""
}

func dateTimeValue(raw json.RawMessage) (time.Time, string) {
	v, err := decodeValue(raw)
	if err != nil {
		return time.Time{}, msgDateTime
	}

	var text string
	switch t := v.(type) {
	case nil:
		return time.Time{}, msgNull
	case string:
		text = strings.TrimSpace(t)
	default:
		return time.Time{}, msgDateTime
	}

	t, ok := ParseDateTime(text)
	if !ok {
		return time.Time{}, msgDateTime
	}
	return t, ""
}

// ParseDateTime accepts ISO-8601 date-times with a T or space separator.
// Values without an offset are read as UTC. The result is in UTC, truncated
// to microseconds.
func ParseDateTime(text string) (time.Time, bool) {
	if len(text) > 10 && text[10] == ' ' {
		text = text[:10] + "T" + text[11:]
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC().Truncate(time.Microsecond), true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders t in UTC with a Z suffix and only as many fractional
// digits as needed.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999Z07:00")
}

// checkConstraints runs the validate tags of in for the listed fields, except
// those that already failed to parse.
func checkConstraints(in interface{}, fields []field, errs ValidationError) {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if !errs.has(f.wire) {
			names = append(names, f.goName)
		}
	}
	if len(names) == 0 {
		return
	}

	err := validate.StructPartial(in, names...)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	for _, fe := range verrs {
		errs.add(fe.Field(), constraintMessage(fe))
	}
}

func constraintMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}

	switch fe.Tag() {
	case "required":
		return msgRequired
	case "min":
		if kind == reflect.String {
			if fe.Param() == "1" {
				return msgBlank
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %s rule.", fe.Tag())
	}
}
