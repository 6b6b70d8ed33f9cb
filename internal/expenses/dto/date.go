package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component, encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format YYYY-MM-DD", value)
	}
	d.Time = parsed
	return nil
}
