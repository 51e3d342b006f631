package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMode represents how a sale is paid
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeCard   PaymentMode = 1
	PaymentModeMobile PaymentMode = 2
)

func (m PaymentMode) String() string {
	names := [...]string{"Cash", "Card", "Mobile"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

// ParsePaymentMode converts a payment mode name to its enum value.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch s {
	case "Cash":
		return PaymentModeCash, nil
	case "Card":
		return PaymentModeCard, nil
	case "Mobile":
		return PaymentModeMobile, nil
	}
	return PaymentModeCash, fmt.Errorf("unknown payment mode %q", s)
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	mode, err := ParsePaymentMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
