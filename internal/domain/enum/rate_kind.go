package enum

import (
	"encoding/json"
	"fmt"
)

// RateKind identifies one of the percentage inputs on the invoice panel.
type RateKind int

const (
	RateKindDiscount RateKind = 0
	RateKindVat      RateKind = 1
	RateKindSd       RateKind = 2
)

func (k RateKind) String() string {
	names := [...]string{"discount", "vat", "sd"}
	if int(k) < 0 || int(k) >= len(names) {
		return "discount"
	}
	return names[k]
}

// ParseRateKind converts a rate kind name to its enum value.
func ParseRateKind(s string) (RateKind, error) {
	switch s {
	case "discount":
		return RateKindDiscount, nil
	case "vat":
		return RateKindVat, nil
	case "sd":
		return RateKindSd, nil
	}
	return RateKindDiscount, fmt.Errorf("unknown rate kind %q", s)
}

func (k RateKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *RateKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	kind, err := ParseRateKind(str)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
