package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawDocument is the vendor payload returned by the phoneline dashboard
// backend. Every field is optional; missing data degrades to fallbacks
// further down the pipeline instead of failing it.
type RawDocument struct {
	Restaurant Restaurant `json:"restaurant"`
}

type Restaurant struct {
	RestaurantID          string               `json:"restaurantId"`
	Name                  string               `json:"name"`
	Address               string               `json:"address"`
	Faqs                  any                  `json:"faqs"`
	DeliveryConfig        map[string]any       `json:"deliveryConfig"`
	RestaurantOrderStatus string               `json:"restaurantOrderStatus"`
	HasDeliveryService    bool                 `json:"hasDeliveryService"`
	Announcement          string               `json:"announcement"`
	Greetings             Greetings            `json:"greetings"`
	Contacts              Contacts             `json:"contacts"`
	OpeningHours          []OpeningPeriod      `json:"openingHours"`
	Categories            []Category           `json:"categories"`
	CustomizationGroups   []CustomizationGroup `json:"customizationGroups"`
	Items                 []Item               `json:"items"`
}

type Greetings struct {
	Open   string `json:"open"`
	Closed string `json:"closed"`
}

type Contacts struct {
	ForwardPhone string `json:"forwardPhone"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Item struct {
	Name             string   `json:"name"`
	Price            Amount   `json:"price"`
	CategoryIDs      []string `json:"categoryIds"`
	CustomizationIDs []string `json:"customizationIds"`
}

type CustomizationGroup struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	CustomerInstruction string      `json:"customerInstruction"`
	Price               Amount      `json:"price"`
	Options             []RawOption `json:"options"`
	Rules               *Rules      `json:"rules"`
}

type RawOption struct {
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

// Rules carries the vendor selection constraints. MaxSelect is a pointer
// because an absent key means "single select", not zero.
type Rules struct {
	MinSelect int  `json:"minSelect"`
	MaxSelect *int `json:"maxSelect"`
}

// OpeningPeriod comes in two vendor shapes: the newer one carries a slots
// array, the older one carries its own start and end times. Exactly one
// shape is expected per period.
type OpeningPeriod struct {
	Days      []string   `json:"days"`
	Slots     []TimeSlot `json:"slots,omitempty"`
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
}

type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PeriodFormat tags which of the two vendor schedule shapes a period uses.
type PeriodFormat int

const (
	FormatUnknown PeriodFormat = iota
	SlotBased
	DirectRange
)

// Format dispatches on key presence the way the vendor intends it: a
// "slots" key, even an empty one, marks the new shape. An empty JSON
// array decodes to a non-nil slice, so the nil check preserves that.
func (p *OpeningPeriod) Format() PeriodFormat {
	if p.Slots != nil {
		return SlotBased
	}
	if p.StartTime != "" && p.EndTime != "" {
		return DirectRange
	}
	return FormatUnknown
}

// TimeRanges flattens the period into start/end pairs, one evaluation
// path per format tag. Slots missing either bound are dropped.
func (p *OpeningPeriod) TimeRanges() []TimeSlot {
	switch p.Format() {
	case SlotBased:
		ranges := make([]TimeSlot, 0, len(p.Slots))
		for _, slot := range p.Slots {
			if slot.StartTime == "" || slot.EndTime == "" {
				continue
			}
			ranges = append(ranges, slot)
		}
		return ranges
	case DirectRange:
		return []TimeSlot{{StartTime: p.StartTime, EndTime: p.EndTime}}
	default:
		return nil
	}
}

// Amount is a vendor price, which arrives either as a JSON string
// ("5.00") or as a number (0, 4.5). It remembers which shape it came in
// so the debug snapshots round-trip the document unchanged.
type Amount struct {
	text   string
	quoted bool
	valid  bool
}

// NewAmount builds a numeric amount, used by the demo document factory.
func NewAmount(text string) Amount {
	return Amount{text: text, valid: true}
}

// NewQuotedAmount builds a string-shaped amount.
func NewQuotedAmount(text string) Amount {
	return Amount{text: text, quoted: true, valid: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount{text: s, quoted: true, valid: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount{text: n.String(), valid: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("0"), nil
	}
	if a.quoted {
		return json.Marshal(a.text)
	}
	return []byte(a.text), nil
}

// String is the vendor price as text; an absent amount stringifies to "0".
func (a Amount) String() string {
	if !a.valid {
		return "0"
	}
	return a.text
}

// Float parses the amount, treating anything unparseable as zero.
func (a Amount) Float() float64 {
	if !a.valid {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(a.text), 64)
	if err != nil {
		return 0
	}
	return f
}
