package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ConvertedMenu is the category tree built from the raw document. Category
// order is load-bearing for the curated list, so the map carries an
// explicit order slice and marshals as an ordered JSON object.
type ConvertedMenu struct {
	Order []string
	Items map[string][]ConvertedItem
}

func NewConvertedMenu() *ConvertedMenu {
	return &ConvertedMenu{Items: make(map[string][]ConvertedItem)}
}

// EnsureCategory registers a category, keeping first-seen order. Already
// known names are left untouched.
func (m *ConvertedMenu) EnsureCategory(name string) {
	if _, ok := m.Items[name]; ok {
		return
	}
	m.Order = append(m.Order, name)
	m.Items[name] = []ConvertedItem{}
}

func (m *ConvertedMenu) Append(category string, item ConvertedItem) {
	m.EnsureCategory(category)
	m.Items[category] = append(m.Items[category], item)
}

func (m *ConvertedMenu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items, err := json.Marshal(m.Items[name])
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ConvertedItem keeps the raw, untaxed price as a string; price and
// customizations are omitted entirely when absent, never null.
type ConvertedItem struct {
	Name           string           `json:"name"`
	Price          string           `json:"price,omitempty"`
	Customizations []ConvertedGroup `json:"customizations,omitempty"`
}

type ConvertedGroup struct {
	Name      string            `json:"name"`
	Price     string            `json:"price"`
	Options   []ConvertedOption `json:"options"`
	Required  bool              `json:"required"`
	MaxSelect int               `json:"maxSelect"`
}

// ConvertedOption carries the vendor option price verbatim and untaxed.
type ConvertedOption struct {
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

// ItemEntry is one curated item. On the wire it is a positional array:
// [name, taxedPrice] for plain items, [name, taxedPrice, firstGroupName]
// for customizable ones. The third slot is the signal consumers use to
// look the item up in the customization dictionary.
type ItemEntry struct {
	Name         string
	Price        float64
	FirstGroup   string
	Customizable bool
}

func (e ItemEntry) MarshalJSON() ([]byte, error) {
	if e.Customizable {
		return json.Marshal([]any{e.Name, e.Price, e.FirstGroup})
	}
	return json.Marshal([]any{e.Name, e.Price})
}

func (e *ItemEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("item entry has %d elements, want 2 or 3", len(parts))
	}
	entry := ItemEntry{}
	if err := json.Unmarshal(parts[0], &entry.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], &entry.Price); err != nil {
		return err
	}
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &entry.FirstGroup); err != nil {
			return err
		}
		entry.Customizable = true
	}
	*e = entry
	return nil
}

// OptionEntry is one selectable option in the dictionary: [name] when the
// taxed surcharge is zero, [name, taxedPrice] otherwise.
type OptionEntry struct {
	Name   string
	Price  float64
	Priced bool
}

func (o OptionEntry) MarshalJSON() ([]byte, error) {
	if o.Priced {
		return json.Marshal([]any{o.Name, o.Price})
	}
	return json.Marshal([]any{o.Name})
}

func (o *OptionEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 1 || len(parts) > 2 {
		return fmt.Errorf("option entry has %d elements, want 1 or 2", len(parts))
	}
	entry := OptionEntry{}
	if err := json.Unmarshal(parts[0], &entry.Name); err != nil {
		return err
	}
	if len(parts) == 2 {
		if err := json.Unmarshal(parts[1], &entry.Price); err != nil {
			return err
		}
		entry.Priced = true
	}
	*o = entry
	return nil
}

// DictGroup is one customization group as the bot sees it. MaxSelect is
// only present when the group allows more than one selection.
type DictGroup struct {
	Name      string        `json:"name"`
	Options   []OptionEntry `json:"options"`
	Required  bool          `json:"required"`
	MaxSelect int           `json:"maxSelect,omitempty"`
}

// CustomizationDict maps item name to its customization groups. Items
// without customizations never appear as keys.
type CustomizationDict map[string][]DictGroup

// CuratedData is the flat, bot-facing view of the menu.
type CuratedData struct {
	CategoryList      []string          `json:"category_list"`
	ItemList          []ItemEntry       `json:"item_list"`
	CustomizationDict CustomizationDict `json:"customization_dict"`
}
