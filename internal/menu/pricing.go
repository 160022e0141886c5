package menu

import (
	"math"

	"github.com/phoneline/voicemenu/internal/models"
)

// ItemDetails is the lookup result for a single curated item.
type ItemDetails struct {
	Name           string             `json:"name"`
	BasePrice      float64            `json:"base_price"`
	Customizations []models.DictGroup `json:"customizations"`
}

// FindItem looks an item up by name in the curated data. The second
// return is false when the name is not on the menu.
func FindItem(data *models.CuratedData, name string) (ItemDetails, bool) {
	if data == nil {
		return ItemDetails{}, false
	}
	for _, entry := range data.ItemList {
		if entry.Name != name {
			continue
		}
		return ItemDetails{
			Name:           name,
			BasePrice:      entry.Price,
			Customizations: data.CustomizationDict[name],
		}, true
	}
	return ItemDetails{}, false
}

// PriceWithOptions totals the item base price plus the surcharge of each
// selected option. Selections map a customization group name to the
// chosen option name; groups without a selection and options without a
// price contribute nothing. The result is rounded to cents at the end.
func PriceWithOptions(details ItemDetails, selections map[string]string) float64 {
	total := details.BasePrice

	for _, group := range details.Customizations {
		chosen, ok := selections[group.Name]
		if !ok {
			continue
		}
		for _, option := range group.Options {
			if option.Name == chosen {
				if option.Priced {
					total += option.Price
				}
				break
			}
		}
	}

	return math.Round(total*100) / 100
}
