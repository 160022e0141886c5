package menu

import (
	"math"
	"strconv"

	"github.com/phoneline/voicemenu/internal/models"
)

// TaxRate is the fixed multiplier applied to every price that reaches the
// curated output. Raw vendor prices never leak past this package.
const TaxRate = 1.13

// ApplyTax taxes a raw price and rounds it to cents. Tax is applied to
// each price independently, never to a sum.
func ApplyTax(price float64) float64 {
	return math.Round(price*TaxRate*100) / 100
}

func applyTaxString(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		price = 0
	}
	return ApplyTax(price)
}

// Curate flattens the category tree into the bot-facing view: an ordered
// category list, a flat item list and a customization dictionary keyed by
// item name. Items with customization groups become triples whose third
// slot names the first group; everything else becomes a plain pair and
// stays out of the dictionary.
func Curate(m *models.ConvertedMenu) *models.CuratedData {
	curated := &models.CuratedData{
		CategoryList:      []string{},
		ItemList:          []models.ItemEntry{},
		CustomizationDict: models.CustomizationDict{},
	}
	if m == nil {
		return curated
	}

	curated.CategoryList = append(curated.CategoryList, m.Order...)

	for _, category := range m.Order {
		for _, item := range m.Items[category] {
			raw := item.Price
			if raw == "" {
				raw = "0.0"
			}
			taxed := applyTaxString(raw)

			if len(item.Customizations) == 0 {
				curated.ItemList = append(curated.ItemList, models.ItemEntry{
					Name:  item.Name,
					Price: taxed,
				})
				continue
			}

			curated.ItemList = append(curated.ItemList, models.ItemEntry{
				Name:         item.Name,
				Price:        taxed,
				FirstGroup:   item.Customizations[0].Name,
				Customizable: true,
			})

			groups := make([]models.DictGroup, 0, len(item.Customizations))
			for _, customization := range item.Customizations {
				groups = append(groups, curateGroup(customization))
			}
			curated.CustomizationDict[item.Name] = groups
		}
	}

	return curated
}

func curateGroup(group models.ConvertedGroup) models.DictGroup {
	options := make([]models.OptionEntry, 0, len(group.Options))
	for _, option := range group.Options {
		taxed := ApplyTax(option.Price.Float())
		if taxed == 0 {
			// A surcharge that taxes out to zero reads the same as no
			// surcharge at all.
			options = append(options, models.OptionEntry{Name: option.Name})
			continue
		}
		options = append(options, models.OptionEntry{Name: option.Name, Price: taxed, Priced: true})
	}

	curated := models.DictGroup{
		Name:     group.Name,
		Options:  options,
		Required: group.Required,
	}
	if group.MaxSelect > 1 {
		curated.MaxSelect = group.MaxSelect
	}
	return curated
}
