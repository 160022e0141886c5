// Package menu turns the vendor menu document into the bot-facing menu:
// first a category tree keyed by category name, then a flat curated item
// list with a customization dictionary.
package menu

import (
	"github.com/phoneline/voicemenu/internal/models"
)

// UncategorizedName is where items land when their first category id is
// missing or does not resolve.
const UncategorizedName = "Uncategorized"

// Convert builds the category tree from the raw document. Every category
// appears in the tree even when empty. An item is filed under the name of
// its first category id only; items are never duplicated across
// categories. Input order is preserved throughout.
func Convert(doc *models.RawDocument) *models.ConvertedMenu {
	out := models.NewConvertedMenu()
	if doc == nil {
		return out
	}

	restaurant := doc.Restaurant

	categories := make(map[string]string, len(restaurant.Categories))
	for _, cat := range restaurant.Categories {
		categories[cat.ID] = cat.Name
		out.EnsureCategory(cat.Name)
	}

	groups := make(map[string]models.CustomizationGroup, len(restaurant.CustomizationGroups))
	for _, group := range restaurant.CustomizationGroups {
		groups[group.ID] = group
	}

	for _, item := range restaurant.Items {
		categoryName := UncategorizedName
		if len(item.CategoryIDs) > 0 {
			if name, ok := categories[item.CategoryIDs[0]]; ok {
				categoryName = name
			}
		}

		converted := models.ConvertedItem{Name: item.Name}

		// Zero-priced items carry no price field at all; its absence is
		// what downstream consumers key off.
		if price := item.Price.String(); price != "0" && price != "0.0" {
			converted.Price = price
		}

		for _, id := range item.CustomizationIDs {
			group, ok := groups[id]
			if !ok {
				// Dangling reference, skip it.
				continue
			}
			converted.Customizations = append(converted.Customizations, convertGroup(group))
		}

		out.Append(categoryName, converted)
	}

	return out
}

func convertGroup(group models.CustomizationGroup) models.ConvertedGroup {
	options := make([]models.ConvertedOption, 0, len(group.Options))
	for _, option := range group.Options {
		name := option.Name
		if name == "" {
			name = "Unknown"
		}
		options = append(options, models.ConvertedOption{Name: name, Price: option.Price})
	}

	name := group.CustomerInstruction
	if name == "" {
		name = "Unknown"
	}

	minSelect := 0
	maxSelect := 1
	if group.Rules != nil {
		minSelect = group.Rules.MinSelect
		if group.Rules.MaxSelect != nil {
			maxSelect = *group.Rules.MaxSelect
		}
	}

	return models.ConvertedGroup{
		Name:      name,
		Price:     group.Price.String(),
		Options:   options,
		Required:  minSelect > 0,
		MaxSelect: maxSelect,
	}
}
