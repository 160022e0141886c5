package factories

import (
	"testing"

	"github.com/phoneline/voicemenu/internal/menu"
	"github.com/phoneline/voicemenu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRawDocumentIsSelfConsistent(t *testing.T) {
	cfg := &models.Config{Seed: 42, DemoCategories: 4, DemoItems: 30}
	doc := NewDocumentFactory(cfg.Seed).CreateRawDocument(cfg)

	restaurant := doc.Restaurant
	assert.NotEmpty(t, restaurant.RestaurantID)
	assert.NotEmpty(t, restaurant.Name)
	assert.Len(t, restaurant.Categories, 4)
	assert.Len(t, restaurant.Items, 30)
	require.NotEmpty(t, restaurant.CustomizationGroups)

	groupIDs := make(map[string]bool)
	for _, group := range restaurant.CustomizationGroups {
		groupIDs[group.ID] = true
	}
	categoryIDs := make(map[string]bool)
	for _, category := range restaurant.Categories {
		categoryIDs[category.ID] = true
	}

	// Every reference in the generated items must resolve.
	for _, item := range restaurant.Items {
		for _, id := range item.CategoryIDs {
			assert.True(t, categoryIDs[id], "item %q references unknown category %q", item.Name, id)
		}
		for _, id := range item.CustomizationIDs {
			assert.True(t, groupIDs[id], "item %q references unknown group %q", item.Name, id)
		}
	}
}

func TestCreateRawDocumentRunsThroughPipeline(t *testing.T) {
	cfg := &models.Config{Seed: 7, DemoCategories: 3, DemoItems: 20}
	doc := NewDocumentFactory(cfg.Seed).CreateRawDocument(cfg)

	curated := menu.Curate(menu.Convert(doc))

	assert.NotEmpty(t, curated.CategoryList)
	assert.NotEmpty(t, curated.ItemList)
	for _, entry := range curated.ItemList {
		if entry.Customizable {
			assert.Contains(t, curated.CustomizationDict, entry.Name)
		}
	}
}

func TestCreateRawDocumentHasBothScheduleFormats(t *testing.T) {
	cfg := &models.Config{Seed: 1}
	doc := NewDocumentFactory(cfg.Seed).CreateRawDocument(cfg)

	var slotBased, direct bool
	for _, period := range doc.Restaurant.OpeningHours {
		switch period.Format() {
		case models.SlotBased:
			slotBased = true
		case models.DirectRange:
			direct = true
		}
	}
	assert.True(t, slotBased)
	assert.True(t, direct)
}
