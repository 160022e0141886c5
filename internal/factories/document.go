// Package factories generates believable vendor documents so the
// pipeline can run end to end without the dashboard API.
package factories

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/phoneline/voicemenu/internal/models"
)

var fake = faker.New()

type DocumentFactory struct {
	rng *rand.Rand
}

func NewDocumentFactory(seed int) *DocumentFactory {
	return &DocumentFactory{rng: rand.New(rand.NewSource(int64(seed)))}
}

// CreateRawDocument builds a full vendor document: categories, shared
// customization groups, items referencing both, a weekday slot schedule
// plus an old-format overnight weekend period, and the identity fields
// the facade reads.
func (df *DocumentFactory) CreateRawDocument(cfg *models.Config) *models.RawDocument {
	categoryCount := cfg.DemoCategories
	if categoryCount <= 0 {
		categoryCount = 5
	}
	itemCount := cfg.DemoItems
	if itemCount <= 0 {
		itemCount = 25
	}

	categories := df.createCategories(categoryCount)
	groups := df.createCustomizationGroups()
	items := df.createItems(itemCount, categories, groups)

	name := fake.Company().Name()

	return &models.RawDocument{
		Restaurant: models.Restaurant{
			RestaurantID: cuid.New(),
			Name:         name,
			Address:      fake.Address().Address(),
			Faqs: []map[string]string{
				{"question": "Do you have parking?", "answer": "Yes, behind the building."},
				{"question": "Do you cater?", "answer": "Yes, call us a day ahead."},
			},
			DeliveryConfig: map[string]any{
				"minOrder":    10,
				"deliveryFee": 3.99,
				"radiusKm":    5,
			},
			RestaurantOrderStatus: "active",
			HasDeliveryService:    df.rng.Intn(2) == 0,
			Announcement:          "Try our new tandoori platter!&#x20;",
			Greetings: models.Greetings{
				Open:   fmt.Sprintf("Welcome to %s, how can I help you today?", name),
				Closed: fmt.Sprintf("Thanks for calling %s, we're closed right now.", name),
			},
			Contacts: models.Contacts{
				ForwardPhone: fake.Phone().Number(),
			},
			OpeningHours: []models.OpeningPeriod{
				{
					Days: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
					Slots: []models.TimeSlot{
						{StartTime: "11:00", EndTime: "15:00"},
						{StartTime: "17:00", EndTime: "22:00"},
					},
				},
				{
					// Old vendor format, spanning midnight.
					Days:      []string{"Sat", "Sun"},
					StartTime: "17:00",
					EndTime:   "01:00",
				},
			},
			Categories:          categories,
			CustomizationGroups: groups,
			Items:               items,
		},
	}
}

func (df *DocumentFactory) createCategories(count int) []models.Category {
	names := []string{"Starters", "Mains", "Momos", "Chaap", "Breads", "Rice", "Desserts", "Drinks", "Sides", "Specials"}
	if count > len(names) {
		count = len(names)
	}
	categories := make([]models.Category, count)
	for i := 0; i < count; i++ {
		categories[i] = models.Category{ID: cuid.New(), Name: names[i]}
	}
	return categories
}

func (df *DocumentFactory) createCustomizationGroups() []models.CustomizationGroup {
	one := 1
	three := 3
	return []models.CustomizationGroup{
		{
			ID:                  cuid.New(),
			Name:                "veg-nonveg",
			CustomerInstruction: "Veg or Non Veg",
			Price:               models.NewAmount("0"),
			Options: []models.RawOption{
				{Name: "Veg", Price: models.NewAmount("0")},
				{Name: "Non Veg", Price: models.NewAmount("1")},
			},
			Rules: &models.Rules{MinSelect: 1, MaxSelect: &one},
		},
		{
			ID:                  cuid.New(),
			Name:                "spice",
			CustomerInstruction: "Spice Level",
			Price:               models.NewAmount("0"),
			Options: []models.RawOption{
				{Name: "Mild", Price: models.NewAmount("0")},
				{Name: "Medium", Price: models.NewAmount("0")},
				{Name: "Hot", Price: models.NewAmount("0")},
			},
			Rules: &models.Rules{MinSelect: 0, MaxSelect: &one},
		},
		{
			ID:                  cuid.New(),
			Name:                "toppings",
			CustomerInstruction: "Extra Toppings",
			Price:               models.NewAmount("0"),
			Options: []models.RawOption{
				{Name: "Paneer", Price: models.NewQuotedAmount("1.50")},
				{Name: "Extra Malai", Price: models.NewQuotedAmount("2.00")},
				{Name: "Onions", Price: models.NewAmount("0")},
			},
			Rules: &models.Rules{MinSelect: 0, MaxSelect: &three},
		},
	}
}

func (df *DocumentFactory) createItems(count int, categories []models.Category, groups []models.CustomizationGroup) []models.Item {
	items := make([]models.Item, 0, count)
	for i := 0; i < count; i++ {
		item := models.Item{
			Name:  generateItemName(df.rng),
			Price: models.NewQuotedAmount(fmt.Sprintf("%.2f", 4+df.rng.Float64()*16)),
		}
		if len(categories) > 0 && df.rng.Intn(10) > 0 {
			item.CategoryIDs = []string{categories[df.rng.Intn(len(categories))].ID}
		}
		// Roughly half the menu is customizable.
		if df.rng.Intn(2) == 0 {
			group := groups[df.rng.Intn(len(groups))]
			item.CustomizationIDs = []string{group.ID}
		}
		items = append(items, item)
	}
	return items
}

func generateItemName(rng *rand.Rand) string {
	names := []string{
		"Tandoori Momo", "Steam Momo", "Fried Momo", "Soya Malai Chaap-Must Try",
		"Butter Chicken", "Paneer Tikka", "Dal Makhani", "Garlic Naan",
		"Veg Biryani", "Chicken Biryani", "Gulab Jamun", "Mango Lassi",
		"Samosa", "Chole Bhature", "Masala Chai", "Kulfi",
	}
	return names[rng.Intn(len(names))]
}
