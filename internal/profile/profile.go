// Package profile assembles the flat restaurant summary handed to the
// voice agent. It has no logic of its own beyond fallback selection; the
// caller composes it from the raw document and the curated menu.
package profile

import (
	"strings"
	"time"

	"github.com/phoneline/voicemenu/internal/hours"
	"github.com/phoneline/voicemenu/internal/models"
)

const (
	fallbackName     = "Unknown Restaurant"
	fallbackAddress  = "Address not available"
	fallbackFaqs     = "No FAQs available"
	fallbackGreeting = "Hey there, welcome to [$Restaurant Name], my name is Yobo!"
	fallbackClosed   = "Sorry, we're currently closed."
)

// The dashboard editor leaks this entity into announcement text.
const announcementEntity = "&#x20;"

// Summary is the voice-agent view of one restaurant. Field names on the
// wire are contractual; consumers address them by key.
type Summary struct {
	RestaurantName     string                   `json:"restaurant_name"`
	RestaurantID       string                   `json:"restaurant_id"`
	RestaurantAddress  string                   `json:"restaurant_address"`
	CategoryList       []string                 `json:"category_list"`
	ItemList           []models.ItemEntry       `json:"item_list"`
	CustomizationDict  models.CustomizationDict `json:"customization_dict"`
	DeliveryConfig     map[string]any           `json:"deliveryConfig"`
	RestaurantFaqs     any                      `json:"restaurant_faqs"`
	IsOpen             bool                     `json:"is_open"`
	OpeningHours       string                   `json:"opening_hours"`
	HasDeliveryService bool                     `json:"has_delivery_service"`
	GreetingMessage    string                   `json:"greeting_message"`
	Announcement       string                   `json:"announcement"`
	ForwardNumber      string                   `json:"forward_number"`
}

// Summarize builds the summary for now, taken in the restaurant's
// timezone. Every identity field degrades to its fallback when the
// document is empty.
func Summarize(doc *models.RawDocument, curated *models.CuratedData, now time.Time) Summary {
	if doc == nil {
		doc = &models.RawDocument{}
	}
	if curated == nil {
		curated = &models.CuratedData{
			CategoryList:      []string{},
			ItemList:          []models.ItemEntry{},
			CustomizationDict: models.CustomizationDict{},
		}
	}
	restaurant := doc.Restaurant

	open := hours.IsOpen(&restaurant, now)

	return Summary{
		RestaurantName:     RestaurantName(&restaurant),
		RestaurantID:       restaurant.RestaurantID,
		RestaurantAddress:  stringOr(restaurant.Address, fallbackAddress),
		CategoryList:       curated.CategoryList,
		ItemList:           curated.ItemList,
		CustomizationDict:  curated.CustomizationDict,
		DeliveryConfig:     deliveryConfig(&restaurant),
		RestaurantFaqs:     faqs(&restaurant),
		IsOpen:             open,
		OpeningHours:       hours.Formatted(restaurant.OpeningHours),
		HasDeliveryService: restaurant.HasDeliveryService,
		GreetingMessage:    greeting(&restaurant, open),
		Announcement:       strings.ReplaceAll(restaurant.Announcement, announcementEntity, ""),
		ForwardNumber:      restaurant.Contacts.ForwardPhone,
	}
}

// RestaurantName is exported because snapshot file names are derived
// from it.
func RestaurantName(restaurant *models.Restaurant) string {
	return stringOr(restaurant.Name, fallbackName)
}

func greeting(restaurant *models.Restaurant, open bool) string {
	if !open {
		return stringOr(restaurant.Greetings.Closed, fallbackClosed)
	}
	return stringOr(restaurant.Greetings.Open, fallbackGreeting)
}

func deliveryConfig(restaurant *models.Restaurant) map[string]any {
	if restaurant.DeliveryConfig == nil {
		return map[string]any{}
	}
	return restaurant.DeliveryConfig
}

func faqs(restaurant *models.Restaurant) any {
	if restaurant.Faqs == nil {
		return fallbackFaqs
	}
	return restaurant.Faqs
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
