package services

import (
	"time"

	"wemetstudio/internal/domain"
)

var studioZone = time.FixedZone("IDT", 3*60*60)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: domain.LocalizedText{"en": "Misty Mug"}, Price: 120},
		{ID: "p2", Name: domain.LocalizedText{"en": "Earthen Bowl"}, Price: 150},
		{ID: "p3", Name: domain.LocalizedText{"en": "Wave Vase"}, Price: 280},
		{ID: "p4", Name: domain.LocalizedText{"en": "Lunar Plate"}, Price: 180},
	}
}

func testEvent(id, day, hour, minute, spots int) domain.Event {
	return domain.Event{
		ID:              id,
		Type:            domain.EventTypeAdults,
		Title:           domain.LocalizedText{"en": "Workshop", "ru": "Мастер-класс"},
		Date:            time.Date(2025, time.October, day, hour, minute, 0, 0, studioZone),
		DurationMinutes: 120,
		Spots:           spots,
		Price:           200,
		Level:           "All",
	}
}

func testEvents() []domain.Event {
	return []domain.Event{
		testEvent(1, 6, 19, 0, 6),
		testEvent(2, 11, 10, 0, 10),
		testEvent(3, 12, 16, 0, 12),
		testEvent(4, 9, 14, 30, 14),
		testEvent(5, 13, 18, 30, 18),
		testEvent(6, 20, 20, 0, 4),
	}
}

func loadedCatalog() *Catalog {
	c := NewCatalog()
	c.Replace(CatalogData{Products: testProducts(), Events: testEvents()})
	return c
}

func day(y int, m time.Month, d int) domain.Day {
	return domain.Day{Year: y, Month: m, Day: d}
}
