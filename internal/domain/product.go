package domain

import "slices"

// fallbackLangs is the lookup order after the requested language.
var fallbackLangs = []string{"en", "ru", "he"}

// LocalizedText maps a language code ("ru", "en", "he") to display text.
type LocalizedText map[string]string

// Get returns the text for lang, then tries fallbackLangs in order, then the
// alphabetically first language present.
func (t LocalizedText) Get(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	for _, l := range fallbackLangs {
		if s, ok := t[l]; ok {
			return s
		}
	}
	if len(t) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	return t[slices.Min(keys)]
}

// Product is an item sold in the handmade shop.
// swagger:model Product
type Product struct {
	ID    string        `json:"id"`
	Name  LocalizedText `json:"name"`
	Price float64       `json:"price"`
	Image string        `json:"image"`
}

// Testimonial is a guest review shown on the studio page.
// swagger:model Testimonial
type Testimonial struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar"`
	Text   LocalizedText `json:"text"`
}

// GalleryItem is one picture of the studio gallery.
// swagger:model GalleryItem
type GalleryItem struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
