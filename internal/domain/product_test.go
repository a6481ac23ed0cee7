package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedText_Get(t *testing.T) {
	tests := []struct {
		name string
		text LocalizedText
		lang string
		want string
	}{
		{"requested language", LocalizedText{"ru": "Чашка", "en": "Mug"}, "ru", "Чашка"},
		{"english fallback", LocalizedText{"ru": "Чашка", "en": "Mug", "he": "ספל"}, "fr", "Mug"},
		{"russian before hebrew", LocalizedText{"he": "ספל", "ru": "Чашка"}, "en", "Чашка"},
		{"unknown languages only", LocalizedText{"pl": "Kubek", "de": "Becher", "it": "Tazza"}, "en", "Becher"},
		{"empty", LocalizedText{}, "en", ""},
		{"nil", nil, "ru", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 {
				assert.Equal(t, tt.want, tt.text.Get(tt.lang))
			}
		})
	}
}
