package catalog

import (
	"context"
	"time"

	"wemetstudio/internal/domain"
)

// Delays simulates the latency of each collection of the static catalog.
type Delays struct {
	Products     time.Duration
	Events       time.Duration
	Testimonials time.Duration
	Gallery      time.Duration
}

// DefaultDelays mirror the loading times the storefront was designed around.
var DefaultDelays = Delays{
	Products:     100 * time.Millisecond,
	Events:       1000 * time.Millisecond,
	Testimonials: 200 * time.Millisecond,
	Gallery:      500 * time.Millisecond,
}

type staticProvider struct {
	location *time.Location
	delays   Delays
}

// NewStaticProvider returns the built-in studio catalog. Event times are wall
// clock times in location.
func NewStaticProvider(location *time.Location, delays Delays) domain.CatalogProvider {
	if location == nil {
		location = time.UTC
	}
	return &staticProvider{location: location, delays: delays}
}

func (p *staticProvider) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	if err := wait(ctx, p.delays.Products); err != nil {
		return nil, domain.NewCatalogLoadError(domain.CollectionProducts, err)
	}
	return []domain.Product{
		{ID: "p1", Name: domain.LocalizedText{"ru": `Чашка "Туман"`, "en": "Misty Mug", "he": "ספל ערפילי"}, Price: 120, Image: "https://images.unsplash.com/photo-1593461331573-f93a7f8fac93?q=80&w=800&auto=format&fit=crop"},
		{ID: "p2", Name: domain.LocalizedText{"ru": `Миска "Земля"`, "en": "Earthen Bowl", "he": "קערת אדמה"}, Price: 150, Image: "https://images.unsplash.com/photo-1565193569049-3c827f30b2b8?q=80&w=800&auto=format&fit=crop"},
		{ID: "p3", Name: domain.LocalizedText{"ru": `Ваза "Волна"`, "en": "Wave Vase", "he": "אגרטל גל"}, Price: 280, Image: "https://images.unsplash.com/photo-1610011503435-73c812c1a0e0?q=80&w=800&auto=format&fit=crop"},
		{ID: "p4", Name: domain.LocalizedText{"ru": `Тарелка "Луна"`, "en": "Lunar Plate", "he": "צלחת ירח"}, Price: 180, Image: "https://images.unsplash.com/photo-1621282243755-33b0018b323a?q=80&w=800&auto=format&fit=crop"},
	}, nil
}

func (p *staticProvider) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	if err := wait(ctx, p.delays.Events); err != nil {
		return nil, domain.NewCatalogLoadError(domain.CollectionEvents, err)
	}
	at := func(day, hour, minute int) time.Time {
		return time.Date(2025, time.October, day, hour, minute, 0, 0, p.location)
	}
	return []domain.Event{
		{ID: 1, Type: domain.EventTypeCouples, Title: domain.LocalizedText{"ru": "Свидание за гончарным кругом", "en": "Date Night: Pottery Wheel", "he": "דייט נייט: אבניים"}, Date: at(6, 19, 0), DurationMinutes: 120, Spots: 6, Price: 240, Level: "Beginner", Langs: []string{"RU", "HE", "EN"}},
		{ID: 2, Type: domain.EventTypeAdults, Title: domain.LocalizedText{"ru": "Интенсив: первая ваза", "en": "Intensive: First Vase", "he": "אינטנסיב: האגרטל הראשון"}, Date: at(11, 10, 0), DurationMinutes: 180, Spots: 10, Price: 320, Level: "All", Langs: []string{"RU", "EN"}},
		{ID: 3, Type: domain.EventTypeKids, Title: domain.LocalizedText{"ru": "Дети 7–12: лепим кружку", "en": "Kids 7–12: Mug Making", "he": "ילדים 7–12: הכנת ספל"}, Date: at(12, 16, 0), DurationMinutes: 90, Spots: 12, Price: 140, Level: "Beginner", Langs: []string{"HE", "RU"}},
		{ID: 4, Type: domain.EventTypeTourists, Title: domain.LocalizedText{"ru": "Сувенир из Израиля своими руками", "en": "Tourist: Make an Israeli Souvenir", "he": "חווית תיירים: מזכרת ישראלית"}, Date: at(9, 14, 30), DurationMinutes: 90, Spots: 14, Price: 210, Level: "Beginner", Langs: []string{"EN", "RU", "HE"}},
		{ID: 5, Type: domain.EventTypeAdults, Title: domain.LocalizedText{"ru": "Открытая студия + глазуровка", "en": "Open Studio + Glazing Party", "he": "אופן סטודיו + זיגוג"}, Date: at(13, 18, 30), DurationMinutes: 120, Spots: 18, Price: 180, Level: "All", Langs: []string{"RU", "HE", "EN"}},
		{ID: 6, Type: domain.EventTypeCouples, Title: domain.LocalizedText{"ru": "Романтическая лепка: парные тарелки", "en": "Romantic Sculpting: Matching Plates", "he": "פיסול רומנטי: צלחות תואמות"}, Date: at(20, 20, 0), DurationMinutes: 120, Spots: 4, Price: 250, Level: "Beginner", Langs: []string{"HE", "EN"}},
	}, nil
}

func (p *staticProvider) LoadTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	if err := wait(ctx, p.delays.Testimonials); err != nil {
		return nil, domain.NewCatalogLoadError(domain.CollectionTestimonials, err)
	}
	return []domain.Testimonial{
		{ID: 1, Name: "Анна", Avatar: "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=200&auto=format&fit=crop", Text: domain.LocalizedText{
			"ru": "Потрясающее свидание! Очень медитативный процесс, ушли с красивыми чашками и тёплыми воспоминаниями.",
			"en": "Amazing date night! A very meditative process, we left with beautiful cups and warm memories.",
			"he": "דייט מדהים! תהליך מדיטטיבי, יצאנו עם ספלים יפים וזכרונות חמים.",
		}},
		{ID: 2, Name: "Michael", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=200&auto=format&fit=crop", Text: domain.LocalizedText{
			"ru": "Отличный интенсив. За 3 часа действительно сделал свою первую вазу. Преподаватель всё объясняет очень доступно.",
			"en": "Great intensive workshop. In 3 hours, I really made my first vase. The instructor explains everything very clearly.",
			"he": "סדנה אינטנסיבית מעולה. תוך 3 שעות באמת הכנתי את האגרטל הראשון שלי. המדריך מסביר הכל בצורה ברורה.",
		}},
		{ID: 3, Name: "Ольга и сын Марк", Avatar: "https://images.unsplash.com/photo-1544465498-07a3c7d0d247?q=80&w=200&auto=format&fit=crop", Text: domain.LocalizedText{
			"ru": "Сын в восторге! Не хотел уходить. Очень дружелюбная атмосфера, для детей – идеально.",
			"en": "My son is thrilled! He didn't want to leave. Very friendly atmosphere, perfect for kids.",
			"he": "הבן שלי היה מאושר! הוא לא רצה לעזוב. אווירה ידידותית מאוד, מושלם לילדים.",
		}},
	}, nil
}

func (p *staticProvider) LoadGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	if err := wait(ctx, p.delays.Gallery); err != nil {
		return nil, domain.NewCatalogLoadError(domain.CollectionGallery, err)
	}
	return []domain.GalleryItem{
		{Src: "https://images.unsplash.com/photo-1554224220-745a2d61f185?q=80&w=1200&auto=format&fit=crop", Alt: "Руки лепят глину на гончарном круге"},
		{Src: "https://images.unsplash.com/photo-1610122993843-2e0f39118c5b?q=80&w=1200&auto=format&fit=crop", Alt: "Пара наслаждается уроком гончарного мастерства"},
		{Src: "https://images.unsplash.com/photo-1565339389201-c301c237a627?q=80&w=1200&auto=format&fit=crop", Alt: "Детские руки в глине создают маленький горшок"},
		{Src: "https://images.unsplash.com/photo-1578780909913-c3486a241b2c?q=80&w=1200&auto=format&fit=crop", Alt: "Художник расписывает керамическую вазу"},
		{Src: "https://images.unsplash.com/photo-1533611689535-3093950a7c29?q=80&w=1200&auto=format&fit=crop", Alt: "Готовые керамические кружки ручной работы на полке"},
		{Src: "https://images.unsplash.com/photo-1605200980296-16f04aa46a0c?q=80&w=1200&auto=format&fit=crop", Alt: "Уютный интерьер керамической студии"},
	}, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
