package i18n

import "time"

var messages = map[string]map[string]string{
	LangRU: {
		"addedToCart":      "Добавлено!",
		"cartEmpty":        "Ваша корзина пуста.",
		"noEvents":         "Нет событий на выбранную дату.",
		"bookingReceived":  "Заявка отправлена!",
		"priceFrom":        "от ₪%v",
		"spotsLeft":        "Осталось мест: %d",
		"catalogLoadError": "Не удалось загрузить данные. Попробуйте ещё раз.",
	},
	LangEN: {
		"addedToCart":      "Added!",
		"cartEmpty":        "Your cart is empty.",
		"noEvents":         "No events on this date.",
		"bookingReceived":  "Request sent!",
		"priceFrom":        "from ₪%v",
		"spotsLeft":        "%d spots left",
		"catalogLoadError": "Could not load data. Please try again.",
	},
	LangHE: {
		"addedToCart":      "נוסף!",
		"cartEmpty":        "העגלה שלך ריקה.",
		"noEvents":         "אין אירועים בתאריך זה.",
		"bookingReceived":  "הבקשה נשלחה!",
		"priceFrom":        "החל מ-₪%v",
		"spotsLeft":        "נותרו %d מקומות",
		"catalogLoadError": "לא ניתן לטעון נתונים. נסו שוב.",
	},
}

var shortWeekdays = map[string][7]string{
	LangRU: {time.Sunday: "вс", time.Monday: "пн", time.Tuesday: "вт", time.Wednesday: "ср", time.Thursday: "чт", time.Friday: "пт", time.Saturday: "сб"},
	LangEN: {time.Sunday: "Sun", time.Monday: "Mon", time.Tuesday: "Tue", time.Wednesday: "Wed", time.Thursday: "Thu", time.Friday: "Fri", time.Saturday: "Sat"},
	LangHE: {time.Sunday: "יום א׳", time.Monday: "יום ב׳", time.Tuesday: "יום ג׳", time.Wednesday: "יום ד׳", time.Thursday: "יום ה׳", time.Friday: "יום ו׳", time.Saturday: "שבת"},
}
