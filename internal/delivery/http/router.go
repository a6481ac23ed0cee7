package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"wemetstudio/internal/delivery/http/controllers"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Session      *controllers.SessionController
	Catalog      *controllers.CatalogController
	Cart         *controllers.CartController
	Calendar     *controllers.CalendarController
	Notification *controllers.NotificationController
}

// NewRouter initializes the HTTP router with all application routes.
// requireSession wraps every route that acts on a browser session.
func NewRouter(c Controllers, requireSession func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Sessions
	mux.HandleFunc("POST /sessions", c.Session.CreateSession)
	mux.HandleFunc("GET /session", requireSession(c.Session.GetSession))
	mux.HandleFunc("DELETE /session", requireSession(c.Session.EndSession))
	mux.HandleFunc("PUT /session/language", requireSession(c.Session.SetLanguage))

	// Catalog
	mux.HandleFunc("GET /catalog/status", requireSession(c.Catalog.Status))
	mux.HandleFunc("POST /catalog/reload", requireSession(c.Catalog.Reload))
	mux.HandleFunc("GET /products", requireSession(c.Catalog.ListProducts))
	mux.HandleFunc("GET /events", requireSession(c.Catalog.ListEvents))
	mux.HandleFunc("GET /testimonials", requireSession(c.Catalog.ListTestimonials))
	mux.HandleFunc("GET /gallery", requireSession(c.Catalog.ListGallery))

	// Cart
	mux.HandleFunc("GET /cart", requireSession(c.Cart.GetCart))
	mux.HandleFunc("DELETE /cart", requireSession(c.Cart.ClearCart))
	mux.HandleFunc("POST /cart/items", requireSession(c.Cart.AddItem))
	mux.HandleFunc("PATCH /cart/items/{productID}", requireSession(c.Cart.UpdateItem))
	mux.HandleFunc("DELETE /cart/items/{productID}", requireSession(c.Cart.RemoveItem))

	// Calendar and booking
	mux.HandleFunc("GET /calendar", requireSession(c.Calendar.GetCalendar))
	mux.HandleFunc("PUT /calendar/date", requireSession(c.Calendar.SelectDate))
	mux.HandleFunc("GET /calendar/grid", requireSession(c.Calendar.GetGrid))
	mux.HandleFunc("POST /calendar/month", requireSession(c.Calendar.ShiftMonth))
	mux.HandleFunc("POST /calendar/booking", requireSession(c.Calendar.OpenBooking))
	mux.HandleFunc("DELETE /calendar/booking", requireSession(c.Calendar.CloseBooking))
	mux.HandleFunc("POST /calendar/booking/submit", requireSession(c.Calendar.SubmitBooking))

	// Notifications
	mux.HandleFunc("GET /notification", requireSession(c.Notification.GetNotification))
	mux.HandleFunc("POST /notification", requireSession(c.Notification.ShowNotification))
	mux.HandleFunc("DELETE /notification", requireSession(c.Notification.DismissNotification))
	mux.HandleFunc("GET /notifications/ws", requireSession(c.Notification.Stream))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
