package http

import (
	"net/http"

	"therapy-booking-service/internal/delivery/http/handler"
	"therapy-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	bookingHandler *handler.BookingHandler
	draftHandler   *handler.DraftHandler
	proxyHandler   *handler.AirtableProxyHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	draftHandler *handler.DraftHandler,
	proxyHandler *handler.AirtableProxyHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		bookingHandler: bookingHandler,
		draftHandler:   draftHandler,
		proxyHandler:   proxyHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Booking intake
	api.HandleFunc("/bookings", r.bookingHandler.SubmitBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/slots", r.bookingHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Draft auto-save
	drafts := api.PathPrefix("/drafts").Subrouter()
	drafts.HandleFunc("/{key}", r.draftHandler.SaveDraft).Methods(http.MethodPut)
	drafts.HandleFunc("/{key}", r.draftHandler.RestoreDraft).Methods(http.MethodGet)
	drafts.HandleFunc("/{key}", r.draftHandler.DiscardDraft).Methods(http.MethodDelete)

	// Legacy function-shaped proxy endpoint. Registered without a method
	// matcher: the handler owns the OPTIONS/405 contract itself.
	r.router.HandleFunc("/functions/airtable", r.proxyHandler.Handle)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
