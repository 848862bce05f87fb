package router

import (
	"net/http"
	"strings"

	"pikalba/internal/handler"
	"pikalba/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	recommendationHandler *handler.RecommendationHandler,
	contentHandler *handler.ContentHandler,
	healthHandler *handler.HealthHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Root endpoint reports liveness only.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"name": "pikalba", "status": "ok"}`))
	})

	mux.HandleFunc("/health", healthHandler.Check)

	// Catalogue routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			productHandler.Create(w, r)
			return
		}
		productHandler.List(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/orders/track/") {
			orderHandler.Track(w, r)
			return
		}

		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			orderHandler.Create(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Recommendation routes
	recommendationRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/recommendations/feedback" {
			recommendationHandler.Feedback(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/recommendations/") && r.URL.Path != "/api/recommendations/" {
			recommendationHandler.Recommend(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/recommendations/", recommendationRouteHandler)

	// Marketing and content routes
	mux.HandleFunc("/api/blog", contentHandler.Blog)
	mux.HandleFunc("/api/events", contentHandler.Events)
	mux.HandleFunc("/api/wishlist", contentHandler.Wishlist)
	mux.HandleFunc("/api/newsletter", contentHandler.Newsletter)

	// Requests flow Recovery -> RequestID -> Logging -> CORS -> mux, so the
	// correlation ID is in context before the access log fires.
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
