package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// NewRouter mounts the full HTTP surface.
func NewRouter(cfg RouterConfig, log zerolog.Logger, products *ProductHandler, carts *CartHandler, checkout *CheckoutHandler, orders *OrderHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	ok := func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	r.Get("/", ok)
	r.Get("/health", ok)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.List)
		r.Get("/search", products.Search)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Post("/create", carts.Create)
		r.Get("/{cart_id}", carts.Get)
		r.Post("/clear/{cart_id}", carts.Clear)
		r.Route("/items", func(r chi.Router) {
			r.Post("/add", carts.AddItem)
			r.Post("/update", carts.UpdateQuantity)
			r.Post("/remove", carts.RemoveItem)
		})
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/place-order", checkout.PlaceOrder)
		r.Post("/create-payment-intent", checkout.CreatePaymentIntent)
		r.Post("/confirm", checkout.Confirm)
	})

	r.Get("/orders/{order_id}", orders.Get)

	return r
}
