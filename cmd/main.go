package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/handlers"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/payment/toyyibpay"
	httpUtil "github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/utility/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg := config.Load()
	if !cfg.HasCredentials() {
		log.Println("TOYYIBPAY_SECRET_KEY / TOYYIBPAY_CATEGORY_CODE not set; bill creation will fail until they are")
	}

	gateway := toyyibpay.New(cfg, httpUtil.NewHttpClient())

	paymentHandler := handlers.NewPaymentHandler(cfg, gateway)
	callbackHandler := handlers.NewCallbackHandler(cfg)
	returnHandler := handlers.NewReturnHandler(cfg)
	homeHandler := handlers.NewHomeHandler(cfg)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/", homeHandler.Index)
	r.Get("/health", homeHandler.Health)

	// Payment routes
	r.Route("/payment", func(r chi.Router) {
		r.Post("/create", paymentHandler.CreateBill)
		r.Get("/callback", callbackHandler.Handle)
		r.Post("/callback", callbackHandler.Handle)
		r.Get("/return", returnHandler.Handle)
	})

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s (%s)\n", cfg.Port, cfg.Environment())
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
