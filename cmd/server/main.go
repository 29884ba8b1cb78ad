package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kids-web-store/internal/cartstore"
	"kids-web-store/internal/catalog"
	"kids-web-store/internal/config"
	"kids-web-store/internal/handlers"
	"kids-web-store/internal/middleware"
	"kids-web-store/internal/services"
	"kids-web-store/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)
	log.Info().
		Str("app", cfg.Server.AppName).
		Str("version", handlers.Version).
		Str("env", cfg.Server.Env).
		Str("base_url", cfg.Server.BaseURL).
		Msg("starting")

	// Build the catalog from the static menu
	cat := catalog.Default()
	log.Info().Int("items", cat.Len()).Msg("catalog initialized")

	// Initialize the cart store
	store := cartstore.NewMemoryStore(cat, cartstore.Options{
		TTL:      time.Duration(cfg.Cart.TTLSeconds) * time.Second,
		MaxItems: cfg.Cart.MaxItems,
	})
	defer store.Close()

	// Initialize services
	cartService := services.NewCartService(store)
	checkoutService := services.NewCheckoutService(store)

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}

	// Load templates
	templates, err := handlers.LoadTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(cfg.Server.AppName, templates)
	storeHandler := handlers.NewStoreHandler(cartService, cat, templates)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, checkoutService, templates)

	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	r.Use(sessionMiddleware.EnsureSession)

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	// Public pages and service endpoints
	r.Get("/", publicHandler.Welcome)
	r.Get("/health", publicHandler.Health)
	r.Get("/api/info", publicHandler.APIInfo)

	// Store
	r.Route("/store", func(r chi.Router) {
		r.Get("/", storeHandler.StorePage)
		r.Get("/menu", storeHandler.Menu)
		r.Get("/cart", storeHandler.Cart)
		r.Post("/add-item", storeHandler.AddItem)
		r.Post("/remove-item", storeHandler.RemoveItem)
		r.Post("/add-item-form", storeHandler.AddItemForm)
	})

	// Checkout
	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", checkoutHandler.CheckoutPage)
		r.Post("/", checkoutHandler.CheckoutAction)
		r.Post("/remove-item", checkoutHandler.RemoveItemForm)
		r.Delete("/clear", checkoutHandler.ClearCart)
		r.Get("/order", checkoutHandler.Order)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Serve until interrupted, then drain in-flight requests
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// setupLogger configures the global zerolog logger: pretty console
// output in development, JSON everywhere else
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
