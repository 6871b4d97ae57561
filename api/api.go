// Package api provides the HTTP API of the CIIReady checkout backend: one
// endpoint to create a payment intent and one to finalize the purchase once
// the payment succeeded.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ciiready/checkout-backend/api/apicommon"
	"github.com/ciiready/checkout-backend/notifications"
	"github.com/ciiready/checkout-backend/payments"
	"github.com/ciiready/checkout-backend/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// Config groups the collaborators and settings of the API server.
type Config struct {
	Host     string
	Port     int
	Payments payments.Service
	// Store is optional; when nil, purchase persistence is skipped entirely.
	Store       *store.Client
	MailService notifications.NotificationService
	// AppBaseURL is the public base URL the access token is appended to.
	AppBaseURL string
}

// API type represents the checkout API HTTP server.
type API struct {
	host       string
	port       int
	router     *chi.Mux
	payments   payments.Service
	store      *store.Client
	mail       notifications.NotificationService
	appBaseURL string
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	return &API{
		host:       conf.Host,
		port:       conf.Port,
		payments:   conf.Payments,
		store:      conf.Store,
		mail:       conf.MailService,
		appBaseURL: conf.AppBaseURL,
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatal().Err(err).Msg("failed to start the API server")
		}
	}()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(45 * time.Second))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(".")); err != nil {
			log.Warn().Err(err).Msg("failed to write ping response")
		}
	})

	// create a payment intent
	log.Info().Str("method", "POST").Str("path", createPaymentIntentEndpoint).Msg("new route")
	r.Post(createPaymentIntentEndpoint, a.createPaymentIntentHandler)
	r.Options(createPaymentIntentEndpoint, optionsHandler)
	// finalize a purchase
	log.Info().Str("method", "POST").Str("path", paymentSuccessEndpoint).Msg("new route")
	r.Post(paymentSuccessEndpoint, a.paymentSuccessHandler)
	r.Options(paymentSuccessEndpoint, optionsHandler)

	a.router = r
	return r
}

// optionsHandler answers plain (non pre-flight) OPTIONS requests with an
// empty 200; pre-flight requests are answered by the CORS middleware.
func optionsHandler(w http.ResponseWriter, _ *http.Request) {
	apicommon.HTTPWriteOK(w)
}
