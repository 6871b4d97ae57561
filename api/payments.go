package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ciiready/checkout-backend/api/apicommon"
	"github.com/ciiready/checkout-backend/errors"
	"github.com/ciiready/checkout-backend/payments"
	"github.com/ciiready/checkout-backend/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// createPaymentIntentHandler creates a chargeable payment intent for the
// buyer and returns its client secret. Email and name are required; product
// and amount fall back to the configured defaults.
func (a *API) createPaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	req := &apicommon.PaymentIntentRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error().Err(err).Msg("failed to decode payment intent request body")
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	if req.Email == "" || req.Name == "" {
		errors.ErrMissingFields.With("email and name").Write(w)
		return
	}
	amount := req.Amount
	if amount <= 0 {
		amount = DefaultAmount
	}
	product := req.Product
	if product == "" {
		product = DefaultProduct
	}

	intent, err := a.payments.CreateIntent(r.Context(), &payments.IntentParams{
		Amount:       amount,
		ReceiptEmail: req.Email,
		Name:         req.Name,
		Product:      product,
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to create payment intent")
		errors.ErrPaymentIntentFailed.Write(w)
		return
	}

	apicommon.HTTPWriteJSON(w, &apicommon.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	})
}

// paymentSuccessHandler finalizes a purchase: it verifies the payment intent
// succeeded, mints a fresh access token, records the sale (best-effort) and
// emails the buyer their access link. The token is only returned to the
// client when the email was delivered.
func (a *API) paymentSuccessHandler(w http.ResponseWriter, r *http.Request) {
	req := &apicommon.PaymentSuccessRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error().Err(err).Msg("failed to decode payment success request body")
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	if req.PaymentIntentID == "" || req.Email == "" {
		errors.ErrMissingFields.With("paymentIntentId and email").Write(w)
		return
	}

	intent, err := a.payments.RetrieveIntent(r.Context(), req.PaymentIntentID)
	if err != nil {
		log.Error().Err(err).Str("paymentIntentId", req.PaymentIntentID).Msg("failed to retrieve payment intent")
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	if intent.Status != payments.StatusSucceeded {
		errors.ErrPaymentNotConfirmed.Withf("%s", intent.Status).Write(w)
		return
	}

	// The token is minted only after the intent was observed succeeded.
	// Uniqueness relies on the generator, there is no collision check.
	accessToken := uuid.NewString()
	product := req.Product
	if product == "" {
		product = DefaultProduct
	}

	// Best-effort persistence: a failure is logged and the purchase proceeds.
	if a.store != nil {
		purchase := &store.Purchase{
			Email:           req.Email,
			PaymentIntentID: req.PaymentIntentID,
			Product:         product,
			AccessToken:     accessToken,
		}
		if req.Name != "" {
			purchase.Name = &req.Name
		}
		ctx, cancel := context.WithTimeout(r.Context(), storeInsertTimeout)
		if err := a.store.InsertPurchase(ctx, purchase); err != nil {
			log.Error().Err(err).Str("paymentIntentId", req.PaymentIntentID).Msg("failed to record purchase")
		}
		cancel()
	}

	link := a.appBaseURL + "?token=" + accessToken
	if err := a.sendAccessMail(r.Context(), req.Email, req.Name, link); err != nil {
		log.Error().Err(err).Str("paymentIntentId", req.PaymentIntentID).Msg("failed to send access email")
		errors.ErrEmailSendFailed.Write(w)
		return
	}

	apicommon.HTTPWriteJSON(w, &apicommon.PaymentSuccessResponse{
		Success:     true,
		AccessToken: accessToken,
	})
}
