package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestInsertPurchase(t *testing.T) {
	c := qt.New(t)

	var gotPath, gotAuth, gotAPIKey, gotPrefer string
	var gotRow Purchase
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		gotPrefer = r.Header.Get("Prefer")
		c.Assert(r.Method, qt.Equals, http.MethodPost)
		c.Assert(json.NewDecoder(r.Body).Decode(&gotRow), qt.IsNil)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	name := "Ada Lovelace"
	client := New(srv.URL+"/", "service-key")
	err := client.InsertPurchase(context.Background(), &Purchase{
		Email:           "a@b.com",
		Name:            &name,
		PaymentIntentID: "pi_1",
		Product:         "ciiready-r01",
		AccessToken:     "tok-123",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(gotPath, qt.Equals, "/rest/v1/purchases")
	c.Assert(gotAuth, qt.Equals, "Bearer service-key")
	c.Assert(gotAPIKey, qt.Equals, "service-key")
	c.Assert(gotPrefer, qt.Equals, "return=minimal")
	c.Assert(gotRow.Email, qt.Equals, "a@b.com")
	c.Assert(*gotRow.Name, qt.Equals, "Ada Lovelace")
	c.Assert(gotRow.PaymentIntentID, qt.Equals, "pi_1")
	c.Assert(gotRow.AccessToken, qt.Equals, "tok-123")
}

func TestInsertPurchaseNullableName(t *testing.T) {
	c := qt.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var row map[string]any
		c.Assert(json.NewDecoder(r.Body).Decode(&row), qt.IsNil)
		c.Assert(row["name"], qt.IsNil)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "service-key")
	err := client.InsertPurchase(context.Background(), &Purchase{
		Email:           "a@b.com",
		PaymentIntentID: "pi_1",
		Product:         "ciiready-r01",
		AccessToken:     "tok-123",
	})
	c.Assert(err, qt.IsNil)
}

func TestInsertPurchaseFailure(t *testing.T) {
	c := qt.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "bad-key")
	err := client.InsertPurchase(context.Background(), &Purchase{
		Email:           "a@b.com",
		PaymentIntentID: "pi_1",
		Product:         "ciiready-r01",
		AccessToken:     "tok-123",
	})
	c.Assert(err, qt.IsNotNil)
	c.Assert(err.Error(), qt.Contains, "status 401")
}
