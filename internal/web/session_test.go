package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionMintsCookie(t *testing.T) {
	var gotSession, gotCustomer string
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = SessionID(r)
		gotCustomer = CustomerID(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if gotSession == "" {
		t.Fatal("expected a minted session id")
	}
	if gotCustomer != "" {
		t.Fatalf("expected no customer id, got %q", gotCustomer)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != gotSession {
		t.Fatalf("expected %s cookie carrying %q, got %+v", SessionCookie, gotSession, cookie)
	}
}

func TestSessionReusesCookie(t *testing.T) {
	var gotSession, gotCustomer string
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = SessionID(r)
		gotCustomer = CustomerID(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "existing"})
	req.Header.Set(CustomerHeader, "cust-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gotSession != "existing" {
		t.Fatalf("expected the existing session id, got %q", gotSession)
	}
	if gotCustomer != "cust-1" {
		t.Fatalf("expected customer id from header, got %q", gotCustomer)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no new cookie must be set for a returning session")
	}
}
