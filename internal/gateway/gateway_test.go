package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRejectsInvalidRoot(t *testing.T) {
	if _, err := New("not a url", time.Second, nil); err == nil {
		t.Fatal("expected invalid root to be rejected")
	}
	if _, err := New("", time.Second, nil); err == nil {
		t.Fatal("expected empty root to be rejected")
	}
}

func TestDoJSONClassifiesRequestFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"invalid_transition","message":"cannot move from Approved to Pending"}`))
	}))
	defer ts.Close()

	client, err := New(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = client.DoJSON(context.Background(), http.MethodPost, "/LeaveRequest/1/approve", nil, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusConflict || reqErr.Code != "invalid_transition" {
		t.Fatalf("expected parsed body, got %+v", reqErr)
	}
	if Reason(err) != "cannot move from Approved to Pending" {
		t.Fatalf("expected body message as reason, got %q", Reason(err))
	}
}

func TestDoJSONClassifiesNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	client, err := New(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ts.Close()

	_, err = client.DoJSON(context.Background(), http.MethodGet, "/Staff", nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if Reason(err) == "" {
		t.Fatal("expected a human-readable reason")
	}
}

func TestDoJSONReportsEmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client, err := New(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out map[string]any
	decoded, err := client.DoJSON(context.Background(), http.MethodPut, "/Staff/1", map[string]string{"id": "1"}, &out)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if decoded {
		t.Fatal("expected decoded=false for a no-content response")
	}
}

func TestDoJSONAttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client, err := New(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	client.SetToken("tok-123")

	var out []map[string]any
	if _, err := client.DoJSON(context.Background(), http.MethodGet, "/Staff", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer token attached, got %q", gotAuth)
	}
}
