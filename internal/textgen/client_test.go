package textgen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	var gotAuth string
	var gotBody Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"description":"A premier swimming facility for all ages."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	description, err := client.Describe(context.Background(), Request{
		ServiceName:    "Swimming Pool",
		ActivityType:   "Aquatics",
		TargetAudience: "Families",
		KeyFeatures:    []string{"Olympic size", "Heated"},
	})
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}

	if description != "A premier swimming facility for all ages." {
		t.Errorf("unexpected description: %q", description)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotBody.ServiceName != "Swimming Pool" {
		t.Errorf("unexpected service name in request: %q", gotBody.ServiceName)
	}
}

func TestDescribeRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"description":"Finally available."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	description, err := client.Describe(context.Background(), Request{ServiceName: "Gym"})
	if err != nil {
		t.Fatalf("Describe returned error after retries: %v", err)
	}

	if description != "Finally available." {
		t.Errorf("unexpected description: %q", description)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDescribeClientErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	_, err := client.Describe(context.Background(), Request{ServiceName: "Gym"})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should mention the status code, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("client errors must not be retried, got %d attempts", attempts)
	}
}

func TestDescribeDisabledClient(t *testing.T) {
	client := NewClient("", "")

	if client.Enabled() {
		t.Error("client with no endpoint should report disabled")
	}
	if _, err := client.Describe(context.Background(), Request{ServiceName: "Gym"}); err == nil {
		t.Error("expected error from disabled client")
	}
}
