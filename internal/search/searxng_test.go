package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSearxngProvider_RequiresInstanceURL(t *testing.T) {
	_, err := NewSearxngProvider(SearxngConfig{})
	if err == nil {
		t.Error("Expected error for missing instance URL")
	}
}

func TestSearxngProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected path /search, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("Expected format=json, got %q", r.URL.Query().Get("format"))
		}
		if r.URL.Query().Get("q") != "capital of France" {
			t.Errorf("Expected query passed through, got %q", r.URL.Query().Get("q"))
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"title": "France", "url": "https://example.com/france", "content": "Paris is the capital."},
				{"title": "Paris", "url": "https://example.com/paris", "content": "Capital city."},
				{"title": "Lyon", "url": "https://example.com/lyon", "content": "Not the capital."},
			},
		})
	}))
	defer server.Close()

	provider, err := NewSearxngProvider(SearxngConfig{InstanceURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewSearxngProvider failed: %v", err)
	}

	results, err := provider.Search(context.Background(), "capital of France", 2)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	// Truncated to the requested count.
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "France" {
		t.Errorf("Expected first result 'France', got %q", results[0].Title)
	}
	if results[1].Snippet != "Capital city." {
		t.Errorf("Expected snippet mapped from content, got %q", results[1].Snippet)
	}
}

func TestSearxngProvider_Search_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider, err := NewSearxngProvider(SearxngConfig{InstanceURL: server.URL})
	if err != nil {
		t.Fatalf("NewSearxngProvider failed: %v", err)
	}

	_, err = provider.Search(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}
