package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSerperProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewSerperProvider(SerperConfig{})
	if err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestSerperProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/search" {
			t.Errorf("Expected path /search, got %s", r.URL.Path)
		}
		if r.Header.Get("X-API-KEY") != "test-key" {
			t.Errorf("Expected X-API-KEY header, got %q", r.Header.Get("X-API-KEY"))
		}

		var request struct {
			Query string `json:"q"`
			Num   int    `json:"num"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if request.Query != "capital of France" {
			t.Errorf("Expected query passed through, got %q", request.Query)
		}
		if request.Num != 10 {
			t.Errorf("Expected num 10, got %d", request.Num)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]string{
				{"title": "France", "link": "https://example.com/france", "snippet": "Paris is the capital."},
				{"title": "Paris", "link": "https://example.com/paris", "snippet": "Capital city of France."},
			},
		})
	}))
	defer server.Close()

	provider, err := NewSerperProvider(SerperConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperProvider failed: %v", err)
	}

	results, err := provider.Search(context.Background(), "capital of France", 10)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "France" {
		t.Errorf("Expected first result 'France', got %q", results[0].Title)
	}
	if results[0].URL != "https://example.com/france" {
		t.Errorf("Expected URL mapped from link, got %q", results[0].URL)
	}
	if results[1].Snippet != "Capital city of France." {
		t.Errorf("Expected snippet mapped, got %q", results[1].Snippet)
	}
}

func TestSerperProvider_Search_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusForbidden)
	}))
	defer server.Close()

	provider, err := NewSerperProvider(SerperConfig{APIKey: "bad-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperProvider failed: %v", err)
	}

	_, err = provider.Search(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}

func TestSerperProvider_Search_EmptyOrganic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic": []}`))
	}))
	defer server.Close()

	provider, err := NewSerperProvider(SerperConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperProvider failed: %v", err)
	}

	results, err := provider.Search(context.Background(), "obscure query", 5)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
