package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewWolframTool_RequiresAppID(t *testing.T) {
	_, err := NewWolframTool("")
	if err == nil {
		t.Error("Expected error for empty app ID")
	}
}

func TestWolframTool_Call(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/result" {
			t.Errorf("Expected path /v1/result, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("appid") != "test-app-id" {
			t.Errorf("Expected appid query param, got %q", r.URL.Query().Get("appid"))
		}
		if r.URL.Query().Get("i") != "2+2" {
			t.Errorf("Expected input query param, got %q", r.URL.Query().Get("i"))
		}
		w.Write([]byte("4\n"))
	}))
	defer server.Close()

	tool, err := NewWolframTool("test-app-id")
	if err != nil {
		t.Fatalf("NewWolframTool failed: %v", err)
	}
	tool.baseURL = server.URL

	answer, err := tool.Call(context.Background(), "2+2")
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if answer != "4" {
		t.Errorf("Expected trimmed answer '4', got %q", answer)
	}
}

func TestWolframTool_Call_Uninterpretable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer server.Close()

	tool, err := NewWolframTool("test-app-id")
	if err != nil {
		t.Fatalf("NewWolframTool failed: %v", err)
	}
	tool.baseURL = server.URL

	answer, err := tool.Call(context.Background(), "gibberish")
	if err != nil {
		t.Fatalf("Expected no error for uninterpretable input, got %v", err)
	}
	if answer != "Wolfram Alpha could not interpret the input." {
		t.Errorf("Unexpected answer: %q", answer)
	}
}

func TestWolframTool_Call_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid app id", http.StatusForbidden)
	}))
	defer server.Close()

	tool, err := NewWolframTool("test-app-id")
	if err != nil {
		t.Fatalf("NewWolframTool failed: %v", err)
	}
	tool.baseURL = server.URL

	_, err = tool.Call(context.Background(), "2+2")
	if err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}
