package notion_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelsync/internal/catalog"
	"reelsync/internal/notion"
)

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := notion.New("", "https://example.com", "db", catalog.MediaTypeMovie, 0); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := notion.New("key", "https://example.com", "", catalog.MediaTypeMovie, 0); err == nil {
		t.Fatal("expected error when database id missing")
	}
}

func TestQueryEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db123/query" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Notion-Version") == "" {
			t.Fatal("missing Notion-Version header")
		}

		body, _ := io.ReadAll(r.Body)
		var request struct {
			Filter   map[string]any `json:"filter"`
			PageSize int            `json:"page_size"`
		}
		if err := json.Unmarshal(body, &request); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if request.PageSize != 100 {
			t.Fatalf("expected default page size 100, got %d", request.PageSize)
		}
		conditions, ok := request.Filter["and"].([]any)
		if !ok || len(conditions) != 2 {
			t.Fatalf("expected two and-conditions, got %#v", request.Filter)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":"page-1","properties":{
				"Title":{"title":[{"plain_text":"Your Name"}]},
				"Year":{"number":2016},
				"Type":{"select":{"name":"Movie"}}}},
			{"id":"page-2","properties":{
				"Title":{"title":[{"plain_text":"Old Boy"}]},
				"Year":{"number":null},
				"Type":{"select":{"name":"Movie"}}}}
		]}`))
	}))
	t.Cleanup(server.Close)

	client, err := notion.New("secret", server.URL, "db123", catalog.MediaTypeMovie, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	entries, err := client.QueryEntries(context.Background())
	if err != nil {
		t.Fatalf("QueryEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Your Name" || entries[0].Year == nil || *entries[0].Year != 2016 {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[1].Year != nil {
		t.Fatalf("expected nil year for second entry, got %#v", entries[1].Year)
	}
}

func TestUpdatePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/pages/page-1" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var request struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(body, &request); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := request.Properties["Synopsis"]; !ok {
			t.Fatalf("expected Synopsis property, got %#v", request.Properties)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"page-1"}`))
	}))
	t.Cleanup(server.Close)

	client, err := notion.New("secret", server.URL, "db123", catalog.MediaTypeMovie, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	props := map[string]notion.Property{"Synopsis": notion.TextProperty("A story.")}
	if err := client.UpdatePage(context.Background(), "page-1", props); err != nil {
		t.Fatalf("UpdatePage returned error: %v", err)
	}
}

func TestUpdatePageRejectsEmptyPayload(t *testing.T) {
	client, err := notion.New("secret", "https://example.com", "db123", catalog.MediaTypeMovie, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.UpdatePage(context.Background(), "page-1", nil); err == nil {
		t.Fatal("expected error for empty property map")
	}
}

func TestUpdatePageSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"validation_error"}`))
	}))
	t.Cleanup(server.Close)

	client, err := notion.New("secret", server.URL, "db123", catalog.MediaTypeMovie, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	props := map[string]notion.Property{"Synopsis": notion.TextProperty("A story.")}
	if err := client.UpdatePage(context.Background(), "page-1", props); err == nil {
		t.Fatal("expected error when Notion rejects the update")
	}
}
