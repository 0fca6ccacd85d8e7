package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/motaiot/siteapi/internal/config"
)

func TestRAGClient_AISearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/acct/autorag/rags/idx/ai-search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["query"] != "hi" || req["stream"] != true || req["rewrite_query"] != true {
			t.Errorf("request = %v", req)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: {\"response\":\"hello\"}\n\n")
	}))
	defer srv.Close()

	client := NewRAGClient(config.Config{
		RAGBaseURL:   srv.URL,
		RAGAccountID: "acct",
		RAGIndex:     "idx",
		RAGAPIToken:  "tok",
	})

	resp, err := client.AISearch(context.Background(), "hi")
	if err != nil {
		t.Fatalf("AISearch: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "data: {\"response\":\"hello\"}\n\n" {
		t.Errorf("body = %q", body)
	}
}

func TestRAGClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"index not found"}]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewRAGClient(config.Config{RAGBaseURL: srv.URL, RAGAccountID: "a", RAGIndex: "i"})

	_, err := client.AISearch(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
	if !strings.Contains(err.Error(), "index not found") {
		t.Errorf("error should carry upstream body, got %v", err)
	}
}
