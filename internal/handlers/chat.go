package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/motaiot/siteapi/internal/auth"
	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/db"
	"github.com/motaiot/siteapi/internal/logging"
	"github.com/motaiot/siteapi/internal/sse"
	"gorm.io/gorm"
)

// RAGSearcher produces a streamed answer for a chat message.
type RAGSearcher interface {
	AISearch(ctx context.Context, query string) (*http.Response, error)
}

type chatRequest struct {
	Message string `json:"message"`
}

// ChatHandler gates on a valid session, forwards the message to the search
// service, and streams the answer back verbatim while teeing it into chat
// history. History persistence is fire-and-forget: its failure never touches
// the stream the client already received.
func ChatHandler(cfg config.Config, database *gorm.DB, rag RAGSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		user, err := auth.SessionUser(database, r, cfg.SessionCookie)
		if err != nil {
			log.Printf("chat: session lookup failed: %v", err)
		}
		if user == nil {
			http.Error(w, "Unauthorized: invalid session", http.StatusUnauthorized)
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			writeError(w, "Missing message", http.StatusBadRequest)
			return
		}

		requestID := logging.GenerateRequestID()

		// The upstream call deliberately ignores the request context: a
		// client disconnect mid-stream must not cancel history persistence.
		resp, err := rag.AISearch(context.Background(), req.Message)
		if err != nil {
			log.Printf("chat [%s]: upstream error: %v", requestID, err)
			writeError(w, "Upstream error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer resp.Body.Close()

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, "Streaming not supported", http.StatusInternalServerError)
			return
		}
		SetSSEHeaders(w)

		// Tee: every upstream chunk is forwarded to the client verbatim and
		// fed to the incremental decoder. A broken client stops the writes,
		// never the upstream drain.
		var dec sse.Decoder
		var events []sse.Event
		clientGone := false
		buf := make([]byte, 32*1024)
		for {
			n, readErr := resp.Body.Read(buf)
			if n > 0 {
				events = append(events, dec.Feed(buf[:n])...)
				if !clientGone {
					if _, writeErr := w.Write(buf[:n]); writeErr != nil {
						log.Printf("chat [%s]: client write failed, draining for history: %v", requestID, writeErr)
						clientGone = true
					} else {
						flusher.Flush()
					}
				}
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					log.Printf("chat [%s]: upstream read error: %v", requestID, readErr)
				}
				break
			}
		}
		events = append(events, dec.Flush()...)

		go persistHistory(database, requestID, user.ID, req.Message, events)
	}
}

// persistHistory reconstructs the assistant text from the decoded events and
// appends the exchange. Failures are logged and swallowed: the client
// already has its stream.
func persistHistory(database *gorm.DB, requestID, userID, message string, events []sse.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("chat [%s]: history persistence panicked: %v", requestID, rec)
		}
	}()

	text := sse.CollectResponse(events)
	if text == "" {
		log.Printf("chat [%s]: no response text reconstructed, skipping history", requestID)
		return
	}
	if err := db.AppendChatHistory(database, userID, message, text); err != nil {
		log.Printf("chat [%s]: failed to append history: %v", requestID, err)
	}
}
