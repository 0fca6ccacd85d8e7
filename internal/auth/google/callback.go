package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/motaiot/siteapi/internal/auth"
	"github.com/motaiot/siteapi/internal/auth/state"
	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/db"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type userinfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// HandleCallback finishes the OAuth flow: consume the state token, exchange
// the code, upsert the user and account link, create a session, and hand the
// browser its session cookie. The session row is only created after every
// prior step succeeded, so a failed callback leaves no usable session.
func HandleCallback(cfg config.Config, database *gorm.DB, states state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "provider") != Provider {
			http.Error(w, "Unknown provider", http.StatusNotFound)
			return
		}

		code := r.URL.Query().Get("code")
		stateToken := r.URL.Query().Get("state")
		if code == "" || stateToken == "" {
			http.Error(w, "Missing code or state in callback", http.StatusBadRequest)
			return
		}

		// Consume before anything else: even if a later step fails, the
		// token must not stay redeemable.
		ok, err := states.Consume(r.Context(), stateToken)
		if err != nil {
			log.Printf("callback: state lookup failed: %v", err)
			http.Error(w, "State validation failed", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "State validation failed: state not found or expired", http.StatusUnauthorized)
			return
		}

		oauthCfg := OAuthConfig(cfg)
		token, err := oauthCfg.Exchange(r.Context(), code)
		if err != nil {
			log.Printf("callback: token exchange failed: %v", err)
			http.Error(w, "Token exchange failed", http.StatusInternalServerError)
			return
		}

		profile, err := fetchUserinfo(r.Context(), cfg, oauthCfg, token)
		if err != nil {
			log.Printf("callback: userinfo fetch failed: %v", err)
			http.Error(w, "User info fetch failed", http.StatusInternalServerError)
			return
		}
		if profile.Email == "" {
			http.Error(w, "OAuth provider did not return an email address", http.StatusBadRequest)
			return
		}

		name := profile.Name
		if name == "" {
			name = profile.Email
		}

		user, err := db.UpsertUserByEmail(database, profile.Email, name, profile.Picture)
		if err != nil {
			log.Printf("callback: user upsert failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to save user: %v", err), http.StatusInternalServerError)
			return
		}

		var expiresAt *time.Time
		if !token.Expiry.IsZero() {
			expiry := token.Expiry
			expiresAt = &expiry
		}
		idToken, _ := token.Extra("id_token").(string)
		if err := db.LinkAccount(database, user.ID, Provider, profile.Sub, token.AccessToken, expiresAt, idToken); err != nil {
			log.Printf("callback: account link failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to link account: %v", err), http.StatusInternalServerError)
			return
		}

		session, err := db.CreateSession(database, user.ID)
		if err != nil {
			log.Printf("callback: session create failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
			return
		}

		auth.SetSessionCookie(w, cfg.SessionCookie, session.SessionToken, user.ID)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func fetchUserinfo(ctx context.Context, cfg config.Config, oauthCfg *oauth2.Config, token *oauth2.Token) (*userinfo, error) {
	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get(cfg.GoogleUserinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
