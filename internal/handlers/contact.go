package handlers

import (
	"context"
	"fmt"
	"html"
	"log"
	"net/http"

	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/upstream"
)

// MailSender delivers a contact-form email.
type MailSender interface {
	Send(ctx context.Context, email upstream.Email) (string, error)
}

// ContactHandler forwards contact-form submissions to the site inbox.
// Reply-To is set to the visitor so a reply goes straight back to them.
func ContactHandler(cfg config.Config, mail MailSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		name := r.PostFormValue("name")
		email := r.PostFormValue("email")
		message := r.PostFormValue("message")
		if name == "" || email == "" || message == "" {
			writeError(w, "Missing required fields", http.StatusBadRequest)
			return
		}

		body := fmt.Sprintf(
			"<h3>New Contact Form Submission</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><blockquote>%s</blockquote>",
			html.EscapeString(name), html.EscapeString(email), html.EscapeString(message),
		)

		id, err := mail.Send(r.Context(), upstream.Email{
			From:    cfg.ContactFrom,
			To:      []string{cfg.ContactTo},
			ReplyTo: email,
			Subject: "New Inquiry from " + name,
			HTML:    body,
		})
		if err != nil {
			log.Printf("contact: send failed: %v", err)
			writeError(w, "Failed to send email", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": id})
	}
}
