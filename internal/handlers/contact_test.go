package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/upstream"
)

type fakeMailer struct {
	sent []upstream.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, email upstream.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "msg-1", nil
}

func contactForm(name, email, message string) *strings.Reader {
	form := url.Values{}
	if name != "" {
		form.Set("name", name)
	}
	if email != "" {
		form.Set("email", email)
	}
	if message != "" {
		form.Set("message", message)
	}
	return strings.NewReader(form.Encode())
}

func contactConfig() config.Config {
	return config.Config{
		ContactFrom: "Website <website@motaiot.com>",
		ContactTo:   "contact@motaiot.com",
	}
}

func TestContactHandler_Success(t *testing.T) {
	mailer := &fakeMailer{}
	handler := ContactHandler(contactConfig(), mailer)

	req := httptest.NewRequest("POST", "/contact", contactForm("A", "a@b.com", "hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.ID != "msg-1" {
		t.Errorf("body = %+v", body)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails", len(mailer.sent))
	}
	email := mailer.sent[0]
	if email.ReplyTo != "a@b.com" {
		t.Errorf("ReplyTo = %q, want visitor address", email.ReplyTo)
	}
	if email.To[0] != "contact@motaiot.com" {
		t.Errorf("To = %v", email.To)
	}
	if !strings.Contains(email.HTML, "hello") {
		t.Errorf("HTML missing message: %q", email.HTML)
	}
}

func TestContactHandler_MissingFields(t *testing.T) {
	mailer := &fakeMailer{}
	handler := ContactHandler(contactConfig(), mailer)

	req := httptest.NewRequest("POST", "/contact", contactForm("A", "", "hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(mailer.sent) != 0 {
		t.Error("incomplete form still sent mail")
	}
}

func TestContactHandler_SendFailure(t *testing.T) {
	handler := ContactHandler(contactConfig(), &fakeMailer{err: errors.New("resend returned 422")})

	req := httptest.NewRequest("POST", "/contact", contactForm("A", "a@b.com", "hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != 500 {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
