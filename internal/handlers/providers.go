package handlers

import (
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider describes one sign-in option shown by the site.
type Provider struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	SigninURL string `yaml:"signin_url" json:"signinUrl"`
}

type providersFile struct {
	Providers []Provider `yaml:"providers"`
}

// LoadProviders reads the optional providers catalog. With no file configured
// only Google sign-in is offered.
func LoadProviders(path string) ([]Provider, error) {
	if path == "" {
		return defaultProviders(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers catalog: %w", err)
	}
	var f providersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse providers catalog: %w", err)
	}
	if len(f.Providers) == 0 {
		return defaultProviders(), nil
	}
	return f.Providers, nil
}

func defaultProviders() []Provider {
	return []Provider{
		{ID: "google", Name: "Google", SigninURL: "/login/google"},
	}
}

// ProvidersHandler lists sign-in providers as a JSON map keyed by id.
func ProvidersHandler(providers []Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make(map[string]Provider, len(providers))
		for _, p := range providers {
			out[p.ID] = p
		}
		writeJSON(w, http.StatusOK, out)
	}
}
