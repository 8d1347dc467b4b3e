package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/freebusy/freebusy/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

func oauthConfig(cfg config.Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientId,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{gcal.CalendarReadonlyScope},
	}
}

// AuthURL returns the URL the user visits to obtain an authorization
// code for the offline flow.
func AuthURL(cfg config.Google) string {
	return oauthConfig(cfg).AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// ExchangeAndSave trades an authorization code for a token and stores
// it in the configured token file.
func ExchangeAndSave(ctx context.Context, cfg config.Google, authCode string) error {
	token, err := oauthConfig(cfg).Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("unable to exchange authorization code: %w", err)
	}
	return saveToken(cfg.TokenFile, token)
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("could not decode token file %s: %w", path, err)
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not create token file %s: %w", path, err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
