package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ownmsg/message-service/internal/config"
	"github.com/ownmsg/message-service/internal/model"
)

// Client talks to the external identity provider's admin API. The provider
// owns the whole OTP flow; this service only verifies its ID tokens and
// creates/looks up identities.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Identity.BaseURL,
		apiKey:  cfg.Identity.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Identity.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*model.IdentityToken, error) {
	body := map[string]string{"id_token": idToken}

	var token model.IdentityToken
	if err := c.doJSON(ctx, http.MethodPost, "/v1/tokens:verify", body, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

func (c *Client) CreateIdentity(ctx context.Context, phoneNumber, displayName, password string) (string, error) {
	body := map[string]interface{}{
		"phone_number":   phoneNumber,
		"display_name":   displayName,
		"password":       password,
		"phone_verified": true,
	}

	var identity model.Identity
	if err := c.doJSON(ctx, http.MethodPost, "/v1/identities", body, &identity); err != nil {
		return "", err
	}

	return identity.SubjectID, nil
}

func (c *Client) LookupByPhone(ctx context.Context, phoneNumber string) (*model.Identity, error) {
	path := "/v1/identities/phone/" + url.PathEscape(phoneNumber)

	var identity model.Identity
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w: %v", model.ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrIdentityNotFound
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("unexpected status code %d: %w", resp.StatusCode, model.ErrIdentityUnavailable)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("identity provider error: %s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
