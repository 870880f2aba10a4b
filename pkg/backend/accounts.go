package backend

import (
	"context"
	"fmt"
	"net/http"
)

// PlatformToggle pauses or resumes automation capabilities on one linked
// account. Nil fields are left untouched server-side.
type PlatformToggle struct {
	EngagementPaused *bool `json:"engagement_paused,omitempty"`
	PostingPaused    *bool `json:"posting_paused,omitempty"`
}

type completeOAuthRequest struct {
	OAuthToken string `json:"oauth_token"`
	PIN        string `json:"pin"`
}

type connectInstagramRequest struct {
	AccessToken string `json:"access_token"`
}

type setCookiesRequest struct {
	Cookies string `json:"cookies"`
}

// PlatformAccounts lists the accounts linked to a persona.
func (c *Client) PlatformAccounts(ctx context.Context, personaID string) ([]PlatformAccount, error) {
	var out []PlatformAccount
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/personas/%s/accounts", personaID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DisconnectPlatformAccount removes one account link.
func (c *Client) DisconnectPlatformAccount(ctx context.Context, personaID, accountID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/personas/%s/accounts/%s", personaID, accountID), nil, nil, nil)
}

// TogglePlatformStatus pauses or resumes engagement and posting independently
// on the persona's account for the given platform.
func (c *Client) TogglePlatformStatus(ctx context.Context, personaID, platform string, toggle PlatformToggle) (*PlatformAccount, error) {
	var out PlatformAccount
	path := fmt.Sprintf("/api/personas/%s/accounts/%s/toggle", personaID, platform)
	if err := c.do(ctx, http.MethodPatch, path, nil, toggle, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartTwitterOAuth begins the PIN-based OAuth handshake. The caller opens
// AuthorizationURL, obtains a PIN, and finishes with CompleteTwitterOAuth.
func (c *Client) StartTwitterOAuth(ctx context.Context, personaID string) (*OAuthStart, error) {
	var out OAuthStart
	path := fmt.Sprintf("/api/personas/%s/accounts/twitter/start-oauth", personaID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteTwitterOAuth finishes the handshake with the token from
// StartTwitterOAuth and the user-supplied PIN, returning the linked account.
func (c *Client) CompleteTwitterOAuth(ctx context.Context, personaID, oauthToken, pin string) (*PlatformAccount, error) {
	var out PlatformAccount
	path := fmt.Sprintf("/api/personas/%s/accounts/twitter/complete-oauth", personaID)
	body := completeOAuthRequest{OAuthToken: oauthToken, PIN: pin}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TwitterBrowserLogin asks the backend to log in through a headless browser
// it controls. Failure is embedded in the result, not thrown.
func (c *Client) TwitterBrowserLogin(ctx context.Context, personaID string) (*SessionResult, error) {
	var out SessionResult
	path := fmt.Sprintf("/api/personas/%s/accounts/twitter/browser-login", personaID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTwitterCookies injects a raw cookie string or JSON blob captured outside
// the system. Check Success on the result.
func (c *Client) SetTwitterCookies(ctx context.Context, personaID, cookies string) (*StatusResponse, error) {
	return c.setCookies(ctx, personaID, PlatformTwitter, cookies)
}

// TwitterGuidedSession asks the backend to drive an interactive login and
// report the captured identity.
func (c *Client) TwitterGuidedSession(ctx context.Context, personaID string) (*SessionResult, error) {
	return c.guidedSession(ctx, personaID, PlatformTwitter)
}

// ConnectInstagram links an Instagram account with a caller-supplied access
// token.
func (c *Client) ConnectInstagram(ctx context.Context, personaID, accessToken string) (*PlatformAccount, error) {
	var out PlatformAccount
	path := fmt.Sprintf("/api/personas/%s/accounts/instagram/connect", personaID)
	if err := c.do(ctx, http.MethodPost, path, nil, connectInstagramRequest{AccessToken: accessToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetInstagramCookies injects a captured Instagram session. Check Success.
func (c *Client) SetInstagramCookies(ctx context.Context, personaID, cookies string) (*StatusResponse, error) {
	return c.setCookies(ctx, personaID, PlatformInstagram, cookies)
}

// InstagramGuidedSession asks the backend to drive an interactive Instagram
// login.
func (c *Client) InstagramGuidedSession(ctx context.Context, personaID string) (*SessionResult, error) {
	return c.guidedSession(ctx, personaID, PlatformInstagram)
}

// SetFanvueCookies injects a captured Fanvue session. Check Success.
func (c *Client) SetFanvueCookies(ctx context.Context, personaID, cookies string) (*StatusResponse, error) {
	return c.setCookies(ctx, personaID, PlatformFanvue, cookies)
}

func (c *Client) setCookies(ctx context.Context, personaID, platform, cookies string) (*StatusResponse, error) {
	var out StatusResponse
	path := fmt.Sprintf("/api/personas/%s/accounts/%s/set-cookies", personaID, platform)
	if err := c.do(ctx, http.MethodPost, path, nil, setCookiesRequest{Cookies: cookies}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) guidedSession(ctx context.Context, personaID, platform string) (*SessionResult, error) {
	var out SessionResult
	path := fmt.Sprintf("/api/personas/%s/accounts/%s/guided-session", personaID, platform)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
