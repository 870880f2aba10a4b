package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwitterOAuthHandshake(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{
		"authorization_url": "https://api.twitter.com/oauth/authorize?oauth_token=tok",
		"oauth_token":       "tok",
	})

	start, err := c.StartTwitterOAuth(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/twitter/start-oauth", captured.Path)
	assert.Equal(t, "tok", start.OAuthToken)

	c, captured = newTestClient(t, http.StatusOK, map[string]any{
		"id":       "a1",
		"platform": "twitter",
		"username": "alexlifts",
	})
	acct, err := c.CompleteTwitterOAuth(context.Background(), "p1", start.OAuthToken, "1234567")
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/twitter/complete-oauth", captured.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, "tok", body["oauth_token"])
	assert.Equal(t, "1234567", body["pin"])
	assert.Equal(t, "alexlifts", acct.Username)
}

func TestSetCookiesEmbeddedFailureIsNotAnError(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{
		"success": false,
		"message": "cookies expired",
	})

	res, err := c.SetTwitterCookies(context.Background(), "p1", `[{"name":"auth_token","value":"x"}]`)
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/twitter/set-cookies", captured.Path)
	assert.False(t, res.Success)
	assert.Equal(t, "cookies expired", res.Message)

	var body map[string]string
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Contains(t, body["cookies"], "auth_token")
}

func TestGuidedSessionCapturesIdentity(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{
		"success":          true,
		"message":          "logged in",
		"username":         "alexlifts",
		"platform_user_id": "12345",
	})

	res, err := c.InstagramGuidedSession(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/instagram/guided-session", captured.Path)
	assert.True(t, res.Success)
	assert.Equal(t, "alexlifts", res.Username)
	assert.Equal(t, "12345", res.PlatformUserID)
}

func TestConnectInstagram(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "a2", "platform": "instagram"})

	_, err := c.ConnectInstagram(context.Background(), "p1", "ig-access-token")
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/instagram/connect", captured.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, "ig-access-token", body["access_token"])
}

func TestFanvueCookiePath(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"success": true, "message": "ok"})

	_, err := c.SetFanvueCookies(context.Background(), "p1", "session=abc")
	require.NoError(t, err)
	assert.Equal(t, "/api/personas/p1/accounts/fanvue/set-cookies", captured.Path)
}

func TestTogglePlatformStatusSendsOnlyProvidedFlags(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{
		"id":                "a1",
		"engagement_paused": true,
	})

	paused := true
	acct, err := c.TogglePlatformStatus(context.Background(), "p1", "twitter", PlatformToggle{EngagementPaused: &paused})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/api/personas/p1/accounts/twitter/toggle", captured.Path)
	assert.True(t, acct.EngagementPaused)

	keys := bodyKeys(t, captured.Body)
	require.Len(t, keys, 1)
	assert.Contains(t, keys, "engagement_paused")
}

func TestDisconnectPlatformAccount(t *testing.T) {
	c, captured := newTestClient(t, http.StatusNoContent, nil)

	require.NoError(t, c.DisconnectPlatformAccount(context.Background(), "p1", "a1"))
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/api/personas/p1/accounts/a1", captured.Path)
}
