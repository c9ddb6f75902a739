package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// retryMarker is set on a request's header before replaying it so a second
// 401 is returned to the caller instead of looping.
const retryMarker = "X-Gateway-Retried"

// authTransport is an http.RoundTripper that attaches the bearer access
// token and performs the one-shot silent refresh on a 401 response.
type authTransport struct {
	base      http.RoundTripper
	store     *sessionStore
	refresher func() (string, error)
	onExpired func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	session := t.store.get()
	if session.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || req.Header.Get(retryMarker) != "" {
		return resp, nil
	}
	if session.RefreshToken == "" {
		return resp, nil
	}

	// The request replay needs a fresh body; without GetBody the caller
	// sees the original 401.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	newAccessToken, refreshErr := t.refresher()
	if refreshErr != nil {
		t.store.clear()
		if t.onExpired != nil {
			t.onExpired()
		}

		return resp, nil
	}

	t.store.setAccessToken(newAccessToken)

	// Drain the rejected response before reusing the connection.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, "failed to rewind request body for retry")
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newAccessToken)
	retry.Header.Set(retryMarker, "1")

	return t.base.RoundTrip(retry)
}

// refreshAccessToken posts the refresh token to the auth endpoint and
// returns the replacement access token.
func refreshAccessToken(client *http.Client, baseURL, refreshToken string) (string, error) {
	payload, err := json.Marshal(map[string]string{"token": refreshToken})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode refresh request")
	}

	resp, err := client.Post(baseURL+"/api/v1/auth/refresh-token", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "refresh request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "failed to decode refresh response")
	}
	if body.AccessToken == "" {
		return "", errors.New("refresh response missing access token")
	}

	return body.AccessToken, nil
}
