package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	loginURI                 = "/api/v2/auth/login"
	versionURI               = "/api/v2/app/version"
	speedLimitsModeURI       = "/api/v2/transfer/speedLimitsMode"
	toggleSpeedLimitsModeURI = "/api/v2/transfer/toggleSpeedLimitsMode"

	cookieHeader      = "Cookie"
	refererHeader     = "Referer"
	contentTypeHeader = "Content-Type"

	formContentType = "application/x-www-form-urlencoded"

	speedLimitsModeEnabled  = "1"
	speedLimitsModeDisabled = "0"

	maxBodySize = 1 << 16
)

// HTTPClient represents qBittorrent WebUI HTTP API Client.
type HTTPClient interface {
	// Login logs the user in the WebUI API and returns the issued session.
	Login(userName, password string) (*Session, error)
	// SpeedLimitsMode returns true if alternative speed limits are enabled.
	SpeedLimitsMode(session *Session) (bool, error)
	// ToggleSpeedLimitsMode flips the alternative speed limits mode.
	ToggleSpeedLimitsMode(session *Session) error
	// Version returns the qBittorrent application version.
	Version(session *Session) (string, error)
}

type httpClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPClient returns a new instance of qBittorrent HTTPClient.
func NewHTTPClient(http *http.Client, baseURL string) HTTPClient {
	return &httpClient{
		httpClient: http,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *httpClient) Login(userName, password string) (*Session, error) {
	form := "username=" + url.QueryEscape(userName) + "&password=" + url.QueryEscape(password)

	req, err := newRequestBuilder(http.MethodPost, c.buildURL(loginURI)).
		withForm(form).
		addHeader(refererHeader, c.baseURL).
		build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create login request")
	}

	resp, err := c.performRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "login request failed")
	}

	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return newSession(cookie.Value), nil
		}
	}

	body, _ := c.readResponseBody(resp)

	return nil, errors.Wrapf(ErrSessionCookieNotFound, "login rejected with response %q", body)
}

func (c *httpClient) SpeedLimitsMode(session *Session) (bool, error) {
	req, err := newRequestBuilder(http.MethodGet, c.buildURL(speedLimitsModeURI)).
		withSession(session).
		addHeader(refererHeader, c.baseURL).
		build()
	if err != nil {
		return false, errors.Wrap(err, "failed to create speed limits mode request")
	}

	resp, err := c.performRequest(req)
	if err != nil {
		return false, errors.Wrap(err, "could not perform speed limits mode api call")
	}

	defer resp.Body.Close()

	body, err := c.readResponseBody(resp)
	if err != nil {
		return false, errors.Wrap(err, "could not read speed limits mode response body")
	}

	switch body {
	case speedLimitsModeEnabled:
		return true, nil
	case speedLimitsModeDisabled:
		return false, nil
	default:
		return false, errors.Wrapf(ErrUnexpectedPayload, "speed limits mode: got %q", body)
	}
}

func (c *httpClient) ToggleSpeedLimitsMode(session *Session) error {
	req, err := newRequestBuilder(http.MethodPost, c.buildURL(toggleSpeedLimitsModeURI)).
		withSession(session).
		addHeader(refererHeader, c.baseURL).
		build()
	if err != nil {
		return errors.Wrap(err, "failed to create toggle speed limits mode request")
	}

	resp, err := c.performRequest(req)
	if err != nil {
		return errors.Wrap(err, "toggle speed limits mode request failed")
	}

	defer resp.Body.Close()

	return nil
}

func (c *httpClient) Version(session *Session) (string, error) {
	req, err := newRequestBuilder(http.MethodGet, c.buildURL(versionURI)).
		withSession(session).
		addHeader(refererHeader, c.baseURL).
		build()
	if err != nil {
		return "", errors.Wrap(err, "failed to create version request")
	}

	resp, err := c.performRequest(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to perform version request")
	}

	defer resp.Body.Close()

	version, err := c.readResponseBody(resp)
	if err != nil {
		return "", errors.Wrap(err, "could not read version response body")
	}

	if version == "" {
		return "", errors.Wrap(ErrUnexpectedPayload, "version: empty response")
	}

	return version, nil
}

func (c *httpClient) buildURL(path string) string {
	return c.baseURL + path
}

// performRequest executes the request and treats every non-2xx response as an HTTPError.
func (c *httpClient) performRequest(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform http call")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		body, _ := c.readResponseBody(resp)

		return nil, HTTPError{
			Err:        errors.Errorf("expected response code to be 2xx, but got %d instead", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return resp, nil
}

func (c *httpClient) readResponseBody(r *http.Response) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return "", errors.Wrap(err, "could not read response body")
	}

	return strings.TrimSpace(string(b)), nil
}
