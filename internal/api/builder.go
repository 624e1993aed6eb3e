package api

import (
	"io"
	"net/http"
	"strings"
)

type requestBuilder struct {
	method  string
	url     string
	form    string
	headers map[string]string
}

func newRequestBuilder(method, url string) *requestBuilder {
	return &requestBuilder{
		method:  method,
		url:     url,
		headers: make(map[string]string),
	}
}

// withForm sets an already encoded application/x-www-form-urlencoded body.
func (r *requestBuilder) withForm(form string) *requestBuilder {
	r.form = form

	return r
}

func (r *requestBuilder) withSession(session *Session) *requestBuilder {
	if session == nil {
		return r
	}

	return r.addHeader(cookieHeader, session.Cookie())
}

func (r *requestBuilder) addHeader(key, value string) *requestBuilder {
	r.headers[key] = value

	return r
}

func (r *requestBuilder) build() (*http.Request, error) {
	var body io.Reader

	if r.form != "" {
		body = strings.NewReader(r.form)
		r.headers[contentTypeHeader] = formContentType
	}

	req, err := http.NewRequest(r.method, r.url, body) //nolint:noctx
	if err != nil {
		return nil, err
	}

	for key, value := range r.headers {
		req.Header.Add(key, value)
	}

	return req, nil
}
