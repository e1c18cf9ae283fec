// Package gateway sends requests to the Todo Manager API and normalizes what comes back.
//
// Every request gets the configured default headers, the challenger token from the session
// store, and a body encoded for its content type. Every response, whatever its status, is
// returned as a Response with its body decoded for the response content type.
package gateway

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/servicedef"
	"github.com/launchdarkly/todo-contract-tests/session"
)

// Gateway sends requests on behalf of the resource clients of one scenario run.
type Gateway struct {
	baseURL        string
	defaultHeaders map[string]string
	store          *session.Store
	httpClient     *http.Client
	logger         framework.Logger
}

// New creates a Gateway. All requests share the session store, so a token stored by one client
// is sent by every client built on this Gateway.
func New(cfg config.Config, store *session.Store, logger framework.Logger) *Gateway {
	if logger == nil {
		logger = framework.NullLogger()
	}
	if store == nil {
		store = session.NewStore()
	}
	return &Gateway{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		defaultHeaders: cfg.DefaultHeaders,
		store:          store,
		httpClient:     &http.Client{Timeout: cfg.Timeout()},
		logger:         logger,
	}
}

// WithLogger returns a copy of the Gateway that logs to a different destination. The copy has
// the same session store and HTTP client.
func (g *Gateway) WithLogger(logger framework.Logger) *Gateway {
	if logger == nil {
		logger = framework.NullLogger()
	}
	g1 := *g
	g1.logger = logger
	return &g1
}

func (g *Gateway) Session() *session.Store {
	return g.store
}

// Send performs one HTTP exchange. An error is returned only if the request could not be made,
// the body could not be encoded, or the response body could not be decoded; any status code the
// service returns is a normal result. A path template that cannot be filled in is reported as a
// *TransportError whose URL is the unresolved template.
func (g *Gateway) Send(req Request) (Response, error) {
	target, err := g.resolveURL(req)
	if err != nil {
		return Response{}, &TransportError{Method: req.Method, URL: req.Path, Err: err}
	}

	headers := g.buildHeaders(req)

	var bodyData []byte
	if req.Body != nil {
		if req.Body.raw != nil {
			bodyData = req.Body.raw
		} else {
			bodyData, err = codec.Encode(req.Body.value, headers.Get(servicedef.HeaderContentType))
			if err != nil {
				return Response{}, err
			}
		}
	}

	var bodyReader io.Reader
	if bodyData != nil {
		bodyReader = bytes.NewReader(bodyData)
	}
	hr, err := http.NewRequest(req.Method, target, bodyReader)
	if err != nil {
		return Response{}, &TransportError{Method: req.Method, URL: target, Err: err}
	}
	hr.Header = headers

	g.logger.Printf(">> %s %s %s", req.Method, target, describeHeaders(headers))
	if len(bodyData) != 0 {
		g.logger.Printf(">> %s", truncate(string(bodyData)))
	}

	resp, err := g.httpClient.Do(hr)
	if err != nil {
		g.logger.Printf("<< request failed: %s", err)
		return Response{}, &TransportError{Method: req.Method, URL: target, Err: err}
	}
	respData, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		g.logger.Printf("<< failed to read response body: %s", err)
		return Response{}, &TransportError{Method: req.Method, URL: target, Err: err}
	}

	g.logger.Printf("<< %s %s", resp.Status, describeHeaders(resp.Header))
	if len(respData) != 0 {
		g.logger.Printf("<< %s", truncate(string(respData)))
	}

	body, err := codec.Decode(respData, resp.Header.Get(servicedef.HeaderContentType))
	if err != nil {
		return Response{}, err
	}
	return Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    body,
	}, nil
}

func (g *Gateway) resolveURL(req Request) (string, error) {
	path := req.Path
	for name, value := range req.PathParams {
		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			return "", fmt.Errorf("path %q has no parameter named %q", req.Path, name)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("path %q has a parameter with no value", path)
	}
	target := g.baseURL + path
	if len(req.Query) != 0 {
		q := make(url.Values, len(req.Query))
		for name, value := range req.Query {
			q.Set(name, value)
		}
		target += "?" + q.Encode()
	}
	return target, nil
}

func (g *Gateway) buildHeaders(req Request) http.Header {
	h := make(http.Header)
	for name, value := range g.defaultHeaders {
		h.Set(name, value)
	}
	if token, ok := g.store.Get(); ok {
		h.Set(servicedef.HeaderChallenger, token)
	}
	if req.Body != nil && h.Get(servicedef.HeaderContentType) == "" {
		h.Set(servicedef.HeaderContentType, codec.ContentTypeJSON)
	}
	for name, value := range req.Headers {
		if value == "" {
			h.Del(name)
		} else {
			h.Set(name, value)
		}
	}
	return h
}

func describeHeaders(h http.Header) string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(h[name], ", ")))
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

const maxLoggedBodyLength = 500

func truncate(s string) string {
	if len(s) <= maxLoggedBodyLength {
		return s
	}
	return fmt.Sprintf("%s... (%d more bytes)", s[:maxLoggedBodyLength], len(s)-maxLoggedBodyLength)
}
