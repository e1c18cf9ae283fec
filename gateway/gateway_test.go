package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/session"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func configFor(server *httptest.Server) config.Config {
	cfg := config.Default()
	cfg.BaseURL = server.URL
	return cfg
}

func TestSendsDefaultHeadersAndToken(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		store := session.NewStore()
		g := New(configFor(server), store, nil)

		_, err := g.Send(Request{Method: "GET", Path: "/todos"})
		require.NoError(t, err)
		r := <-requestsCh
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, "", r.Request.Header.Get("X-Challenger"))

		store.Set("abc")
		_, err = g.Send(Request{Method: "GET", Path: "/todos"})
		require.NoError(t, err)
		r = <-requestsCh
		assert.Equal(t, "abc", r.Request.Header.Get("X-Challenger"))

		_, err = g.Send(Request{Method: "GET", Path: "/challenges"})
		require.NoError(t, err)
		r = <-requestsCh
		assert.Equal(t, "abc", r.Request.Header.Get("X-Challenger"))
	})
}

func TestTokenChangesApplyToNextRequest(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		store := session.NewStore()
		store.Set("abc")
		g := New(configFor(server), store, nil)

		_, err := g.Send(Request{Method: "GET", Path: "/todos"})
		require.NoError(t, err)
		r := <-requestsCh
		assert.Equal(t, "abc", r.Request.Header.Get("X-Challenger"))

		store.Clear()
		_, err = g.Send(Request{Method: "GET", Path: "/todos"})
		require.NoError(t, err)
		r = <-requestsCh
		_, hasToken := r.Request.Header["X-Challenger"]
		assert.False(t, hasToken)

		store.Set("other")
		_, err = g.Send(Request{Method: "GET", Path: "/todos"})
		require.NoError(t, err)
		r = <-requestsCh
		assert.Equal(t, "other", r.Request.Header.Get("X-Challenger"))
	})
}

func TestOverrideHeadersTakePrecedence(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		store := session.NewStore()
		store.Set("abc")
		g := New(configFor(server), store, nil)

		_, err := g.Send(Request{
			Method:  "GET",
			Path:    "/todos",
			Headers: map[string]string{"accept": "application/xml", "x-challenger": "other", "Content-Type": ""},
		})
		require.NoError(t, err)
		r := <-requestsCh
		assert.Equal(t, "application/xml", r.Request.Header.Get("Accept"))
		assert.Equal(t, "other", r.Request.Header.Get("X-Challenger"))
		_, hasContentType := r.Request.Header["Content-Type"]
		assert.False(t, hasContentType)
	})
}

func TestEmptyOverrideRemovesToken(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		store := session.NewStore()
		store.Set("abc")
		g := New(configFor(server), store, nil)

		_, err := g.Send(Request{Method: "GET", Path: "/challenges", Headers: map[string]string{"X-Challenger": ""}})
		require.NoError(t, err)
		r := <-requestsCh
		_, hasToken := r.Request.Header["X-Challenger"]
		assert.False(t, hasToken)
	})
}

func TestEncodesValueBodyForContentType(t *testing.T) {
	record := ldvalue.ObjectBuild().Set("title", ldvalue.String("a & b")).Build()

	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(201))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		g := New(configFor(server), nil, nil)

		_, err := g.Send(Request{Method: "POST", Path: "/todos", Body: ValueBody(record)})
		require.NoError(t, err)
		r := <-requestsCh
		assert.JSONEq(t, `{"title":"a & b"}`, string(r.Body))

		_, err = g.Send(Request{
			Method:  "POST",
			Path:    "/todos",
			Headers: map[string]string{"Content-Type": "application/xml"},
			Body:    ValueBody(record),
		})
		require.NoError(t, err)
		r = <-requestsCh
		assert.Equal(t, "<todo><title>a &amp; b</title></todo>", string(r.Body))
	})
}

func TestRawBodyIsSentUnchanged(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(415))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		g := New(configFor(server), nil, nil)

		resp, err := g.Send(Request{
			Method:  "POST",
			Path:    "/todos",
			Headers: map[string]string{"Content-Type": "bob"},
			Body:    RawBody([]byte(`{"title":"x"}`)),
		})
		require.NoError(t, err)
		assert.Equal(t, 415, resp.Status)
		r := <-requestsCh
		assert.Equal(t, "bob", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, `{"title":"x"}`, string(r.Body))
	})
}

func TestUnsupportedContentTypeForValueBody(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		g := New(configFor(server), nil, nil)
		_, err := g.Send(Request{
			Method:  "POST",
			Path:    "/todos",
			Headers: map[string]string{"Content-Type": "bob"},
			Body:    ValueBody(ldvalue.ObjectBuild().Build()),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, codec.ErrUnsupportedContentType))
	})
}

func TestPathParamsAndQuery(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		g := New(configFor(server), nil, nil)

		_, err := g.Send(Request{
			Method:     "GET",
			Path:       "/todos/{id}",
			PathParams: map[string]string{"id": "2"},
			Query:      map[string]string{"doneStatus": "true", "title": "a b"},
		})
		require.NoError(t, err)
		r := <-requestsCh
		assert.Equal(t, "/todos/2", r.Request.URL.Path)
		assert.Equal(t, "doneStatus=true&title=a+b", r.Request.URL.RawQuery)
	})
}

func TestMissingPathParamIsAnError(t *testing.T) {
	g := New(config.Default(), nil, nil)
	_, err := g.Send(Request{Method: "GET", Path: "/todos/{id}"})
	require.Error(t, err)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GET", transportErr.Method)
	assert.Equal(t, "/todos/{id}", transportErr.URL)
	assert.Contains(t, err.Error(), "id")
}

func TestUnknownPathParamIsATransportError(t *testing.T) {
	g := New(config.Default(), nil, nil)
	_, err := g.Send(Request{Method: "DELETE", Path: "/todos/{id}", PathParams: map[string]string{"guid": "1"}})
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "DELETE", transportErr.Method)
}

func TestErrorStatusesAreData(t *testing.T) {
	for _, status := range []int{204, 400, 404, 405, 406, 413, 415, 500} {
		httphelpers.WithServer(httphelpers.HandlerWithStatus(status), func(server *httptest.Server) {
			g := New(configFor(server), nil, nil)
			resp, err := g.Send(Request{Method: "GET", Path: "/heartbeat"})
			require.NoError(t, err)
			assert.Equal(t, status, resp.Status)
			assert.True(t, resp.Body.IsNone())
		})
	}
}

func TestDecodesResponseBody(t *testing.T) {
	jsonHeaders := http.Header{"Content-Type": {"application/json; charset=utf-8"}}
	xmlHeaders := http.Header{"Content-Type": {"application/xml"}}
	textHeaders := http.Header{"Content-Type": {"text/plain"}}

	t.Run("json", func(t *testing.T) {
		handler := httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"todos":[{"id":1}]}`))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			resp, err := New(configFor(server), nil, nil).Send(Request{Method: "GET", Path: "/todos"})
			require.NoError(t, err)
			assert.Equal(t, codec.BodyValue, resp.Body.Kind)
			assert.Equal(t, 1, resp.Body.Value.GetByKey("todos").GetByIndex(0).GetByKey("id").IntValue())
			assert.Equal(t, "application/json; charset=utf-8", resp.Header("content-type"))
		})
	})

	t.Run("xml", func(t *testing.T) {
		handler := httphelpers.HandlerWithResponse(200, xmlHeaders, []byte(`<todo><id>1</id></todo>`))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			resp, err := New(configFor(server), nil, nil).Send(Request{Method: "GET", Path: "/todos"})
			require.NoError(t, err)
			assert.Equal(t, "1", resp.Body.Value.GetByKey("todo").GetByKey("id").StringValue())
		})
	})

	t.Run("text", func(t *testing.T) {
		handler := httphelpers.HandlerWithResponse(500, textHeaders, []byte("oops"))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			resp, err := New(configFor(server), nil, nil).Send(Request{Method: "PATCH", Path: "/heartbeat"})
			require.NoError(t, err)
			assert.Equal(t, 500, resp.Status)
			assert.Equal(t, codec.BodyText, resp.Body.Kind)
			assert.Equal(t, "oops", resp.Body.Text)
		})
	})

	t.Run("malformed", func(t *testing.T) {
		handler := httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"todos":`))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			_, err := New(configFor(server), nil, nil).Send(Request{Method: "GET", Path: "/todos"})
			require.Error(t, err)
			var codecErr *codec.CodecError
			assert.True(t, errors.As(err, &codecErr))
		})
	})
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	cfg := configFor(server)
	server.Close()

	_, err := New(cfg, nil, nil).Send(Request{Method: "GET", Path: "/todos"})
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "GET", te.Method)
	assert.Equal(t, cfg.BaseURL+"/todos", te.URL)
}

func TestTimeoutIsATransportError(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(200)
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		cfg := configFor(server)
		cfg.TimeoutMS = 50
		_, err := New(cfg, nil, nil).Send(Request{Method: "GET", Path: "/todos"})
		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})
}

func TestLogsEachExchange(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(201, http.Header{"Content-Type": {"application/json"}}, []byte(`{"id":11}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var logger framework.CapturingLogger
		g := New(configFor(server), nil, nil).WithLogger(&logger)
		_, err := g.Send(Request{Method: "POST", Path: "/todos", Body: ValueBody(ldvalue.ObjectBuild().Build())})
		require.NoError(t, err)

		out := logger.Output()
		require.Len(t, out, 4)
		assert.Contains(t, out[0].Message, ">> POST "+server.URL+"/todos")
		assert.Equal(t, ">> {}", out[1].Message)
		assert.Contains(t, out[2].Message, "<< 201 Created")
		assert.Equal(t, `<< {"id":11}`, out[3].Message)
	})
}
