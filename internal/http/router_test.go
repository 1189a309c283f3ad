package http

import (
	"net/http"
	"strings"
	"testing"

	"heroes-service/internal/http/handlers"
	"heroes-service/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repos := testutil.NewRepos(t)
	h := handlers.NewHandler(repos.Heroes, repos.Progression, nil, nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/heroes", "", http.StatusOK},
		{http.MethodPost, "/add", "", http.StatusOK},
		{http.MethodPost, "/update", `{"id":"x","field":"name","value":"v"}`, http.StatusOK},
		{http.MethodPost, "/delete", `{"id":"x"}`, http.StatusOK},
		{http.MethodGet, "/progression", "", http.StatusOK},
		{http.MethodPost, "/progression/update", `{"wins":1}`, http.StatusOK},
		{http.MethodPost, "/progression/reset", "", http.StatusOK},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, strings.NewReader(tc.body))
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d (body %s)", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertError(t, rr, http.StatusNotFound, "not found")
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/add"},
		{http.MethodGet, "/update"},
		{http.MethodDelete, "/heroes"},
		{http.MethodPost, "/progression"},
		{http.MethodGet, "/progression/reset"},
	} {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		testutil.AssertError(t, rr, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func TestRouterRoundTripThroughFiles(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodPost, "/add", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var added map[string]string
	testutil.DecodeJSON(t, rr, &added)

	rr = testutil.PostJSON(router, "/update", `{"id":"`+added["id"]+`","field":"level","value":"10"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/heroes", nil)
	var heroes []map[string]string
	testutil.DecodeJSON(t, rr, &heroes)
	if len(heroes) != 1 || heroes[0]["level"] != "10" {
		t.Fatalf("expected one hero at level 10, got %+v", heroes)
	}
}
