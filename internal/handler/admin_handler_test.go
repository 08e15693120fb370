package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/slides/internal/auth"
	"github.com/slides/internal/db"
	"github.com/slides/internal/service"
)

type stubHTMLRender struct {
	last *stubHTMLInstance
}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.last = &stubHTMLInstance{name: name, data: data}
	return r.last
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupHandlerTest(t *testing.T, opts auth.Options) (*API, *db.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := db.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewAPI(service.NewSlideshowService(store), auth.New(opts), logger), store
}

func newHandlerRouter(api *API, html *stubHTMLRender) *gin.Engine {
	router := gin.New()
	router.HTMLRender = html
	router.Use(sessions.Sessions("slides_session", cookie.NewStore([]byte("test-secret"))))
	router.Use(api.Logout())
	return router
}

func TestAuthRequiredRendersLoginPage(t *testing.T) {
	api, _ := setupHandlerTest(t, auth.Options{Password: "secret"})
	html := &stubHTMLRender{}
	router := newHandlerRouter(api, html)
	reached := false
	router.Any("/", api.AuthRequired(), func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name        string
		form        url.Values
		wantReached bool
		wantInvalid bool
	}{
		{name: "no attempt", form: nil},
		{name: "wrong password", form: url.Values{"password": {"nope"}}, wantInvalid: true},
		{name: "empty password", form: url.Values{"password": {""}}, wantInvalid: true},
		{name: "right password", form: url.Values{"password": {"secret"}}, wantReached: true},
	}

	for _, tt := range tests {
		reached = false
		html.last = nil

		var req *http.Request
		if tt.form == nil {
			req = httptest.NewRequest(http.MethodGet, "/", nil)
		} else {
			req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", tt.name, http.StatusOK, recorder.Code)
		}
		if reached != tt.wantReached {
			t.Fatalf("%s: expected reached=%v", tt.name, tt.wantReached)
		}
		if tt.wantReached {
			continue
		}
		if html.last == nil || html.last.name != "login.html" {
			t.Fatalf("%s: expected login.html to render", tt.name)
		}
		data := html.last.data.(gin.H)
		if data["invalid"] != tt.wantInvalid {
			t.Fatalf("%s: expected invalid=%v, got %v", tt.name, tt.wantInvalid, data["invalid"])
		}
		if data["authEnabled"] != true {
			t.Fatalf("%s: expected authEnabled in template data", tt.name)
		}
	}
}

func TestAuthRequiredDisabledPassesThrough(t *testing.T) {
	api, _ := setupHandlerTest(t, auth.Options{})
	router := newHandlerRouter(api, &stubHTMLRender{})
	router.GET("/", api.AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Body.String() != "ok" {
		t.Fatalf("expected handler to run, got %q", recorder.Body.String())
	}
}

func TestLogoutOnlyInterceptsLogoutPosts(t *testing.T) {
	api, _ := setupHandlerTest(t, auth.Options{Password: "secret"})
	router := newHandlerRouter(api, &stubHTMLRender{})
	router.Any("/edit/:slug", func(c *gin.Context) {
		c.String(http.StatusOK, "handled")
	})

	req := httptest.NewRequest(http.MethodPost, "/edit/demo?x=1", strings.NewReader("logout=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/edit/demo?x=1" {
		t.Fatalf("expected redirect to same URL, got %q", loc)
	}

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/edit/demo?logout=1", nil),
		httptest.NewRequest(http.MethodPost, "/edit/demo", strings.NewReader(`{"logout":true}`)),
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Body.String() != "handled" {
			t.Fatalf("%s %s: expected request to pass through", req.Method, req.URL)
		}
	}
}
