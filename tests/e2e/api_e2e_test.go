package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/slides/internal/auth"
	"github.com/slides/internal/config"
	"github.com/slides/internal/router"
)

type e2eSuite struct {
	handler   http.Handler
	public    httpClient
	admin     httpClient
	baseURL   string
	adminPass string
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	suite.login(t)
	t.Run("admin apis", suite.testAdminAPIs)
	t.Run("logout", suite.testLogout)
}

func TestE2E_OpenModeSaveEditDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.AppConfig{
		SlideshowsDir: t.TempDir(),
		SessionSecret: "test-session-secret",
		GinMode:       gin.TestMode,
	}
	engine, err := router.SetupRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}
	s := &e2eSuite{handler: engine, public: newLocalClient(engine, false), baseURL: "http://example.test"}

	resp := s.mustRequestJSON(t, s.public, "/api/save-slideshow", map[string]interface{}{
		"slug":   "demo",
		"title":  "Demo",
		"slides": []map[string]string{{"image": "", "text": "Hello"}},
	})
	var saved map[string]interface{}
	decodeJSON(t, resp, &saved)
	if saved["success"] != true {
		t.Fatalf("expected save success, got %v", saved)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/edit/demo", nil, nil)
	body := readBody(t, resp)
	if !strings.Contains(body, "Demo") || !strings.Contains(body, "Hello") {
		t.Fatal("expected editor to show the saved slideshow")
	}

	resp = s.mustRequest(t, s.public, http.MethodPost, "/api/delete/demo", nil, nil)
	var deleted map[string]interface{}
	decodeJSON(t, resp, &deleted)
	if deleted["success"] != true {
		t.Fatalf("expected delete success, got %v", deleted)
	}

	resp = s.mustRequest(t, s.public, http.MethodPost, "/api/delete/demo", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", resp.StatusCode)
	}
	var missing map[string]string
	decodeJSON(t, resp, &missing)
	if missing["error"] != "Not found" {
		t.Fatalf("unexpected error payload %v", missing)
	}
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hashed, err := auth.HashPassword("e2e-secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	cfg := config.AppConfig{
		SlideshowsDir:     t.TempDir(),
		SessionSecret:     "test-session-secret",
		GinMode:           gin.TestMode,
		AdminPasswordHash: hashed,
	}
	engine, err := router.SetupRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	return &e2eSuite{
		handler:   engine,
		public:    newLocalClient(engine, false),
		admin:     newLocalClient(engine, true),
		baseURL:   "http://example.test",
		adminPass: "e2e-secret",
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{"password": {s.adminPass}}

	resp := s.mustRequest(t, s.admin, http.MethodPost, "/", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "New Slideshow") {
		t.Fatalf("login failed, status %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	checkText := func(name, method, path, expect string, code int) {
		t.Helper()
		resp := s.mustRequest(t, s.public, method, path, nil, nil)
		if resp.StatusCode != code {
			t.Fatalf("%s: expected status %d, got %d", name, code, resp.StatusCode)
		}
		body := readBody(t, resp)
		if expect != "" && !strings.Contains(body, expect) {
			t.Fatalf("%s: response does not contain %q", name, expect)
		}
	}

	checkText("health", http.MethodGet, "/healthz", `"ok"`, http.StatusOK)
	checkText("list gated", http.MethodGet, "/", `name="password"`, http.StatusOK)
	checkText("edit gated", http.MethodGet, "/edit/demo", `name="password"`, http.StatusOK)
	checkText("delete gated", http.MethodPost, "/api/delete/demo", `name="password"`, http.StatusOK)
	checkText("missing play", http.MethodGet, "/play/demo", "Slideshow not found", http.StatusNotFound)
	checkText("bad slug", http.MethodGet, "/play/not.valid", "Not found", http.StatusNotFound)
	checkText("unknown path", http.MethodGet, "/admin", "Not found", http.StatusNotFound)

	form := url.Values{"password": {"wrong"}}
	resp := s.mustRequest(t, s.public, http.MethodPost, "/", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if body := readBody(t, resp); !strings.Contains(body, "Invalid password") {
		t.Fatal("expected invalid password notice")
	}
}

func (s *e2eSuite) testAdminAPIs(t *testing.T) {
	resp := s.mustRequestJSON(t, s.admin, "/api/save-slideshow", map[string]interface{}{
		"slug":  "demo",
		"title": "Demo",
		"slides": []map[string]string{
			{"image": "https://example.com/one.png", "text": "Hello"},
			{"image": "", "text": "Second\nslide"},
		},
	})
	var saved map[string]interface{}
	decodeJSON(t, resp, &saved)
	if saved["success"] != true {
		t.Fatalf("expected save success, got %v", saved)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/", nil, nil)
	if body := readBody(t, resp); !strings.Contains(body, `href="/play/demo"`) {
		t.Fatal("expected list to include demo")
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/edit/demo", nil, nil)
	if body := readBody(t, resp); !strings.Contains(body, `value="Demo"`) || !strings.Contains(body, "Hello") {
		t.Fatal("expected editor to show saved content")
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/play/demo", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected public playback, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "Second<br") || !strings.Contains(body, "/ 2") {
		t.Fatal("expected both slides in the player")
	}

	resp = s.mustRequestJSON(t, s.admin, "/api/save-slideshow", map[string]interface{}{"title": "no slug"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing slug, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodPost, "/api/delete/demo", nil, nil)
	var deleted map[string]interface{}
	decodeJSON(t, resp, &deleted)
	if deleted["success"] != true {
		t.Fatalf("expected delete success, got %v", deleted)
	}

	resp = s.mustRequest(t, s.admin, http.MethodPost, "/api/delete/demo", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", resp.StatusCode)
	}
	var missing map[string]string
	decodeJSON(t, resp, &missing)
	if missing["error"] != "Not found" {
		t.Fatalf("unexpected error payload %v", missing)
	}
}

func (s *e2eSuite) testLogout(t *testing.T) {
	form := url.Values{"logout": {"1"}}
	resp := s.mustRequest(t, s.admin, http.MethodPost, "/", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
		t.Fatalf("expected redirect after logout, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/", nil, nil)
	if body := readBody(t, resp); !strings.Contains(body, `name="password"`) {
		t.Fatal("expected login form after logout")
	}
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return s.mustRequest(t, client, http.MethodPost, path, bytes.NewReader(data), headers)
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	body := readBody(t, resp)
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("failed to decode json: %v\nbody=%s", err, body)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}
