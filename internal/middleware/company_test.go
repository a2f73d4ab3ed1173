package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	codes map[string]bool
}

func (f *fakeVerifier) Exists(ctx context.Context, code string) (bool, error) {
	return f.codes[code], nil
}

type fakeSessions struct {
	bindings map[string]string
	created  int
}

func (f *fakeSessions) Create(ctx context.Context, companyCode string) (string, error) {
	if f.bindings == nil {
		f.bindings = make(map[string]string)
	}
	f.created++
	id := "sess-1"
	f.bindings[id] = companyCode
	return id, nil
}

func (f *fakeSessions) Lookup(ctx context.Context, sessionID string) (string, bool) {
	code, ok := f.bindings[sessionID]
	return code, ok
}

func newCompanyRouter(resolver CompanyResolver) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var resolved string
	router := gin.New()
	router.Use(Company(resolver))
	router.GET("/", func(c *gin.Context) {
		resolved = CompanyCode(c)
		c.Status(http.StatusNoContent)
	})
	return router, &resolved
}

func TestCompanyResolvesQueryParam(t *testing.T) {
	sessions := &fakeSessions{}
	router, resolved := newCompanyRouter(CompanyResolver{
		Companies:  &fakeVerifier{codes: map[string]bool{"GSK2025A": true}},
		Sessions:   sessions,
		CookieName: "ta_session",
		CookieTTL:  3600,
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?companyCode=GSK2025A", nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GSK2025A", *resolved)
	assert.Equal(t, 1, sessions.created)
	assert.Contains(t, recorder.Header().Get("Set-Cookie"), "ta_session=sess-1")
}

func TestCompanyHeaderFallbacks(t *testing.T) {
	for _, header := range []string{"X-Company-Code", "X-Org-Code"} {
		router, resolved := newCompanyRouter(CompanyResolver{
			Companies: &fakeVerifier{codes: map[string]bool{"GSK2025A": true}},
		})

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(header, "GSK2025A")
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusNoContent, recorder.Code, header)
		assert.Equal(t, "GSK2025A", *resolved)
	}
}

func TestCompanyRejectsUnknownCode(t *testing.T) {
	router, _ := newCompanyRouter(CompanyResolver{
		Companies: &fakeVerifier{codes: map[string]bool{}},
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?companyCode=NOPE", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCompanySessionCookieFallback(t *testing.T) {
	sessions := &fakeSessions{bindings: map[string]string{"sess-9": "GSK2025A"}}
	router, resolved := newCompanyRouter(CompanyResolver{
		Companies:  &fakeVerifier{codes: map[string]bool{"GSK2025A": true}},
		Sessions:   sessions,
		CookieName: "ta_session",
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ta_session", Value: "sess-9"})
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GSK2025A", *resolved)
}

func TestCompanyMissingEverywhere(t *testing.T) {
	router, _ := newCompanyRouter(CompanyResolver{
		Companies: &fakeVerifier{codes: map[string]bool{"GSK2025A": true}},
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
