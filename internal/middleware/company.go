package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// ContextCompanyKey is the gin context key storing the resolved company code.
const ContextCompanyKey = "companyCode"

type companyVerifier interface {
	Exists(ctx context.Context, code string) (bool, error)
}

type companySessions interface {
	Create(ctx context.Context, companyCode string) (string, error)
	Lookup(ctx context.Context, sessionID string) (string, bool)
}

// CompanyResolver holds the pieces needed to resolve a request's tenant.
type CompanyResolver struct {
	Companies  companyVerifier
	Sessions   companySessions
	CookieName string
	CookieTTL  int
}

// Company resolves the tenant for the request. Explicit sources win over
// the session cookie: the companyCode query parameter first, then the
// X-Company-Code header, then the legacy X-Org-Code header. An explicit
// code is verified against the company registry and bound to a fresh
// session cookie; requests with no resolvable code are rejected.
func Company(r CompanyResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("companyCode"))
		if code == "" {
			code = strings.TrimSpace(c.GetHeader("X-Company-Code"))
		}
		if code == "" {
			code = strings.TrimSpace(c.GetHeader("X-Org-Code"))
		}

		if code != "" {
			ok, err := r.Companies.Exists(c.Request.Context(), code)
			if err != nil {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify company code"))
				c.Abort()
				return
			}
			if !ok {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid company code"))
				c.Abort()
				return
			}
			if r.Sessions != nil && r.CookieName != "" {
				if sessionID, err := r.Sessions.Create(c.Request.Context(), code); err == nil {
					c.SetCookie(r.CookieName, sessionID, r.CookieTTL, "/", "", false, true)
				}
			}
			c.Set(ContextCompanyKey, code)
			c.Next()
			return
		}

		if r.Sessions != nil && r.CookieName != "" {
			if sessionID, err := c.Cookie(r.CookieName); err == nil {
				if code, ok := r.Sessions.Lookup(c.Request.Context(), sessionID); ok {
					c.Set(ContextCompanyKey, code)
					c.Next()
					return
				}
			}
		}

		response.Error(c, appErrors.ErrCompanyRequired)
		c.Abort()
	}
}

// CompanyCode returns the resolved company code for the request, or ""
// when the resolver did not run.
func CompanyCode(c *gin.Context) string {
	if value, exists := c.Get(ContextCompanyKey); exists {
		if code, ok := value.(string); ok {
			return code
		}
	}
	return ""
}
