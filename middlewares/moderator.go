package middlewares

import (
	"strings"

	"backend/entity"
	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// ModeratorPolicy decides whether an authenticated caller may moderate
// applications. Injected so tests can swap it for a stub.
type ModeratorPolicy interface {
	Allow(email, role string) bool
}

// AllowListPolicy grants moderation to the admin role and to a configured
// email allow-list.
type AllowListPolicy struct {
	Emails []string
}

func (p AllowListPolicy) Allow(email, role string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, e := range p.Emails {
		if e = strings.TrimSpace(e); e != "" && strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// RequireModerator must run after AuthMiddleware.
func RequireModerator(policy ModeratorPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Allow(utils.CurrentEmail(c), utils.CurrentRole(c)) {
			resp.Forbidden(c, resp.CodeForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
