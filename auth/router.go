package auth

import (
	"net/http"
	"net/url"

	"postline/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated user along with the request context
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading
// for the JSON API surface
type Router struct {
	Base gin.IRouter
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PUT(path string, handler HandlerFunc) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PATCH(path string, handler HandlerFunc) {
	cr.Base.PATCH(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

// LoginRequired wraps a web handler: anonymous visitors are redirected to
// the login page with the original path as the return destination.
func LoginRequired(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := LoadSession(c)
		user := session.User()
		if user.ID == 0 {
			c.Redirect(http.StatusFound, "/auth/login/?next="+url.QueryEscape(c.Request.URL.Path))
			return
		}
		handler(c, &user)
	}
}

// CurrentUser loads the session user for handlers that serve both
// anonymous and authenticated visitors. user.ID is 0 for anonymous ones.
func CurrentUser(c *gin.Context) models.User {
	return LoadSession(c).User()
}
