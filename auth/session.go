package auth

import (
	"postline/config"
	"postline/db"
	"postline/models"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey = "id"
	// SessionCookieName is the cookie the session middleware issues; page
	// caches key on it so sessions never share rendered pages.
	SessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

// Middleware returns the cookie-session middleware backed by the main DB.
func Middleware() gin.HandlerFunc {
	store := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	store.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	return sessions.Sessions(SessionCookieName, store)
}

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIdKey, user.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	user.ID = id.(uint64)
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
