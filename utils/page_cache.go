package utils

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cachedPage struct {
	contentType string
	body        []byte
	expiresAt   time.Time
}

// PageCache stores fully rendered responses keyed by request URI and
// replays them until the TTL passes. Only successful GET responses are
// cached. When VaryCookie is set, the named cookie's value becomes part
// of the key, so a page rendered for one session is never replayed to
// another (or to anonymous visitors).
type PageCache struct {
	TTL        time.Duration
	VaryCookie string

	mutex sync.Mutex
	pages map[string]cachedPage
}

func NewPageCache(ttl time.Duration, varyCookie string) *PageCache {
	return &PageCache{
		TTL:        ttl,
		VaryCookie: varyCookie,
		pages:      map[string]cachedPage{},
	}
}

type pageCacheWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *pageCacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageCacheWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.RequestURI
		if pc.VaryCookie != "" {
			c.Header("Vary", "Cookie")
			if cookie, err := c.Cookie(pc.VaryCookie); err == nil {
				key += "\x00" + cookie
			}
		}
		pc.mutex.Lock()
		page, ok := pc.pages[key]
		pc.mutex.Unlock()
		if ok && time.Now().Before(page.expiresAt) {
			c.Data(http.StatusOK, page.contentType, page.body)
			c.Abort()
			return
		}
		writer := &pageCacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		pc.mutex.Lock()
		pc.pages[key] = cachedPage{
			contentType: writer.Header().Get("Content-Type"),
			body:        writer.buf.Bytes(),
			expiresAt:   time.Now().Add(pc.TTL),
		}
		pc.mutex.Unlock()
	}
}

func (pc *PageCache) Clear() {
	pc.mutex.Lock()
	pc.pages = map[string]cachedPage{}
	pc.mutex.Unlock()
}
