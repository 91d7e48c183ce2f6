package utils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheTestRouter(cache *PageCache) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	counter := 0
	router := gin.New()
	router.GET("/", cache.Handler(), func(c *gin.Context) {
		counter++
		c.String(http.StatusOK, "render "+strconv.Itoa(counter))
	})
	router.GET("/missing", cache.Handler(), func(c *gin.Context) {
		counter++
		c.String(http.StatusNotFound, "not found "+strconv.Itoa(counter))
	})
	return router, &counter
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPageCacheReplaysWithinTTL(t *testing.T) {
	cache := NewPageCache(time.Minute, "")
	router, counter := cacheTestRouter(cache)

	first := get(router, "/")
	require.Equal(t, http.StatusOK, first.Code)
	second := get(router, "/")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *counter)
}

func TestPageCacheClear(t *testing.T) {
	cache := NewPageCache(time.Minute, "")
	router, counter := cacheTestRouter(cache)

	first := get(router, "/")
	cache.Clear()
	second := get(router, "/")
	assert.NotEqual(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 2, *counter)
}

func TestPageCacheExpires(t *testing.T) {
	cache := NewPageCache(50*time.Millisecond, "")
	router, counter := cacheTestRouter(cache)

	get(router, "/")
	time.Sleep(80 * time.Millisecond)
	get(router, "/")
	assert.Equal(t, 2, *counter)
}

func TestPageCacheKeyedByURI(t *testing.T) {
	cache := NewPageCache(time.Minute, "")
	router, counter := cacheTestRouter(cache)

	get(router, "/?page=1")
	get(router, "/?page=2")
	assert.Equal(t, 2, *counter)
	get(router, "/?page=1")
	assert.Equal(t, 2, *counter)
}

func TestPageCacheVariesBySessionCookie(t *testing.T) {
	cache := NewPageCache(time.Minute, "token")
	router, counter := cacheTestRouter(cache)

	getWithCookie := func(value string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if value != "" {
			req.AddCookie(&http.Cookie{Name: "token", Value: value})
		}
		router.ServeHTTP(w, req)
		return w
	}

	loggedIn := getWithCookie("session-a")
	anonymous := getWithCookie("")
	assert.NotEqual(t, loggedIn.Body.String(), anonymous.Body.String())
	assert.Equal(t, 2, *counter)

	// Same cookie replays, a different session renders fresh
	again := getWithCookie("session-a")
	assert.Equal(t, loggedIn.Body.String(), again.Body.String())
	assert.Equal(t, 2, *counter)
	getWithCookie("session-b")
	assert.Equal(t, 3, *counter)
}

func TestPageCacheSkipsErrorResponses(t *testing.T) {
	cache := NewPageCache(time.Minute, "")
	router, counter := cacheTestRouter(cache)

	get(router, "/missing")
	get(router, "/missing")
	assert.Equal(t, 2, *counter)
}
