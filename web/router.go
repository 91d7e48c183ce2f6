package web

import (
	"time"

	"postline/auth"
	"postline/config"
	"postline/utils"

	"github.com/gin-gonic/gin"
)

// IndexCache keeps the rendered index page for INDEX_CACHE_SECONDS.
// New posts show up on / only once the window passes or the cache is cleared.
var IndexCache *utils.PageCache

func Register(router *gin.Engine) {
	IndexCache = utils.NewPageCache(time.Duration(config.INDEX_CACHE_SECONDS)*time.Second, auth.SessionCookieName)

	router.GET("/", IndexCache.Handler(), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/profile/:username/follow/", auth.LoginRequired(ProfileFollow))
	router.GET("/profile/:username/unfollow/", auth.LoginRequired(ProfileUnfollow))
	router.GET("/posts/:id/", PostDetail)
	router.GET("/posts/:id/edit/", auth.LoginRequired(PostEdit))
	router.POST("/posts/:id/edit/", auth.LoginRequired(PostEdit))
	router.POST("/posts/:id/comment/", auth.LoginRequired(AddComment))
	router.GET("/create/", auth.LoginRequired(PostCreate))
	router.POST("/create/", auth.LoginRequired(PostCreate))
	router.GET("/follow/", auth.LoginRequired(FollowIndex))
	router.GET("/about/author/", AboutAuthor)
	router.GET("/about/tech/", AboutTech)

	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/login/", LoginForm)
	router.POST("/auth/login/", Login)
	router.GET("/auth/logout/", Logout)

	router.GET("/media/*path", ServeMedia)

	router.NoRoute(NotFound)
}
