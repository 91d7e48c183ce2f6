package handlers

import (
	"postline/auth"

	"github.com/gin-gonic/gin"
)

// Register mounts the JSON API under /api/v1. Reads are open to anonymous
// clients, writes go through the auth router.
func Register(router *gin.Engine) {
	api := router.Group("/api/v1")
	authRouter := &auth.Router{Base: api}

	api.GET("/posts/", PostList)
	api.GET("/posts/:id/", PostRetrieve)
	authRouter.POST("/posts/", PostCreate)
	authRouter.PUT("/posts/:id/", PostUpdate)
	authRouter.PATCH("/posts/:id/", PostUpdate)
	authRouter.DELETE("/posts/:id/", PostDelete)

	api.GET("/groups/", GroupList)
	api.GET("/groups/:id/", GroupRetrieve)

	api.GET("/posts/:id/comments/", CommentList)
	api.GET("/posts/:id/comments/:comment_id/", CommentRetrieve)
	authRouter.POST("/posts/:id/comments/", CommentCreate)
	authRouter.PUT("/posts/:id/comments/:comment_id/", CommentUpdate)
	authRouter.PATCH("/posts/:id/comments/:comment_id/", CommentUpdate)
	authRouter.DELETE("/posts/:id/comments/:comment_id/", CommentDelete)

	authRouter.GET("/follow/", FollowList)
	authRouter.POST("/follow/", FollowCreate)
}
