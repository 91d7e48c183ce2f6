package handlers

import (
	"io"
	"net/http"

	"postline/db"
	"postline/models"

	"github.com/gin-gonic/gin"
)

type CommentWriteRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentPatchRequest struct {
	Text *string `json:"text"`
}

// loadPostComment resolves a comment addressed via its parent post; a
// comment that exists but belongs to another post is a 404.
func loadPostComment(c *gin.Context) (models.Comment, bool) {
	post, ok := loadPost(c)
	if !ok {
		return models.Comment{}, false
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return models.Comment{}, false
	}
	comment, err := models.CommentByID(commentID)
	if err != nil || comment.PostID != post.ID {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return models.Comment{}, false
	}
	return comment, true
}

func CommentList(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	result := make([]CommentInfo, 0, len(comments))
	for i := range comments {
		result = append(result, NewCommentInfo(&comments[i]))
	}
	c.JSON(http.StatusOK, result)
}

func CommentRetrieve(c *gin.Context) {
	comment, ok := loadPostComment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewCommentInfo(&comment))
}

func CommentCreate(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	req := CommentWriteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     req.Text,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	comment.Author = *user
	c.JSON(http.StatusCreated, NewCommentInfo(&comment))
}

func CommentUpdate(c *gin.Context, user *models.User) {
	comment, ok := loadPostComment(c)
	if !ok {
		return
	}
	if comment.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, UpdateForbiddenResponse)
		return
	}
	if c.Request.Method == http.MethodPatch {
		// Partial update: an omitted text (or an empty body) is a no-op.
		req := CommentPatchRequest{}
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
			return
		}
		if req.Text == nil {
			c.JSON(http.StatusOK, NewCommentInfo(&comment))
			return
		}
		comment.Text = *req.Text
	} else {
		req := CommentWriteRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
			return
		}
		comment.Text = req.Text
	}
	if err := db.Instance.Model(&models.Comment{ID: comment.ID}).Update("text", comment.Text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	c.JSON(http.StatusOK, NewCommentInfo(&comment))
}

func CommentDelete(c *gin.Context, user *models.User) {
	comment, ok := loadPostComment(c)
	if !ok {
		return
	}
	if comment.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, DeleteForbiddenResponse)
		return
	}
	if err := db.Instance.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}
