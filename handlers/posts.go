package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"postline/db"
	"postline/models"

	"github.com/gin-gonic/gin"
)

type PostWriteRequest struct {
	Text  string  `json:"text" binding:"required"`
	Group *uint64 `json:"group"`
}

// PostPatchRequest keeps group raw so an explicit null (clear the group)
// is distinguishable from an absent field (leave it alone).
type PostPatchRequest struct {
	Text  *string         `json:"text"`
	Group json.RawMessage `json:"group"`
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return 0, false
	}
	return id, true
}

func loadPost(c *gin.Context) (models.Post, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return models.Post{}, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return models.Post{}, false
	}
	return post, true
}

func postInfos(posts []models.Post) []PostInfo {
	result := make([]PostInfo, 0, len(posts))
	for i := range posts {
		result = append(result, NewPostInfo(&posts[i]))
	}
	return result
}

func PostList(c *gin.Context) {
	limit, offset, paginated := limitOffset(c)
	posts, err := models.PostsAll(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	if !paginated {
		c.JSON(http.StatusOK, postInfos(posts))
		return
	}
	count, err := models.PostsCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	paginatedJSON(c, count, limit, offset, postInfos(posts))
}

func PostRetrieve(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewPostInfo(&post))
}

func PostCreate(c *gin.Context, user *models.User) {
	req := PostWriteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	if req.Group != nil {
		if _, err := models.GroupByID(*req.Group); err != nil {
			c.JSON(http.StatusBadRequest, Response{Error: "group does not exist"})
			return
		}
	}
	post := models.Post{
		Text:     req.Text,
		AuthorID: user.ID,
		GroupID:  req.Group,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	post.Author = *user
	c.JSON(http.StatusCreated, NewPostInfo(&post))
}

func PostUpdate(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, UpdateForbiddenResponse)
		return
	}
	updates := map[string]interface{}{}
	if c.Request.Method == http.MethodPatch {
		req := PostPatchRequest{}
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
			return
		}
		if req.Text != nil {
			updates["text"] = *req.Text
			post.Text = *req.Text
		}
		if len(req.Group) > 0 {
			if bytes.Equal(req.Group, []byte("null")) {
				updates["group_id"] = nil
				post.GroupID = nil
			} else {
				var groupID uint64
				if err := json.Unmarshal(req.Group, &groupID); err != nil {
					c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
					return
				}
				if _, err := models.GroupByID(groupID); err != nil {
					c.JSON(http.StatusBadRequest, Response{Error: "group does not exist"})
					return
				}
				updates["group_id"] = groupID
				post.GroupID = &groupID
			}
		}
	} else {
		req := PostWriteRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
			return
		}
		if req.Group != nil {
			if _, err := models.GroupByID(*req.Group); err != nil {
				c.JSON(http.StatusBadRequest, Response{Error: "group does not exist"})
				return
			}
		}
		updates["text"] = req.Text
		updates["group_id"] = req.Group
		post.Text = req.Text
		post.GroupID = req.Group
	}
	if len(updates) > 0 {
		// Update through a bare model so the loaded post's Author/Group
		// associations can't write their stale FKs over the map values.
		if err := db.Instance.Model(&models.Post{ID: post.ID}).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
			return
		}
	}
	c.JSON(http.StatusOK, NewPostInfo(&post))
}

func PostDelete(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, DeleteForbiddenResponse)
		return
	}
	if err := db.Instance.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}
