package handlers

import (
	"net/http"

	"postline/db"
	"postline/models"

	"github.com/gin-gonic/gin"
)

type FollowCreateRequest struct {
	Author string `json:"author" binding:"required"`
}

// FollowList returns only the caller's own follows, optionally narrowed to
// exact matches on either side's username via ?search=.
func FollowList(c *gin.Context, user *models.User) {
	follows, err := models.FollowsByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	search := c.Query("search")
	result := make([]FollowInfo, 0, len(follows))
	for i := range follows {
		if search != "" &&
			follows[i].User.Username != search &&
			follows[i].Author.Username != search {
			continue
		}
		result = append(result, NewFollowInfo(&follows[i]))
	}
	c.JSON(http.StatusOK, result)
}

func FollowCreate(c *gin.Context, user *models.User) {
	req := FollowCreateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	author, err := models.UserByUsername(req.Author)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Автор не найден!"})
		return
	}
	if author.ID == user.ID {
		c.JSON(http.StatusBadRequest, Response{Error: "Нельзя подписаться на самого себя!"})
		return
	}
	if models.IsFollowing(user.ID, author.ID) {
		c.JSON(http.StatusBadRequest, Response{Error: "Подписка уже существует!"})
		return
	}
	follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
	if err = db.Instance.Create(&follow).Error; err != nil {
		// The unique (user, author) index rejects concurrent duplicates
		c.JSON(http.StatusBadRequest, Response{Error: "Подписка уже существует!"})
		return
	}
	follow.User = *user
	follow.Author = author
	c.JSON(http.StatusCreated, NewFollowInfo(&follow))
}
