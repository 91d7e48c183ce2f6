package handlers

import (
	"net/http"
	"strconv"
	"time"

	"postline/config"
	"postline/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	NotFoundResponse        = Response{"Страница не найдена."}
	UpdateForbiddenResponse = Response{"Изменение чужого контента запрещено!"}
	DeleteForbiddenResponse = Response{"Удаление чужого контента запрещено!"}
)

type PostInfo struct {
	ID      uint64    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Image   *string   `json:"image"`
	Group   *uint64   `json:"group"`
}

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CommentInfo struct {
	ID      uint64    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Post    uint64    `json:"post"`
}

type FollowInfo struct {
	User   string `json:"user"`
	Author string `json:"author"`
}

func NewPostInfo(post *models.Post) PostInfo {
	info := PostInfo{
		ID:      post.ID,
		Author:  post.Author.Username,
		Text:    post.Text,
		PubDate: post.PubDate,
		Group:   post.GroupID,
	}
	if post.Image != "" {
		imageURL := "/media/" + post.Image
		info.Image = &imageURL
	}
	return info
}

func NewGroupInfo(group *models.Group) GroupInfo {
	return GroupInfo{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

func NewCommentInfo(comment *models.Comment) CommentInfo {
	return CommentInfo{
		ID:      comment.ID,
		Author:  comment.Author.Username,
		Text:    comment.Text,
		Created: comment.Created,
		Post:    comment.PostID,
	}
}

func NewFollowInfo(follow *models.Follow) FollowInfo {
	return FollowInfo{
		User:   follow.User.Username,
		Author: follow.Author.Username,
	}
}

// limitOffset reads the limit/offset pagination params. Listings without a
// limit param are returned unpaginated, as a plain array.
func limitOffset(c *gin.Context) (limit, offset int, paginated bool) {
	limitParam := c.Query("limit")
	if limitParam == "" {
		// gorm treats a negative limit as "no limit"
		return -1, 0, false
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 0 {
		limit = config.POSTS_PER_PAGE
	}
	offset, err = strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset, true
}

func pageURL(c *gin.Context, limit, offset int) string {
	pageURL := *c.Request.URL
	query := pageURL.Query()
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	pageURL.RawQuery = query.Encode()
	return pageURL.String()
}

// paginatedJSON renders the limit/offset envelope with the total count and
// relative next/previous page links.
func paginatedJSON(c *gin.Context, count int64, limit, offset int, results interface{}) {
	var next, previous *string
	if int64(offset+limit) < count {
		u := pageURL(c, limit, offset+limit)
		next = &u
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		u := pageURL(c, limit, prevOffset)
		previous = &u
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}
