package web

import (
	"net/http"
	"strconv"
	"strings"

	"postline/auth"
	"postline/config"
	"postline/db"
	"postline/models"
	"postline/utils"

	"github.com/gin-gonic/gin"
)

func parsePostID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return 0, false
	}
	return id, true
}

func Index(c *gin.Context) {
	total, err := models.PostsCount()
	if err != nil {
		serverError(c, err)
		return
	}
	page := utils.NewPage(c.Query("page"), total, config.POSTS_PER_PAGE)
	posts, err := models.PostsAll(page.Offset(), page.PerPage)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"User":  auth.CurrentUser(c),
		"Page":  page,
		"Posts": posts,
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		NotFound(c)
		return
	}
	total, err := models.PostsCountByGroup(group.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	page := utils.NewPage(c.Query("page"), total, config.POSTS_PER_PAGE)
	posts, err := models.PostsByGroup(group.ID, page.Offset(), page.PerPage)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"User":  auth.CurrentUser(c),
		"Group": group,
		"Page":  page,
		"Posts": posts,
	})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	total, err := models.PostsCountByAuthor(author.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	page := utils.NewPage(c.Query("page"), total, config.POSTS_PER_PAGE)
	posts, err := models.PostsByAuthor(author.ID, page.Offset(), page.PerPage)
	if err != nil {
		serverError(c, err)
		return
	}
	user := auth.CurrentUser(c)
	following := user.ID != 0 && models.IsFollowing(user.ID, author.ID)
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"User":       user,
		"Author":     author,
		"Page":       page,
		"Posts":      posts,
		"PostsCount": total,
		"Following":  following,
	})
}

func PostDetail(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	postsCount, err := models.PostsCountByAuthor(post.AuthorID)
	if err != nil {
		serverError(c, err)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"User":       auth.CurrentUser(c),
		"Post":       post,
		"PostsCount": postsCount,
		"Comments":   comments,
	})
}

// postFormValues validates the create/edit form. The group is optional but
// must reference an existing one when present.
func postFormValues(c *gin.Context) (text string, groupID *uint64, formErrors map[string]string) {
	formErrors = map[string]string{}
	text = strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		formErrors["Text"] = "Обязательное поле."
	}
	groupParam := c.PostForm("group")
	if groupParam != "" {
		id, err := strconv.ParseUint(groupParam, 10, 64)
		if err != nil {
			formErrors["Group"] = "Выберите корректную группу."
		} else if _, err = models.GroupByID(id); err != nil {
			formErrors["Group"] = "Выберите корректную группу."
		} else {
			groupID = &id
		}
	}
	return
}

func renderPostForm(c *gin.Context, user *models.User, data gin.H) {
	groups, err := models.GroupsAll()
	if err != nil {
		serverError(c, err)
		return
	}
	data["User"] = *user
	data["Groups"] = groups
	c.HTML(http.StatusOK, "create_post.tmpl", data)
}

func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		renderPostForm(c, user, gin.H{"Text": ""})
		return
	}
	text, groupID, formErrors := postFormValues(c)
	imagePath, imageError := savePostImage(c)
	if imageError != "" {
		formErrors["Image"] = imageError
	}
	if len(formErrors) > 0 {
		renderPostForm(c, user, gin.H{"Errors": formErrors, "Text": text})
		return
	}
	post := models.Post{
		Text:     text,
		AuthorID: user.ID,
		GroupID:  groupID,
		Image:    imagePath,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEdit(c *gin.Context, user *models.User) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	detailURL := "/posts/" + strconv.FormatUint(post.ID, 10) + "/"
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, detailURL)
		return
	}
	if c.Request.Method == http.MethodGet {
		data := gin.H{"IsEdit": true, "Post": post, "Text": post.Text}
		if post.GroupID != nil {
			data["SelectedGroup"] = *post.GroupID
		}
		renderPostForm(c, user, data)
		return
	}
	text, groupID, formErrors := postFormValues(c)
	imagePath, imageError := savePostImage(c)
	if imageError != "" {
		formErrors["Image"] = imageError
	}
	if len(formErrors) > 0 {
		data := gin.H{"IsEdit": true, "Post": post, "Errors": formErrors, "Text": text}
		renderPostForm(c, user, data)
		return
	}
	// pub_date is never touched on edit
	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}
	if imagePath != "" {
		updates["image"] = imagePath
	}
	// Update through a bare model: the loaded post carries its Author and
	// Group associations, and gorm would write their stale FKs over the map.
	if err = db.Instance.Model(&models.Post{ID: post.ID}).Updates(updates).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL)
}

// AddComment creates a comment for valid input and otherwise just returns
// to the post page without reporting the validation problem.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		comment := models.Comment{
			PostID:   post.ID,
			AuthorID: user.ID,
			Text:     text,
		}
		if err = db.Instance.Create(&comment).Error; err != nil {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}

func FollowIndex(c *gin.Context, user *models.User) {
	total, err := models.PostsCountByFollowed(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	page := utils.NewPage(c.Query("page"), total, config.POSTS_PER_PAGE)
	posts, err := models.PostsByFollowed(user.ID, page.Offset(), page.PerPage)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"User":  *user,
		"Page":  page,
		"Posts": posts,
	})
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	// Following yourself is silently skipped
	if author.ID != user.ID {
		if _, err = models.FollowGetOrCreate(user.ID, author.ID); err != nil {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	if err = models.Unfollow(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
