package web

import (
	"net/http"
	"strings"

	"postline/auth"
	"postline/models"

	"github.com/gin-gonic/gin"
)

// safeNext keeps redirects on-site
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"User":     auth.CurrentUser(c),
		"Username": "",
		"Next":     c.Query("next"),
	})
}

func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")
	user, ok := models.UserLogin(username, password)
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Error":    "Неверное имя пользователя или пароль.",
			"Username": username,
			"Next":     next,
		})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(next))
}

func Logout(c *gin.Context) {
	session := auth.LoadSession(c)
	session.LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"User":     auth.CurrentUser(c),
		"Username": "",
		"Name":     "",
	})
}

func Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	name := strings.TrimSpace(c.PostForm("name"))
	password := c.PostForm("password")
	password2 := c.PostForm("password2")

	formErrors := map[string]string{}
	if username == "" {
		formErrors["Username"] = "Обязательное поле."
	} else if _, err := models.UserByUsername(username); err == nil {
		formErrors["Username"] = "Пользователь с таким именем уже существует."
	}
	if password == "" {
		formErrors["Password"] = "Обязательное поле."
	} else if password != password2 {
		formErrors["Password2"] = "Пароли не совпадают."
	}
	if len(formErrors) > 0 {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{
			"Errors":   formErrors,
			"Username": username,
			"Name":     name,
		})
		return
	}
	user, err := models.UserCreate(username, name, password)
	if err != nil {
		serverError(c, err)
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}
