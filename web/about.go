package web

import (
	"net/http"

	"postline/auth"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context) {
	c.HTML(http.StatusOK, "about_author.tmpl", gin.H{"User": auth.CurrentUser(c)})
}

func AboutTech(c *gin.Context) {
	c.HTML(http.StatusOK, "about_tech.tmpl", gin.H{"User": auth.CurrentUser(c)})
}
