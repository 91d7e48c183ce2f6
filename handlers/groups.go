package handlers

import (
	"net/http"

	"postline/models"

	"github.com/gin-gonic/gin"
)

func GroupList(c *gin.Context) {
	groups, err := models.GroupsAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB error"})
		return
	}
	result := make([]GroupInfo, 0, len(groups))
	for i := range groups {
		result = append(result, NewGroupInfo(&groups[i]))
	}
	c.JSON(http.StatusOK, result)
}

func GroupRetrieve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	group, err := models.GroupByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, NewGroupInfo(&group))
}
