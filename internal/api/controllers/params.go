package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wellness/pkg/utils"
)

// parseUserID reads the userId query parameter. On failure it writes the
// 400 envelope and returns ok=false.
func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation Failed", "userId must be a valid user id")
		return uuid.Nil, false
	}
	return id, true
}

func parsePathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation Failed", name+" must be a valid id")
		return uuid.Nil, false
	}
	return id, true
}
