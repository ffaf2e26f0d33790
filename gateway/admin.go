package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type validateAdminReq struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

// validateAdmin always answers 200; the verdict travels in the body.
func (g *Gateway) validateAdmin(c *gin.Context) {
	var req validateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"isValid": false})
		return
	}

	isValid := g.admin.Validate(c.Request.Context(), req.AdminID, req.Password)
	c.JSON(http.StatusOK, gin.H{"isValid": isValid})
}
