package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"syncronic.com/empmonitor/utils"
	"syncronic.com/empmonitor/web/common"
)

func (ep *Endpoint) RegisterEmployee(c *gin.Context) {
	var body RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	created, err := ep.registration.Register(c.Request.Context(), body.EmployeeID, utils.NilIfBlank(body.Name), utils.NilIfBlank(body.Email))
	if err != nil {
		fail(c, err, msgRegistrationFailed)
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{Success: true, Created: created})
}
