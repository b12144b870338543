// controller/signup_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poachurch/pcobridge/service"
	"github.com/poachurch/pcobridge/util"
)

type SignupController struct {
	signupService service.ISignupService
}

func NewSignupController(signupService service.ISignupService) *SignupController {
	return &SignupController{
		signupService: signupService,
	}
}

// RegisterRoutes registers the API routes
func (sc *SignupController) RegisterRoutes(r *gin.RouterGroup) {
	signups := r.Group("/signups")
	{
		signups.GET("", sc.GetRegistrationSignups)
	}
}

// GetRegistrationSignups endpoint
func (sc *SignupController) GetRegistrationSignups(c *gin.Context) {
	query, err := extractQuery(c, false)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := sc.signupService.FetchRegistrationSignups(c, service.SignupsQuery{
		Page:        query.page,
		Passthrough: query.passthrough,
	})
	if err != nil {
		respondWithServiceError(c, "Failed to fetch signups", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
