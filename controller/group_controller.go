// controller/group_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poachurch/pcobridge/service"
	"github.com/poachurch/pcobridge/util"
)

type GroupController struct {
	groupService service.IGroupService
}

func NewGroupController(groupService service.IGroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// RegisterRoutes registers the API routes
func (gc *GroupController) RegisterRoutes(r *gin.RouterGroup) {
	groups := r.Group("/groups")
	{
		groups.GET("", gc.ListAllGroups)
		groups.GET("/grouptype/:groupTypeId", gc.ListGroupsByGroupType)
	}
}

// ListGroupsByGroupType endpoint
func (gc *GroupController) ListGroupsByGroupType(c *gin.Context) {
	groupTypeID, err := parseGroupTypeID(c.Param("groupTypeId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	query, err := extractQuery(c, false)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := gc.groupService.ListGroupsByGroupType(c, service.GroupsQuery{
		GroupTypeID: groupTypeID,
		Page:        query.page,
		Passthrough: query.passthrough,
	})
	if err != nil {
		respondWithServiceError(c, "Failed to list groups", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAllGroups endpoint
func (gc *GroupController) ListAllGroups(c *gin.Context) {
	query, err := extractQuery(c, false)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := gc.groupService.ListPublicGroups(c, service.GroupsQuery{
		Page:        query.page,
		Passthrough: query.passthrough,
	})
	if err != nil {
		respondWithServiceError(c, "Failed to list public groups", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
