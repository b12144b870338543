// controller/event_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bridge_errors "github.com/poachurch/pcobridge/errors"
	"github.com/poachurch/pcobridge/pco"
	"github.com/poachurch/pcobridge/service"
	"github.com/poachurch/pcobridge/util"
)

type EventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EventController) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("/grouptype/:groupTypeId", ec.GetUpcomingEventsByGroupType)
	}
}

// GetUpcomingEventsByGroupType endpoint
func (ec *EventController) GetUpcomingEventsByGroupType(c *gin.Context) {
	groupTypeID, err := parseGroupTypeID(c.Param("groupTypeId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	query, err := extractQuery(c, true)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := ec.eventService.FetchUpcomingEvents(c, service.EventsQuery{
		GroupTypeID: groupTypeID,
		Page:        query.page,
		Upcoming:    query.upcoming,
		Passthrough: query.passthrough,
	})
	if err != nil {
		respondWithServiceError(c, "Failed to fetch events", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondWithServiceError maps service failures onto the outward status
// taxonomy: any upstream non-2xx becomes a single 502 regardless of the
// original code, everything else a detail-free 500.
func respondWithServiceError(c *gin.Context, message string, err error) {
	var upstreamErr *pco.UpstreamError
	if errors.As(err, &upstreamErr) {
		util.RespondWithError(c, http.StatusBadGateway, upstreamErr.Error(), err)
		return
	}
	util.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error",
		errors.Join(bridge_errors.ErrInternalServer, err))
}
