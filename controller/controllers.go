// controller/controllers.go
package controller

import "github.com/poachurch/pcobridge/service"

type Controllers struct {
	Event  *EventController
	Group  *GroupController
	Signup *SignupController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Event:  NewEventController(services.Event),
		Group:  NewGroupController(services.Group),
		Signup: NewSignupController(services.Signup),
	}
}
