// service/services.go
package service

import "github.com/poachurch/pcobridge/pco"

// Services bundles the aggregation services for wiring.
type Services struct {
	Event  IEventService
	Group  IGroupService
	Signup ISignupService
}

func InitializeServices(client *pco.Client, defaultPerPage int) *Services {
	return &Services{
		Event:  NewEventService(client, defaultPerPage),
		Group:  NewGroupService(client, defaultPerPage),
		Signup: NewSignupService(client, defaultPerPage),
	}
}
