// service/event_service.go
package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	logger "github.com/poachurch/pcobridge/logging"
	"github.com/poachurch/pcobridge/model"
	"github.com/poachurch/pcobridge/pco"
)

// groupDetailConcurrency caps the enrichment fan-out so a large event page
// cannot exhaust sockets against the upstream.
const groupDetailConcurrency = 8

// EventsQuery is the parsed inbound request for the events listing.
type EventsQuery struct {
	GroupTypeID string
	Page        *int
	Upcoming    bool
	Passthrough []pco.Param
}

type IEventService interface {
	FetchUpcomingEvents(ctx context.Context, query EventsQuery) (*model.EventsEnvelope, error)
}

// EventService aggregates a group type's events and enriches each with its
// owning group's detail.
type EventService struct {
	client         *pco.Client
	defaultPerPage int
}

func NewEventService(client *pco.Client, defaultPerPage int) *EventService {
	return &EventService{
		client:         client,
		defaultPerPage: defaultPerPage,
	}
}

// FetchUpcomingEvents lists a group type's events. The upcoming flag pins the
// starts_at window and sort order regardless of what the caller passed; a
// caller-supplied starts_at filter is honored otherwise.
func (s *EventService) FetchUpcomingEvents(ctx context.Context, query EventsQuery) (*model.EventsEnvelope, error) {
	q := pco.NewQuery()
	q.ApplyPassthrough(query.Passthrough)

	pagination := pco.NormalizePagination(q.Get("per_page"), q.Get("offset"), query.Page, s.defaultPerPage)
	startsAtRaw := q.Get(pco.StartsAtKey)

	if pagination.PerPage != nil {
		q.Ensure("per_page", strconv.Itoa(*pagination.PerPage))
	}
	if pagination.Offset != nil {
		q.Ensure("offset", strconv.Itoa(*pagination.Offset))
	}

	if query.Upcoming {
		q.Set(pco.StartsAtKey, pco.UpcomingStartsAt(time.Now()))
		q.Set("order", "starts_at")
	} else if startsAtRaw != "" {
		q.Set(pco.StartsAtKey, startsAtRaw)
	}

	logger.Info("Fetching events",
		zap.String("groupTypeID", query.GroupTypeID),
		zap.Any("page", pagination.Page),
		zap.Any("perPage", pagination.PerPage),
		zap.Any("offset", pagination.Offset),
		zap.Bool("upcoming", query.Upcoming),
		zap.String("query", q.Encode()))

	doc, err := s.client.Get(ctx, "/groups/v2/group_types/"+query.GroupTypeID+"/events", q)
	if err != nil {
		return nil, err
	}

	events := doc.List()
	if events == nil {
		events = []model.Resource{}
	}
	enriched := s.enrichEventsWithGroupDetails(ctx, events)

	var startsAt *string
	if q.Has(pco.StartsAtKey) {
		value := q.Get(pco.StartsAtKey)
		startsAt = &value
	}

	return &model.EventsEnvelope{
		StartsAt:  startsAt,
		Page:      pagination.Page,
		Offset:    pagination.Offset,
		PageSize:  pagination.PerPage,
		Events:    enriched,
		Links:     doc.LinksOrEmpty(),
		NextExist: doc.HasNext(),
		Upcoming:  query.Upcoming,
	}, nil
}

// enrichEventsWithGroupDetails resolves each unique referenced group once,
// concurrently, and reapplies the detail onto every event sharing it. One
// failed lookup only leaves those events unenriched; it never aborts the
// batch.
func (s *EventService) enrichEventsWithGroupDetails(ctx context.Context, events []model.Resource) []model.Resource {
	if len(events) == 0 {
		return events
	}

	groupIDs := uniqueGroupIDs(events)
	if len(groupIDs) == 0 {
		return events
	}

	var mu sync.Mutex
	details := make(map[string]*model.GroupDetail, len(groupIDs))

	g, fetchCtx := errgroup.WithContext(ctx)
	g.SetLimit(groupDetailConcurrency)
	for _, groupID := range groupIDs {
		groupID := groupID
		g.Go(func() error {
			detail, err := s.client.GroupDetail(fetchCtx, groupID)
			if err != nil {
				logger.Error("Failed to fetch group details",
					zap.String("groupID", groupID),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			details[groupID] = detail
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	enriched := make([]model.Resource, len(events))
	for i, event := range events {
		enriched[i] = event

		groupID, ok := eventGroupID(event)
		if !ok {
			continue
		}
		detail, found := details[groupID]
		if !found {
			continue
		}

		withDetail := event.WithExtra("groupDetails", detail)
		if image, hasImage := detail.Image(); hasImage {
			withDetail = withDetail.WithExtra("groupImage", image)
		}
		enriched[i] = withDetail
	}
	return enriched
}

// uniqueGroupIDs deduplicates referenced group IDs preserving first-seen
// order. Events without a group reference are tolerated.
func uniqueGroupIDs(events []model.Resource) []string {
	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, event := range events {
		id, ok := eventGroupID(event)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func eventGroupID(event model.Resource) (string, bool) {
	stub, ok := event.Relationships["group"].One()
	if !ok || stub.ID == "" {
		return "", false
	}
	return stub.ID, true
}
