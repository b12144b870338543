// service/group_service.go
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	logger "github.com/poachurch/pcobridge/logging"
	"github.com/poachurch/pcobridge/model"
	"github.com/poachurch/pcobridge/pco"
)

// publicListingFallbackPerPage is the page size assumed for the public group
// listing when the caller supplied neither page nor per_page.
const publicListingFallbackPerPage = 6

// overFetchFactor compensates for eligibility attrition: the upstream
// paginates before eligibility is knowable, so the listing requests this
// multiple of the wanted page size and truncates locally. Attrition beyond
// half a page still comes up short.
const overFetchFactor = 2

// GroupsQuery is the parsed inbound request for the group listings.
type GroupsQuery struct {
	GroupTypeID string
	Page        *int
	Passthrough []pco.Param
}

type IGroupService interface {
	ListGroupsByGroupType(ctx context.Context, query GroupsQuery) (*model.GroupsEnvelope, error)
	ListPublicGroups(ctx context.Context, query GroupsQuery) (*model.GroupsEnvelope, error)
}

// GroupService aggregates group listings; the public listing additionally
// filters by per-group enrollment eligibility.
type GroupService struct {
	client         *pco.Client
	defaultPerPage int
}

func NewGroupService(client *pco.Client, defaultPerPage int) *GroupService {
	return &GroupService{
		client:         client,
		defaultPerPage: defaultPerPage,
	}
}

// ListGroupsByGroupType lists one group type's groups with included
// resources merged onto the primaries.
func (s *GroupService) ListGroupsByGroupType(ctx context.Context, query GroupsQuery) (*model.GroupsEnvelope, error) {
	q := pco.NewQuery()
	q.ApplyPassthrough(query.Passthrough)

	pagination := pco.NormalizePagination(q.Get("per_page"), q.Get("offset"), query.Page, s.defaultPerPage)

	if pagination.PerPage != nil {
		q.Ensure("per_page", strconv.Itoa(*pagination.PerPage))
	}
	if pagination.Offset != nil {
		q.Ensure("offset", strconv.Itoa(*pagination.Offset))
	}

	logger.Info("Fetching groups",
		zap.String("groupTypeID", query.GroupTypeID),
		zap.Any("page", pagination.Page),
		zap.Any("perPage", pagination.PerPage),
		zap.Any("offset", pagination.Offset),
		zap.String("query", q.Encode()))

	doc, err := s.client.Get(ctx, "/groups/v2/group_types/"+query.GroupTypeID+"/groups", q)
	if err != nil {
		return nil, err
	}

	groups := model.MergeIncluded(doc.List(), doc.Included)
	if groups == nil {
		groups = []model.Resource{}
	}

	return &model.GroupsEnvelope{
		Page:      pagination.Page,
		Offset:    pagination.Offset,
		PageSize:  pagination.PerPage,
		Groups:    groups,
		Links:     doc.LinksOrEmpty(),
		NextExist: doc.HasNext(),
		Includes:  doc.IncludedOrEmpty(),
	}, nil
}

// ListPublicGroups lists non-archived groups that are open for enrollment.
// Eligibility is only knowable after a per-group enrollment lookup, and the
// upstream paginates before that filter applies, so the call over-requests
// and truncates back to the caller's page size.
func (s *GroupService) ListPublicGroups(ctx context.Context, query GroupsQuery) (*model.GroupsEnvelope, error) {
	q := pco.NewQuery()
	q.Set("archived_at", "null")
	q.Set("include", "enrollment")
	q.ApplyPassthrough(query.Passthrough)

	pagination := pco.NormalizePagination(q.Get("per_page"), q.Get("offset"), query.Page, s.defaultPerPage)

	requestedPerPage := publicListingFallbackPerPage
	if pagination.PerPage != nil && *pagination.PerPage > 0 {
		requestedPerPage = *pagination.PerPage
	}
	finalOffset := 0
	if pagination.Offset != nil {
		finalOffset = *pagination.Offset
	}

	q.Ensure("per_page", strconv.Itoa(requestedPerPage*overFetchFactor))
	q.Ensure("offset", strconv.Itoa(finalOffset))

	logger.Info("Fetching public groups",
		zap.Any("page", pagination.Page),
		zap.Int("perPage", requestedPerPage*overFetchFactor),
		zap.Int("offset", finalOffset),
		zap.String("query", q.Encode()))

	doc, err := s.client.Get(ctx, "/groups/v2/groups", q)
	if err != nil {
		return nil, err
	}

	groups := model.MergeIncluded(doc.List(), doc.Included)

	// One enrollment lookup per candidate, sequential and in candidate
	// order. A non-2xx lookup yields an empty record, which fails the
	// strategy test and leaves that group out without aborting the page.
	eligible := make([]model.Resource, 0, len(groups))
	for _, group := range groups {
		enrollment, err := s.client.GroupEnrollment(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		if model.Eligible(group, enrollment) {
			eligible = append(eligible, group.WithExtra("enrollmentStrategy", enrollment.Strategy))
		}
	}

	groupsToReturn := eligible
	if len(groupsToReturn) > requestedPerPage {
		groupsToReturn = groupsToReturn[:requestedPerPage]
	}

	logger.Debug("Public listing pagination",
		zap.Int("fetched", len(groups)),
		zap.Int("eligible", len(eligible)),
		zap.Int("requestedPerPage", requestedPerPage),
		zap.Int("returned", len(groupsToReturn)),
		zap.Int("offset", finalOffset))

	return &model.GroupsEnvelope{
		Page:      pagination.Page,
		Offset:    &finalOffset,
		PageSize:  &requestedPerPage,
		Groups:    groupsToReturn,
		Links:     doc.LinksOrEmpty(),
		NextExist: len(eligible) > requestedPerPage || doc.HasNext(),
		Includes:  doc.IncludedOrEmpty(),
	}, nil
}
