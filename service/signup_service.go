// service/signup_service.go
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	logger "github.com/poachurch/pcobridge/logging"
	"github.com/poachurch/pcobridge/model"
	"github.com/poachurch/pcobridge/pco"
)

// SignupsQuery is the parsed inbound request for the signups listing.
type SignupsQuery struct {
	Page        *int
	Passthrough []pco.Param
}

type ISignupService interface {
	FetchRegistrationSignups(ctx context.Context, query SignupsQuery) (*model.SignupsEnvelope, error)
}

// SignupService reads through to the registrations signups listing.
type SignupService struct {
	client         *pco.Client
	defaultPerPage int
}

func NewSignupService(client *pco.Client, defaultPerPage int) *SignupService {
	return &SignupService{
		client:         client,
		defaultPerPage: defaultPerPage,
	}
}

// FetchRegistrationSignups lists registration signups with their events
// included.
func (s *SignupService) FetchRegistrationSignups(ctx context.Context, query SignupsQuery) (*model.SignupsEnvelope, error) {
	q := pco.NewQuery()
	q.Set("include", "event")
	q.ApplyPassthrough(query.Passthrough)

	pagination := pco.NormalizePagination(q.Get("per_page"), q.Get("offset"), query.Page, s.defaultPerPage)

	if pagination.PerPage != nil {
		q.Ensure("per_page", strconv.Itoa(*pagination.PerPage))
	}
	if pagination.Offset != nil {
		q.Ensure("offset", strconv.Itoa(*pagination.Offset))
	}

	logger.Info("Fetching registration signups",
		zap.Any("page", pagination.Page),
		zap.Any("perPage", pagination.PerPage),
		zap.Any("offset", pagination.Offset),
		zap.String("query", q.Encode()))

	doc, err := s.client.Get(ctx, "/registrations/v2/signups", q)
	if err != nil {
		return nil, err
	}

	signups := doc.List()
	if signups == nil {
		signups = []model.Resource{}
	}

	// The archived filter is computed but the envelope still carries the
	// unfiltered list; which one is intended is an open product question,
	// so the current behavior is kept.
	active := 0
	for _, signup := range signups {
		if signup.Attributes["archived_on"] == nil {
			active++
		}
	}
	logger.Debug("Signups archive status",
		zap.Int("total", len(signups)),
		zap.Int("active", active))

	return &model.SignupsEnvelope{
		Page:      pagination.Page,
		Offset:    pagination.Offset,
		PageSize:  pagination.PerPage,
		Signups:   signups,
		Links:     doc.LinksOrEmpty(),
		NextExist: doc.HasNext(),
		Includes:  doc.IncludedOrEmpty(),
	}, nil
}
