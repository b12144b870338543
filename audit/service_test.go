package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poachurch/pcobridge/audit"
)

// stubRepository captures what the service hands to the storage layer.
type stubRepository struct {
	recorded    []audit.FetchRecord
	recordErr   error
	queried     []audit.FetchRecord
	gotFrom     time.Time
	gotTo       time.Time
	gotEndpoint string
}

func (r *stubRepository) RecordFetch(ctx context.Context, rec audit.FetchRecord) error {
	r.recorded = append(r.recorded, rec)
	return r.recordErr
}

func (r *stubRepository) QueryFetches(ctx context.Context, from, to time.Time, endpoint string) ([]audit.FetchRecord, error) {
	r.gotFrom, r.gotTo, r.gotEndpoint = from, to, endpoint
	return r.queried, nil
}

func TestServiceRecordFetchDelegates(t *testing.T) {
	repo := &stubRepository{}
	svc := audit.NewService(repo)

	rec := audit.FetchRecord{
		Timestamp:  time.Now(),
		Endpoint:   "/groups/v2/groups",
		URL:        "https://api.example.com/groups/v2/groups",
		Status:     200,
		DurationMS: 12,
	}
	require.NoError(t, svc.RecordFetch(context.Background(), rec))
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, rec, repo.recorded[0])
}

func TestServiceRecordFetchSurfacesRepositoryError(t *testing.T) {
	repo := &stubRepository{recordErr: errors.New("index unavailable")}
	svc := audit.NewService(repo)

	err := svc.RecordFetch(context.Background(), audit.FetchRecord{Endpoint: "/registrations/v2/signups"})
	assert.EqualError(t, err, "index unavailable")
}

func TestServiceQueryFetchesDelegates(t *testing.T) {
	want := []audit.FetchRecord{{Endpoint: "/groups/v2/groups", Status: 502}}
	repo := &stubRepository{queried: want}
	svc := audit.NewService(repo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	got, err := svc.QueryFetches(context.Background(), from, to, "/groups/v2/groups")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, from, repo.gotFrom)
	assert.Equal(t, to, repo.gotTo)
	assert.Equal(t, "/groups/v2/groups", repo.gotEndpoint)
}
