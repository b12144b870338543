package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poachurch/pcobridge/pco"
	"github.com/poachurch/pcobridge/service"
)

// publicListingUpstream fakes the groups listing plus per-group enrollment
// lookups. openGroups marks which group IDs report an open strategy.
type publicListingUpstream struct {
	listing         string
	openGroups      map[string]bool
	enrollmentCalls []string
}

func (u *publicListingUpstream) handler(gotListQuery *map[string][]string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups/v2/groups", func(w http.ResponseWriter, r *http.Request) {
		*gotListQuery = r.URL.Query()
		fmt.Fprint(w, u.listing)
	})
	mux.HandleFunc("/groups/v2/groups/", func(w http.ResponseWriter, r *http.Request) {
		groupID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/groups/v2/groups/"), "/enrollment")
		u.enrollmentCalls = append(u.enrollmentCalls, groupID)
		strategy := "closed"
		if u.openGroups[groupID] {
			strategy = "open_signup"
		}
		fmt.Fprintf(w, `{"data":{"type":"Enrollment","id":%q,"attributes":{"strategy":%q}}}`, groupID, strategy)
	})
	return mux
}

func groupListJSON(ids ...string) string {
	entries := make([]string, len(ids))
	for i, id := range ids {
		entries[i] = fmt.Sprintf(`{"type":"Group","id":%q,"attributes":{"name":"Group %s","enrollment_open":true}}`, id, id)
	}
	return `{"data":[` + strings.Join(entries, ",") + `]}`
}

func TestListPublicGroupsOverFetchAndFilter(t *testing.T) {
	// 10 candidates, exactly the first five odd ones eligible.
	upstream := &publicListingUpstream{
		listing:    groupListJSON("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"),
		openGroups: map[string]bool{"1": true, "3": true, "5": true, "7": true, "9": true},
	}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{
		Passthrough: []pco.Param{{Key: "per_page", Value: "5"}},
	})
	require.NoError(t, err)

	// Twice the requested page size is requested upstream, but the caller's
	// explicit per_page survives as the passthrough value.
	assert.Equal(t, []string{"5"}, gotListQuery["per_page"])
	assert.Equal(t, []string{"null"}, gotListQuery["archived_at"])
	assert.Equal(t, []string{"enrollment"}, gotListQuery["include"])

	require.Len(t, result.Groups, 5)
	for i, wantID := range []string{"1", "3", "5", "7", "9"} {
		assert.Equal(t, wantID, result.Groups[i].ID)
		assert.Equal(t, "open_signup", result.Groups[i].Extra["enrollmentStrategy"])
	}
	require.NotNil(t, result.PageSize)
	assert.Equal(t, 5, *result.PageSize)
	assert.False(t, result.NextExist)
}

func TestListPublicGroupsOverFetchesWithoutCallerPerPage(t *testing.T) {
	upstream := &publicListingUpstream{listing: groupListJSON()}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{})
	require.NoError(t, err)

	// Fallback page size 6, doubled for attrition, offset pinned to 0.
	assert.Equal(t, []string{"12"}, gotListQuery["per_page"])
	assert.Equal(t, []string{"0"}, gotListQuery["offset"])
	require.NotNil(t, result.PageSize)
	assert.Equal(t, 6, *result.PageSize)
	require.NotNil(t, result.Offset)
	assert.Equal(t, 0, *result.Offset)
}

func TestListPublicGroupsTruncationSignalsMoreResults(t *testing.T) {
	upstream := &publicListingUpstream{
		listing: groupListJSON("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"),
		openGroups: map[string]bool{
			"1": true, "2": true, "3": true, "4": true, "5": true,
			"6": true, "7": true, "8": true, "9": true, "10": true,
		},
	}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{
		Passthrough: []pco.Param{{Key: "per_page", Value: "5"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Groups, 5)
	for i, wantID := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, wantID, result.Groups[i].ID)
	}
	assert.True(t, result.NextExist)
}

func TestListPublicGroupsEnrollmentLookupsAreSequentialInOrder(t *testing.T) {
	upstream := &publicListingUpstream{
		listing:    groupListJSON("9", "2", "7"),
		openGroups: map[string]bool{"2": true},
	}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{})
	require.NoError(t, err)

	assert.Equal(t, []string{"9", "2", "7"}, upstream.enrollmentCalls)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, "2", result.Groups[0].ID)
}

func TestListPublicGroupsMergedAutoClosedExcludes(t *testing.T) {
	listing := `{"data":[
		{"type":"Group","id":"1","attributes":{"enrollment_open":true},"relationships":{"enrollment":{"data":{"type":"Enrollment","id":"e1"}}}},
		{"type":"Group","id":"2","attributes":{"enrollment_open":true},"relationships":{"enrollment":{"data":{"type":"Enrollment","id":"e2"}}}}
	],"included":[
		{"type":"Enrollment","id":"e1","attributes":{"auto_closed":true}},
		{"type":"Enrollment","id":"e2","attributes":{"auto_closed":false}}
	]}`
	upstream := &publicListingUpstream{
		listing:    listing,
		openGroups: map[string]bool{"1": true, "2": true},
	}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{})
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, "2", result.Groups[0].ID)
	assert.Len(t, result.Includes, 2)
}

func TestListPublicGroupsNextExistFollowsUpstreamLink(t *testing.T) {
	upstream := &publicListingUpstream{
		listing:    `{"data":[],"links":{"next":"https://upstream/groups?offset=12"}}`,
		openGroups: map[string]bool{},
	}
	var gotListQuery map[string][]string
	server := httptest.NewServer(upstream.handler(&gotListQuery))
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListPublicGroups(context.Background(), service.GroupsQuery{})
	require.NoError(t, err)

	assert.Empty(t, result.Groups)
	assert.True(t, result.NextExist)
}

func TestListGroupsByGroupTypeMergesIncluded(t *testing.T) {
	mux := http.NewServeMux()
	var gotQuery map[string][]string
	mux.HandleFunc("/groups/v2/group_types/8/groups", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"data":[
			{"type":"Group","id":"1","relationships":{"location":{"data":{"type":"Location","id":"L1"}}}}
		],"included":[{"type":"Location","id":"L1","attributes":{"name":"Hall"}}]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := service.NewGroupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.ListGroupsByGroupType(context.Background(), service.GroupsQuery{
		GroupTypeID: "8",
		Page:        intPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"3"}, gotQuery["per_page"])
	assert.Equal(t, []string{"3"}, gotQuery["offset"])

	require.Len(t, result.Groups, 1)
	resolved, ok := result.Groups[0].Extra["location"]
	require.True(t, ok)
	assert.NotNil(t, resolved)
	require.NotNil(t, result.Page)
	assert.Equal(t, 1, *result.Page)
}
