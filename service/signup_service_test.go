package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poachurch/pcobridge/pco"
	"github.com/poachurch/pcobridge/service"
)

func TestFetchRegistrationSignupsPinsEventInclude(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/registrations/v2/signups", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"data":[
			{"type":"Signup","id":"s1","attributes":{"archived_on":null}},
			{"type":"Signup","id":"s2","attributes":{"archived_on":"2024-01-01"}}
		],"included":[{"type":"Event","id":"e1"}],"links":{"next":"https://upstream/signups?offset=3"}}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := service.NewSignupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.FetchRegistrationSignups(context.Background(), service.SignupsQuery{Page: intPtr(0)})
	require.NoError(t, err)

	assert.Equal(t, []string{"event"}, gotQuery["include"])
	assert.Equal(t, []string{"3"}, gotQuery["per_page"])
	assert.Equal(t, []string{"0"}, gotQuery["offset"])

	// Archived signups are not filtered out of the envelope.
	require.Len(t, result.Signups, 2)
	assert.Equal(t, "s1", result.Signups[0].ID)
	assert.Equal(t, "s2", result.Signups[1].ID)
	assert.Len(t, result.Includes, 1)
	assert.True(t, result.NextExist)
}

func TestFetchRegistrationSignupsNoPagination(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/registrations/v2/signups", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"data":[]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := service.NewSignupService(pco.NewClient(server.URL, "id", "secret", nil), 3)
	result, err := svc.FetchRegistrationSignups(context.Background(), service.SignupsQuery{})
	require.NoError(t, err)

	_, hasPerPage := gotQuery["per_page"]
	_, hasOffset := gotQuery["offset"]
	assert.False(t, hasPerPage)
	assert.False(t, hasOffset)

	assert.Nil(t, result.Page)
	assert.Empty(t, result.Signups)
	assert.NotNil(t, result.Links)
	assert.False(t, result.NextExist)
}
