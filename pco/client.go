// pco/client.go
package pco

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/poachurch/pcobridge/audit"
	bridge_errors "github.com/poachurch/pcobridge/errors"
	logger "github.com/poachurch/pcobridge/logging"
	"github.com/poachurch/pcobridge/model"
	"github.com/poachurch/pcobridge/util"
)

// UpstreamError reports a non-2xx response from Planning Center. The status
// is kept for logging; callers surface it uniformly as a gateway failure, not
// as the upstream's own code.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("planning center request failed with status %d", e.Status)
}

// Unwrap ties every upstream failure to the shared sentinel so callers can
// classify with errors.Is as well as errors.As.
func (e *UpstreamError) Unwrap() error {
	return bridge_errors.ErrUpstreamFailure
}

// Client is the authenticated Planning Center HTTP client. One GET per
// logical call, no retries; timeouts are whatever the injected http.Client
// carries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
	auditSvc   audit.Service
}

// NewClient creates a client for the given upstream. auditSvc may be nil,
// which disables the fetch audit trail.
func NewClient(baseURL, appID, secret string, auditSvc audit.Service) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		authToken:  basicAuthToken(appID, secret),
		auditSvc:   auditSvc,
	}
}

func basicAuthToken(id, secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(id + ":" + secret))
}

// Get fetches one JSON:API document from path, e.g.
// "/groups/v2/group_types/42/events". q may be nil.
func (c *Client) Get(ctx context.Context, path string, q *Query) (*model.Document, error) {
	requestURL := c.baseURL + path
	if q != nil {
		if encoded := q.Encode(); encoded != "" {
			requestURL += "?" + encoded
		}
	}

	resp, err := c.do(ctx, path, requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := safeReadBody(resp.Body)
		logger.Error("Planning Center request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("url", requestURL),
			zap.String("body", body))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: body}
	}

	var doc model.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode planning center response: %w", err)
	}
	return &doc, nil
}

// GroupDetail fetches one group's full detail. A non-2xx response is an
// error here; enrichment callers catch it per group.
func (c *Client) GroupDetail(ctx context.Context, groupID string) (*model.GroupDetail, error) {
	path := "/groups/v2/groups/" + groupID
	requestURL := c.baseURL + path

	resp, err := c.do(ctx, path, requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := safeReadBody(resp.Body)
		return nil, fmt.Errorf("planning center returned %d for group %s: %s", resp.StatusCode, groupID, body)
	}

	var detail model.GroupDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("decode group %s detail: %w", groupID, err)
	}
	return &detail, nil
}

// GroupEnrollment fetches a group's enrollment strategy and auto-closed
// flag. A non-2xx response degrades to an empty record instead of failing,
// which leaves the group ineligible for the public listing; transport
// failures still propagate.
func (c *Client) GroupEnrollment(ctx context.Context, groupID string) (model.EnrollmentRecord, error) {
	path := "/groups/v2/groups/" + groupID + "/enrollment"
	requestURL := c.baseURL + path

	resp, err := c.do(ctx, path, requestURL)
	if err != nil {
		return model.EnrollmentRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return model.EnrollmentRecord{}, nil
	}

	var doc model.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return model.EnrollmentRecord{}, fmt.Errorf("decode group %s enrollment: %w", groupID, err)
	}

	record := model.EnrollmentRecord{}
	if resource, ok := doc.One(); ok {
		if strategy, found := resource.AttrString("strategy"); found {
			record.Strategy = strategy
		}
		record.AutoClosed = resource.Attributes["auto_closed"] == true
	}
	return record, nil
}

func (c *Client) do(ctx context.Context, endpoint, requestURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Basic "+c.authToken)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.recordFetch(ctx, endpoint, requestURL, start, resp, err)
	return resp, err
}

func (c *Client) recordFetch(ctx context.Context, endpoint, requestURL string, start time.Time, resp *http.Response, callErr error) {
	if c.auditSvc == nil {
		return
	}

	rec := audit.FetchRecord{
		Timestamp:  start,
		RequestID:  util.GetRequestIDFromContext(ctx),
		Endpoint:   endpoint,
		URL:        requestURL,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if resp != nil {
		rec.Status = resp.StatusCode
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}

	if err := c.auditSvc.RecordFetch(ctx, rec); err != nil {
		logger.Warn("Failed to record upstream fetch", zap.Error(err), zap.String("endpoint", endpoint))
	}
}

func safeReadBody(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Sprintf("failed to read error body: %v", err)
	}
	return string(body)
}
