package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/logger"
	"github.com/harunnryd/karte/internal/state"

	"github.com/oklog/ulid/v2"
)

const (
	DefaultTimeout  = 30 * time.Second
	maxResponseSize = 2 << 20
)

// operation identifies a kind of remote call for the per-operation busy
// guard: at most one in-flight call per operation kind per session.
type operation string

const (
	opSubmit           operation = "submit"
	opDelete           operation = "delete"
	opListInteractions operation = "list_interactions"
	opListHCPs         operation = "list_hcps"
	opChat             operation = "chat"
	opInsights         operation = "insights"
	opSearchHCP        operation = "search_hcp"
	opScheduleFollowup operation = "schedule_followup"
)

// Client performs all network I/O against the CRM service on behalf of the
// core; the store and view never talk to the network directly. Every call
// resolves to either a payload or an error. No retries, no queuing: a second
// call of the same operation kind while one is in flight fails fast with a
// busy error.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu       sync.Mutex
	inflight map[operation]bool
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ListInteractions fetches the full interaction list, newest first.
func (c *Client) ListInteractions(ctx context.Context) ([]state.InteractionRecord, error) {
	var wires []interactionWire
	if err := c.do(ctx, opListInteractions, http.MethodGet, "/api/interactions", nil, &wires); err != nil {
		return nil, err
	}
	return recordsFromWire(wires), nil
}

// SubmitDraft sends the draft to the CRM service: a create when editingID is
// zero, an update of that record otherwise. The returned record is the
// server-confirmed form; folding it into local state is the caller's job.
func (c *Client) SubmitDraft(ctx context.Context, d state.InteractionDraft, editingID int) (state.InteractionRecord, error) {
	payload := payloadFromDraft(d)

	method := http.MethodPost
	path := "/api/interactions"
	if editingID > 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/api/interactions/%d", editingID)
	}

	var wire interactionWire
	if err := c.do(ctx, opSubmit, method, path, payload, &wire); err != nil {
		return state.InteractionRecord{}, err
	}
	return recordFromWire(wire), nil
}

// DeleteInteraction removes a record server-side. The caller drops it from
// any local list on success.
func (c *Client) DeleteInteraction(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/interactions/%d", id)
	return c.do(ctx, opDelete, http.MethodDelete, path, nil, nil)
}

// ListHCPs fetches the healthcare professional directory.
func (c *Client) ListHCPs(ctx context.Context) ([]state.HCP, error) {
	var wires []hcpWire
	if err := c.do(ctx, opListHCPs, http.MethodGet, "/api/hcps", nil, &wires); err != nil {
		return nil, err
	}

	hcps := make([]state.HCP, 0, len(wires))
	for _, w := range wires {
		hcps = append(hcps, hcpFromWire(w))
	}
	return hcps, nil
}

// SendChat relays one user message plus the prior history to the agent
// endpoint. The caller appends the user message to its transcript before
// calling and appends the returned reply after.
func (c *Client) SendChat(ctx context.Context, message string, history []state.ChatMessage) (ChatResult, error) {
	req := chatRequest{Message: message, History: historyToWire(history)}

	var resp chatResponse
	if err := c.do(ctx, opChat, http.MethodPost, "/api/chat/interact", req, &resp); err != nil {
		return ChatResult{}, err
	}
	if resp.Response == nil {
		return ChatResult{}, apperrors.Malformed("chat reply missing response field")
	}

	return ChatResult{Response: *resp.Response, InteractionLogged: resp.InteractionLogged}, nil
}

// GenerateInsights asks the service for an engagement summary of one HCP.
func (c *Client) GenerateInsights(ctx context.Context, hcpID int) (string, error) {
	var resp insightsResponse
	if err := c.do(ctx, opInsights, http.MethodPost, "/api/tools/generate-insights", insightsRequest{HCPID: hcpID}, &resp); err != nil {
		return "", err
	}
	if resp.Insights == nil {
		return "", apperrors.Malformed("insights reply missing insights field")
	}
	return *resp.Insights, nil
}

// SearchHCP runs a free-text directory search server-side.
func (c *Client) SearchHCP(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", apperrors.InvalidInput("search query is empty")
	}

	path := "/api/tools/search-hcp?query=" + url.QueryEscape(query)
	var resp searchResponse
	if err := c.do(ctx, opSearchHCP, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	if resp.Results == nil {
		return "", apperrors.Malformed("search reply missing results field")
	}
	return *resp.Results, nil
}

// ScheduleFollowup marks an interaction for follow-up on the given date.
func (c *Client) ScheduleFollowup(ctx context.Context, interactionID int, date string) (string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", apperrors.InvalidInput(fmt.Sprintf("follow-up date %q is not YYYY-MM-DD", date))
	}

	req := followupRequest{InteractionID: interactionID, FollowupDate: date}
	var resp followupResponse
	if err := c.do(ctx, opScheduleFollowup, http.MethodPost, "/api/tools/schedule-followup", req, &resp); err != nil {
		return "", err
	}
	if resp.Message == nil {
		return "", apperrors.Malformed("follow-up reply missing message field")
	}
	return *resp.Message, nil
}

func (c *Client) acquire(op operation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == nil {
		c.inflight = make(map[operation]bool)
	}
	if c.inflight[op] {
		return apperrors.Busy(string(op))
	}
	c.inflight[op] = true
	return nil
}

func (c *Client) release(op operation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}

func (c *Client) do(ctx context.Context, op operation, method, path string, body, out interface{}) error {
	if err := c.acquire(op); err != nil {
		return err
	}
	defer c.release(op)

	requestID := ulid.Make().String()
	ctx = logger.WithRequestID(ctx, requestID)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.InvalidInput(fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return apperrors.InvalidInput(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	started := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		slog.Debug("CRM request failed", "op", op, "request_id", requestID, "error", err)
		return apperrors.FromTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return apperrors.FromTransport(err)
	}

	slog.Debug("CRM request complete",
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.FromStatus(resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Malformed(fmt.Sprintf("decode %s response: %v", op, err))
	}
	return nil
}
