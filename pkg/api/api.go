package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/akeil/notion"
	"github.com/akeil/notion/internal/logging"
)

// Defaults
const (
	DefaultBaseURL   = "https://api.notion.com/v1/"
	DefaultVersion   = "2022-06-28"
	DefaultUserAgent = "notion-go"
)

// API endpoints, relative to the base URL.
// {id} is replaced with the id of the addressed object.
const (
	epBlock         = "blocks/{id}"
	epBlockChildren = "blocks/{id}/children"
	epPages         = "pages"
	epPage          = "pages/{id}"
	epDatabases     = "databases"
	epDatabase      = "databases/{id}"
	epDatabaseQuery = "databases/{id}/query"
	epUsers         = "users"
	epUser          = "users/{id}"
	epMe            = "users/me"
)

// Config holds everything needed to talk to the service.
// Only Token is required.
type Config struct {
	Token      string
	BaseURL    string
	Version    string
	UserAgent  string
	HTTPClient *http.Client
	// Registerer receives request metrics if set.
	Registerer prometheus.Registerer
}

// Client represents the ReST API for the Notion service.
//
// A Client holds no mutable state and can be used from multiple goroutines.
// It does not retry failed requests nor does it handle rate limits;
// callers can check for those with IsRateLimited.
type Client struct {
	base      string
	token     string
	version   string
	userAgent string
	client    *http.Client
	metrics   *requestMetrics
}

// NewClient sets up an API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("API token must not be empty")
	}
	if !validHeaderValue(token) {
		return nil, fmt.Errorf("API token contains invalid characters")
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	// endpoints are resolved relative to the base URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	_, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	m, err := newRequestMetrics(cfg.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not register metrics: %w", err)
	}

	c := &Client{
		base:      base,
		token:     token,
		version:   cfg.Version,
		userAgent: cfg.UserAgent,
		client:    cfg.HTTPClient,
		metrics:   m,
	}
	if c.version == "" {
		c.version = DefaultVersion
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 60 * time.Second}
	}

	return c, nil
}

func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return false
		}
	}
	return true
}

// Blocks ---------------------------------------------------------------------

// RetrieveBlock fetches a single block. Children are not included.
func (c *Client) RetrieveBlock(ctx context.Context, id notion.BlockID) (notion.Block, error) {
	var b notion.Block
	err := c.do(ctx, http.MethodGet, epBlock, id.String(), nil, nil, objBlock, &b)
	return b, err
}

// RetrieveBlockChildren fetches one page of the children of a block or page.
// opts may be nil.
func (c *Client) RetrieveBlockChildren(ctx context.Context, id notion.BlockID, opts *notion.ListOptions) (notion.List[notion.Block], error) {
	var l notion.List[notion.Block]
	q, err := listQuery(opts)
	if err != nil {
		return l, err
	}
	err = c.do(ctx, http.MethodGet, epBlockChildren, id.String(), q, nil, objList, &l)
	return l, err
}

// AppendBlockChildren adds blocks after the existing children of a block
// or page. All children are validated before the request is sent.
//
// Returns the first page of the parent's children.
func (c *Client) AppendBlockChildren(ctx context.Context, id notion.BlockID, children []notion.Block) (notion.List[notion.Block], error) {
	var l notion.List[notion.Block]
	if len(children) == 0 {
		return l, notion.NewValidationError("no children to append")
	}
	for i, child := range children {
		err := child.Validate()
		if err != nil {
			return l, notion.Wrap(err, "child %d", i)
		}
	}

	payload := struct {
		Children []notion.Block `json:"children"`
	}{children}
	err := c.do(ctx, http.MethodPatch, epBlockChildren, id.String(), nil, payload, objList, &l)
	return l, err
}

// BlockUpdate holds the fields to change on a block.
// Data replaces the block's content and must have the block's type.
type BlockUpdate struct {
	Data     notion.BlockData
	Archived *bool
}

// UpdateBlock changes the content of a block or archives it.
func (c *Client) UpdateBlock(ctx context.Context, id notion.BlockID, u BlockUpdate) (notion.Block, error) {
	var b notion.Block
	payload := make(map[string]interface{})
	if u.Data != nil {
		data, err := notion.Block{Data: u.Data}.ValidateUpdate()
		if err != nil {
			return b, err
		}
		payload[string(data.BlockType())] = data
	}
	if u.Archived != nil {
		payload["archived"] = *u.Archived
	}
	if len(payload) == 0 {
		return b, notion.NewValidationError("nothing to update")
	}

	err := c.do(ctx, http.MethodPatch, epBlock, id.String(), nil, payload, objBlock, &b)
	return b, err
}

// DeleteBlock moves a block to the trash.
// Returns the block with Archived set.
func (c *Client) DeleteBlock(ctx context.Context, id notion.BlockID) (notion.Block, error) {
	var b notion.Block
	err := c.do(ctx, http.MethodDelete, epBlock, id.String(), nil, nil, objBlock, &b)
	return b, err
}

// Pages ----------------------------------------------------------------------

// RetrievePage fetches the properties of a page.
// Use RetrieveBlockChildren with the page id to fetch its content.
func (c *Client) RetrievePage(ctx context.Context, id notion.PageID) (notion.Page, error) {
	var p notion.Page
	err := c.do(ctx, http.MethodGet, epPage, id.String(), nil, nil, objPage, &p)
	return p, err
}

// CreatePage creates a page below a page or in a database.
func (c *Client) CreatePage(ctx context.Context, r notion.PageRequest) (notion.Page, error) {
	var p notion.Page
	err := r.Validate()
	if err != nil {
		return p, err
	}
	err = c.do(ctx, http.MethodPost, epPages, "", nil, r, objPage, &p)
	return p, err
}

// UpdatePage changes properties, icon or cover of a page,
// or moves it to the trash.
func (c *Client) UpdatePage(ctx context.Context, id notion.PageID, r notion.PageRequest) (notion.Page, error) {
	var p notion.Page
	if r.Parent != nil {
		return p, notion.NewValidationError("the parent of a page cannot be changed")
	}
	if len(r.Children) != 0 {
		return p, notion.NewValidationError("use AppendBlockChildren to add content to a page")
	}
	err := c.do(ctx, http.MethodPatch, epPage, id.String(), nil, r, objPage, &p)
	return p, err
}

// Databases ------------------------------------------------------------------

// RetrieveDatabase fetches a database with its schema.
func (c *Client) RetrieveDatabase(ctx context.Context, id notion.DatabaseID) (notion.Database, error) {
	var d notion.Database
	err := c.do(ctx, http.MethodGet, epDatabase, id.String(), nil, nil, objDatabase, &d)
	return d, err
}

// CreateDatabase creates a database on a page.
func (c *Client) CreateDatabase(ctx context.Context, r notion.DatabaseRequest) (notion.Database, error) {
	var d notion.Database
	err := r.Validate()
	if err != nil {
		return d, err
	}
	err = c.do(ctx, http.MethodPost, epDatabases, "", nil, r, objDatabase, &d)
	return d, err
}

// UpdateDatabase changes title, description or schema of a database.
func (c *Client) UpdateDatabase(ctx context.Context, id notion.DatabaseID, r notion.DatabaseRequest) (notion.Database, error) {
	var d notion.Database
	if r.Parent != nil {
		return d, notion.NewValidationError("the parent of a database cannot be changed")
	}
	err := c.do(ctx, http.MethodPatch, epDatabase, id.String(), nil, r, objDatabase, &d)
	return d, err
}

// QueryDatabase fetches one page of the pages in a database.
func (c *Client) QueryDatabase(ctx context.Context, id notion.DatabaseID, q notion.DatabaseQuery) (notion.List[notion.Page], error) {
	var l notion.List[notion.Page]
	err := q.Validate()
	if err != nil {
		return l, err
	}
	err = c.do(ctx, http.MethodPost, epDatabaseQuery, id.String(), nil, q, objList, &l)
	return l, err
}

// Users ----------------------------------------------------------------------

// RetrieveUser fetches a single user.
func (c *Client) RetrieveUser(ctx context.Context, id notion.UserID) (notion.User, error) {
	var u notion.User
	err := c.do(ctx, http.MethodGet, epUser, id.String(), nil, nil, objUser, &u)
	return u, err
}

// Me fetches the bot user of the integration.
func (c *Client) Me(ctx context.Context) (notion.User, error) {
	var u notion.User
	err := c.do(ctx, http.MethodGet, epMe, "", nil, nil, objUser, &u)
	return u, err
}

// ListUsers fetches one page of the users of the workspace.
func (c *Client) ListUsers(ctx context.Context, opts *notion.ListOptions) (notion.List[notion.User], error) {
	var l notion.List[notion.User]
	q, err := listQuery(opts)
	if err != nil {
		return l, err
	}
	err = c.do(ctx, http.MethodGet, epUsers, "", q, nil, objList, &l)
	return l, err
}

// Requests -------------------------------------------------------------------

func listQuery(opts *notion.ListOptions) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	if opts.StartCursor != "" {
		q.Set("start_cursor", opts.StartCursor)
	}
	if opts.PageSize != 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	return q, nil
}

// do sends a single request and decodes the response into dst,
// which must be the object named by object.
func (c *Client) do(ctx context.Context, method, route, id string, query url.Values, payload interface{}, object string, dst interface{}) error {
	endpoint := strings.Replace(route, "{id}", id, 1)
	if len(query) != 0 {
		endpoint += "?" + query.Encode()
	}
	logging.Debug("API %v %v", method, endpoint)

	start := time.Now()
	err := c.send(ctx, method, endpoint, payload, object, dst)
	c.metrics.observe(method, route, err, time.Since(start))

	return err
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload interface{}, object string, dst interface{}) error {
	req, err := c.newRequest(ctx, method, endpoint, payload)
	if err != nil {
		return &TransportError{Op: "prepare " + method + " " + endpoint, Err: err}
	}

	// log the request body
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err == nil {
			logging.Debug("Request body: %v", string(data))
			req.Body = io.NopCloser(bytes.NewBuffer(data))
		}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + endpoint, Err: err}
	}
	defer res.Body.Close()
	// must read body to end
	// https://golang.org/pkg/net/http/#Client.Do
	resData, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	logging.Logger().Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", res.StatusCode).
		Msg("API response")
	logging.Debug("Response body: %v", string(resData))

	err = decodeResponse(res.StatusCode, resData, object, dst)
	if err != nil {
		logging.Warning("%v %v failed: %v", method, endpoint, err)
	}
	return err
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, payload interface{}) (*http.Request, error) {
	u, err := resolve(c.base, endpoint)
	if err != nil {
		return nil, err
	}

	// If we have payload, encode it to JSON
	var body io.ReadWriter
	if payload != nil {
		body = &bytes.Buffer{}
		enc := json.NewEncoder(body)
		err = enc.Encode(payload)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}
