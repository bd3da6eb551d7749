// Package client provides the API client for the scheduling engine.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/anoline/anoline/internal/api/v1/routes"
	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/internal/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for the API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Catalog Endpoints
	CreatePart(ctx context.Context, part *models.Part) error
	GetPart(ctx context.Context, partNumber string) (models.Part, error)
	CreateJig(ctx context.Context, jig *models.Jig) error

	// Plan Endpoints
	CreatePlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error)
	PreviewPlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error)
	GetPlan(ctx context.Context, id uint) (models.ComponentJob, error)
	DeletePlan(ctx context.Context, id uint) error

	// Gantt Endpoints
	ScheduleJob(ctx context.Context, req *services.ScheduleRequest) ([]models.GanttJob, error)
	AdjustJob(ctx context.Context, req *services.AdjustRequest) error
	ShiftJob(ctx context.Context, req *services.ShiftRequest) error
	GanttData(ctx context.Context) (services.GanttData, error)
	DeleteScheduledJob(ctx context.Context, componentJobID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}, nil
}

// HealthCheck checks the health of the API server
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var health map[string]string
	err := c.executeRequest(ctx, http.MethodGet, "/health", nil, &health)
	return health, err
}

// CreatePart registers a new part specification
func (c *APIClient) CreatePart(ctx context.Context, part *models.Part) error {
	return c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/parts", part, nil)
}

// GetPart retrieves a part by part number
func (c *APIClient) GetPart(ctx context.Context, partNumber string) (models.Part, error) {
	var part models.Part
	endpoint := routes.APIv1Prefix + "/parts/" + url.PathEscape(partNumber)
	err := c.executeEnveloped(ctx, http.MethodGet, endpoint, nil, &part)
	return part, err
}

// CreateJig registers a new jig type
func (c *APIClient) CreateJig(ctx context.Context, jig *models.Jig) error {
	return c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/jigs", jig, nil)
}

// CreatePlan compiles and persists a component job for an order line
func (c *APIClient) CreatePlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error) {
	var job models.ComponentJob
	err := c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/plans", req, &job)
	return job, err
}

// PreviewPlan compiles a component job without persisting it
func (c *APIClient) PreviewPlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error) {
	var job models.ComponentJob
	err := c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/plans/preview", req, &job)
	return job, err
}

// GetPlan retrieves a component job by ID
func (c *APIClient) GetPlan(ctx context.Context, id uint) (models.ComponentJob, error) {
	var job models.ComponentJob
	endpoint := fmt.Sprintf("%s/plans/%d", routes.APIv1Prefix, id)
	err := c.executeEnveloped(ctx, http.MethodGet, endpoint, nil, &job)
	return job, err
}

// DeletePlan removes a component job by ID
func (c *APIClient) DeletePlan(ctx context.Context, id uint) error {
	endpoint := fmt.Sprintf("%s/plans/%d", routes.APIv1Prefix, id)
	return c.executeRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}

// ScheduleJob places every load of a component job on the timeline
func (c *APIClient) ScheduleJob(ctx context.Context, req *services.ScheduleRequest) ([]models.GanttJob, error) {
	var loads []models.GanttJob
	err := c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/gantt/schedule", req, &loads)
	return loads, err
}

// AdjustJob relabels the slots of a scheduled component job
func (c *APIClient) AdjustJob(ctx context.Context, req *services.AdjustRequest) error {
	return c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/gantt/adjust", req, nil)
}

// ShiftJob rigidly moves a scheduled component job in time
func (c *APIClient) ShiftJob(ctx context.Context, req *services.ShiftRequest) error {
	return c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/gantt/shift", req, nil)
}

// GanttData retrieves the full chart payload
func (c *APIClient) GanttData(ctx context.Context) (services.GanttData, error) {
	var data services.GanttData
	err := c.executeEnveloped(ctx, http.MethodGet, routes.APIv1Prefix+"/gantt/data", nil, &data)
	return data, err
}

// DeleteScheduledJob removes every scheduled load of a component job
func (c *APIClient) DeleteScheduledJob(ctx context.Context, componentJobID uint) error {
	endpoint := fmt.Sprintf("%s/gantt/jobs/%d", routes.APIv1Prefix, componentJobID)
	return c.executeRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}

// DeleteExpired purges scheduled loads past the retention horizon
func (c *APIClient) DeleteExpired(ctx context.Context) (int64, error) {
	var result struct {
		Deleted int64 `json:"deleted"`
	}
	err := c.executeEnveloped(ctx, http.MethodPost, routes.APIv1Prefix+"/gantt/expired", nil, &result)
	return result.Deleted, err
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and decodes the raw response body into v
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		return &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and decodes the raw body
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// executeEnveloped sends the request and unwraps the Data field of the slug
// envelope into response.
func (c *APIClient) executeEnveloped(ctx context.Context, method, endpoint string, body, response interface{}) error {
	var envelope types.SlugResponse
	if err := c.executeRequest(ctx, method, endpoint, body, &envelope); err != nil {
		return err
	}

	if envelope.Slug != types.SuccessSlug {
		return fmt.Errorf("request failed (%s): %s", envelope.Slug, envelope.Error)
	}

	if response == nil || envelope.Data == nil {
		return nil
	}

	dataJSON, err := json.Marshal(envelope.Data)
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}
	return json.Unmarshal(dataJSON, response)
}
