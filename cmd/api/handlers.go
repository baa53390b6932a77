package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/packager"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/storage"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// manifestService is the subset of *manifest.Service the handlers use
type manifestService interface {
	Validate(ctx context.Context, data []byte) (mpd.MPD, *models.ManifestSummary, error)
	Publish(ctx context.Context, name string, data []byte, metadata models.Metadata) (*models.Manifest, error)
	Get(ctx context.Context, name string) ([]byte, error)
	Summary(ctx context.Context, name string) (*models.ManifestSummary, error)
	List(ctx context.Context, limit, offset int) ([]*models.Manifest, error)
	Revisions(ctx context.Context, name string) ([]*models.ManifestRevision, error)
	Delete(ctx context.Context, name string) error
	Query(ctx context.Context, name, expr string) (*manifest.QueryResult, error)
	URL(ctx context.Context, name string, expiry time.Duration) (string, error)
	Generate(ctx context.Context, req manifest.GenerateRequest) ([]byte, *packager.DASHResult, error)
}

// healthCheck reports whether one backend is reachable
type healthCheck func(ctx context.Context) error

type API struct {
	manifests   manifestService
	checks      map[string]healthCheck
	maxDocBytes int64
	logger      *logging.Logger
}

// Health check endpoint
func (api *API) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	components := gin.H{}
	for name, check := range api.checks {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			components[name] = err.Error()
			continue
		}
		components[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":     state,
		"components": components,
	})
}

// Validate manifest endpoint
func (api *API) validateManifest(c *gin.Context) {
	data, ok := api.readDocument(c)
	if !ok {
		return
	}

	_, summary, err := api.manifests.Validate(c.Request.Context(), data)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"summary": summary,
	})
}

// Generate manifest endpoint
func (api *API) generateManifest(c *gin.Context) {
	var req manifest.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, _, err := api.manifests.Generate(c.Request.Context(), req)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, storage.ContentTypeMPD, data)
}

// List manifests endpoint
func (api *API) listManifests(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
		return
	}

	manifests, err := api.manifests.List(c.Request.Context(), limit, offset)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"manifests": manifests,
		"limit":     limit,
		"offset":    offset,
	})
}

// Publish manifest endpoint
func (api *API) publishManifest(c *gin.Context) {
	data, ok := api.readDocument(c)
	if !ok {
		return
	}

	metadata := models.Metadata{}
	if publisher, ok := middleware.GetPublisher(c); ok {
		metadata["publisher"] = publisher
	}
	if requestID := c.GetString(middleware.RequestIDContextKey); requestID != "" {
		metadata["request_id"] = requestID
	}

	record, err := api.manifests.Publish(c.Request.Context(), c.Param("name"), data, metadata)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Get manifest endpoint
func (api *API) getManifest(c *gin.Context) {
	data, err := api.manifests.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, storage.ContentTypeMPD, data)
}

// Get manifest summary endpoint
func (api *API) getSummary(c *gin.Context) {
	summary, err := api.manifests.Summary(c.Request.Context(), c.Param("name"))
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// List revisions endpoint
func (api *API) listRevisions(c *gin.Context) {
	revisions, err := api.manifests.Revisions(c.Request.Context(), c.Param("name"))
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revisions": revisions})
}

// Query manifest endpoint
func (api *API) queryManifest(c *gin.Context) {
	expr := c.Query("xpath")
	if expr == "" {
		api.writeError(c, manifest.ErrInvalidQuery)
		return
	}

	result, err := api.manifests.Query(c.Request.Context(), c.Param("name"), expr)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Presigned URL endpoint
func (api *API) manifestURL(c *gin.Context) {
	expiry := time.Hour
	if v := c.Query("expires"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires"})
			return
		}
		expiry = d
	}

	u, err := api.manifests.URL(c.Request.Context(), c.Param("name"), expiry)
	if err != nil {
		api.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        u,
		"expires_at": time.Now().Add(expiry).UTC(),
	})
}

// Delete manifest endpoint
func (api *API) deleteManifest(c *gin.Context) {
	if err := api.manifests.Delete(c.Request.Context(), c.Param("name")); err != nil {
		api.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// readDocument reads the request body, answering 413 when it exceeds the limit
func (api *API) readDocument(c *gin.Context) ([]byte, bool) {
	if api.maxDocBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, api.maxDocBytes)
	}

	data, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.writeError(c, manifest.ErrDocumentTooLarge)
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}
	return data, true
}

// writeError maps service errors to HTTP responses
func (api *API) writeError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}

	if kind, ok := manifest.Classify(err); ok {
		body["kind"] = kind
		var verr *mpd.ValidationError
		if errors.As(err, &verr) {
			body["entity"] = verr.Entity
			body["fields"] = verr.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	switch {
	case errors.Is(err, manifest.ErrManifestNotFound):
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, manifest.ErrDocumentTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, body)
	case errors.Is(err, manifest.ErrPublishInProgress):
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, manifest.ErrInvalidName),
		errors.Is(err, manifest.ErrInvalidQuery),
		errors.Is(err, manifest.ErrInvalidRequest):
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		api.logger.WithRequestID(c.GetString(middleware.RequestIDContextKey)).
			WithError(err).
			Error("Request failed")
		metrics.RecordError("api", "internal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
