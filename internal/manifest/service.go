// Package manifest validates, stores and serves MPD documents. Documents live
// in object storage, the catalog in PostgreSQL, hot copies in Redis, and every
// change is announced on the message queue.
package manifest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/packager"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/storage"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/tracing"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// ObjectStore holds encoded documents
type ObjectStore interface {
	PutManifest(ctx context.Context, key string, data []byte, checksum string) error
	GetManifest(ctx context.Context, key string, maxBytes int64) ([]byte, error)
	CopyObject(ctx context.Context, srcKey, destKey string) error
	DeletePrefix(ctx context.Context, prefix string) error
	GetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Catalog records which revision of each manifest is current
type Catalog interface {
	NextRevision(ctx context.Context, name string) (int64, error)
	SaveManifest(ctx context.Context, m *models.Manifest) error
	GetManifest(ctx context.Context, name string) (*models.Manifest, error)
	ListManifests(ctx context.Context, limit, offset int) ([]*models.Manifest, error)
	ListRevisions(ctx context.Context, name string) ([]*models.ManifestRevision, error)
	DeleteManifest(ctx context.Context, name string) error
}

// Cache keeps the latest document and summary of hot manifests
type Cache interface {
	SetManifest(ctx context.Context, name string, revision int64, data []byte, ttl time.Duration) error
	GetManifest(ctx context.Context, name string) ([]byte, error)
	GetRevision(ctx context.Context, name string) (int64, error)
	SetSummary(ctx context.Context, name string, summary *models.ManifestSummary, ttl time.Duration) error
	GetSummary(ctx context.Context, name string) (*models.ManifestSummary, error)
	InvalidateManifest(ctx context.Context, name string) error
	AcquireLock(ctx context.Context, resource string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, resource string) error
}

// Publisher announces manifest changes
type Publisher interface {
	PublishEvent(ctx context.Context, event *models.ManifestEvent) error
}

// Config tunes the service
type Config struct {
	MaxDocumentBytes int64
	CacheTTL         time.Duration
	KeyPrefix        string
	DefaultProfiles  []mpd.Profile
	LockTTL          time.Duration
}

// Service implements manifest operations. Cache and Publisher are optional.
type Service struct {
	cfg       Config
	store     ObjectStore
	catalog   Catalog
	cache     Cache
	publisher Publisher
	logger    *logging.Logger
	now       func() time.Time
}

// NewService creates a manifest service
func NewService(cfg Config, store ObjectStore, catalog Catalog, cache Cache, publisher Publisher, logger *logging.Logger) *Service {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "manifests"
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		cfg:       cfg,
		store:     store,
		catalog:   catalog,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateName checks that name is usable as a catalog key, a URL path segment
// and an object key component
func ValidateName(name string) error {
	if !namePattern.MatchString(name) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Validate decodes data, enforcing every document invariant, and summarises it
func (s *Service) Validate(ctx context.Context, data []byte) (mpd.MPD, *models.ManifestSummary, error) {
	span, _ := tracing.StartSpan(ctx, "manifest.validate")
	defer tracing.FinishSpan(span)
	tracing.SetTag(span, "size_bytes", len(data))

	if s.cfg.MaxDocumentBytes > 0 && int64(len(data)) > s.cfg.MaxDocumentBytes {
		err := fmt.Errorf("%w: %d > %d bytes", ErrDocumentTooLarge, len(data), s.cfg.MaxDocumentBytes)
		tracing.LogError(span, err)
		return mpd.MPD{}, nil, err
	}

	start := time.Now()
	m, err := mpd.Decode(bytes.NewReader(data))
	metrics.RecordDecode(err == nil, time.Since(start).Seconds())
	if err != nil {
		if kind, ok := Classify(err); ok {
			metrics.RecordValidationFailure(kind)
		}
		tracing.LogError(span, err)
		return mpd.MPD{}, nil, err
	}

	return m, Summarize("", m), nil
}

// Publish validates data and stores it as the next revision of name
func (s *Service) Publish(ctx context.Context, name string, data []byte, metadata models.Metadata) (*models.Manifest, error) {
	span, ctx := tracing.StartSpan(ctx, "manifest.publish")
	defer tracing.FinishSpan(span)
	tracing.SetTag(span, "manifest", name)

	logger := s.logger.WithManifest(name)

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	doc, summary, err := s.Validate(ctx, data)
	if err != nil {
		logger.LogValidationFailure(name, err)
		return nil, err
	}

	if s.cache != nil {
		lock := "publish:" + name
		acquired, err := s.cache.AcquireLock(ctx, lock, s.cfg.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire publish lock: %w", err)
		}
		if !acquired {
			return nil, fmt.Errorf("%s: %w", name, ErrPublishInProgress)
		}
		defer func() {
			if err := s.cache.ReleaseLock(context.WithoutCancel(ctx), lock); err != nil {
				logger.WithError(err).Warn("Failed to release publish lock")
			}
		}()
	}

	// Stored documents are the canonical encoding, not the caller's bytes
	start := time.Now()
	encoded, err := mpd.Marshal(doc)
	metrics.RecordEncode(time.Since(start).Seconds())
	if err != nil {
		tracing.LogError(span, err)
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	var revision int64
	err = s.observeDB(ctx, "next_revision", func(ctx context.Context) error {
		var err error
		revision, err = s.catalog.NextRevision(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(encoded)
	checksum := hex.EncodeToString(sum[:])
	revisionKey := storage.RevisionKey(s.cfg.KeyPrefix, name, revision)
	latestKey := storage.LatestKey(s.cfg.KeyPrefix, name)

	err = s.observeStorage(ctx, "upload", revisionKey, int64(len(encoded)), func(ctx context.Context) error {
		return s.store.PutManifest(ctx, revisionKey, encoded, checksum)
	})
	if err != nil {
		return nil, err
	}
	record := &models.Manifest{
		Name:            name,
		Revision:        revision,
		ObjectKey:       revisionKey,
		Type:            summary.Type,
		Profiles:        summary.Profiles,
		Periods:         len(summary.Periods),
		Representations: summary.RepresentationCount(),
		SizeBytes:       int64(len(encoded)),
		Checksum:        checksum,
		Metadata:        metadata,
	}
	err = s.observeDB(ctx, "save_manifest", func(ctx context.Context) error {
		return s.catalog.SaveManifest(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	// latestKey moves only after the catalog holds the revision it points at
	err = s.observeStorage(ctx, "copy", latestKey, int64(len(encoded)), func(ctx context.Context) error {
		return s.store.CopyObject(ctx, revisionKey, latestKey)
	})
	if err != nil {
		logger.WithError(err).Warnf("Failed to update %s", latestKey)
	}

	summary.Name = name
	s.fillCache(ctx, name, revision, encoded, summary)

	s.announce(ctx, &models.ManifestEvent{
		ID:         uuid.New().String(),
		Type:       models.ManifestEventPublished,
		Name:       name,
		Revision:   revision,
		ObjectKey:  revisionKey,
		Checksum:   checksum,
		OccurredAt: s.now().UTC(),
	})

	metrics.RecordManifestPublished(record.Type, len(encoded))
	logger.LogManifestPublished(name, revision, record.Type, record.Periods, len(encoded))

	return record, nil
}

// Get returns the encoded latest revision of name
func (s *Service) Get(ctx context.Context, name string) ([]byte, error) {
	span, ctx := tracing.StartSpan(ctx, "manifest.get")
	defer tracing.FinishSpan(span)
	tracing.SetTag(span, "manifest", name)

	if s.cache != nil {
		data, err := s.cache.GetManifest(ctx, name)
		s.logger.LogCacheOperation("get", name, data != nil, err)
		if err == nil && data != nil {
			metrics.RecordCacheAccess("manifest", true)
			return data, nil
		}
		metrics.RecordCacheAccess("manifest", false)
	}

	record, data, err := s.load(ctx, name)
	if err != nil {
		tracing.LogError(span, err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetManifest(ctx, name, record.Revision, data, s.cfg.CacheTTL); err != nil {
			s.logger.LogCacheOperation("set", name, false, err)
		}
	}

	return data, nil
}

// load reads the catalog entry and the stored document for name
func (s *Service) load(ctx context.Context, name string) (*models.Manifest, []byte, error) {
	var record *models.Manifest
	err := s.observeDB(ctx, "get_manifest", func(ctx context.Context) error {
		var err error
		record, err = s.catalog.GetManifest(ctx, name)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	var data []byte
	err = s.observeStorage(ctx, "download", record.ObjectKey, 0, func(ctx context.Context) error {
		var err error
		data, err = s.store.GetManifest(ctx, record.ObjectKey, s.cfg.MaxDocumentBytes)
		return err
	})
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil, fmt.Errorf("%s: object %s missing: %w", name, record.ObjectKey, ErrManifestNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	return record, data, nil
}

// Summary returns the flattened view of the latest revision of name
func (s *Service) Summary(ctx context.Context, name string) (*models.ManifestSummary, error) {
	if s.cache != nil {
		summary, err := s.cache.GetSummary(ctx, name)
		if err == nil && summary != nil {
			metrics.RecordCacheAccess("summary", true)
			return summary, nil
		}
		metrics.RecordCacheAccess("summary", false)
	}

	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	m, err := mpd.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("stored manifest %s no longer decodes: %w", name, err)
	}

	summary := Summarize(name, m)
	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, name, summary, s.cfg.CacheTTL); err != nil {
			s.logger.LogCacheOperation("set_summary", name, false, err)
		}
	}
	return summary, nil
}

// List returns catalog entries, most recently updated first
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Manifest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var manifests []*models.Manifest
	err := s.observeDB(ctx, "list_manifests", func(ctx context.Context) error {
		var err error
		manifests, err = s.catalog.ListManifests(ctx, limit, offset)
		return err
	})
	if manifests == nil {
		manifests = []*models.Manifest{}
	}
	return manifests, err
}

// Revisions returns the revision history of name, newest first
func (s *Service) Revisions(ctx context.Context, name string) ([]*models.ManifestRevision, error) {
	var revisions []*models.ManifestRevision
	err := s.observeDB(ctx, "list_revisions", func(ctx context.Context) error {
		var err error
		revisions, err = s.catalog.ListRevisions(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(revisions) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrManifestNotFound)
	}
	return revisions, nil
}

// Delete removes name with every stored revision
func (s *Service) Delete(ctx context.Context, name string) error {
	span, ctx := tracing.StartSpan(ctx, "manifest.delete")
	defer tracing.FinishSpan(span)
	tracing.SetTag(span, "manifest", name)

	err := s.observeDB(ctx, "delete_manifest", func(ctx context.Context) error {
		return s.catalog.DeleteManifest(ctx, name)
	})
	if err != nil {
		tracing.LogError(span, err)
		return err
	}

	prefix := storage.ManifestPrefix(s.cfg.KeyPrefix, name)
	err = s.observeStorage(ctx, "delete", prefix, 0, func(ctx context.Context) error {
		return s.store.DeletePrefix(ctx, prefix)
	})
	if err != nil {
		// The catalog row is gone, so the objects are unreachable; log and carry on
		s.logger.WithManifest(name).WithError(err).Warn("Failed to delete manifest objects")
	}

	if s.cache != nil {
		err := s.cache.InvalidateManifest(ctx, name)
		s.logger.LogCacheOperation("invalidate", name, false, err)
	}

	s.announce(ctx, &models.ManifestEvent{
		ID:         uuid.New().String(),
		Type:       models.ManifestEventDeleted,
		Name:       name,
		ObjectKey:  prefix,
		OccurredAt: s.now().UTC(),
	})

	metrics.RecordManifestDeleted()
	s.logger.WithManifest(name).Info("Manifest deleted")
	return nil
}

// MaxURLExpiry is the longest lifetime of a presigned manifest URL
const MaxURLExpiry = 7 * 24 * time.Hour

// URL returns a presigned link to the latest revision of name, for players that
// fetch directly from object storage
func (s *Service) URL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if expiry <= 0 || expiry > MaxURLExpiry {
		return "", fmt.Errorf("%w: expiry must be between 1s and %s", ErrInvalidRequest, MaxURLExpiry)
	}

	var record *models.Manifest
	err := s.observeDB(ctx, "get_manifest", func(ctx context.Context) error {
		var err error
		record, err = s.catalog.GetManifest(ctx, name)
		return err
	})
	if err != nil {
		return "", err
	}

	var u string
	err = s.observeStorage(ctx, "presign", record.ObjectKey, 0, func(ctx context.Context) error {
		var err error
		u, err = s.store.GetURL(ctx, record.ObjectKey, expiry)
		return err
	})
	return u, err
}

// Query evaluates an XPath expression against the latest revision of name
func (s *Service) Query(ctx context.Context, name, expr string) (*QueryResult, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return Query(data, expr)
}

// Generate packages a rendition ladder into an encoded manifest
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]byte, *packager.DASHResult, error) {
	span, _ := tracing.StartSpan(ctx, "manifest.generate")
	defer tracing.FinishSpan(span)

	opts, err := req.Options(s.cfg.DefaultProfiles)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	result, err := packager.GenerateDASH(opts)
	if errors.Is(err, packager.ErrNoResolutions) || errors.Is(err, packager.ErrNoDuration) {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err != nil {
		tracing.LogError(span, err)
		return nil, nil, err
	}

	data, err := mpd.Marshal(result.Manifest)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return data, result, nil
}

// WarmCache refreshes the cache after event. Stale events, whose revision is
// older than the cached one, are ignored; documents that no longer decode are
// reported as errors.
func (s *Service) WarmCache(ctx context.Context, event *models.ManifestEvent) error {
	if s.cache == nil {
		return nil
	}
	logger := s.logger.WithManifest(event.Name)

	switch event.Type {
	case models.ManifestEventDeleted:
		err := s.cache.InvalidateManifest(ctx, event.Name)
		logger.LogCacheOperation("invalidate", event.Name, false, err)
		return err

	case models.ManifestEventPublished:
		cached, err := s.cache.GetRevision(ctx, event.Name)
		if err != nil {
			return err
		}
		if cached > event.Revision {
			logger.Debugf("Skipping stale event for revision %d, cache holds %d", event.Revision, cached)
			return nil
		}

		record, data, err := s.load(ctx, event.Name)
		if errors.Is(err, ErrManifestNotFound) {
			// Deleted after the event was published
			return nil
		}
		if err != nil {
			return err
		}
		if event.Checksum != "" && record.Revision == event.Revision && record.Checksum != event.Checksum {
			return fmt.Errorf("checksum mismatch for %s revision %d", event.Name, event.Revision)
		}

		m, err := mpd.Unmarshal(data)
		if err != nil {
			logger.LogValidationFailure(event.Name, err)
			return fmt.Errorf("stored manifest %s no longer decodes: %w", event.Name, err)
		}

		s.fillCache(ctx, event.Name, record.Revision, data, Summarize(event.Name, m))
		return nil

	default:
		logger.Warnf("Ignoring event of unknown type %q", event.Type)
		return nil
	}
}

func (s *Service) fillCache(ctx context.Context, name string, revision int64, data []byte, summary *models.ManifestSummary) {
	if s.cache == nil {
		return
	}
	err := s.cache.SetManifest(ctx, name, revision, data, s.cfg.CacheTTL)
	s.logger.LogCacheOperation("set", name, false, err)
	if err == nil {
		err = s.cache.SetSummary(ctx, name, summary, s.cfg.CacheTTL)
		s.logger.LogCacheOperation("set_summary", name, false, err)
	}
}

func (s *Service) announce(ctx context.Context, event *models.ManifestEvent) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, event)
	metrics.RecordQueueEvent("publish", event.Type, metrics.Status(err))
	if err != nil {
		// The change is durable; consumers recover on the next event or cache expiry
		s.logger.WithManifest(event.Name).WithError(err).Warn("Failed to publish manifest event")
	}
}

func (s *Service) observeDB(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := tracing.Trace(ctx, "db."+op, fn)
	duration := time.Since(start)

	status := metrics.Status(err)
	if errors.Is(err, ErrManifestNotFound) {
		status = "not_found"
	}
	metrics.RecordDatabaseOperation(op, status, duration.Seconds())
	s.logger.LogDatabaseOperation(op, duration, err)
	return err
}

func (s *Service) observeStorage(ctx context.Context, op, key string, size int64, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := tracing.Trace(ctx, "storage."+op, fn)
	duration := time.Since(start)

	metrics.RecordStorageOperation(op, metrics.Status(err), duration.Seconds(), size)
	s.logger.LogStorageOperation(op, s.cfg.KeyPrefix, key, size, duration, err)
	return err
}
