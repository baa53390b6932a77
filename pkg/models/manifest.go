package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ErrManifestNotFound is returned by every layer when a manifest name is unknown
var ErrManifestNotFound = errors.New("manifest not found")

// Manifest is the catalog entry for a stored MPD. The document itself lives in
// object storage under ObjectKey.
type Manifest struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Revision        int64     `json:"revision" db:"revision"`
	ObjectKey       string    `json:"object_key" db:"object_key"`
	Type            string    `json:"type" db:"type"`
	Profiles        []string  `json:"profiles" db:"profiles"`
	Periods         int       `json:"periods" db:"periods"`
	Representations int       `json:"representations" db:"representations"`
	SizeBytes       int64     `json:"size_bytes" db:"size_bytes"`
	Checksum        string    `json:"checksum" db:"checksum"`
	Metadata        Metadata  `json:"metadata,omitempty" db:"metadata"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Metadata holds caller supplied labels stored alongside a manifest
type Metadata map[string]interface{}

// Value implements driver.Valuer for database storage
func (m Metadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(Metadata)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return nil
	}
}

// ManifestEventType constants
const (
	ManifestEventPublished = "manifest.published"
	ManifestEventDeleted   = "manifest.deleted"
)

// ManifestEvent is broadcast after a manifest revision is stored or removed
type ManifestEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Revision   int64     `json:"revision"`
	ObjectKey  string    `json:"object_key"`
	Checksum   string    `json:"checksum,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ManifestSummary is a flattened view of an MPD for listings and the CLI
type ManifestSummary struct {
	Name                      string          `json:"name,omitempty"`
	ID                        string          `json:"id,omitempty"`
	Type                      string          `json:"type"`
	Profiles                  []string        `json:"profiles"`
	MediaPresentationDuration string          `json:"media_presentation_duration,omitempty"`
	MinBufferTime             string          `json:"min_buffer_time,omitempty"`
	AvailabilityStartTime     *time.Time      `json:"availability_start_time,omitempty"`
	PublishTime               *time.Time      `json:"publish_time,omitempty"`
	Periods                   []PeriodSummary `json:"periods"`
}

// PeriodSummary describes one Period
type PeriodSummary struct {
	ID             string              `json:"id,omitempty"`
	Start          string              `json:"start,omitempty"`
	Duration       string              `json:"duration,omitempty"`
	Remote         string              `json:"remote,omitempty"`
	AdaptationSets []AdaptationSummary `json:"adaptation_sets"`
}

// AdaptationSummary describes one AdaptationSet
type AdaptationSummary struct {
	ID              *uint32                 `json:"id,omitempty"`
	ContentType     string                  `json:"content_type,omitempty"`
	MimeType        string                  `json:"mime_type,omitempty"`
	Lang            string                  `json:"lang,omitempty"`
	Protected       bool                    `json:"protected"`
	Representations []RepresentationSummary `json:"representations"`
}

// RepresentationSummary describes one Representation
type RepresentationSummary struct {
	ID        string   `json:"id"`
	Bandwidth uint32   `json:"bandwidth"`
	Width     uint32   `json:"width,omitempty"`
	Height    uint32   `json:"height,omitempty"`
	FrameRate string   `json:"frame_rate,omitempty"`
	Codecs    []string `json:"codecs,omitempty"`
}

// RepresentationCount totals representations across all periods
func (s ManifestSummary) RepresentationCount() int {
	n := 0
	for _, p := range s.Periods {
		for _, as := range p.AdaptationSets {
			n += len(as.Representations)
		}
	}
	return n
}

// ManifestRevision is one historical revision of a manifest
type ManifestRevision struct {
	Name      string    `json:"name" db:"name"`
	Revision  int64     `json:"revision" db:"revision"`
	ObjectKey string    `json:"object_key" db:"object_key"`
	SizeBytes int64     `json:"size_bytes" db:"size_bytes"`
	Checksum  string    `json:"checksum" db:"checksum"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
