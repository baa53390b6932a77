package manifest

import (
	"encoding/xml"
	"errors"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

var (
	ErrManifestNotFound  = models.ErrManifestNotFound
	ErrInvalidName       = errors.New("invalid manifest name")
	ErrDocumentTooLarge  = errors.New("document exceeds size limit")
	ErrPublishInProgress = errors.New("another publish of this manifest is in progress")
	ErrUnknownRendition  = errors.New("unknown rendition")
	ErrInvalidQuery      = errors.New("invalid xpath expression")
	ErrInvalidRequest    = errors.New("invalid generate request")
)

// Rejection labels used in metrics and API responses
const (
	KindMalformedXML   = "malformed xml"
	KindMalformedValue = "malformed value"
	KindUpstreamCodec  = "upstream codec"
	KindNotMPD         = "not an mpd"
)

// Classify returns the rejection label of a decode or build error and whether
// err is a rejection of the document at all, as opposed to an I/O failure.
func Classify(err error) (string, bool) {
	var verr *mpd.ValidationError
	var syntax *xml.SyntaxError

	switch {
	case errors.As(err, &verr):
		return verr.Kind.String(), true
	case errors.Is(err, mpd.ErrMalformedValue):
		return KindMalformedValue, true
	case errors.Is(err, mpd.ErrUpstreamCodec):
		return KindUpstreamCodec, true
	case errors.Is(err, mpd.ErrNotMPD):
		return KindNotMPD, true
	case errors.Is(err, mpd.ErrMalformedDocument), errors.As(err, &syntax):
		return KindMalformedXML, true
	default:
		return "", false
	}
}
