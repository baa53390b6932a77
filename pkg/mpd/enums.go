package mpd

import (
	"strconv"
	"strings"
)

func parseEnum[T ~string](typ, s string, values ...T) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return "", malformed(typ, s, "expected one of "+strings.Join(names, ", "))
}

// PresentationType is MPD@type.
type PresentationType string

const (
	PresentationStatic  PresentationType = "static"
	PresentationDynamic PresentationType = "dynamic"
)

func (p PresentationType) String() string { return string(p) }

func (p PresentationType) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *PresentationType) UnmarshalText(text []byte) error {
	v, err := parseEnum("PresentationType", string(text), PresentationStatic, PresentationDynamic)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ContentType is an RFC 6838 top level media type.
type ContentType string

const (
	ContentText        ContentType = "text"
	ContentImage       ContentType = "image"
	ContentAudio       ContentType = "audio"
	ContentVideo       ContentType = "video"
	ContentApplication ContentType = "application"
	ContentFont        ContentType = "font"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) MarshalText() ([]byte, error) { return []byte(c), nil }

func (c *ContentType) UnmarshalText(text []byte) error {
	v, err := parseEnum("ContentType", string(text),
		ContentText, ContentImage, ContentAudio, ContentVideo, ContentApplication, ContentFont)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// VideoScan is @scanType.
type VideoScan string

const (
	ScanProgressive VideoScan = "progressive"
	ScanInterlaced  VideoScan = "interlaced"
	ScanUnknown     VideoScan = "unknown"
)

func (v VideoScan) String() string { return string(v) }

func (v VideoScan) MarshalText() ([]byte, error) { return []byte(v), nil }

func (v *VideoScan) UnmarshalText(text []byte) error {
	x, err := parseEnum("VideoScan", string(text), ScanProgressive, ScanInterlaced, ScanUnknown)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// XLinkActuate is @xlink:actuate.
type XLinkActuate string

const (
	ActuateOnLoad    XLinkActuate = "onLoad"
	ActuateOnRequest XLinkActuate = "onRequest"
)

func (a XLinkActuate) String() string { return string(a) }

func (a XLinkActuate) MarshalText() ([]byte, error) { return []byte(a), nil }

func (a *XLinkActuate) UnmarshalText(text []byte) error {
	v, err := parseEnum("XLinkActuate", string(text), ActuateOnLoad, ActuateOnRequest)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// SwitchingType is Switching@type.
type SwitchingType string

const (
	SwitchingMedia     SwitchingType = "media"
	SwitchingBitstream SwitchingType = "bitstream"
)

func (s SwitchingType) String() string { return string(s) }

func (s SwitchingType) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *SwitchingType) UnmarshalText(text []byte) error {
	v, err := parseEnum("SwitchingType", string(text), SwitchingMedia, SwitchingBitstream)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RandomAccessType is RandomAccess@type.
type RandomAccessType string

const (
	RandomAccessClosed  RandomAccessType = "closed"
	RandomAccessOpen    RandomAccessType = "open"
	RandomAccessGradual RandomAccessType = "gradual"
)

func (r RandomAccessType) String() string { return string(r) }

func (r RandomAccessType) MarshalText() ([]byte, error) { return []byte(r), nil }

func (r *RandomAccessType) UnmarshalText(text []byte) error {
	v, err := parseEnum("RandomAccessType", string(text), RandomAccessClosed, RandomAccessOpen, RandomAccessGradual)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ProducerReferenceTimeType is ProducerReferenceTime@type. Absent means encoder.
type ProducerReferenceTimeType string

const (
	ReferenceEncoder     ProducerReferenceTimeType = "encoder"
	ReferenceCaptured    ProducerReferenceTimeType = "captured"
	ReferenceApplication ProducerReferenceTimeType = "application"
)

func (p ProducerReferenceTimeType) String() string { return string(p) }

func (p ProducerReferenceTimeType) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *ProducerReferenceTimeType) UnmarshalText(text []byte) error {
	v, err := parseEnum("ProducerReferenceTimeType", string(text),
		ReferenceEncoder, ReferenceCaptured, ReferenceApplication)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PopularitySource is ContentPopularityRate@source.
type PopularitySource string

const (
	SourceContent    PopularitySource = "content"
	SourceStatistics PopularitySource = "statistics"
	SourceOther      PopularitySource = "other"
)

func (p PopularitySource) String() string { return string(p) }

func (p PopularitySource) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *PopularitySource) UnmarshalText(text []byte) error {
	v, err := parseEnum("PopularitySource", string(text), SourceContent, SourceStatistics, SourceOther)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PreselectionOrder is Preselection@order.
type PreselectionOrder string

const (
	OrderUndefined    PreselectionOrder = "undefined"
	OrderTimeOrdered  PreselectionOrder = "time-ordered"
	OrderFullyOrdered PreselectionOrder = "fully-ordered"
)

func (p PreselectionOrder) String() string { return string(p) }

func (p PreselectionOrder) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *PreselectionOrder) UnmarshalText(text []byte) error {
	v, err := parseEnum("PreselectionOrder", string(text), OrderUndefined, OrderTimeOrdered, OrderFullyOrdered)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// OperatingMediaType is @mediaType of OperatingQuality and OperatingBandwidth.
type OperatingMediaType string

const (
	MediaVideo OperatingMediaType = "video"
	MediaAudio OperatingMediaType = "audio"
	MediaAny   OperatingMediaType = "any"
)

func (m OperatingMediaType) String() string { return string(m) }

func (m OperatingMediaType) MarshalText() ([]byte, error) { return []byte(m), nil }

func (m *OperatingMediaType) UnmarshalText(text []byte) error {
	v, err := parseEnum("OperatingMediaType", string(text), MediaVideo, MediaAudio, MediaAny)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ContentEncoding is Event@contentEncoding.
type ContentEncoding string

const EncodingBase64 ContentEncoding = "base64"

func (c ContentEncoding) String() string { return string(c) }

func (c ContentEncoding) MarshalText() ([]byte, error) { return []byte(c), nil }

func (c *ContentEncoding) UnmarshalText(text []byte) error {
	v, err := parseEnum("ContentEncoding", string(text), EncodingBase64)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// StreamAccessPoint is a SAP type, 0 through 6.
type StreamAccessPoint uint8

const (
	SAPType0 StreamAccessPoint = iota
	SAPType1
	SAPType2
	SAPType3
	SAPType4
	SAPType5
	SAPType6
)

// ParseStreamAccessPoint parses a decimal SAP type.
func ParseStreamAccessPoint(s string) (StreamAccessPoint, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, upstream("StreamAccessPoint", s, err)
	}
	if n > uint64(SAPType6) {
		return 0, malformed("StreamAccessPoint", s, "SAP type must be between 0 and 6")
	}
	return StreamAccessPoint(n), nil
}

func (s StreamAccessPoint) String() string { return strconv.Itoa(int(s)) }

func (s StreamAccessPoint) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *StreamAccessPoint) UnmarshalText(text []byte) error {
	v, err := ParseStreamAccessPoint(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
