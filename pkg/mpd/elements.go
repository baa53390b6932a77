package mpd

import (
	"encoding/xml"
	"slices"
	"time"
)

// ProgramInformationFields are the attributes and children of ProgramInformation.
type ProgramInformationFields struct {
	Lang               Optional[LanguageTag] `xml:"lang,attr"`
	MoreInformationURL Optional[string]      `xml:"moreInformationURL,attr"`

	Title     Optional[string] `xml:"Title"`
	Source    Optional[string] `xml:"Source"`
	Copyright Optional[string] `xml:"Copyright"`
}

// ProgramInformation carries descriptive metadata about the presentation.
type ProgramInformation struct {
	f ProgramInformationFields
}

// NewProgramInformation returns the ProgramInformation holding f.
func NewProgramInformation(f ProgramInformationFields) (ProgramInformation, error) {
	return ProgramInformation{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ProgramInformation) Fields() ProgramInformationFields {
	return x.f
}

func (x ProgramInformation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ProgramInformation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewProgramInformation, x)
}

// ProgramInformationBuilder accumulates the fields of a ProgramInformation. The zero value is ready to use.
type ProgramInformationBuilder struct {
	f ProgramInformationFields
}

func (b *ProgramInformationBuilder) Lang(v LanguageTag) *ProgramInformationBuilder {
	b.f.Lang = Some(v)
	return b
}

func (b *ProgramInformationBuilder) MoreInformationURL(v string) *ProgramInformationBuilder {
	b.f.MoreInformationURL = Some(v)
	return b
}

func (b *ProgramInformationBuilder) Title(v string) *ProgramInformationBuilder {
	b.f.Title = Some(v)
	return b
}

func (b *ProgramInformationBuilder) Source(v string) *ProgramInformationBuilder {
	b.f.Source = Some(v)
	return b
}

func (b *ProgramInformationBuilder) Copyright(v string) *ProgramInformationBuilder {
	b.f.Copyright = Some(v)
	return b
}

// Build validates the accumulated fields and returns the ProgramInformation.
func (b *ProgramInformationBuilder) Build() (ProgramInformation, error) {
	return NewProgramInformation(b.f)
}

// PatchLocationFields are the attributes and children of PatchLocation.
type PatchLocationFields struct {
	TTL Optional[float64] `xml:"ttl,attr"`

	URL string `xml:",chardata"`
}

// PatchLocation is where MPD patches for a dynamic presentation are fetched.
type PatchLocation struct {
	f PatchLocationFields
}

// NewPatchLocation returns the PatchLocation holding f.
func NewPatchLocation(f PatchLocationFields) (PatchLocation, error) {
	return PatchLocation{f: f}, nil
}

// Fields returns a copy of the field set.
func (x PatchLocation) Fields() PatchLocationFields {
	return x.f
}

func (x PatchLocation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *PatchLocation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewPatchLocation, x)
}

// PatchLocationBuilder accumulates the fields of a PatchLocation. The zero value is ready to use.
type PatchLocationBuilder struct {
	f PatchLocationFields
}

func (b *PatchLocationBuilder) TTL(v float64) *PatchLocationBuilder {
	b.f.TTL = Some(v)
	return b
}

func (b *PatchLocationBuilder) URL(v string) *PatchLocationBuilder {
	b.f.URL = v
	return b
}

// Build validates the accumulated fields and returns the PatchLocation.
func (b *PatchLocationBuilder) Build() (PatchLocation, error) {
	return NewPatchLocation(b.f)
}

// UIntVWithIDFields are the attributes and children of UIntVWithID.
type UIntVWithIDFields struct {
	ID          Optional[uint32]         `xml:"id,attr"`
	Profiles    Optional[ListOfProfiles] `xml:"profiles,attr"`
	ContentType Optional[ContentType]    `xml:"contentType,attr"`

	Values UIntVector `xml:",chardata"`
}

func (f UIntVWithIDFields) validate() error {
	if !f.ID.IsSet() {
		return missing("UIntVWithID", "@id must be set", "id")
	}
	return nil
}

// UIntVWithID is an InitializationGroup or InitializationPresentation element.
type UIntVWithID struct {
	f UIntVWithIDFields
}

// NewUIntVWithID validates f and returns the UIntVWithID holding f.
func NewUIntVWithID(f UIntVWithIDFields) (UIntVWithID, error) {
	if err := f.validate(); err != nil {
		return UIntVWithID{}, err
	}
	return UIntVWithID{f: f}, nil
}

// Fields returns a copy of the field set.
func (x UIntVWithID) Fields() UIntVWithIDFields {
	return x.f
}

func (x UIntVWithID) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *UIntVWithID) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewUIntVWithID, x)
}

// UIntVWithIDBuilder accumulates the fields of a UIntVWithID. The zero value is ready to use.
type UIntVWithIDBuilder struct {
	f UIntVWithIDFields
}

func (b *UIntVWithIDBuilder) ID(v uint32) *UIntVWithIDBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *UIntVWithIDBuilder) Profiles(v ...Profile) *UIntVWithIDBuilder {
	b.f.Profiles = Some(NewListOfProfiles(v...))
	return b
}

func (b *UIntVWithIDBuilder) ContentType(v ContentType) *UIntVWithIDBuilder {
	b.f.ContentType = Some(v)
	return b
}

func (b *UIntVWithIDBuilder) Values(v ...uint32) *UIntVWithIDBuilder {
	b.f.Values = NewUIntVector(v...)
	return b
}

// Build validates the accumulated fields and returns the UIntVWithID.
func (b *UIntVWithIDBuilder) Build() (UIntVWithID, error) {
	return NewUIntVWithID(b.f)
}

// MetricsRangeFields are the attributes and children of MetricsRange.
type MetricsRangeFields struct {
	StartTime Optional[Duration] `xml:"starttime,attr"`
	Duration  Optional[Duration] `xml:"duration,attr"`
}

// MetricsRange limits metrics collection to a time range.
type MetricsRange struct {
	f MetricsRangeFields
}

// NewMetricsRange returns the MetricsRange holding f.
func NewMetricsRange(f MetricsRangeFields) (MetricsRange, error) {
	return MetricsRange{f: f}, nil
}

// Fields returns a copy of the field set.
func (x MetricsRange) Fields() MetricsRangeFields {
	return x.f
}

func (x MetricsRange) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *MetricsRange) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewMetricsRange, x)
}

// MetricsRangeBuilder accumulates the fields of a MetricsRange. The zero value is ready to use.
type MetricsRangeBuilder struct {
	f MetricsRangeFields
}

func (b *MetricsRangeBuilder) StartTime(v time.Duration) *MetricsRangeBuilder {
	b.f.StartTime = Some(Duration(v))
	return b
}

func (b *MetricsRangeBuilder) Duration(v time.Duration) *MetricsRangeBuilder {
	b.f.Duration = Some(Duration(v))
	return b
}

// Build validates the accumulated fields and returns the MetricsRange.
func (b *MetricsRangeBuilder) Build() (MetricsRange, error) {
	return NewMetricsRange(b.f)
}

// MetricsFields are the attributes and children of Metrics.
type MetricsFields struct {
	Metrics Optional[string] `xml:"metrics,attr"`

	Range     []MetricsRange `xml:"Range"`
	Reporting []Descriptor   `xml:"Reporting"`
}

func (f MetricsFields) clone() MetricsFields {
	f.Range = slices.Clone(f.Range)
	f.Reporting = slices.Clone(f.Reporting)
	return f
}

func (f MetricsFields) validate() error {
	if !f.Metrics.IsSet() {
		return missing("Metrics", "@metrics must be set", "metrics")
	}
	if len(f.Reporting) == 0 {
		return emptyCollection("Metrics", "at least one Reporting element is required", "Reporting")
	}
	return nil
}

// Metrics requests DASH metrics reporting.
type Metrics struct {
	f MetricsFields
}

// NewMetrics validates f and returns the Metrics holding f.
func NewMetrics(f MetricsFields) (Metrics, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return Metrics{}, err
	}
	return Metrics{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Metrics) Fields() MetricsFields {
	return x.f.clone()
}

func (x Metrics) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Metrics) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewMetrics, x)
}

// MetricsBuilder accumulates the fields of a Metrics. The zero value is ready to use.
type MetricsBuilder struct {
	f MetricsFields
}

func (b *MetricsBuilder) Metrics(v string) *MetricsBuilder {
	b.f.Metrics = Some(v)
	return b
}

func (b *MetricsBuilder) Range(v ...MetricsRange) *MetricsBuilder {
	b.f.Range = slices.Clone(v)
	return b
}

func (b *MetricsBuilder) Reporting(v ...Descriptor) *MetricsBuilder {
	b.f.Reporting = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the Metrics.
func (b *MetricsBuilder) Build() (Metrics, error) {
	return NewMetrics(b.f)
}

// LeapSecondInformationFields are the attributes and children of LeapSecondInformation.
type LeapSecondInformationFields struct {
	AvailabilityStartLeapOffset     Optional[int32]    `xml:"availabilityStartLeapOffset,attr"`
	NextAvailabilityStartLeapOffset Optional[int32]    `xml:"nextAvailabilityStartLeapOffset,attr"`
	NextLeapChangeTime              Optional[DateTime] `xml:"nextLeapChangeTime,attr"`
}

func (f LeapSecondInformationFields) validate() error {
	if !f.AvailabilityStartLeapOffset.IsSet() {
		return missing("LeapSecondInformation", "@availabilityStartLeapOffset must be set", "availabilityStartLeapOffset")
	}
	return nil
}

// LeapSecondInformation carries the leap second offset of availability times.
type LeapSecondInformation struct {
	f LeapSecondInformationFields
}

// NewLeapSecondInformation validates f and returns the LeapSecondInformation holding f.
func NewLeapSecondInformation(f LeapSecondInformationFields) (LeapSecondInformation, error) {
	if err := f.validate(); err != nil {
		return LeapSecondInformation{}, err
	}
	return LeapSecondInformation{f: f}, nil
}

// Fields returns a copy of the field set.
func (x LeapSecondInformation) Fields() LeapSecondInformationFields {
	return x.f
}

func (x LeapSecondInformation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *LeapSecondInformation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewLeapSecondInformation, x)
}

// LeapSecondInformationBuilder accumulates the fields of a LeapSecondInformation. The zero value is ready to use.
type LeapSecondInformationBuilder struct {
	f LeapSecondInformationFields
}

func (b *LeapSecondInformationBuilder) AvailabilityStartLeapOffset(v int32) *LeapSecondInformationBuilder {
	b.f.AvailabilityStartLeapOffset = Some(v)
	return b
}

func (b *LeapSecondInformationBuilder) NextAvailabilityStartLeapOffset(v int32) *LeapSecondInformationBuilder {
	b.f.NextAvailabilityStartLeapOffset = Some(v)
	return b
}

func (b *LeapSecondInformationBuilder) NextLeapChangeTime(v time.Time) *LeapSecondInformationBuilder {
	b.f.NextLeapChangeTime = Some(NewDateTime(v))
	return b
}

// Build validates the accumulated fields and returns the LeapSecondInformation.
func (b *LeapSecondInformationBuilder) Build() (LeapSecondInformation, error) {
	return NewLeapSecondInformation(b.f)
}

// BaseURLFields are the attributes and children of BaseURL.
type BaseURLFields struct {
	ServiceLocation          Optional[string]   `xml:"serviceLocation,attr"`
	ByteRange                Optional[string]   `xml:"byteRange,attr"`
	AvailabilityTimeOffset   Optional[float64]  `xml:"availabilityTimeOffset,attr"`
	AvailabilityTimeComplete Optional[bool]     `xml:"availabilityTimeComplete,attr"`
	TimeShiftBufferDepth     Optional[Duration] `xml:"timeShiftBufferDepth,attr"`
	RangeAccess              Optional[bool]     `xml:"rangeAccess,attr"`

	URL string `xml:",chardata"`
}

// BaseURL is a base URL for resolving segment URLs.
type BaseURL struct {
	f BaseURLFields
}

// NewBaseURL returns the BaseURL holding f.
func NewBaseURL(f BaseURLFields) (BaseURL, error) {
	return BaseURL{f: f}, nil
}

// Fields returns a copy of the field set.
func (x BaseURL) Fields() BaseURLFields {
	return x.f
}

func (x BaseURL) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *BaseURL) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewBaseURL, x)
}

// BaseURLBuilder accumulates the fields of a BaseURL. The zero value is ready to use.
type BaseURLBuilder struct {
	f BaseURLFields
}

func (b *BaseURLBuilder) ServiceLocation(v string) *BaseURLBuilder {
	b.f.ServiceLocation = Some(v)
	return b
}

func (b *BaseURLBuilder) ByteRange(v string) *BaseURLBuilder {
	b.f.ByteRange = Some(v)
	return b
}

func (b *BaseURLBuilder) AvailabilityTimeOffset(v float64) *BaseURLBuilder {
	b.f.AvailabilityTimeOffset = Some(v)
	return b
}

func (b *BaseURLBuilder) AvailabilityTimeComplete(v bool) *BaseURLBuilder {
	b.f.AvailabilityTimeComplete = Some(v)
	return b
}

func (b *BaseURLBuilder) TimeShiftBufferDepth(v time.Duration) *BaseURLBuilder {
	b.f.TimeShiftBufferDepth = Some(Duration(v))
	return b
}

func (b *BaseURLBuilder) RangeAccess(v bool) *BaseURLBuilder {
	b.f.RangeAccess = Some(v)
	return b
}

func (b *BaseURLBuilder) URL(v string) *BaseURLBuilder {
	b.f.URL = v
	return b
}

// Build validates the accumulated fields and returns the BaseURL.
func (b *BaseURLBuilder) Build() (BaseURL, error) {
	return NewBaseURL(b.f)
}

// ModelPairFields are the attributes and children of ModelPair.
type ModelPairFields struct {
	BufferTime Optional[Duration] `xml:"bufferTime,attr"`
	Bandwidth  Optional[uint32]   `xml:"bandwidth,attr"`
}

func (f ModelPairFields) validate() error {
	if !f.BufferTime.IsSet() || !f.Bandwidth.IsSet() {
		return missing("ModelPair", "@bufferTime and @bandwidth must be set", "bufferTime", "bandwidth")
	}
	return nil
}

// ModelPair is one bufferTime/bandwidth point of an ExtendedBandwidth.
type ModelPair struct {
	f ModelPairFields
}

// NewModelPair validates f and returns the ModelPair holding f.
func NewModelPair(f ModelPairFields) (ModelPair, error) {
	if err := f.validate(); err != nil {
		return ModelPair{}, err
	}
	return ModelPair{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ModelPair) Fields() ModelPairFields {
	return x.f
}

func (x ModelPair) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ModelPair) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewModelPair, x)
}

// ModelPairBuilder accumulates the fields of a ModelPair. The zero value is ready to use.
type ModelPairBuilder struct {
	f ModelPairFields
}

func (b *ModelPairBuilder) BufferTime(v time.Duration) *ModelPairBuilder {
	b.f.BufferTime = Some(Duration(v))
	return b
}

func (b *ModelPairBuilder) Bandwidth(v uint32) *ModelPairBuilder {
	b.f.Bandwidth = Some(v)
	return b
}

// Build validates the accumulated fields and returns the ModelPair.
func (b *ModelPairBuilder) Build() (ModelPair, error) {
	return NewModelPair(b.f)
}

// ExtendedBandwidthFields are the attributes and children of ExtendedBandwidth.
type ExtendedBandwidthFields struct {
	VBR Optional[bool] `xml:"vbr,attr"`

	ModelPair []ModelPair `xml:"ModelPair"`
}

func (f ExtendedBandwidthFields) clone() ExtendedBandwidthFields {
	f.ModelPair = slices.Clone(f.ModelPair)
	return f
}

// ExtendedBandwidth describes a variable bitrate model.
type ExtendedBandwidth struct {
	f ExtendedBandwidthFields
}

// NewExtendedBandwidth returns the ExtendedBandwidth holding f.
func NewExtendedBandwidth(f ExtendedBandwidthFields) (ExtendedBandwidth, error) {
	f = f.clone()
	return ExtendedBandwidth{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ExtendedBandwidth) Fields() ExtendedBandwidthFields {
	return x.f.clone()
}

func (x ExtendedBandwidth) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ExtendedBandwidth) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewExtendedBandwidth, x)
}

// ExtendedBandwidthBuilder accumulates the fields of a ExtendedBandwidth. The zero value is ready to use.
type ExtendedBandwidthBuilder struct {
	f ExtendedBandwidthFields
}

func (b *ExtendedBandwidthBuilder) VBR(v bool) *ExtendedBandwidthBuilder {
	b.f.VBR = Some(v)
	return b
}

func (b *ExtendedBandwidthBuilder) ModelPair(v ...ModelPair) *ExtendedBandwidthBuilder {
	b.f.ModelPair = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the ExtendedBandwidth.
func (b *ExtendedBandwidthBuilder) Build() (ExtendedBandwidth, error) {
	return NewExtendedBandwidth(b.f)
}

// ContentComponentFields are the attributes and children of ContentComponent.
type ContentComponentFields struct {
	ID          Optional[uint32]      `xml:"id,attr"`
	Lang        Optional[LanguageTag] `xml:"lang,attr"`
	ContentType Optional[ContentType] `xml:"contentType,attr"`
	Par         Optional[Ratio]       `xml:"par,attr"`
	Tag         Optional[string]      `xml:"tag,attr"`

	Accessibility []Descriptor `xml:"Accessibility"`
	Role          []Descriptor `xml:"Role"`
	Rating        []Descriptor `xml:"Rating"`
	Viewpoint     []Descriptor `xml:"Viewpoint"`
}

func (f ContentComponentFields) clone() ContentComponentFields {
	f.Accessibility = slices.Clone(f.Accessibility)
	f.Role = slices.Clone(f.Role)
	f.Rating = slices.Clone(f.Rating)
	f.Viewpoint = slices.Clone(f.Viewpoint)
	return f
}

// ContentComponent describes one media component of an AdaptationSet.
type ContentComponent struct {
	f ContentComponentFields
}

// NewContentComponent returns the ContentComponent holding f.
func NewContentComponent(f ContentComponentFields) (ContentComponent, error) {
	f = f.clone()
	return ContentComponent{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ContentComponent) Fields() ContentComponentFields {
	return x.f.clone()
}

func (x ContentComponent) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ContentComponent) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewContentComponent, x)
}

// ContentComponentBuilder accumulates the fields of a ContentComponent. The zero value is ready to use.
type ContentComponentBuilder struct {
	f ContentComponentFields
}

func (b *ContentComponentBuilder) ID(v uint32) *ContentComponentBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *ContentComponentBuilder) Lang(v LanguageTag) *ContentComponentBuilder {
	b.f.Lang = Some(v)
	return b
}

func (b *ContentComponentBuilder) ContentType(v ContentType) *ContentComponentBuilder {
	b.f.ContentType = Some(v)
	return b
}

func (b *ContentComponentBuilder) Par(v Ratio) *ContentComponentBuilder {
	b.f.Par = Some(v)
	return b
}

func (b *ContentComponentBuilder) Tag(v string) *ContentComponentBuilder {
	b.f.Tag = Some(v)
	return b
}

func (b *ContentComponentBuilder) Accessibility(v ...Descriptor) *ContentComponentBuilder {
	b.f.Accessibility = slices.Clone(v)
	return b
}

func (b *ContentComponentBuilder) Role(v ...Descriptor) *ContentComponentBuilder {
	b.f.Role = slices.Clone(v)
	return b
}

func (b *ContentComponentBuilder) Rating(v ...Descriptor) *ContentComponentBuilder {
	b.f.Rating = slices.Clone(v)
	return b
}

func (b *ContentComponentBuilder) Viewpoint(v ...Descriptor) *ContentComponentBuilder {
	b.f.Viewpoint = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the ContentComponent.
func (b *ContentComponentBuilder) Build() (ContentComponent, error) {
	return NewContentComponent(b.f)
}

// LatencyFields are the attributes and children of Latency.
type LatencyFields struct {
	ReferenceID Optional[uint32] `xml:"referenceId,attr"`
	Target      Optional[uint32] `xml:"target,attr"`
	Max         Optional[uint32] `xml:"max,attr"`
	Min         Optional[uint32] `xml:"min,attr"`
}

// Latency is the service latency in milliseconds.
type Latency struct {
	f LatencyFields
}

// NewLatency returns the Latency holding f.
func NewLatency(f LatencyFields) (Latency, error) {
	return Latency{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Latency) Fields() LatencyFields {
	return x.f
}

func (x Latency) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Latency) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewLatency, x)
}

// LatencyBuilder accumulates the fields of a Latency. The zero value is ready to use.
type LatencyBuilder struct {
	f LatencyFields
}

func (b *LatencyBuilder) ReferenceID(v uint32) *LatencyBuilder {
	b.f.ReferenceID = Some(v)
	return b
}

func (b *LatencyBuilder) Target(v uint32) *LatencyBuilder {
	b.f.Target = Some(v)
	return b
}

func (b *LatencyBuilder) Max(v uint32) *LatencyBuilder {
	b.f.Max = Some(v)
	return b
}

func (b *LatencyBuilder) Min(v uint32) *LatencyBuilder {
	b.f.Min = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Latency.
func (b *LatencyBuilder) Build() (Latency, error) {
	return NewLatency(b.f)
}

// PlaybackRateFields are the attributes and children of PlaybackRate.
type PlaybackRateFields struct {
	Max Optional[float32] `xml:"max,attr"`
	Min Optional[float32] `xml:"min,attr"`
}

// PlaybackRate bounds the playback rate a client may use for catch-up.
type PlaybackRate struct {
	f PlaybackRateFields
}

// NewPlaybackRate returns the PlaybackRate holding f.
func NewPlaybackRate(f PlaybackRateFields) (PlaybackRate, error) {
	return PlaybackRate{f: f}, nil
}

// Fields returns a copy of the field set.
func (x PlaybackRate) Fields() PlaybackRateFields {
	return x.f
}

func (x PlaybackRate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *PlaybackRate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewPlaybackRate, x)
}

// PlaybackRateBuilder accumulates the fields of a PlaybackRate. The zero value is ready to use.
type PlaybackRateBuilder struct {
	f PlaybackRateFields
}

func (b *PlaybackRateBuilder) Max(v float32) *PlaybackRateBuilder {
	b.f.Max = Some(v)
	return b
}

func (b *PlaybackRateBuilder) Min(v float32) *PlaybackRateBuilder {
	b.f.Min = Some(v)
	return b
}

// Build validates the accumulated fields and returns the PlaybackRate.
func (b *PlaybackRateBuilder) Build() (PlaybackRate, error) {
	return NewPlaybackRate(b.f)
}

// OperatingQualityFields are the attributes and children of OperatingQuality.
type OperatingQualityFields struct {
	MediaType     Optional[OperatingMediaType] `xml:"mediaType,attr"`
	Min           Optional[uint32]             `xml:"min,attr"`
	Max           Optional[uint32]             `xml:"max,attr"`
	Target        Optional[uint32]             `xml:"target,attr"`
	Type          Optional[string]             `xml:"type,attr"`
	MaxDifference Optional[uint32]             `xml:"maxDifference,attr"`
}

// OperatingQuality bounds the quality ranking a client should select.
type OperatingQuality struct {
	f OperatingQualityFields
}

// NewOperatingQuality returns the OperatingQuality holding f.
func NewOperatingQuality(f OperatingQualityFields) (OperatingQuality, error) {
	return OperatingQuality{f: f}, nil
}

// Fields returns a copy of the field set.
func (x OperatingQuality) Fields() OperatingQualityFields {
	return x.f
}

func (x OperatingQuality) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *OperatingQuality) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewOperatingQuality, x)
}

// OperatingQualityBuilder accumulates the fields of a OperatingQuality. The zero value is ready to use.
type OperatingQualityBuilder struct {
	f OperatingQualityFields
}

func (b *OperatingQualityBuilder) MediaType(v OperatingMediaType) *OperatingQualityBuilder {
	b.f.MediaType = Some(v)
	return b
}

func (b *OperatingQualityBuilder) Min(v uint32) *OperatingQualityBuilder {
	b.f.Min = Some(v)
	return b
}

func (b *OperatingQualityBuilder) Max(v uint32) *OperatingQualityBuilder {
	b.f.Max = Some(v)
	return b
}

func (b *OperatingQualityBuilder) Target(v uint32) *OperatingQualityBuilder {
	b.f.Target = Some(v)
	return b
}

func (b *OperatingQualityBuilder) Type(v string) *OperatingQualityBuilder {
	b.f.Type = Some(v)
	return b
}

func (b *OperatingQualityBuilder) MaxDifference(v uint32) *OperatingQualityBuilder {
	b.f.MaxDifference = Some(v)
	return b
}

// Build validates the accumulated fields and returns the OperatingQuality.
func (b *OperatingQualityBuilder) Build() (OperatingQuality, error) {
	return NewOperatingQuality(b.f)
}

// OperatingBandwidthFields are the attributes and children of OperatingBandwidth.
type OperatingBandwidthFields struct {
	MediaType Optional[OperatingMediaType] `xml:"mediaType,attr"`
	Min       Optional[uint32]             `xml:"min,attr"`
	Max       Optional[uint32]             `xml:"max,attr"`
	Target    Optional[uint32]             `xml:"target,attr"`
}

// OperatingBandwidth bounds the bandwidth a client should use.
type OperatingBandwidth struct {
	f OperatingBandwidthFields
}

// NewOperatingBandwidth returns the OperatingBandwidth holding f.
func NewOperatingBandwidth(f OperatingBandwidthFields) (OperatingBandwidth, error) {
	return OperatingBandwidth{f: f}, nil
}

// Fields returns a copy of the field set.
func (x OperatingBandwidth) Fields() OperatingBandwidthFields {
	return x.f
}

func (x OperatingBandwidth) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *OperatingBandwidth) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewOperatingBandwidth, x)
}

// OperatingBandwidthBuilder accumulates the fields of a OperatingBandwidth. The zero value is ready to use.
type OperatingBandwidthBuilder struct {
	f OperatingBandwidthFields
}

func (b *OperatingBandwidthBuilder) MediaType(v OperatingMediaType) *OperatingBandwidthBuilder {
	b.f.MediaType = Some(v)
	return b
}

func (b *OperatingBandwidthBuilder) Min(v uint32) *OperatingBandwidthBuilder {
	b.f.Min = Some(v)
	return b
}

func (b *OperatingBandwidthBuilder) Max(v uint32) *OperatingBandwidthBuilder {
	b.f.Max = Some(v)
	return b
}

func (b *OperatingBandwidthBuilder) Target(v uint32) *OperatingBandwidthBuilder {
	b.f.Target = Some(v)
	return b
}

// Build validates the accumulated fields and returns the OperatingBandwidth.
func (b *OperatingBandwidthBuilder) Build() (OperatingBandwidth, error) {
	return NewOperatingBandwidth(b.f)
}

// ServiceDescriptionFields are the attributes and children of ServiceDescription.
type ServiceDescriptionFields struct {
	ID Optional[uint32] `xml:"id,attr"`

	Scope              []Descriptor         `xml:"Scope"`
	Latency            []Latency            `xml:"Latency"`
	PlaybackRate       []PlaybackRate       `xml:"PlaybackRate"`
	OperatingQuality   []OperatingQuality   `xml:"OperatingQuality"`
	OperatingBandwidth []OperatingBandwidth `xml:"OperatingBandwidth"`
}

func (f ServiceDescriptionFields) clone() ServiceDescriptionFields {
	f.Scope = slices.Clone(f.Scope)
	f.Latency = slices.Clone(f.Latency)
	f.PlaybackRate = slices.Clone(f.PlaybackRate)
	f.OperatingQuality = slices.Clone(f.OperatingQuality)
	f.OperatingBandwidth = slices.Clone(f.OperatingBandwidth)
	return f
}

func (f ServiceDescriptionFields) validate() error {
	if !f.ID.IsSet() {
		return missing("ServiceDescription", "@id must be set", "id")
	}
	return nil
}

// ServiceDescription carries service provider expectations for playback.
type ServiceDescription struct {
	f ServiceDescriptionFields
}

// NewServiceDescription validates f and returns the ServiceDescription holding f.
func NewServiceDescription(f ServiceDescriptionFields) (ServiceDescription, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return ServiceDescription{}, err
	}
	return ServiceDescription{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ServiceDescription) Fields() ServiceDescriptionFields {
	return x.f.clone()
}

func (x ServiceDescription) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ServiceDescription) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewServiceDescription, x)
}

// ServiceDescriptionBuilder accumulates the fields of a ServiceDescription. The zero value is ready to use.
type ServiceDescriptionBuilder struct {
	f ServiceDescriptionFields
}

func (b *ServiceDescriptionBuilder) ID(v uint32) *ServiceDescriptionBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *ServiceDescriptionBuilder) Scope(v ...Descriptor) *ServiceDescriptionBuilder {
	b.f.Scope = slices.Clone(v)
	return b
}

func (b *ServiceDescriptionBuilder) Latency(v ...Latency) *ServiceDescriptionBuilder {
	b.f.Latency = slices.Clone(v)
	return b
}

func (b *ServiceDescriptionBuilder) PlaybackRate(v ...PlaybackRate) *ServiceDescriptionBuilder {
	b.f.PlaybackRate = slices.Clone(v)
	return b
}

func (b *ServiceDescriptionBuilder) OperatingQuality(v ...OperatingQuality) *ServiceDescriptionBuilder {
	b.f.OperatingQuality = slices.Clone(v)
	return b
}

func (b *ServiceDescriptionBuilder) OperatingBandwidth(v ...OperatingBandwidth) *ServiceDescriptionBuilder {
	b.f.OperatingBandwidth = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the ServiceDescription.
func (b *ServiceDescriptionBuilder) Build() (ServiceDescription, error) {
	return NewServiceDescription(b.f)
}

// SubsetFields are the attributes and children of Subset.
type SubsetFields struct {
	Contains Optional[UIntVector] `xml:"contains,attr"`
	ID       Optional[string]     `xml:"id,attr"`
}

func (f SubsetFields) validate() error {
	if !f.Contains.IsSet() {
		return missing("Subset", "@contains must be set", "contains")
	}
	return nil
}

// Subset restricts which AdaptationSets may be played together.
type Subset struct {
	f SubsetFields
}

// NewSubset validates f and returns the Subset holding f.
func NewSubset(f SubsetFields) (Subset, error) {
	if err := f.validate(); err != nil {
		return Subset{}, err
	}
	return Subset{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Subset) Fields() SubsetFields {
	return x.f
}

func (x Subset) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Subset) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSubset, x)
}

// SubsetBuilder accumulates the fields of a Subset. The zero value is ready to use.
type SubsetBuilder struct {
	f SubsetFields
}

func (b *SubsetBuilder) Contains(v ...uint32) *SubsetBuilder {
	b.f.Contains = Some(NewUIntVector(v...))
	return b
}

func (b *SubsetBuilder) ID(v string) *SubsetBuilder {
	b.f.ID = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Subset.
func (b *SubsetBuilder) Build() (Subset, error) {
	return NewSubset(b.f)
}

// URLFields are the attributes and children of URL.
type URLFields struct {
	SourceURL Optional[string]    `xml:"sourceURL,attr"`
	Range     Optional[ByteRange] `xml:"range,attr"`
}

// URL is a URLType element: Initialization, RepresentationIndex or
// BitstreamSwitching.
type URL struct {
	f URLFields
}

// NewURL returns the URL holding f.
func NewURL(f URLFields) (URL, error) {
	return URL{f: f}, nil
}

// Fields returns a copy of the field set.
func (x URL) Fields() URLFields {
	return x.f
}

func (x URL) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *URL) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewURL, x)
}

// URLBuilder accumulates the fields of a URL. The zero value is ready to use.
type URLBuilder struct {
	f URLFields
}

func (b *URLBuilder) SourceURL(v string) *URLBuilder {
	b.f.SourceURL = Some(v)
	return b
}

func (b *URLBuilder) Range(v ByteRange) *URLBuilder {
	b.f.Range = Some(v)
	return b
}

// Build validates the accumulated fields and returns the URL.
func (b *URLBuilder) Build() (URL, error) {
	return NewURL(b.f)
}

// FCSFields are the attributes and children of FCS.
type FCSFields struct {
	T Optional[uint64] `xml:"t,attr"`
	D Optional[uint64] `xml:"d,attr"`
}

func (f FCSFields) validate() error {
	if !f.T.IsSet() {
		return missing("FCS", "@t must be set", "t")
	}
	return nil
}

// FCS is one failover content span.
type FCS struct {
	f FCSFields
}

// NewFCS validates f and returns the FCS holding f.
func NewFCS(f FCSFields) (FCS, error) {
	if err := f.validate(); err != nil {
		return FCS{}, err
	}
	return FCS{f: f}, nil
}

// Fields returns a copy of the field set.
func (x FCS) Fields() FCSFields {
	return x.f
}

func (x FCS) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *FCS) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewFCS, x)
}

// FCSBuilder accumulates the fields of a FCS. The zero value is ready to use.
type FCSBuilder struct {
	f FCSFields
}

func (b *FCSBuilder) T(v uint64) *FCSBuilder {
	b.f.T = Some(v)
	return b
}

func (b *FCSBuilder) D(v uint64) *FCSBuilder {
	b.f.D = Some(v)
	return b
}

// Build validates the accumulated fields and returns the FCS.
func (b *FCSBuilder) Build() (FCS, error) {
	return NewFCS(b.f)
}

// FailoverContentFields are the attributes and children of FailoverContent.
type FailoverContentFields struct {
	Valid Optional[bool] `xml:"valid,attr"`

	FCS []FCS `xml:"FCS"`
}

func (f FailoverContentFields) clone() FailoverContentFields {
	f.FCS = slices.Clone(f.FCS)
	return f
}

func (f FailoverContentFields) validate() error {
	if len(f.FCS) == 0 {
		return emptyCollection("FailoverContent", "at least one FCS element is required", "FCS")
	}
	return nil
}

// FailoverContent lists spans where segments carry failover content.
type FailoverContent struct {
	f FailoverContentFields
}

// NewFailoverContent validates f and returns the FailoverContent holding f.
func NewFailoverContent(f FailoverContentFields) (FailoverContent, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return FailoverContent{}, err
	}
	return FailoverContent{f: f}, nil
}

// Fields returns a copy of the field set.
func (x FailoverContent) Fields() FailoverContentFields {
	return x.f.clone()
}

func (x FailoverContent) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *FailoverContent) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewFailoverContent, x)
}

// FailoverContentBuilder accumulates the fields of a FailoverContent. The zero value is ready to use.
type FailoverContentBuilder struct {
	f FailoverContentFields
}

func (b *FailoverContentBuilder) Valid(v bool) *FailoverContentBuilder {
	b.f.Valid = Some(v)
	return b
}

func (b *FailoverContentBuilder) FCS(v ...FCS) *FailoverContentBuilder {
	b.f.FCS = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the FailoverContent.
func (b *FailoverContentBuilder) Build() (FailoverContent, error) {
	return NewFailoverContent(b.f)
}

// SegmentURLFields are the attributes and children of SegmentURL.
type SegmentURLFields struct {
	Media      Optional[string]    `xml:"media,attr"`
	MediaRange Optional[ByteRange] `xml:"mediaRange,attr"`
	Index      Optional[string]    `xml:"index,attr"`
	IndexRange Optional[ByteRange] `xml:"indexRange,attr"`
}

// SegmentURL is one entry of a SegmentList.
type SegmentURL struct {
	f SegmentURLFields
}

// NewSegmentURL returns the SegmentURL holding f.
func NewSegmentURL(f SegmentURLFields) (SegmentURL, error) {
	return SegmentURL{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SegmentURL) Fields() SegmentURLFields {
	return x.f
}

func (x SegmentURL) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SegmentURL) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegmentURL, x)
}

// SegmentURLBuilder accumulates the fields of a SegmentURL. The zero value is ready to use.
type SegmentURLBuilder struct {
	f SegmentURLFields
}

func (b *SegmentURLBuilder) Media(v string) *SegmentURLBuilder {
	b.f.Media = Some(v)
	return b
}

func (b *SegmentURLBuilder) MediaRange(v ByteRange) *SegmentURLBuilder {
	b.f.MediaRange = Some(v)
	return b
}

func (b *SegmentURLBuilder) Index(v string) *SegmentURLBuilder {
	b.f.Index = Some(v)
	return b
}

func (b *SegmentURLBuilder) IndexRange(v ByteRange) *SegmentURLBuilder {
	b.f.IndexRange = Some(v)
	return b
}

// Build validates the accumulated fields and returns the SegmentURL.
func (b *SegmentURLBuilder) Build() (SegmentURL, error) {
	return NewSegmentURL(b.f)
}
