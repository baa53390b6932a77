package mpd

import (
	"encoding/xml"
	"slices"
	"time"
)

// SegmentBaseInformation is the attribute and element group shared by every
// segment addressing scheme.
type SegmentBaseInformation struct {
	Timescale                Optional[uint32]    `xml:"timescale,attr"`
	PresentationTimeOffset   Optional[uint64]    `xml:"presentationTimeOffset,attr"`
	EptDelta                 Optional[Integer]   `xml:"eptDelta,attr"`
	PdDelta                  Optional[Integer]   `xml:"pdDelta,attr"`
	PresentationDuration     Optional[uint64]    `xml:"presentationDuration,attr"`
	TimeShiftBufferDepth     Optional[Duration]  `xml:"timeShiftBufferDepth,attr"`
	IndexRange               Optional[ByteRange] `xml:"indexRange,attr"`
	IndexRangeExact          Optional[bool]      `xml:"indexRangeExact,attr"`
	AvailabilityTimeOffset   Optional[float64]   `xml:"availabilityTimeOffset,attr"`
	AvailabilityTimeComplete Optional[bool]      `xml:"availabilityTimeComplete,attr"`

	Initialization      Optional[URL]             `xml:"Initialization"`
	RepresentationIndex Optional[URL]             `xml:"RepresentationIndex"`
	FailoverContent     Optional[FailoverContent] `xml:"FailoverContent"`
}

// MultipleSegmentBaseInformation extends SegmentBaseInformation for schemes that
// address more than one segment.
type MultipleSegmentBaseInformation struct {
	Duration    Optional[uint32] `xml:"duration,attr"`
	StartNumber Optional[uint32] `xml:"startNumber,attr"`
	EndNumber   Optional[uint32] `xml:"endNumber,attr"`

	SegmentBaseInformation

	SegmentTimeline    Optional[SegmentTimeline] `xml:"SegmentTimeline"`
	BitstreamSwitching Optional[URL]             `xml:"BitstreamSwitching"`
}

// SegmentBaseFields are the attributes and children of SegmentBase.
type SegmentBaseFields struct {
	SegmentBaseInformation
}

// SegmentBase addresses a single media segment.
type SegmentBase struct {
	f SegmentBaseFields
}

// NewSegmentBase returns the SegmentBase holding f.
func NewSegmentBase(f SegmentBaseFields) (SegmentBase, error) {
	return SegmentBase{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SegmentBase) Fields() SegmentBaseFields {
	return x.f
}

func (x SegmentBase) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SegmentBase) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegmentBase, x)
}

// SegmentBaseBuilder accumulates the fields of a SegmentBase. The zero value is ready to use.
type SegmentBaseBuilder struct {
	f SegmentBaseFields
}

func (b *SegmentBaseBuilder) Timescale(v uint32) *SegmentBaseBuilder {
	b.f.Timescale = Some(v)
	return b
}

func (b *SegmentBaseBuilder) PresentationTimeOffset(v uint64) *SegmentBaseBuilder {
	b.f.PresentationTimeOffset = Some(v)
	return b
}

func (b *SegmentBaseBuilder) EptDelta(v int64) *SegmentBaseBuilder {
	b.f.EptDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentBaseBuilder) PdDelta(v int64) *SegmentBaseBuilder {
	b.f.PdDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentBaseBuilder) PresentationDuration(v uint64) *SegmentBaseBuilder {
	b.f.PresentationDuration = Some(v)
	return b
}

func (b *SegmentBaseBuilder) TimeShiftBufferDepth(v time.Duration) *SegmentBaseBuilder {
	b.f.TimeShiftBufferDepth = Some(Duration(v))
	return b
}

func (b *SegmentBaseBuilder) IndexRange(v ByteRange) *SegmentBaseBuilder {
	b.f.IndexRange = Some(v)
	return b
}

func (b *SegmentBaseBuilder) IndexRangeExact(v bool) *SegmentBaseBuilder {
	b.f.IndexRangeExact = Some(v)
	return b
}

func (b *SegmentBaseBuilder) AvailabilityTimeOffset(v float64) *SegmentBaseBuilder {
	b.f.AvailabilityTimeOffset = Some(v)
	return b
}

func (b *SegmentBaseBuilder) AvailabilityTimeComplete(v bool) *SegmentBaseBuilder {
	b.f.AvailabilityTimeComplete = Some(v)
	return b
}

func (b *SegmentBaseBuilder) Initialization(v URL) *SegmentBaseBuilder {
	b.f.Initialization = Some(v)
	return b
}

func (b *SegmentBaseBuilder) RepresentationIndex(v URL) *SegmentBaseBuilder {
	b.f.RepresentationIndex = Some(v)
	return b
}

func (b *SegmentBaseBuilder) FailoverContent(v FailoverContent) *SegmentBaseBuilder {
	b.f.FailoverContent = Some(v)
	return b
}

// Build validates the accumulated fields and returns the SegmentBase.
func (b *SegmentBaseBuilder) Build() (SegmentBase, error) {
	return NewSegmentBase(b.f)
}

// SegmentListFields are the attributes and children of SegmentList.
type SegmentListFields struct {
	XLinkHref    Optional[string]       `xml:"http://www.w3.org/1999/xlink href,attr"`
	XLinkActuate Optional[XLinkActuate] `xml:"http://www.w3.org/1999/xlink actuate,attr"`

	MultipleSegmentBaseInformation

	SegmentURL []SegmentURL `xml:"SegmentURL"`
}

func (f SegmentListFields) clone() SegmentListFields {
	f.SegmentURL = slices.Clone(f.SegmentURL)
	return f
}

// SegmentList addresses segments through an explicit list of URLs.
type SegmentList struct {
	f SegmentListFields
}

// NewSegmentList returns the SegmentList holding f.
func NewSegmentList(f SegmentListFields) (SegmentList, error) {
	f = f.clone()
	return SegmentList{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SegmentList) Fields() SegmentListFields {
	return x.f.clone()
}

func (x SegmentList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SegmentList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegmentList, x)
}

// SegmentListBuilder accumulates the fields of a SegmentList. The zero value is ready to use.
type SegmentListBuilder struct {
	f SegmentListFields
}

func (b *SegmentListBuilder) XLinkHref(v string) *SegmentListBuilder {
	b.f.XLinkHref = Some(v)
	return b
}

func (b *SegmentListBuilder) XLinkActuate(v XLinkActuate) *SegmentListBuilder {
	b.f.XLinkActuate = Some(v)
	return b
}

func (b *SegmentListBuilder) Duration(v uint32) *SegmentListBuilder {
	b.f.Duration = Some(v)
	return b
}

func (b *SegmentListBuilder) StartNumber(v uint32) *SegmentListBuilder {
	b.f.StartNumber = Some(v)
	return b
}

func (b *SegmentListBuilder) EndNumber(v uint32) *SegmentListBuilder {
	b.f.EndNumber = Some(v)
	return b
}

func (b *SegmentListBuilder) Timescale(v uint32) *SegmentListBuilder {
	b.f.Timescale = Some(v)
	return b
}

func (b *SegmentListBuilder) PresentationTimeOffset(v uint64) *SegmentListBuilder {
	b.f.PresentationTimeOffset = Some(v)
	return b
}

func (b *SegmentListBuilder) EptDelta(v int64) *SegmentListBuilder {
	b.f.EptDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentListBuilder) PdDelta(v int64) *SegmentListBuilder {
	b.f.PdDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentListBuilder) PresentationDuration(v uint64) *SegmentListBuilder {
	b.f.PresentationDuration = Some(v)
	return b
}

func (b *SegmentListBuilder) TimeShiftBufferDepth(v time.Duration) *SegmentListBuilder {
	b.f.TimeShiftBufferDepth = Some(Duration(v))
	return b
}

func (b *SegmentListBuilder) IndexRange(v ByteRange) *SegmentListBuilder {
	b.f.IndexRange = Some(v)
	return b
}

func (b *SegmentListBuilder) IndexRangeExact(v bool) *SegmentListBuilder {
	b.f.IndexRangeExact = Some(v)
	return b
}

func (b *SegmentListBuilder) AvailabilityTimeOffset(v float64) *SegmentListBuilder {
	b.f.AvailabilityTimeOffset = Some(v)
	return b
}

func (b *SegmentListBuilder) AvailabilityTimeComplete(v bool) *SegmentListBuilder {
	b.f.AvailabilityTimeComplete = Some(v)
	return b
}

func (b *SegmentListBuilder) Initialization(v URL) *SegmentListBuilder {
	b.f.Initialization = Some(v)
	return b
}

func (b *SegmentListBuilder) RepresentationIndex(v URL) *SegmentListBuilder {
	b.f.RepresentationIndex = Some(v)
	return b
}

func (b *SegmentListBuilder) FailoverContent(v FailoverContent) *SegmentListBuilder {
	b.f.FailoverContent = Some(v)
	return b
}

func (b *SegmentListBuilder) SegmentTimeline(v SegmentTimeline) *SegmentListBuilder {
	b.f.SegmentTimeline = Some(v)
	return b
}

func (b *SegmentListBuilder) BitstreamSwitching(v URL) *SegmentListBuilder {
	b.f.BitstreamSwitching = Some(v)
	return b
}

func (b *SegmentListBuilder) SegmentURL(v ...SegmentURL) *SegmentListBuilder {
	b.f.SegmentURL = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the SegmentList.
func (b *SegmentListBuilder) Build() (SegmentList, error) {
	return NewSegmentList(b.f)
}

// SegmentTemplateFields are the attributes and children of SegmentTemplate.
// The @initialization and @bitstreamSwitching templates are named
// InitializationTemplate and BitstreamSwitchingTemplate to keep them apart from
// the Initialization and BitstreamSwitching elements.
type SegmentTemplateFields struct {
	Media                      Optional[string] `xml:"media,attr"`
	Index                      Optional[string] `xml:"index,attr"`
	InitializationTemplate     Optional[string] `xml:"initialization,attr"`
	BitstreamSwitchingTemplate Optional[string] `xml:"bitstreamSwitching,attr"`

	MultipleSegmentBaseInformation
}

// SegmentTemplate addresses segments through URL templates.
type SegmentTemplate struct {
	f SegmentTemplateFields
}

// NewSegmentTemplate returns the SegmentTemplate holding f.
func NewSegmentTemplate(f SegmentTemplateFields) (SegmentTemplate, error) {
	return SegmentTemplate{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SegmentTemplate) Fields() SegmentTemplateFields {
	return x.f
}

func (x SegmentTemplate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SegmentTemplate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegmentTemplate, x)
}

// SegmentTemplateBuilder accumulates the fields of a SegmentTemplate. The zero value is ready to use.
type SegmentTemplateBuilder struct {
	f SegmentTemplateFields
}

func (b *SegmentTemplateBuilder) Media(v string) *SegmentTemplateBuilder {
	b.f.Media = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) Index(v string) *SegmentTemplateBuilder {
	b.f.Index = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) InitializationTemplate(v string) *SegmentTemplateBuilder {
	b.f.InitializationTemplate = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) BitstreamSwitchingTemplate(v string) *SegmentTemplateBuilder {
	b.f.BitstreamSwitchingTemplate = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) Duration(v uint32) *SegmentTemplateBuilder {
	b.f.Duration = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) StartNumber(v uint32) *SegmentTemplateBuilder {
	b.f.StartNumber = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) EndNumber(v uint32) *SegmentTemplateBuilder {
	b.f.EndNumber = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) Timescale(v uint32) *SegmentTemplateBuilder {
	b.f.Timescale = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) PresentationTimeOffset(v uint64) *SegmentTemplateBuilder {
	b.f.PresentationTimeOffset = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) EptDelta(v int64) *SegmentTemplateBuilder {
	b.f.EptDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentTemplateBuilder) PdDelta(v int64) *SegmentTemplateBuilder {
	b.f.PdDelta = Some(NewInteger(v))
	return b
}

func (b *SegmentTemplateBuilder) PresentationDuration(v uint64) *SegmentTemplateBuilder {
	b.f.PresentationDuration = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) TimeShiftBufferDepth(v time.Duration) *SegmentTemplateBuilder {
	b.f.TimeShiftBufferDepth = Some(Duration(v))
	return b
}

func (b *SegmentTemplateBuilder) IndexRange(v ByteRange) *SegmentTemplateBuilder {
	b.f.IndexRange = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) IndexRangeExact(v bool) *SegmentTemplateBuilder {
	b.f.IndexRangeExact = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) AvailabilityTimeOffset(v float64) *SegmentTemplateBuilder {
	b.f.AvailabilityTimeOffset = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) AvailabilityTimeComplete(v bool) *SegmentTemplateBuilder {
	b.f.AvailabilityTimeComplete = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) Initialization(v URL) *SegmentTemplateBuilder {
	b.f.Initialization = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) RepresentationIndex(v URL) *SegmentTemplateBuilder {
	b.f.RepresentationIndex = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) FailoverContent(v FailoverContent) *SegmentTemplateBuilder {
	b.f.FailoverContent = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) SegmentTimeline(v SegmentTimeline) *SegmentTemplateBuilder {
	b.f.SegmentTimeline = Some(v)
	return b
}

func (b *SegmentTemplateBuilder) BitstreamSwitching(v URL) *SegmentTemplateBuilder {
	b.f.BitstreamSwitching = Some(v)
	return b
}

// Build validates the accumulated fields and returns the SegmentTemplate.
func (b *SegmentTemplateBuilder) Build() (SegmentTemplate, error) {
	return NewSegmentTemplate(b.f)
}

// SegmentTimelineFields are the attributes and children of SegmentTimeline.
type SegmentTimelineFields struct {
	S []Segment `xml:"S"`
}

func (f SegmentTimelineFields) clone() SegmentTimelineFields {
	f.S = slices.Clone(f.S)
	return f
}

func (f SegmentTimelineFields) validate() error {
	if len(f.S) == 0 {
		return emptyCollection("SegmentTimeline", "at least one S element is required", "S")
	}
	return nil
}

// SegmentTimeline lists the segments of a representation with their timing.
type SegmentTimeline struct {
	f SegmentTimelineFields
}

// NewSegmentTimeline validates f and returns the SegmentTimeline holding f.
func NewSegmentTimeline(f SegmentTimelineFields) (SegmentTimeline, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return SegmentTimeline{}, err
	}
	return SegmentTimeline{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SegmentTimeline) Fields() SegmentTimelineFields {
	return x.f.clone()
}

func (x SegmentTimeline) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SegmentTimeline) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegmentTimeline, x)
}

// SegmentTimelineBuilder accumulates the fields of a SegmentTimeline. The zero value is ready to use.
type SegmentTimelineBuilder struct {
	f SegmentTimelineFields
}

func (b *SegmentTimelineBuilder) S(v ...Segment) *SegmentTimelineBuilder {
	b.f.S = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the SegmentTimeline.
func (b *SegmentTimelineBuilder) Build() (SegmentTimeline, error) {
	return NewSegmentTimeline(b.f)
}

// SegmentFields are the attributes and children of Segment.
type SegmentFields struct {
	T Optional[uint64]  `xml:"t,attr"`
	N Optional[uint64]  `xml:"n,attr"`
	D Optional[uint64]  `xml:"d,attr"`
	K Optional[uint64]  `xml:"k,attr"`
	R Optional[Integer] `xml:"r,attr"`
}

func (f SegmentFields) validate() error {
	d, ok := f.D.Get()
	if !ok {
		return missing("Segment", "@d must be set", "d")
	}
	if d == 0 {
		return outOfRange("Segment", "@d must be greater than zero", "d")
	}
	return nil
}

// Segment is an S entry of a SegmentTimeline: @t is the start time, @d the
// duration and @r the repeat count, where -1 repeats until the next entry.
type Segment struct {
	f SegmentFields
}

// NewSegment validates f and returns the Segment holding f.
func NewSegment(f SegmentFields) (Segment, error) {
	if err := f.validate(); err != nil {
		return Segment{}, err
	}
	return Segment{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Segment) Fields() SegmentFields {
	return x.f
}

func (x Segment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Segment) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSegment, x)
}

// SegmentBuilder accumulates the fields of a Segment. The zero value is ready to use.
type SegmentBuilder struct {
	f SegmentFields
}

func (b *SegmentBuilder) T(v uint64) *SegmentBuilder {
	b.f.T = Some(v)
	return b
}

func (b *SegmentBuilder) N(v uint64) *SegmentBuilder {
	b.f.N = Some(v)
	return b
}

func (b *SegmentBuilder) D(v uint64) *SegmentBuilder {
	b.f.D = Some(v)
	return b
}

func (b *SegmentBuilder) K(v uint64) *SegmentBuilder {
	b.f.K = Some(v)
	return b
}

func (b *SegmentBuilder) R(v int64) *SegmentBuilder {
	b.f.R = Some(NewInteger(v))
	return b
}

// Build validates the accumulated fields and returns the Segment.
func (b *SegmentBuilder) Build() (Segment, error) {
	return NewSegment(b.f)
}
