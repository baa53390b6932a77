package mpd

import (
	"encoding/xml"
	"fmt"
	"slices"
	"time"
)

// DescriptorFields are the attributes and children of Descriptor.
type DescriptorFields struct {
	SchemeIDURI Optional[string] `xml:"schemeIdUri,attr"`
	Value       Optional[string] `xml:"value,attr"`
	ID          Optional[string] `xml:"id,attr"`
}

func (f DescriptorFields) validate() error {
	if !f.SchemeIDURI.IsSet() {
		return missing("Descriptor", "@schemeIdUri must be set", "schemeIdUri")
	}
	return nil
}

// Descriptor is a DescriptorType element: Role, Accessibility, EssentialProperty,
// UTCTiming and the other scheme/value pairs.
type Descriptor struct {
	f DescriptorFields
}

// NewDescriptor validates f and returns the Descriptor holding f.
func NewDescriptor(f DescriptorFields) (Descriptor, error) {
	if err := f.validate(); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Descriptor) Fields() DescriptorFields {
	return x.f
}

func (x Descriptor) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Descriptor) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewDescriptor, x)
}

// DescriptorBuilder accumulates the fields of a Descriptor. The zero value is ready to use.
type DescriptorBuilder struct {
	f DescriptorFields
}

func (b *DescriptorBuilder) SchemeIDURI(v string) *DescriptorBuilder {
	b.f.SchemeIDURI = Some(v)
	return b
}

func (b *DescriptorBuilder) Value(v string) *DescriptorBuilder {
	b.f.Value = Some(v)
	return b
}

func (b *DescriptorBuilder) ID(v string) *DescriptorBuilder {
	b.f.ID = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Descriptor.
func (b *DescriptorBuilder) Build() (Descriptor, error) {
	return NewDescriptor(b.f)
}

// ContentProtectionFields are the attributes and children of ContentProtection.
type ContentProtectionFields struct {
	SchemeIDURI Optional[string]       `xml:"schemeIdUri,attr"`
	Value       Optional[string]       `xml:"value,attr"`
	ID          Optional[string]       `xml:"id,attr"`
	Ref         Optional[Identifier]   `xml:"ref,attr"`
	RefID       Optional[Identifier]   `xml:"refId,attr"`
	Robustness  Optional[NoWhitespace] `xml:"robustness,attr"`

	Content string `xml:",innerxml"`
}

func (f ContentProtectionFields) validate() error {
	if !f.SchemeIDURI.IsSet() {
		return missing("ContentProtection", "@schemeIdUri must be set", "schemeIdUri")
	}
	if f.Ref.IsSet() && f.RefID.IsSet() {
		return conflict("ContentProtection", "an element either defines @refId or references one with @ref", "ref", "refId")
	}
	return nil
}

// ContentProtection is a descriptor for a content protection scheme. Content
// holds child elements such as cenc:pssh verbatim.
type ContentProtection struct {
	f ContentProtectionFields
}

// NewContentProtection validates f and returns the ContentProtection holding f.
func NewContentProtection(f ContentProtectionFields) (ContentProtection, error) {
	if err := f.validate(); err != nil {
		return ContentProtection{}, err
	}
	return ContentProtection{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ContentProtection) Fields() ContentProtectionFields {
	return x.f
}

func (x ContentProtection) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ContentProtection) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewContentProtection, x)
}

// ContentProtectionBuilder accumulates the fields of a ContentProtection. The zero value is ready to use.
type ContentProtectionBuilder struct {
	f ContentProtectionFields
}

func (b *ContentProtectionBuilder) SchemeIDURI(v string) *ContentProtectionBuilder {
	b.f.SchemeIDURI = Some(v)
	return b
}

func (b *ContentProtectionBuilder) Value(v string) *ContentProtectionBuilder {
	b.f.Value = Some(v)
	return b
}

func (b *ContentProtectionBuilder) ID(v string) *ContentProtectionBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *ContentProtectionBuilder) Ref(v Identifier) *ContentProtectionBuilder {
	b.f.Ref = Some(v)
	return b
}

func (b *ContentProtectionBuilder) RefID(v Identifier) *ContentProtectionBuilder {
	b.f.RefID = Some(v)
	return b
}

func (b *ContentProtectionBuilder) Robustness(v NoWhitespace) *ContentProtectionBuilder {
	b.f.Robustness = Some(v)
	return b
}

func (b *ContentProtectionBuilder) Content(v string) *ContentProtectionBuilder {
	b.f.Content = v
	return b
}

// Build validates the accumulated fields and returns the ContentProtection.
func (b *ContentProtectionBuilder) Build() (ContentProtection, error) {
	return NewContentProtection(b.f)
}

// LabelFields are the attributes and children of Label.
type LabelFields struct {
	ID   Optional[uint32]      `xml:"id,attr"`
	Lang Optional[LanguageTag] `xml:"lang,attr"`

	Text string `xml:",chardata"`
}

// Label is a Label or GroupLabel element.
type Label struct {
	f LabelFields
}

// NewLabel returns the Label holding f.
func NewLabel(f LabelFields) (Label, error) {
	return Label{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Label) Fields() LabelFields {
	return x.f
}

func (x Label) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Label) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewLabel, x)
}

// LabelBuilder accumulates the fields of a Label. The zero value is ready to use.
type LabelBuilder struct {
	f LabelFields
}

func (b *LabelBuilder) ID(v uint32) *LabelBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *LabelBuilder) Lang(v LanguageTag) *LabelBuilder {
	b.f.Lang = Some(v)
	return b
}

func (b *LabelBuilder) Text(v string) *LabelBuilder {
	b.f.Text = v
	return b
}

// Build validates the accumulated fields and returns the Label.
func (b *LabelBuilder) Build() (Label, error) {
	return NewLabel(b.f)
}

// EventFields are the attributes and children of Event.
type EventFields struct {
	PresentationTime Optional[uint64]          `xml:"presentationTime,attr"`
	Duration         Optional[uint64]          `xml:"duration,attr"`
	ID               Optional[uint32]          `xml:"id,attr"`
	ContentEncoding  Optional[ContentEncoding] `xml:"contentEncoding,attr"`
	MessageData      Optional[string]          `xml:"messageData,attr"`

	Content string `xml:",innerxml"`
}

// Event is one event of an EventStream. Content holds the raw message body.
type Event struct {
	f EventFields
}

// NewEvent returns the Event holding f.
func NewEvent(f EventFields) (Event, error) {
	return Event{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Event) Fields() EventFields {
	return x.f
}

func (x Event) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Event) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewEvent, x)
}

// EventBuilder accumulates the fields of a Event. The zero value is ready to use.
type EventBuilder struct {
	f EventFields
}

func (b *EventBuilder) PresentationTime(v uint64) *EventBuilder {
	b.f.PresentationTime = Some(v)
	return b
}

func (b *EventBuilder) Duration(v uint64) *EventBuilder {
	b.f.Duration = Some(v)
	return b
}

func (b *EventBuilder) ID(v uint32) *EventBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *EventBuilder) ContentEncoding(v ContentEncoding) *EventBuilder {
	b.f.ContentEncoding = Some(v)
	return b
}

func (b *EventBuilder) MessageData(v string) *EventBuilder {
	b.f.MessageData = Some(v)
	return b
}

func (b *EventBuilder) Content(v string) *EventBuilder {
	b.f.Content = v
	return b
}

// Build validates the accumulated fields and returns the Event.
func (b *EventBuilder) Build() (Event, error) {
	return NewEvent(b.f)
}

// EventStreamFields are the attributes and children of EventStream.
type EventStreamFields struct {
	XLinkHref              Optional[string]       `xml:"http://www.w3.org/1999/xlink href,attr"`
	XLinkActuate           Optional[XLinkActuate] `xml:"http://www.w3.org/1999/xlink actuate,attr"`
	SchemeIDURI            Optional[string]       `xml:"schemeIdUri,attr"`
	Value                  Optional[string]       `xml:"value,attr"`
	Timescale              Optional[uint32]       `xml:"timescale,attr"`
	PresentationTimeOffset Optional[uint64]       `xml:"presentationTimeOffset,attr"`

	Events []Event `xml:"Event"`
}

func (f EventStreamFields) clone() EventStreamFields {
	f.Events = slices.Clone(f.Events)
	return f
}

func (f EventStreamFields) validate() error {
	if !f.SchemeIDURI.IsSet() {
		return missing("EventStream", "@schemeIdUri must be set", "schemeIdUri")
	}
	return nil
}

// EventStream is an EventStream or InbandEventStream element.
type EventStream struct {
	f EventStreamFields
}

// NewEventStream validates f and returns the EventStream holding f.
func NewEventStream(f EventStreamFields) (EventStream, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return EventStream{}, err
	}
	return EventStream{f: f}, nil
}

// Fields returns a copy of the field set.
func (x EventStream) Fields() EventStreamFields {
	return x.f.clone()
}

func (x EventStream) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *EventStream) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewEventStream, x)
}

// EventStreamBuilder accumulates the fields of a EventStream. The zero value is ready to use.
type EventStreamBuilder struct {
	f EventStreamFields
}

func (b *EventStreamBuilder) XLinkHref(v string) *EventStreamBuilder {
	b.f.XLinkHref = Some(v)
	return b
}

func (b *EventStreamBuilder) XLinkActuate(v XLinkActuate) *EventStreamBuilder {
	b.f.XLinkActuate = Some(v)
	return b
}

func (b *EventStreamBuilder) SchemeIDURI(v string) *EventStreamBuilder {
	b.f.SchemeIDURI = Some(v)
	return b
}

func (b *EventStreamBuilder) Value(v string) *EventStreamBuilder {
	b.f.Value = Some(v)
	return b
}

func (b *EventStreamBuilder) Timescale(v uint32) *EventStreamBuilder {
	b.f.Timescale = Some(v)
	return b
}

func (b *EventStreamBuilder) PresentationTimeOffset(v uint64) *EventStreamBuilder {
	b.f.PresentationTimeOffset = Some(v)
	return b
}

func (b *EventStreamBuilder) Events(v ...Event) *EventStreamBuilder {
	b.f.Events = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the EventStream.
func (b *EventStreamBuilder) Build() (EventStream, error) {
	return NewEventStream(b.f)
}

// SwitchingFields are the attributes and children of Switching.
type SwitchingFields struct {
	Interval Optional[uint32]        `xml:"interval,attr"`
	Type     Optional[SwitchingType] `xml:"type,attr"`
}

func (f SwitchingFields) validate() error {
	if !f.Interval.IsSet() {
		return missing("Switching", "@interval must be set", "interval")
	}
	return nil
}

// Switching describes switch points of a representation.
type Switching struct {
	f SwitchingFields
}

// NewSwitching validates f and returns the Switching holding f.
func NewSwitching(f SwitchingFields) (Switching, error) {
	if err := f.validate(); err != nil {
		return Switching{}, err
	}
	return Switching{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Switching) Fields() SwitchingFields {
	return x.f
}

func (x Switching) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Switching) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSwitching, x)
}

// SwitchingBuilder accumulates the fields of a Switching. The zero value is ready to use.
type SwitchingBuilder struct {
	f SwitchingFields
}

func (b *SwitchingBuilder) Interval(v uint32) *SwitchingBuilder {
	b.f.Interval = Some(v)
	return b
}

func (b *SwitchingBuilder) Type(v SwitchingType) *SwitchingBuilder {
	b.f.Type = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Switching.
func (b *SwitchingBuilder) Build() (Switching, error) {
	return NewSwitching(b.f)
}

// RandomAccessFields are the attributes and children of RandomAccess.
type RandomAccessFields struct {
	Interval      Optional[uint32]           `xml:"interval,attr"`
	Type          Optional[RandomAccessType] `xml:"type,attr"`
	MinBufferTime Optional[Duration]         `xml:"minBufferTime,attr"`
	Bandwidth     Optional[uint32]           `xml:"bandwidth,attr"`
}

func (f RandomAccessFields) validate() error {
	if !f.Interval.IsSet() {
		return missing("RandomAccess", "@interval must be set", "interval")
	}
	return nil
}

// RandomAccess describes random access points of a representation.
type RandomAccess struct {
	f RandomAccessFields
}

// NewRandomAccess validates f and returns the RandomAccess holding f.
func NewRandomAccess(f RandomAccessFields) (RandomAccess, error) {
	if err := f.validate(); err != nil {
		return RandomAccess{}, err
	}
	return RandomAccess{f: f}, nil
}

// Fields returns a copy of the field set.
func (x RandomAccess) Fields() RandomAccessFields {
	return x.f
}

func (x RandomAccess) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *RandomAccess) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewRandomAccess, x)
}

// RandomAccessBuilder accumulates the fields of a RandomAccess. The zero value is ready to use.
type RandomAccessBuilder struct {
	f RandomAccessFields
}

func (b *RandomAccessBuilder) Interval(v uint32) *RandomAccessBuilder {
	b.f.Interval = Some(v)
	return b
}

func (b *RandomAccessBuilder) Type(v RandomAccessType) *RandomAccessBuilder {
	b.f.Type = Some(v)
	return b
}

func (b *RandomAccessBuilder) MinBufferTime(v time.Duration) *RandomAccessBuilder {
	b.f.MinBufferTime = Some(Duration(v))
	return b
}

func (b *RandomAccessBuilder) Bandwidth(v uint32) *RandomAccessBuilder {
	b.f.Bandwidth = Some(v)
	return b
}

// Build validates the accumulated fields and returns the RandomAccess.
func (b *RandomAccessBuilder) Build() (RandomAccess, error) {
	return NewRandomAccess(b.f)
}

// ProducerReferenceTimeFields are the attributes and children of ProducerReferenceTime.
type ProducerReferenceTimeFields struct {
	ID                Optional[uint32]                    `xml:"id,attr"`
	Inband            Optional[bool]                      `xml:"inband,attr"`
	Type              Optional[ProducerReferenceTimeType] `xml:"type,attr"`
	ApplicationScheme Optional[string]                    `xml:"applicationScheme,attr"`
	WallClockTime     Optional[string]                    `xml:"wallClockTime,attr"`
	PresentationTime  Optional[uint64]                    `xml:"presentationTime,attr"`

	UTCTiming Optional[Descriptor] `xml:"UTCTiming"`
}

func (f ProducerReferenceTimeFields) validate() error {
	if !f.ID.IsSet() || !f.WallClockTime.IsSet() || !f.PresentationTime.IsSet() {
		return missing("ProducerReferenceTime", "@id, @wallClockTime and @presentationTime must be set",
			"id", "wallClockTime", "presentationTime")
	}
	application := f.Type.Or(ReferenceEncoder) == ReferenceApplication
	switch {
	case application && !f.ApplicationScheme.IsSet():
		return conflict("ProducerReferenceTime", "@applicationScheme is required when @type is application",
			"type", "applicationScheme")
	case !application && f.ApplicationScheme.IsSet():
		return conflict("ProducerReferenceTime", "@applicationScheme is only allowed when @type is application",
			"type", "applicationScheme")
	}
	return nil
}

// ProducerReferenceTime ties a media presentation time to a wall clock time.
// An absent @type means encoder.
type ProducerReferenceTime struct {
	f ProducerReferenceTimeFields
}

// NewProducerReferenceTime validates f and returns the ProducerReferenceTime holding f.
func NewProducerReferenceTime(f ProducerReferenceTimeFields) (ProducerReferenceTime, error) {
	if err := f.validate(); err != nil {
		return ProducerReferenceTime{}, err
	}
	return ProducerReferenceTime{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ProducerReferenceTime) Fields() ProducerReferenceTimeFields {
	return x.f
}

func (x ProducerReferenceTime) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ProducerReferenceTime) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewProducerReferenceTime, x)
}

// ProducerReferenceTimeBuilder accumulates the fields of a ProducerReferenceTime. The zero value is ready to use.
type ProducerReferenceTimeBuilder struct {
	f ProducerReferenceTimeFields
}

func (b *ProducerReferenceTimeBuilder) ID(v uint32) *ProducerReferenceTimeBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) Inband(v bool) *ProducerReferenceTimeBuilder {
	b.f.Inband = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) Type(v ProducerReferenceTimeType) *ProducerReferenceTimeBuilder {
	b.f.Type = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) ApplicationScheme(v string) *ProducerReferenceTimeBuilder {
	b.f.ApplicationScheme = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) WallClockTime(v string) *ProducerReferenceTimeBuilder {
	b.f.WallClockTime = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) PresentationTime(v uint64) *ProducerReferenceTimeBuilder {
	b.f.PresentationTime = Some(v)
	return b
}

func (b *ProducerReferenceTimeBuilder) UTCTiming(v Descriptor) *ProducerReferenceTimeBuilder {
	b.f.UTCTiming = Some(v)
	return b
}

// Build validates the accumulated fields and returns the ProducerReferenceTime.
func (b *ProducerReferenceTimeBuilder) Build() (ProducerReferenceTime, error) {
	return NewProducerReferenceTime(b.f)
}

// PopularityRateFields are the attributes and children of PopularityRate.
type PopularityRateFields struct {
	PopularityRate Optional[uint32] `xml:"popularityRate,attr"`
	Start          Optional[uint64] `xml:"start,attr"`
	R              Optional[int32]  `xml:"r,attr"`
}

func (f PopularityRateFields) validate() error {
	rate, ok := f.PopularityRate.Get()
	if !ok {
		return missing("PopularityRate", "@popularityRate must be set", "popularityRate")
	}
	if rate < 1 || rate > 100 {
		return outOfRange("PopularityRate", fmt.Sprintf("@popularityRate %d is outside 1..100", rate), "popularityRate")
	}
	return nil
}

// PopularityRate is a PR entry of a ContentPopularityRate.
type PopularityRate struct {
	f PopularityRateFields
}

// NewPopularityRate validates f and returns the PopularityRate holding f.
func NewPopularityRate(f PopularityRateFields) (PopularityRate, error) {
	if err := f.validate(); err != nil {
		return PopularityRate{}, err
	}
	return PopularityRate{f: f}, nil
}

// Fields returns a copy of the field set.
func (x PopularityRate) Fields() PopularityRateFields {
	return x.f
}

func (x PopularityRate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *PopularityRate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewPopularityRate, x)
}

// PopularityRateBuilder accumulates the fields of a PopularityRate. The zero value is ready to use.
type PopularityRateBuilder struct {
	f PopularityRateFields
}

func (b *PopularityRateBuilder) PopularityRate(v uint32) *PopularityRateBuilder {
	b.f.PopularityRate = Some(v)
	return b
}

func (b *PopularityRateBuilder) Start(v uint64) *PopularityRateBuilder {
	b.f.Start = Some(v)
	return b
}

func (b *PopularityRateBuilder) R(v int32) *PopularityRateBuilder {
	b.f.R = Some(v)
	return b
}

// Build validates the accumulated fields and returns the PopularityRate.
func (b *PopularityRateBuilder) Build() (PopularityRate, error) {
	return NewPopularityRate(b.f)
}

// ContentPopularityRateFields are the attributes and children of ContentPopularityRate.
type ContentPopularityRateFields struct {
	Source            Optional[PopularitySource] `xml:"source,attr"`
	SourceDescription Optional[string]           `xml:"source_description,attr"`

	PR []PopularityRate `xml:"PR"`
}

func (f ContentPopularityRateFields) clone() ContentPopularityRateFields {
	f.PR = slices.Clone(f.PR)
	return f
}

func (f ContentPopularityRateFields) validate() error {
	if !f.Source.IsSet() {
		return missing("ContentPopularityRate", "@source must be set", "source")
	}
	if len(f.PR) == 0 {
		return emptyCollection("ContentPopularityRate", "at least one PR element is required", "PR")
	}
	return nil
}

// ContentPopularityRate signals how popular the content is.
type ContentPopularityRate struct {
	f ContentPopularityRateFields
}

// NewContentPopularityRate validates f and returns the ContentPopularityRate holding f.
func NewContentPopularityRate(f ContentPopularityRateFields) (ContentPopularityRate, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return ContentPopularityRate{}, err
	}
	return ContentPopularityRate{f: f}, nil
}

// Fields returns a copy of the field set.
func (x ContentPopularityRate) Fields() ContentPopularityRateFields {
	return x.f.clone()
}

func (x ContentPopularityRate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *ContentPopularityRate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewContentPopularityRate, x)
}

// ContentPopularityRateBuilder accumulates the fields of a ContentPopularityRate. The zero value is ready to use.
type ContentPopularityRateBuilder struct {
	f ContentPopularityRateFields
}

func (b *ContentPopularityRateBuilder) Source(v PopularitySource) *ContentPopularityRateBuilder {
	b.f.Source = Some(v)
	return b
}

func (b *ContentPopularityRateBuilder) SourceDescription(v string) *ContentPopularityRateBuilder {
	b.f.SourceDescription = Some(v)
	return b
}

func (b *ContentPopularityRateBuilder) PR(v ...PopularityRate) *ContentPopularityRateBuilder {
	b.f.PR = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the ContentPopularityRate.
func (b *ContentPopularityRateBuilder) Build() (ContentPopularityRate, error) {
	return NewContentPopularityRate(b.f)
}

// ResyncFields are the attributes and children of Resync.
type ResyncFields struct {
	Type   Optional[StreamAccessPoint] `xml:"type,attr"`
	DT     Optional[uint32]            `xml:"dT,attr"`
	DIMax  Optional[float32]           `xml:"dImax,attr"`
	DIMin  Optional[float32]           `xml:"dImin,attr"`
	Marker Optional[bool]              `xml:"marker,attr"`
}

// Resync signals resynchronisation points within segments.
type Resync struct {
	f ResyncFields
}

// NewResync returns the Resync holding f.
func NewResync(f ResyncFields) (Resync, error) {
	return Resync{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Resync) Fields() ResyncFields {
	return x.f
}

func (x Resync) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Resync) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewResync, x)
}

// ResyncBuilder accumulates the fields of a Resync. The zero value is ready to use.
type ResyncBuilder struct {
	f ResyncFields
}

func (b *ResyncBuilder) Type(v StreamAccessPoint) *ResyncBuilder {
	b.f.Type = Some(v)
	return b
}

func (b *ResyncBuilder) DT(v uint32) *ResyncBuilder {
	b.f.DT = Some(v)
	return b
}

func (b *ResyncBuilder) DIMax(v float32) *ResyncBuilder {
	b.f.DIMax = Some(v)
	return b
}

func (b *ResyncBuilder) DIMin(v float32) *ResyncBuilder {
	b.f.DIMin = Some(v)
	return b
}

func (b *ResyncBuilder) Marker(v bool) *ResyncBuilder {
	b.f.Marker = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Resync.
func (b *ResyncBuilder) Build() (Resync, error) {
	return NewResync(b.f)
}
