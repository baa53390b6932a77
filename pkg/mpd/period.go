package mpd

import (
	"encoding/xml"
	"slices"
	"time"
)

// PeriodFields are the attributes and children of Period.
type PeriodFields struct {
	XLinkHref          Optional[string]       `xml:"http://www.w3.org/1999/xlink href,attr"`
	XLinkActuate       Optional[XLinkActuate] `xml:"http://www.w3.org/1999/xlink actuate,attr"`
	ID                 Optional[string]       `xml:"id,attr"`
	Start              Optional[Duration]     `xml:"start,attr"`
	Duration           Optional[Duration]     `xml:"duration,attr"`
	BitstreamSwitching Optional[bool]         `xml:"bitstreamSwitching,attr"`

	BaseURL              []BaseURL                 `xml:"BaseURL"`
	SegmentBase          Optional[SegmentBase]     `xml:"SegmentBase"`
	SegmentList          Optional[SegmentList]     `xml:"SegmentList"`
	SegmentTemplate      Optional[SegmentTemplate] `xml:"SegmentTemplate"`
	AssetIdentifier      Optional[Descriptor]      `xml:"AssetIdentifier"`
	EventStream          []EventStream             `xml:"EventStream"`
	ServiceDescription   []ServiceDescription      `xml:"ServiceDescription"`
	ContentProtection    []ContentProtection       `xml:"ContentProtection"`
	AdaptationSet        []AdaptationSet           `xml:"AdaptationSet"`
	Subset               []Subset                  `xml:"Subset"`
	SupplementalProperty []Descriptor              `xml:"SupplementalProperty"`
	EmptyAdaptationSet   []AdaptationSet           `xml:"EmptyAdaptationSet"`
	GroupLabel           []Label                   `xml:"GroupLabel"`
	Preselection         []Preselection            `xml:"Preselection"`
}

func (f PeriodFields) clone() PeriodFields {
	f.BaseURL = slices.Clone(f.BaseURL)
	f.EventStream = slices.Clone(f.EventStream)
	f.ServiceDescription = slices.Clone(f.ServiceDescription)
	f.ContentProtection = slices.Clone(f.ContentProtection)
	f.AdaptationSet = slices.Clone(f.AdaptationSet)
	f.Subset = slices.Clone(f.Subset)
	f.SupplementalProperty = slices.Clone(f.SupplementalProperty)
	f.EmptyAdaptationSet = slices.Clone(f.EmptyAdaptationSet)
	f.GroupLabel = slices.Clone(f.GroupLabel)
	f.Preselection = slices.Clone(f.Preselection)
	return f
}

func (f PeriodFields) validate() error {
	return segmentSchemes("Period", f.SegmentBase.IsSet(), f.SegmentList.IsSet(), f.SegmentTemplate.IsSet())
}

// Period is a time interval of the presentation.
type Period struct {
	f PeriodFields
}

// NewPeriod validates f and returns the Period holding f.
func NewPeriod(f PeriodFields) (Period, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return Period{}, err
	}
	return Period{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Period) Fields() PeriodFields {
	return x.f.clone()
}

func (x Period) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Period) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewPeriod, x)
}

// PeriodBuilder accumulates the fields of a Period. The zero value is ready to use.
type PeriodBuilder struct {
	f PeriodFields
}

func (b *PeriodBuilder) XLinkHref(v string) *PeriodBuilder {
	b.f.XLinkHref = Some(v)
	return b
}

func (b *PeriodBuilder) XLinkActuate(v XLinkActuate) *PeriodBuilder {
	b.f.XLinkActuate = Some(v)
	return b
}

func (b *PeriodBuilder) ID(v string) *PeriodBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *PeriodBuilder) Start(v time.Duration) *PeriodBuilder {
	b.f.Start = Some(Duration(v))
	return b
}

func (b *PeriodBuilder) Duration(v time.Duration) *PeriodBuilder {
	b.f.Duration = Some(Duration(v))
	return b
}

func (b *PeriodBuilder) BitstreamSwitching(v bool) *PeriodBuilder {
	b.f.BitstreamSwitching = Some(v)
	return b
}

func (b *PeriodBuilder) BaseURL(v ...BaseURL) *PeriodBuilder {
	b.f.BaseURL = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) SegmentBase(v SegmentBase) *PeriodBuilder {
	b.f.SegmentBase = Some(v)
	return b
}

func (b *PeriodBuilder) SegmentList(v SegmentList) *PeriodBuilder {
	b.f.SegmentList = Some(v)
	return b
}

func (b *PeriodBuilder) SegmentTemplate(v SegmentTemplate) *PeriodBuilder {
	b.f.SegmentTemplate = Some(v)
	return b
}

func (b *PeriodBuilder) AssetIdentifier(v Descriptor) *PeriodBuilder {
	b.f.AssetIdentifier = Some(v)
	return b
}

func (b *PeriodBuilder) EventStream(v ...EventStream) *PeriodBuilder {
	b.f.EventStream = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) ServiceDescription(v ...ServiceDescription) *PeriodBuilder {
	b.f.ServiceDescription = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) ContentProtection(v ...ContentProtection) *PeriodBuilder {
	b.f.ContentProtection = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) AdaptationSet(v ...AdaptationSet) *PeriodBuilder {
	b.f.AdaptationSet = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) Subset(v ...Subset) *PeriodBuilder {
	b.f.Subset = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) SupplementalProperty(v ...Descriptor) *PeriodBuilder {
	b.f.SupplementalProperty = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) EmptyAdaptationSet(v ...AdaptationSet) *PeriodBuilder {
	b.f.EmptyAdaptationSet = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) GroupLabel(v ...Label) *PeriodBuilder {
	b.f.GroupLabel = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) Preselection(v ...Preselection) *PeriodBuilder {
	b.f.Preselection = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the Period.
func (b *PeriodBuilder) Build() (Period, error) {
	return NewPeriod(b.f)
}
