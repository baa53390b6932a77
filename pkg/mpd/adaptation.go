package mpd

import (
	"encoding/xml"
	"slices"
)

// AdaptationSetFields are the attributes and children of AdaptationSet.
type AdaptationSetFields struct {
	XLinkHref               Optional[string]            `xml:"http://www.w3.org/1999/xlink href,attr"`
	XLinkActuate            Optional[XLinkActuate]      `xml:"http://www.w3.org/1999/xlink actuate,attr"`
	ID                      Optional[uint32]            `xml:"id,attr"`
	Group                   Optional[uint32]            `xml:"group,attr"`
	Lang                    Optional[LanguageTag]       `xml:"lang,attr"`
	ContentType             Optional[ContentType]       `xml:"contentType,attr"`
	Par                     Optional[Ratio]             `xml:"par,attr"`
	MinBandwidth            Optional[uint32]            `xml:"minBandwidth,attr"`
	MaxBandwidth            Optional[uint32]            `xml:"maxBandwidth,attr"`
	MinWidth                Optional[uint32]            `xml:"minWidth,attr"`
	MaxWidth                Optional[uint32]            `xml:"maxWidth,attr"`
	MinHeight               Optional[uint32]            `xml:"minHeight,attr"`
	MaxHeight               Optional[uint32]            `xml:"maxHeight,attr"`
	MinFrameRate            Optional[FrameRate]         `xml:"minFrameRate,attr"`
	MaxFrameRate            Optional[FrameRate]         `xml:"maxFrameRate,attr"`
	SegmentAlignment        Optional[bool]              `xml:"segmentAlignment,attr"`
	BitstreamSwitching      Optional[bool]              `xml:"bitstreamSwitching,attr"`
	SubsegmentAlignment     Optional[bool]              `xml:"subsegmentAlignment,attr"`
	SubsegmentStartsWithSAP Optional[StreamAccessPoint] `xml:"subsegmentStartsWithSAP,attr"`
	InitializationSetRef    Optional[UIntVector]        `xml:"initializationSetRef,attr"`
	InitializationPrincipal Optional[string]            `xml:"initializationPrincipal,attr"`

	CommonAttributes

	Accessibility    []Descriptor              `xml:"Accessibility"`
	Role             []Descriptor              `xml:"Role"`
	Rating           []Descriptor              `xml:"Rating"`
	Viewpoint        []Descriptor              `xml:"Viewpoint"`
	ContentComponent []ContentComponent        `xml:"ContentComponent"`
	BaseURL          []BaseURL                 `xml:"BaseURL"`
	SegmentBase      Optional[SegmentBase]     `xml:"SegmentBase"`
	SegmentList      Optional[SegmentList]     `xml:"SegmentList"`
	SegmentTemplate  Optional[SegmentTemplate] `xml:"SegmentTemplate"`
	Representation   []Representation          `xml:"Representation"`
}

func (f AdaptationSetFields) clone() AdaptationSetFields {
	f.CommonAttributes = f.CommonAttributes.clone()
	f.Accessibility = slices.Clone(f.Accessibility)
	f.Role = slices.Clone(f.Role)
	f.Rating = slices.Clone(f.Rating)
	f.Viewpoint = slices.Clone(f.Viewpoint)
	f.ContentComponent = slices.Clone(f.ContentComponent)
	f.BaseURL = slices.Clone(f.BaseURL)
	f.Representation = slices.Clone(f.Representation)
	return f
}

func (f AdaptationSetFields) validate() error {
	return segmentSchemes("AdaptationSet", f.SegmentBase.IsSet(), f.SegmentList.IsSet(), f.SegmentTemplate.IsSet())
}

// AdaptationSet groups interchangeable Representations of one media component.
type AdaptationSet struct {
	f AdaptationSetFields
}

// NewAdaptationSet validates f and returns the AdaptationSet holding f.
func NewAdaptationSet(f AdaptationSetFields) (AdaptationSet, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return AdaptationSet{}, err
	}
	return AdaptationSet{f: f}, nil
}

// Fields returns a copy of the field set.
func (x AdaptationSet) Fields() AdaptationSetFields {
	return x.f.clone()
}

func (x AdaptationSet) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *AdaptationSet) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewAdaptationSet, x)
}

// AdaptationSetBuilder accumulates the fields of a AdaptationSet. The zero value is ready to use.
type AdaptationSetBuilder struct {
	f AdaptationSetFields
}

func (b *AdaptationSetBuilder) XLinkHref(v string) *AdaptationSetBuilder {
	b.f.XLinkHref = Some(v)
	return b
}

func (b *AdaptationSetBuilder) XLinkActuate(v XLinkActuate) *AdaptationSetBuilder {
	b.f.XLinkActuate = Some(v)
	return b
}

func (b *AdaptationSetBuilder) ID(v uint32) *AdaptationSetBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *AdaptationSetBuilder) Group(v uint32) *AdaptationSetBuilder {
	b.f.Group = Some(v)
	return b
}

func (b *AdaptationSetBuilder) Lang(v LanguageTag) *AdaptationSetBuilder {
	b.f.Lang = Some(v)
	return b
}

func (b *AdaptationSetBuilder) ContentType(v ContentType) *AdaptationSetBuilder {
	b.f.ContentType = Some(v)
	return b
}

func (b *AdaptationSetBuilder) Par(v Ratio) *AdaptationSetBuilder {
	b.f.Par = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MinBandwidth(v uint32) *AdaptationSetBuilder {
	b.f.MinBandwidth = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MaxBandwidth(v uint32) *AdaptationSetBuilder {
	b.f.MaxBandwidth = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MinWidth(v uint32) *AdaptationSetBuilder {
	b.f.MinWidth = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MaxWidth(v uint32) *AdaptationSetBuilder {
	b.f.MaxWidth = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MinHeight(v uint32) *AdaptationSetBuilder {
	b.f.MinHeight = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MaxHeight(v uint32) *AdaptationSetBuilder {
	b.f.MaxHeight = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MinFrameRate(v FrameRate) *AdaptationSetBuilder {
	b.f.MinFrameRate = Some(v)
	return b
}

func (b *AdaptationSetBuilder) MaxFrameRate(v FrameRate) *AdaptationSetBuilder {
	b.f.MaxFrameRate = Some(v)
	return b
}

func (b *AdaptationSetBuilder) SegmentAlignment(v bool) *AdaptationSetBuilder {
	b.f.SegmentAlignment = Some(v)
	return b
}

func (b *AdaptationSetBuilder) BitstreamSwitching(v bool) *AdaptationSetBuilder {
	b.f.BitstreamSwitching = Some(v)
	return b
}

func (b *AdaptationSetBuilder) SubsegmentAlignment(v bool) *AdaptationSetBuilder {
	b.f.SubsegmentAlignment = Some(v)
	return b
}

func (b *AdaptationSetBuilder) SubsegmentStartsWithSAP(v StreamAccessPoint) *AdaptationSetBuilder {
	b.f.SubsegmentStartsWithSAP = Some(v)
	return b
}

func (b *AdaptationSetBuilder) InitializationSetRef(v ...uint32) *AdaptationSetBuilder {
	b.f.InitializationSetRef = Some(NewUIntVector(v...))
	return b
}

func (b *AdaptationSetBuilder) InitializationPrincipal(v string) *AdaptationSetBuilder {
	b.f.InitializationPrincipal = Some(v)
	return b
}

// Common sets the shared representation attributes.
func (b *AdaptationSetBuilder) Common(c CommonAttributes) *AdaptationSetBuilder {
	b.f.CommonAttributes = c.clone()
	return b
}

func (b *AdaptationSetBuilder) Accessibility(v ...Descriptor) *AdaptationSetBuilder {
	b.f.Accessibility = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) Role(v ...Descriptor) *AdaptationSetBuilder {
	b.f.Role = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) Rating(v ...Descriptor) *AdaptationSetBuilder {
	b.f.Rating = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) Viewpoint(v ...Descriptor) *AdaptationSetBuilder {
	b.f.Viewpoint = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) ContentComponent(v ...ContentComponent) *AdaptationSetBuilder {
	b.f.ContentComponent = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) BaseURL(v ...BaseURL) *AdaptationSetBuilder {
	b.f.BaseURL = slices.Clone(v)
	return b
}

func (b *AdaptationSetBuilder) SegmentBase(v SegmentBase) *AdaptationSetBuilder {
	b.f.SegmentBase = Some(v)
	return b
}

func (b *AdaptationSetBuilder) SegmentList(v SegmentList) *AdaptationSetBuilder {
	b.f.SegmentList = Some(v)
	return b
}

func (b *AdaptationSetBuilder) SegmentTemplate(v SegmentTemplate) *AdaptationSetBuilder {
	b.f.SegmentTemplate = Some(v)
	return b
}

func (b *AdaptationSetBuilder) Representation(v ...Representation) *AdaptationSetBuilder {
	b.f.Representation = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the AdaptationSet.
func (b *AdaptationSetBuilder) Build() (AdaptationSet, error) {
	return NewAdaptationSet(b.f)
}

// PreselectionFields are the attributes and children of Preselection.
type PreselectionFields struct {
	ID                     Optional[NoWhitespace]      `xml:"id,attr"`
	PreselectionComponents Optional[StringVector]      `xml:"preselectionComponents,attr"`
	Lang                   Optional[LanguageTag]       `xml:"lang,attr"`
	Order                  Optional[PreselectionOrder] `xml:"order,attr"`

	CommonAttributes

	Accessibility []Descriptor `xml:"Accessibility"`
	Role          []Descriptor `xml:"Role"`
	Rating        []Descriptor `xml:"Rating"`
	Viewpoint     []Descriptor `xml:"Viewpoint"`
}

func (f PreselectionFields) clone() PreselectionFields {
	f.CommonAttributes = f.CommonAttributes.clone()
	f.Accessibility = slices.Clone(f.Accessibility)
	f.Role = slices.Clone(f.Role)
	f.Rating = slices.Clone(f.Rating)
	f.Viewpoint = slices.Clone(f.Viewpoint)
	return f
}

func (f PreselectionFields) validate() error {
	components, ok := f.PreselectionComponents.Get()
	if !ok {
		return missing("Preselection", "@preselectionComponents must be set", "preselectionComponents")
	}
	if components.Len() == 0 {
		return emptyCollection("Preselection", "@preselectionComponents must name at least one component", "preselectionComponents")
	}
	return nil
}

// Preselection names a combination of AdaptationSets to be played together.
type Preselection struct {
	f PreselectionFields
}

// NewPreselection validates f and returns the Preselection holding f.
func NewPreselection(f PreselectionFields) (Preselection, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return Preselection{}, err
	}
	return Preselection{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Preselection) Fields() PreselectionFields {
	return x.f.clone()
}

func (x Preselection) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Preselection) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewPreselection, x)
}

// PreselectionBuilder accumulates the fields of a Preselection. The zero value is ready to use.
type PreselectionBuilder struct {
	f PreselectionFields
}

func (b *PreselectionBuilder) ID(v NoWhitespace) *PreselectionBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *PreselectionBuilder) PreselectionComponents(v ...NoWhitespace) *PreselectionBuilder {
	b.f.PreselectionComponents = Some(StringVector{items: slices.Clone(v)})
	return b
}

func (b *PreselectionBuilder) Lang(v LanguageTag) *PreselectionBuilder {
	b.f.Lang = Some(v)
	return b
}

func (b *PreselectionBuilder) Order(v PreselectionOrder) *PreselectionBuilder {
	b.f.Order = Some(v)
	return b
}

// Common sets the shared representation attributes.
func (b *PreselectionBuilder) Common(c CommonAttributes) *PreselectionBuilder {
	b.f.CommonAttributes = c.clone()
	return b
}

func (b *PreselectionBuilder) Accessibility(v ...Descriptor) *PreselectionBuilder {
	b.f.Accessibility = slices.Clone(v)
	return b
}

func (b *PreselectionBuilder) Role(v ...Descriptor) *PreselectionBuilder {
	b.f.Role = slices.Clone(v)
	return b
}

func (b *PreselectionBuilder) Rating(v ...Descriptor) *PreselectionBuilder {
	b.f.Rating = slices.Clone(v)
	return b
}

func (b *PreselectionBuilder) Viewpoint(v ...Descriptor) *PreselectionBuilder {
	b.f.Viewpoint = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the Preselection.
func (b *PreselectionBuilder) Build() (Preselection, error) {
	return NewPreselection(b.f)
}

// InitializationSetFields are the attributes and children of InitializationSet.
type InitializationSetFields struct {
	XLinkHref      Optional[string]       `xml:"http://www.w3.org/1999/xlink href,attr"`
	XLinkActuate   Optional[XLinkActuate] `xml:"http://www.w3.org/1999/xlink actuate,attr"`
	ID             Optional[uint32]       `xml:"id,attr"`
	InAllPeriods   Optional[bool]         `xml:"inAllPeriods,attr"`
	ContentType    Optional[ContentType]  `xml:"contentType,attr"`
	Par            Optional[Ratio]        `xml:"par,attr"`
	MaxWidth       Optional[uint32]       `xml:"maxWidth,attr"`
	MaxHeight      Optional[uint32]       `xml:"maxHeight,attr"`
	MaxFrameRate   Optional[FrameRate]    `xml:"maxFrameRate,attr"`
	Initialization Optional[string]       `xml:"initialization,attr"`

	CommonAttributes

	Accessibility []Descriptor `xml:"Accessibility"`
	Role          []Descriptor `xml:"Role"`
	Rating        []Descriptor `xml:"Rating"`
	Viewpoint     []Descriptor `xml:"Viewpoint"`
}

func (f InitializationSetFields) clone() InitializationSetFields {
	f.CommonAttributes = f.CommonAttributes.clone()
	f.Accessibility = slices.Clone(f.Accessibility)
	f.Role = slices.Clone(f.Role)
	f.Rating = slices.Clone(f.Rating)
	f.Viewpoint = slices.Clone(f.Viewpoint)
	return f
}

func (f InitializationSetFields) validate() error {
	if !f.ID.IsSet() {
		return missing("InitializationSet", "@id must be set", "id")
	}
	return nil
}

// InitializationSet describes a common initialization for media across Periods.
type InitializationSet struct {
	f InitializationSetFields
}

// NewInitializationSet validates f and returns the InitializationSet holding f.
func NewInitializationSet(f InitializationSetFields) (InitializationSet, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return InitializationSet{}, err
	}
	return InitializationSet{f: f}, nil
}

// Fields returns a copy of the field set.
func (x InitializationSet) Fields() InitializationSetFields {
	return x.f.clone()
}

func (x InitializationSet) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *InitializationSet) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewInitializationSet, x)
}

// InitializationSetBuilder accumulates the fields of a InitializationSet. The zero value is ready to use.
type InitializationSetBuilder struct {
	f InitializationSetFields
}

func (b *InitializationSetBuilder) XLinkHref(v string) *InitializationSetBuilder {
	b.f.XLinkHref = Some(v)
	return b
}

func (b *InitializationSetBuilder) XLinkActuate(v XLinkActuate) *InitializationSetBuilder {
	b.f.XLinkActuate = Some(v)
	return b
}

func (b *InitializationSetBuilder) ID(v uint32) *InitializationSetBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *InitializationSetBuilder) InAllPeriods(v bool) *InitializationSetBuilder {
	b.f.InAllPeriods = Some(v)
	return b
}

func (b *InitializationSetBuilder) ContentType(v ContentType) *InitializationSetBuilder {
	b.f.ContentType = Some(v)
	return b
}

func (b *InitializationSetBuilder) Par(v Ratio) *InitializationSetBuilder {
	b.f.Par = Some(v)
	return b
}

func (b *InitializationSetBuilder) MaxWidth(v uint32) *InitializationSetBuilder {
	b.f.MaxWidth = Some(v)
	return b
}

func (b *InitializationSetBuilder) MaxHeight(v uint32) *InitializationSetBuilder {
	b.f.MaxHeight = Some(v)
	return b
}

func (b *InitializationSetBuilder) MaxFrameRate(v FrameRate) *InitializationSetBuilder {
	b.f.MaxFrameRate = Some(v)
	return b
}

func (b *InitializationSetBuilder) Initialization(v string) *InitializationSetBuilder {
	b.f.Initialization = Some(v)
	return b
}

// Common sets the shared representation attributes.
func (b *InitializationSetBuilder) Common(c CommonAttributes) *InitializationSetBuilder {
	b.f.CommonAttributes = c.clone()
	return b
}

func (b *InitializationSetBuilder) Accessibility(v ...Descriptor) *InitializationSetBuilder {
	b.f.Accessibility = slices.Clone(v)
	return b
}

func (b *InitializationSetBuilder) Role(v ...Descriptor) *InitializationSetBuilder {
	b.f.Role = slices.Clone(v)
	return b
}

func (b *InitializationSetBuilder) Rating(v ...Descriptor) *InitializationSetBuilder {
	b.f.Rating = slices.Clone(v)
	return b
}

func (b *InitializationSetBuilder) Viewpoint(v ...Descriptor) *InitializationSetBuilder {
	b.f.Viewpoint = slices.Clone(v)
	return b
}

// Build validates the accumulated fields and returns the InitializationSet.
func (b *InitializationSetBuilder) Build() (InitializationSet, error) {
	return NewInitializationSet(b.f)
}
