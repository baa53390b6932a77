package mpd

import (
	"encoding/xml"
	"slices"
)

// RepresentationFields are the attributes and children of Representation.
type RepresentationFields struct {
	ID                     Optional[NoWhitespace] `xml:"id,attr"`
	Bandwidth              Optional[uint32]       `xml:"bandwidth,attr"`
	QualityRanking         Optional[uint32]       `xml:"qualityRanking,attr"`
	DependencyID           Optional[StringVector] `xml:"dependencyId,attr"`
	AssociationID          Optional[StringVector] `xml:"associationId,attr"`
	AssociationType        Optional[ListOfFourCC] `xml:"associationType,attr"`
	MediaStreamStructureID Optional[StringVector] `xml:"mediaStreamStructureId,attr"`

	CommonAttributes

	BaseURL           []BaseURL                 `xml:"BaseURL"`
	ExtendedBandwidth []ExtendedBandwidth       `xml:"ExtendedBandwidth"`
	SubRepresentation []SubRepresentation       `xml:"SubRepresentation"`
	SegmentBase       Optional[SegmentBase]     `xml:"SegmentBase"`
	SegmentList       Optional[SegmentList]     `xml:"SegmentList"`
	SegmentTemplate   Optional[SegmentTemplate] `xml:"SegmentTemplate"`
}

func (f RepresentationFields) clone() RepresentationFields {
	f.CommonAttributes = f.CommonAttributes.clone()
	f.BaseURL = slices.Clone(f.BaseURL)
	f.ExtendedBandwidth = slices.Clone(f.ExtendedBandwidth)
	f.SubRepresentation = slices.Clone(f.SubRepresentation)
	return f
}

func (f RepresentationFields) validate() error {
	if !f.ID.IsSet() || !f.Bandwidth.IsSet() {
		return missing("Representation", "@id and @bandwidth must be set", "id", "bandwidth")
	}

	return segmentSchemes("Representation", f.SegmentBase.IsSet(), f.SegmentList.IsSet(), f.SegmentTemplate.IsSet())
}

// Representation is one encoded version of the content of an AdaptationSet.
type Representation struct {
	f RepresentationFields
}

// NewRepresentation validates f and returns the Representation holding f.
func NewRepresentation(f RepresentationFields) (Representation, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return Representation{}, err
	}
	return Representation{f: f}, nil
}

// Fields returns a copy of the field set.
func (x Representation) Fields() RepresentationFields {
	return x.f.clone()
}

func (x Representation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *Representation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewRepresentation, x)
}

// RepresentationBuilder accumulates the fields of a Representation. The zero value is ready to use.
type RepresentationBuilder struct {
	f RepresentationFields
}

func (b *RepresentationBuilder) ID(v NoWhitespace) *RepresentationBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *RepresentationBuilder) Bandwidth(v uint32) *RepresentationBuilder {
	b.f.Bandwidth = Some(v)
	return b
}

func (b *RepresentationBuilder) QualityRanking(v uint32) *RepresentationBuilder {
	b.f.QualityRanking = Some(v)
	return b
}

func (b *RepresentationBuilder) DependencyID(v ...NoWhitespace) *RepresentationBuilder {
	b.f.DependencyID = Some(StringVector{items: slices.Clone(v)})
	return b
}

func (b *RepresentationBuilder) AssociationID(v ...NoWhitespace) *RepresentationBuilder {
	b.f.AssociationID = Some(StringVector{items: slices.Clone(v)})
	return b
}

func (b *RepresentationBuilder) AssociationType(v ...FourCC) *RepresentationBuilder {
	b.f.AssociationType = Some(ListOfFourCC{items: slices.Clone(v)})
	return b
}

func (b *RepresentationBuilder) MediaStreamStructureID(v ...NoWhitespace) *RepresentationBuilder {
	b.f.MediaStreamStructureID = Some(StringVector{items: slices.Clone(v)})
	return b
}

// Common sets the shared representation attributes.
func (b *RepresentationBuilder) Common(c CommonAttributes) *RepresentationBuilder {
	b.f.CommonAttributes = c.clone()
	return b
}

func (b *RepresentationBuilder) BaseURL(v ...BaseURL) *RepresentationBuilder {
	b.f.BaseURL = slices.Clone(v)
	return b
}

func (b *RepresentationBuilder) ExtendedBandwidth(v ...ExtendedBandwidth) *RepresentationBuilder {
	b.f.ExtendedBandwidth = slices.Clone(v)
	return b
}

func (b *RepresentationBuilder) SubRepresentation(v ...SubRepresentation) *RepresentationBuilder {
	b.f.SubRepresentation = slices.Clone(v)
	return b
}

func (b *RepresentationBuilder) SegmentBase(v SegmentBase) *RepresentationBuilder {
	b.f.SegmentBase = Some(v)
	return b
}

func (b *RepresentationBuilder) SegmentList(v SegmentList) *RepresentationBuilder {
	b.f.SegmentList = Some(v)
	return b
}

func (b *RepresentationBuilder) SegmentTemplate(v SegmentTemplate) *RepresentationBuilder {
	b.f.SegmentTemplate = Some(v)
	return b
}

// Build validates the accumulated fields and returns the Representation.
func (b *RepresentationBuilder) Build() (Representation, error) {
	return NewRepresentation(b.f)
}

// SubRepresentationFields are the attributes and children of SubRepresentation.
type SubRepresentationFields struct {
	Level            Optional[uint32]       `xml:"level,attr"`
	DependencyLevel  Optional[UIntVector]   `xml:"dependencyLevel,attr"`
	Bandwidth        Optional[uint32]       `xml:"bandwidth,attr"`
	ContentComponent Optional[StringVector] `xml:"contentComponent,attr"`

	CommonAttributes
}

func (f SubRepresentationFields) clone() SubRepresentationFields {
	f.CommonAttributes = f.CommonAttributes.clone()
	return f
}

func (f SubRepresentationFields) validate() error {
	if f.Level.IsSet() && !f.Bandwidth.IsSet() {
		return conflict("SubRepresentation", "@bandwidth is required when @level is present", "level", "bandwidth")
	}
	return nil
}

// SubRepresentation describes an extractable part of a Representation.
type SubRepresentation struct {
	f SubRepresentationFields
}

// NewSubRepresentation validates f and returns the SubRepresentation holding f.
func NewSubRepresentation(f SubRepresentationFields) (SubRepresentation, error) {
	f = f.clone()
	if err := f.validate(); err != nil {
		return SubRepresentation{}, err
	}
	return SubRepresentation{f: f}, nil
}

// Fields returns a copy of the field set.
func (x SubRepresentation) Fields() SubRepresentationFields {
	return x.f.clone()
}

func (x SubRepresentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.f, start)
}

func (x *SubRepresentation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeEntity(d, start, NewSubRepresentation, x)
}

// SubRepresentationBuilder accumulates the fields of a SubRepresentation. The zero value is ready to use.
type SubRepresentationBuilder struct {
	f SubRepresentationFields
}

func (b *SubRepresentationBuilder) Level(v uint32) *SubRepresentationBuilder {
	b.f.Level = Some(v)
	return b
}

func (b *SubRepresentationBuilder) DependencyLevel(v ...uint32) *SubRepresentationBuilder {
	b.f.DependencyLevel = Some(NewUIntVector(v...))
	return b
}

func (b *SubRepresentationBuilder) Bandwidth(v uint32) *SubRepresentationBuilder {
	b.f.Bandwidth = Some(v)
	return b
}

func (b *SubRepresentationBuilder) ContentComponent(v ...NoWhitespace) *SubRepresentationBuilder {
	b.f.ContentComponent = Some(StringVector{items: slices.Clone(v)})
	return b
}

// Common sets the shared representation attributes.
func (b *SubRepresentationBuilder) Common(c CommonAttributes) *SubRepresentationBuilder {
	b.f.CommonAttributes = c.clone()
	return b
}

// Build validates the accumulated fields and returns the SubRepresentation.
func (b *SubRepresentationBuilder) Build() (SubRepresentation, error) {
	return NewSubRepresentation(b.f)
}
