package mpd

import "slices"

// CommonAttributes is the attribute and element group shared by AdaptationSet,
// Representation, SubRepresentation, Preselection and InitializationSet. It is
// embedded by value, so its fields are flattened into each of those elements.
type CommonAttributes struct {
	Profiles          Optional[ListOfProfiles]    `xml:"profiles,attr"`
	Width             Optional[uint32]            `xml:"width,attr"`
	Height            Optional[uint32]            `xml:"height,attr"`
	Sar               Optional[Ratio]             `xml:"sar,attr"`
	FrameRate         Optional[FrameRate]         `xml:"frameRate,attr"`
	AudioSamplingRate Optional[AudioSamplingRate] `xml:"audioSamplingRate,attr"`
	MimeType          Optional[string]            `xml:"mimeType,attr"`
	SegmentProfiles   Optional[ListOfFourCC]      `xml:"segmentProfiles,attr"`
	Codecs            Optional[Codecs]            `xml:"codecs,attr"`
	ContainerProfiles Optional[ListOfFourCC]      `xml:"containerProfiles,attr"`
	MaximumSAPPeriod  Optional[float64]           `xml:"maximumSAPPeriod,attr"`
	StartWithSAP      Optional[StreamAccessPoint] `xml:"startWithSAP,attr"`
	MaxPlayoutRate    Optional[float64]           `xml:"maxPlayoutRate,attr"`
	CodingDependency  Optional[bool]              `xml:"codingDependency,attr"`
	ScanType          Optional[VideoScan]         `xml:"scanType,attr"`
	SelectionPriority Optional[uint32]            `xml:"selectionPriority,attr"`
	Tag               Optional[string]            `xml:"tag,attr"`

	FramePacking              []Descriptor            `xml:"FramePacking"`
	AudioChannelConfiguration []Descriptor            `xml:"AudioChannelConfiguration"`
	ContentProtection         []ContentProtection     `xml:"ContentProtection"`
	OutputProtection          []Descriptor            `xml:"OutputProtection"`
	EssentialProperty         []Descriptor            `xml:"EssentialProperty"`
	SupplementalProperty      []Descriptor            `xml:"SupplementalProperty"`
	InbandEventStream         []EventStream           `xml:"InbandEventStream"`
	Switching                 []Switching             `xml:"Switching"`
	RandomAccess              []RandomAccess          `xml:"RandomAccess"`
	GroupLabel                []Label                 `xml:"GroupLabel"`
	Label                     []Label                 `xml:"Label"`
	ProducerReferenceTime     []ProducerReferenceTime `xml:"ProducerReferenceTime"`
	ContentPopularityRate     []ContentPopularityRate `xml:"ContentPopularityRate"`
	Resync                    []Resync                `xml:"Resync"`
}

func (g CommonAttributes) clone() CommonAttributes {
	g.FramePacking = slices.Clone(g.FramePacking)
	g.AudioChannelConfiguration = slices.Clone(g.AudioChannelConfiguration)
	g.ContentProtection = slices.Clone(g.ContentProtection)
	g.OutputProtection = slices.Clone(g.OutputProtection)
	g.EssentialProperty = slices.Clone(g.EssentialProperty)
	g.SupplementalProperty = slices.Clone(g.SupplementalProperty)
	g.InbandEventStream = slices.Clone(g.InbandEventStream)
	g.Switching = slices.Clone(g.Switching)
	g.RandomAccess = slices.Clone(g.RandomAccess)
	g.GroupLabel = slices.Clone(g.GroupLabel)
	g.Label = slices.Clone(g.Label)
	g.ProducerReferenceTime = slices.Clone(g.ProducerReferenceTime)
	g.ContentPopularityRate = slices.Clone(g.ContentPopularityRate)
	g.Resync = slices.Clone(g.Resync)
	return g
}

// CommonAttributesBuilder accumulates a CommonAttributes group. The zero value is ready to use.
type CommonAttributesBuilder struct {
	f CommonAttributes
}

func (b *CommonAttributesBuilder) Profiles(v ...Profile) *CommonAttributesBuilder {
	b.f.Profiles = Some(NewListOfProfiles(v...))
	return b
}

func (b *CommonAttributesBuilder) Width(v uint32) *CommonAttributesBuilder {
	b.f.Width = Some(v)
	return b
}

func (b *CommonAttributesBuilder) Height(v uint32) *CommonAttributesBuilder {
	b.f.Height = Some(v)
	return b
}

func (b *CommonAttributesBuilder) Sar(v Ratio) *CommonAttributesBuilder {
	b.f.Sar = Some(v)
	return b
}

func (b *CommonAttributesBuilder) FrameRate(v FrameRate) *CommonAttributesBuilder {
	b.f.FrameRate = Some(v)
	return b
}

func (b *CommonAttributesBuilder) AudioSamplingRate(v ...uint32) *CommonAttributesBuilder {
	b.f.AudioSamplingRate = Some(NewUIntVector(v...))
	return b
}

func (b *CommonAttributesBuilder) MimeType(v string) *CommonAttributesBuilder {
	b.f.MimeType = Some(v)
	return b
}

func (b *CommonAttributesBuilder) SegmentProfiles(v ...FourCC) *CommonAttributesBuilder {
	b.f.SegmentProfiles = Some(ListOfFourCC{items: slices.Clone(v)})
	return b
}

func (b *CommonAttributesBuilder) Codecs(v Codecs) *CommonAttributesBuilder {
	b.f.Codecs = Some(v)
	return b
}

func (b *CommonAttributesBuilder) ContainerProfiles(v ...FourCC) *CommonAttributesBuilder {
	b.f.ContainerProfiles = Some(ListOfFourCC{items: slices.Clone(v)})
	return b
}

func (b *CommonAttributesBuilder) MaximumSAPPeriod(v float64) *CommonAttributesBuilder {
	b.f.MaximumSAPPeriod = Some(v)
	return b
}

func (b *CommonAttributesBuilder) StartWithSAP(v StreamAccessPoint) *CommonAttributesBuilder {
	b.f.StartWithSAP = Some(v)
	return b
}

func (b *CommonAttributesBuilder) MaxPlayoutRate(v float64) *CommonAttributesBuilder {
	b.f.MaxPlayoutRate = Some(v)
	return b
}

func (b *CommonAttributesBuilder) CodingDependency(v bool) *CommonAttributesBuilder {
	b.f.CodingDependency = Some(v)
	return b
}

func (b *CommonAttributesBuilder) ScanType(v VideoScan) *CommonAttributesBuilder {
	b.f.ScanType = Some(v)
	return b
}

func (b *CommonAttributesBuilder) SelectionPriority(v uint32) *CommonAttributesBuilder {
	b.f.SelectionPriority = Some(v)
	return b
}

func (b *CommonAttributesBuilder) Tag(v string) *CommonAttributesBuilder {
	b.f.Tag = Some(v)
	return b
}

func (b *CommonAttributesBuilder) FramePacking(v ...Descriptor) *CommonAttributesBuilder {
	b.f.FramePacking = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) AudioChannelConfiguration(v ...Descriptor) *CommonAttributesBuilder {
	b.f.AudioChannelConfiguration = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) ContentProtection(v ...ContentProtection) *CommonAttributesBuilder {
	b.f.ContentProtection = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) OutputProtection(v ...Descriptor) *CommonAttributesBuilder {
	b.f.OutputProtection = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) EssentialProperty(v ...Descriptor) *CommonAttributesBuilder {
	b.f.EssentialProperty = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) SupplementalProperty(v ...Descriptor) *CommonAttributesBuilder {
	b.f.SupplementalProperty = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) InbandEventStream(v ...EventStream) *CommonAttributesBuilder {
	b.f.InbandEventStream = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) Switching(v ...Switching) *CommonAttributesBuilder {
	b.f.Switching = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) RandomAccess(v ...RandomAccess) *CommonAttributesBuilder {
	b.f.RandomAccess = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) GroupLabel(v ...Label) *CommonAttributesBuilder {
	b.f.GroupLabel = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) Label(v ...Label) *CommonAttributesBuilder {
	b.f.Label = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) ProducerReferenceTime(v ...ProducerReferenceTime) *CommonAttributesBuilder {
	b.f.ProducerReferenceTime = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) ContentPopularityRate(v ...ContentPopularityRate) *CommonAttributesBuilder {
	b.f.ContentPopularityRate = slices.Clone(v)
	return b
}

func (b *CommonAttributesBuilder) Resync(v ...Resync) *CommonAttributesBuilder {
	b.f.Resync = slices.Clone(v)
	return b
}

// Build returns a copy of the accumulated CommonAttributes.
func (b *CommonAttributesBuilder) Build() CommonAttributes {
	return b.f.clone()
}
