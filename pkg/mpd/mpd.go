package mpd

import (
	"slices"
	"time"
)

// MPDFields are the attributes and children of MPD. The namespace declarations
// and xsi:schemaLocation are written by MPD itself and are not part of the
// struct mapping.
type MPDFields struct {
	Xmlns                      Optional[string]           `xml:"-"`
	XmlnsXSI                   Optional[string]           `xml:"-"`
	XmlnsExt                   Optional[string]           `xml:"-"`
	XmlnsXLink                 Optional[string]           `xml:"-"`
	XmlnsCenc                  Optional[string]           `xml:"-"`
	XmlnsDVB                   Optional[string]           `xml:"-"`
	XmlnsSCTE35                Optional[string]           `xml:"-"`
	XmlnsSCTE214               Optional[string]           `xml:"-"`
	SchemaLocation             Optional[StringVector]     `xml:"-"`
	ID                         Optional[string]           `xml:"id,attr"`
	Profiles                   Optional[ListOfProfiles]   `xml:"profiles,attr"`
	Type                       Optional[PresentationType] `xml:"type,attr"`
	AvailabilityStartTime      Optional[DateTime]         `xml:"availabilityStartTime,attr"`
	PublishTime                Optional[DateTime]         `xml:"publishTime,attr"`
	AvailabilityEndTime        Optional[DateTime]         `xml:"availabilityEndTime,attr"`
	MediaPresentationDuration  Optional[Duration]         `xml:"mediaPresentationDuration,attr"`
	MinimumUpdatePeriod        Optional[Duration]         `xml:"minimumUpdatePeriod,attr"`
	MinBufferTime              Optional[Duration]         `xml:"minBufferTime,attr"`
	TimeShiftBufferDepth       Optional[Duration]         `xml:"timeShiftBufferDepth,attr"`
	SuggestedPresentationDelay Optional[Duration]         `xml:"suggestedPresentationDelay,attr"`
	MaxSegmentDuration         Optional[Duration]         `xml:"maxSegmentDuration,attr"`
	MaxSubsegmentDuration      Optional[Duration]         `xml:"maxSubsegmentDuration,attr"`

	ProgramInformation         []ProgramInformation            `xml:"ProgramInformation"`
	BaseURL                    []BaseURL                       `xml:"BaseURL"`
	Location                   []string                        `xml:"Location"`
	PatchLocation              []PatchLocation                 `xml:"PatchLocation"`
	ServiceDescription         []ServiceDescription            `xml:"ServiceDescription"`
	InitializationSet          []InitializationSet             `xml:"InitializationSet"`
	InitializationGroup        []UIntVWithID                   `xml:"InitializationGroup"`
	InitializationPresentation []UIntVWithID                   `xml:"InitializationPresentation"`
	ContentProtection          []ContentProtection             `xml:"ContentProtection"`
	Period                     []Period                        `xml:"Period"`
	Metrics                    []Metrics                       `xml:"Metrics"`
	EssentialProperty          []Descriptor                    `xml:"EssentialProperty"`
	SupplementalProperty       []Descriptor                    `xml:"SupplementalProperty"`
	UTCTiming                  []Descriptor                    `xml:"UTCTiming"`
	LeapSecondInformation      Optional[LeapSecondInformation] `xml:"LeapSecondInformation"`
}

func (f MPDFields) clone() MPDFields {
	f.ProgramInformation = slices.Clone(f.ProgramInformation)
	f.BaseURL = slices.Clone(f.BaseURL)
	f.Location = slices.Clone(f.Location)
	f.PatchLocation = slices.Clone(f.PatchLocation)
	f.ServiceDescription = slices.Clone(f.ServiceDescription)
	f.InitializationSet = slices.Clone(f.InitializationSet)
	f.InitializationGroup = slices.Clone(f.InitializationGroup)
	f.InitializationPresentation = slices.Clone(f.InitializationPresentation)
	f.ContentProtection = slices.Clone(f.ContentProtection)
	f.Period = slices.Clone(f.Period)
	f.Metrics = slices.Clone(f.Metrics)
	f.EssentialProperty = slices.Clone(f.EssentialProperty)
	f.SupplementalProperty = slices.Clone(f.SupplementalProperty)
	f.UTCTiming = slices.Clone(f.UTCTiming)
	return f
}

func (f MPDFields) validate() error {
	profiles, ok := f.Profiles.Get()
	if !ok || profiles.Len() == 0 {
		return emptyCollection("MPD", "@profiles must list at least one profile", "profiles")
	}
	if f.Type.Or(PresentationStatic) == PresentationDynamic {
		if !f.AvailabilityStartTime.IsSet() || !f.PublishTime.IsSet() {
			return missing("MPD", "@availabilityStartTime and @publishTime are required when @type is dynamic",
				"availabilityStartTime", "publishTime")
		}
	}
	return nil
}

func (f *MPDFields) applyDefaults() {
	if !f.Xmlns.IsSet() {
		f.Xmlns = Some(Namespace)
	}
	if !f.XmlnsXSI.IsSet() {
		f.XmlnsXSI = Some(SchemaInstance)
	}
	if !f.SchemaLocation.IsSet() {
		f.SchemaLocation = Some(StringVector{items: []NoWhitespace{Namespace, SchemaFile}})
	}
}

// MPD is the root of a media presentation description.
type MPD struct {
	f MPDFields
}

// NewMPD fills in the default namespace declarations, validates f and returns the MPD.
func NewMPD(f MPDFields) (MPD, error) {
	f = f.clone()
	f.applyDefaults()
	if err := f.validate(); err != nil {
		return MPD{}, err
	}
	return MPD{f: f}, nil
}

// Fields returns a copy of the field set.
func (x MPD) Fields() MPDFields {
	return x.f.clone()
}

// MPDBuilder accumulates the fields of a MPD. The zero value is ready to use.
type MPDBuilder struct {
	f MPDFields
}

func (b *MPDBuilder) Xmlns(v string) *MPDBuilder {
	b.f.Xmlns = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsXSI(v string) *MPDBuilder {
	b.f.XmlnsXSI = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsExt(v string) *MPDBuilder {
	b.f.XmlnsExt = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsXLink(v string) *MPDBuilder {
	b.f.XmlnsXLink = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsCenc(v string) *MPDBuilder {
	b.f.XmlnsCenc = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsDVB(v string) *MPDBuilder {
	b.f.XmlnsDVB = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsSCTE35(v string) *MPDBuilder {
	b.f.XmlnsSCTE35 = Some(v)
	return b
}

func (b *MPDBuilder) XmlnsSCTE214(v string) *MPDBuilder {
	b.f.XmlnsSCTE214 = Some(v)
	return b
}

func (b *MPDBuilder) SchemaLocation(v ...NoWhitespace) *MPDBuilder {
	b.f.SchemaLocation = Some(StringVector{items: slices.Clone(v)})
	return b
}

func (b *MPDBuilder) ID(v string) *MPDBuilder {
	b.f.ID = Some(v)
	return b
}

func (b *MPDBuilder) Profiles(v ...Profile) *MPDBuilder {
	b.f.Profiles = Some(NewListOfProfiles(v...))
	return b
}

func (b *MPDBuilder) Type(v PresentationType) *MPDBuilder {
	b.f.Type = Some(v)
	return b
}

func (b *MPDBuilder) AvailabilityStartTime(v time.Time) *MPDBuilder {
	b.f.AvailabilityStartTime = Some(NewDateTime(v))
	return b
}

func (b *MPDBuilder) PublishTime(v time.Time) *MPDBuilder {
	b.f.PublishTime = Some(NewDateTime(v))
	return b
}

func (b *MPDBuilder) AvailabilityEndTime(v time.Time) *MPDBuilder {
	b.f.AvailabilityEndTime = Some(NewDateTime(v))
	return b
}

func (b *MPDBuilder) MediaPresentationDuration(v time.Duration) *MPDBuilder {
	b.f.MediaPresentationDuration = Some(Duration(v))
	return b
}

func (b *MPDBuilder) MinimumUpdatePeriod(v time.Duration) *MPDBuilder {
	b.f.MinimumUpdatePeriod = Some(Duration(v))
	return b
}

func (b *MPDBuilder) MinBufferTime(v time.Duration) *MPDBuilder {
	b.f.MinBufferTime = Some(Duration(v))
	return b
}

func (b *MPDBuilder) TimeShiftBufferDepth(v time.Duration) *MPDBuilder {
	b.f.TimeShiftBufferDepth = Some(Duration(v))
	return b
}

func (b *MPDBuilder) SuggestedPresentationDelay(v time.Duration) *MPDBuilder {
	b.f.SuggestedPresentationDelay = Some(Duration(v))
	return b
}

func (b *MPDBuilder) MaxSegmentDuration(v time.Duration) *MPDBuilder {
	b.f.MaxSegmentDuration = Some(Duration(v))
	return b
}

func (b *MPDBuilder) MaxSubsegmentDuration(v time.Duration) *MPDBuilder {
	b.f.MaxSubsegmentDuration = Some(Duration(v))
	return b
}

func (b *MPDBuilder) ProgramInformation(v ...ProgramInformation) *MPDBuilder {
	b.f.ProgramInformation = slices.Clone(v)
	return b
}

func (b *MPDBuilder) BaseURL(v ...BaseURL) *MPDBuilder {
	b.f.BaseURL = slices.Clone(v)
	return b
}

func (b *MPDBuilder) Location(v ...string) *MPDBuilder {
	b.f.Location = slices.Clone(v)
	return b
}

func (b *MPDBuilder) PatchLocation(v ...PatchLocation) *MPDBuilder {
	b.f.PatchLocation = slices.Clone(v)
	return b
}

func (b *MPDBuilder) ServiceDescription(v ...ServiceDescription) *MPDBuilder {
	b.f.ServiceDescription = slices.Clone(v)
	return b
}

func (b *MPDBuilder) InitializationSet(v ...InitializationSet) *MPDBuilder {
	b.f.InitializationSet = slices.Clone(v)
	return b
}

func (b *MPDBuilder) InitializationGroup(v ...UIntVWithID) *MPDBuilder {
	b.f.InitializationGroup = slices.Clone(v)
	return b
}

func (b *MPDBuilder) InitializationPresentation(v ...UIntVWithID) *MPDBuilder {
	b.f.InitializationPresentation = slices.Clone(v)
	return b
}

func (b *MPDBuilder) ContentProtection(v ...ContentProtection) *MPDBuilder {
	b.f.ContentProtection = slices.Clone(v)
	return b
}

func (b *MPDBuilder) Period(v ...Period) *MPDBuilder {
	b.f.Period = slices.Clone(v)
	return b
}

func (b *MPDBuilder) Metrics(v ...Metrics) *MPDBuilder {
	b.f.Metrics = slices.Clone(v)
	return b
}

func (b *MPDBuilder) EssentialProperty(v ...Descriptor) *MPDBuilder {
	b.f.EssentialProperty = slices.Clone(v)
	return b
}

func (b *MPDBuilder) SupplementalProperty(v ...Descriptor) *MPDBuilder {
	b.f.SupplementalProperty = slices.Clone(v)
	return b
}

func (b *MPDBuilder) UTCTiming(v ...Descriptor) *MPDBuilder {
	b.f.UTCTiming = slices.Clone(v)
	return b
}

func (b *MPDBuilder) LeapSecondInformation(v LeapSecondInformation) *MPDBuilder {
	b.f.LeapSecondInformation = Some(v)
	return b
}

// Build validates the accumulated fields and returns the MPD.
func (b *MPDBuilder) Build() (MPD, error) {
	return NewMPD(b.f)
}
