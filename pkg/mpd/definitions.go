package mpd

// Namespaces and well-known scheme identifiers.
const (
	XMLDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	Namespace      = "urn:mpeg:dash:schema:mpd:2011"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
	SchemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaFile     = "DASH-MPD.xsd"
	DVBExtension   = "urn:dvb:dash-extentions:2014-1"
	RoleScheme     = "urn:mpeg:dash:role:2011"
)

// Profile is a DASH profile URI. The constants below are the profiles defined by
// ISO/IEC 23009-1 and the major industry bodies; any other URN or URL is accepted.
type Profile string

const (
	ProfileFull           Profile = "urn:mpeg:dash:profile:full:2011"
	ProfileISOOnDemand    Profile = "urn:mpeg:dash:profile:isoff-on-demand:2011"
	ProfileISOLive        Profile = "urn:mpeg:dash:profile:isoff-live:2011"
	ProfileISOMain        Profile = "urn:mpeg:dash:profile:isoff-main:2011"
	ProfileMP2TMain       Profile = "urn:mpeg:dash:profile:mp2t-main:2011"
	ProfileMP2TSimple     Profile = "urn:mpeg:dash:profile:mp2t-simple:2011"
	ProfileISOExtLive     Profile = "urn:mpeg:dash:profile:isoff-ext-live:2014"
	ProfileISOExtOnDemand Profile = "urn:mpeg:dash:profile:isoff-ext-on-demand:2014"
	ProfileISOCommon      Profile = "urn:mpeg:dash:profile:isoff-common:2014"
	ProfileISOBroadcast   Profile = "urn:mpeg:dash:profile:isoff-broadcast:2015"
	ProfileCMAF           Profile = "urn:mpeg:dash:profile:cmaf:2019"
	ProfileCMAFExtended   Profile = "urn:mpeg:dash:profile:cmaf-extended:2019"
	Profile3GPPDash10     Profile = "urn:3GPP:PSS:profile:DASH10"
	ProfileDVBDash        Profile = "urn:dvb:dash:profile:dvb-dash:2014"
	ProfileHbbTVLive      Profile = "urn:hbbtv:dash:profile:isoff-live:2012"
)

// KnownProfiles lists the named profile constants.
var KnownProfiles = []Profile{
	ProfileFull, ProfileISOOnDemand, ProfileISOLive, ProfileISOMain, ProfileMP2TMain,
	ProfileMP2TSimple, ProfileISOExtLive, ProfileISOExtOnDemand, ProfileISOCommon,
	ProfileISOBroadcast, ProfileCMAF, ProfileCMAFExtended, Profile3GPPDash10,
	ProfileDVBDash, ProfileHbbTVLive,
}

// ParseProfile returns the matching known profile, or s itself when it is some
// other URN or URL.
func ParseProfile(s string) (Profile, error) {
	for _, p := range KnownProfiles {
		if string(p) == s {
			return p, nil
		}
	}
	if !profilePattern().MatchString(s) {
		return "", malformed("Profile", s, "not a URN or URL")
	}
	return Profile(s), nil
}

// Known reports whether p is one of KnownProfiles.
func (p Profile) Known() bool {
	for _, k := range KnownProfiles {
		if k == p {
			return true
		}
	}
	return false
}

func (p Profile) String() string { return string(p) }

func (p Profile) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *Profile) UnmarshalText(text []byte) error {
	v, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PeriodSignalling identifies continuity or connectivity between periods,
// carried as a SupplementalProperty scheme.
type PeriodSignalling string

const (
	PeriodContinuity   PeriodSignalling = "urn:mpeg:dash:period-continuity:2015"
	PeriodConnectivity PeriodSignalling = "urn:mpeg:dash:period-connectivity:2015"
)

func (p PeriodSignalling) String() string { return string(p) }

func (p PeriodSignalling) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *PeriodSignalling) UnmarshalText(text []byte) error {
	v, err := parseEnum("PeriodSignalling", string(text), PeriodContinuity, PeriodConnectivity)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Descriptor returns a SupplementalProperty signalling that the period follows
// the period with id previous.
func (p PeriodSignalling) Descriptor(previous string) Descriptor {
	d, _ := (&DescriptorBuilder{}).SchemeIDURI(string(p)).Value(previous).Build()
	return d
}

// TemplateIdentifier is a SegmentTemplate substitution identifier.
type TemplateIdentifier string

const (
	TemplateRepresentationID TemplateIdentifier = "$RepresentationID$"
	TemplateNumber           TemplateIdentifier = "$Number$"
	TemplateBandwidth        TemplateIdentifier = "$Bandwidth$"
	TemplateTime             TemplateIdentifier = "$Time$"
	TemplateSubNumber        TemplateIdentifier = "$SubNumber$"
)

// TemplateIdentifiers returns the identifiers used in a media or initialization
// template in order of appearance. A width tag such as $Number%05d$ is reported
// as its bare identifier.
func TemplateIdentifiers(template string) []TemplateIdentifier {
	matches := templateIdPattern().FindAllStringSubmatch(template, -1)
	ids := make([]TemplateIdentifier, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, TemplateIdentifier("$"+m[1]+"$"))
	}
	return ids
}
