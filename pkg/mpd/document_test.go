package mpd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLive = `<?xml version="1.0" encoding="UTF-8"?>
<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"
     xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
     xmlns:xlink="http://www.w3.org/1999/xlink"
     xmlns:cenc="urn:mpeg:cenc:2013"
     xsi:schemaLocation="urn:mpeg:dash:schema:mpd:2011 DASH-MPD.xsd"
     profiles="urn:mpeg:dash:profile:isoff-live:2011,urn:mpeg:dash:profile:cmaf:2019"
     type="dynamic"
     availabilityStartTime="2024-05-01T12:00:00Z"
     publishTime="2024-05-01T12:00:30Z"
     minimumUpdatePeriod="PT2S"
     minBufferTime="PT4S"
     timeShiftBufferDepth="PT1M">
  <ProgramInformation lang="en">
    <Title>Live channel</Title>
  </ProgramInformation>
  <Period id="p0" start="PT0S">
    <AdaptationSet id="1" contentType="video" segmentAlignment="true" mimeType="video/mp4" startWithSAP="1">
      <ContentProtection schemeIdUri="urn:uuid:edef8ba9-79d6-4ace-a3c8-27dcd51d21ed"><cenc:pssh>AAAA</cenc:pssh></ContentProtection>
      <Role schemeIdUri="urn:mpeg:dash:role:2011" value="main"/>
      <SegmentTemplate timescale="90000" media="$RepresentationID$/$Time$.m4s" initialization="$RepresentationID$/init.mp4">
        <SegmentTimeline>
          <S t="0" d="180000" r="-1"/>
        </SegmentTimeline>
      </SegmentTemplate>
      <Representation id="720p" bandwidth="2800000" width="1280" height="720" codecs="avc1.64001f" frameRate="30000/1001" sar="1:1"/>
      <Representation id="1080p" bandwidth="5000000" width="1920" height="1080" codecs="avc1.640028" frameRate="30000/1001" sar="1:1"/>
    </AdaptationSet>
  </Period>
  <Period id="p1" xlink:href="https://example.com/p1.xml" xlink:actuate="onLoad"/>
  <UTCTiming schemeIdUri="urn:mpeg:dash:utc:http-iso:2014" value="https://time.example.com/"/>
</MPD>
`

func TestUnmarshalSample(t *testing.T) {
	m, err := Unmarshal([]byte(sampleLive))
	require.NoError(t, err)

	f := m.Fields()
	assert.Equal(t, Namespace, f.Xmlns.Value())
	assert.Equal(t, "urn:mpeg:cenc:2013", f.XmlnsCenc.Value())
	assert.Equal(t, XLinkNamespace, f.XmlnsXLink.Value())
	assert.Equal(t, PresentationDynamic, f.Type.Value())
	assert.Equal(t, []Profile{ProfileISOLive, ProfileCMAF}, f.Profiles.Value().Items())
	assert.Equal(t, 4*time.Second, f.MinBufferTime.Value().Std())
	assert.True(t, f.PublishTime.Value().Time().Equal(time.Date(2024, 5, 1, 12, 0, 30, 0, time.UTC)))
	require.Len(t, f.ProgramInformation, 1)
	assert.Equal(t, "Live channel", f.ProgramInformation[0].Fields().Title.Value())
	require.Len(t, f.UTCTiming, 1)

	require.Len(t, f.Period, 2)
	assert.Equal(t, "https://example.com/p1.xml", f.Period[1].Fields().XLinkHref.Value())
	assert.Equal(t, ActuateOnLoad, f.Period[1].Fields().XLinkActuate.Value())

	period := f.Period[0].Fields()
	require.Len(t, period.AdaptationSet, 1)
	as := period.AdaptationSet[0].Fields()
	assert.Equal(t, ContentVideo, as.ContentType.Value())
	assert.Equal(t, SAPType1, as.StartWithSAP.Value())
	require.Len(t, as.ContentProtection, 1)
	assert.Contains(t, as.ContentProtection[0].Fields().Content, "AAAA")

	tmpl := as.SegmentTemplate.Value()
	assert.Equal(t, uint32(90000), tmpl.Fields().Timescale.Value())
	assert.Equal(t, "$RepresentationID$/init.mp4", tmpl.Fields().InitializationTemplate.Value())
	entries, err := tmpl.Fields().SegmentTimeline.Value().Resolve(900000)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	require.Len(t, as.Representation, 2)
	rep := as.Representation[1].Fields()
	assert.Equal(t, NoWhitespace("1080p"), rep.ID.Value())
	assert.Equal(t, uint32(5000000), rep.Bandwidth.Value())
	assert.Equal(t, "30000/1001", rep.FrameRate.Value().String())
	assert.Equal(t, []string{"avc1.640028"}, rep.Codecs.Value().IDs())
}

func buildVOD(t *testing.T) MPD {
	t.Helper()

	codecs, err := ParseCodecs("avc1.64001f")
	require.NoError(t, err)
	role, err := (&DescriptorBuilder{}).SchemeIDURI(RoleScheme).Value("main").Build()
	require.NoError(t, err)
	label, err := (&LabelBuilder{}).Lang("en").Text("English").Build()
	require.NoError(t, err)
	s, err := (&SegmentBuilder{}).T(0).D(4000).R(14).Build()
	require.NoError(t, err)
	tl, err := (&SegmentTimelineBuilder{}).S(s).Build()
	require.NoError(t, err)
	tmpl, err := (&SegmentTemplateBuilder{}).
		Timescale(1000).
		Media("$RepresentationID$/$Number$.m4s").
		InitializationTemplate("$RepresentationID$/init.mp4").
		StartNumber(1).
		SegmentTimeline(tl).
		Build()
	require.NoError(t, err)

	rep, err := (&RepresentationBuilder{}).
		ID("720p").
		Bandwidth(2800000).
		Common((&CommonAttributesBuilder{}).Width(1280).Height(720).Codecs(codecs).Build()).
		Build()
	require.NoError(t, err)

	fps, err := NewFrameRate(25, 1)
	require.NoError(t, err)
	as, err := (&AdaptationSetBuilder{}).
		ID(1).
		ContentType(ContentVideo).
		SegmentAlignment(true).
		Common((&CommonAttributesBuilder{}).MimeType("video/mp4").FrameRate(fps).Label(label).Build()).
		Role(role).
		SegmentTemplate(tmpl).
		Representation(rep).
		Build()
	require.NoError(t, err)

	period, err := (&PeriodBuilder{}).ID("p0").Start(0).AdaptationSet(as).Build()
	require.NoError(t, err)
	info, err := (&ProgramInformationBuilder{}).Title("Sample").Build()
	require.NoError(t, err)

	m, err := (&MPDBuilder{}).
		Profiles(ProfileISOOnDemand).
		Type(PresentationStatic).
		MediaPresentationDuration(time.Minute).
		MinBufferTime(2 * time.Second).
		ProgramInformation(info).
		Period(period).
		Build()
	require.NoError(t, err)
	return m
}

func TestMarshalRoundTrip(t *testing.T) {
	m := buildVOD(t)

	first, err := Marshal(m)
	require.NoError(t, err)
	out := string(first)

	assert.True(t, strings.HasPrefix(out, XMLDeclaration+"\n<MPD "))
	assert.Contains(t, out, `xmlns="urn:mpeg:dash:schema:mpd:2011"`)
	assert.Contains(t, out, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, out, `xsi:schemaLocation="urn:mpeg:dash:schema:mpd:2011 DASH-MPD.xsd"`)
	assert.Contains(t, out, `mediaPresentationDuration="PT1M"`)
	assert.Contains(t, out, `<S t="0" d="4000" r="14"></S>`)
	assert.Contains(t, out, `<Label lang="en">English</Label>`)
	assert.Contains(t, out, `frameRate="25/1"`)
	assert.NotContains(t, out, `availabilityStartTime`)

	parsed, err := Unmarshal(first)
	require.NoError(t, err)
	second, err := Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, out, string(second))
}

func TestEncodePeriodXLink(t *testing.T) {
	period, err := (&PeriodBuilder{}).ID("remote").XLinkHref("https://example.com/p.xml").XLinkActuate(ActuateOnRequest).Build()
	require.NoError(t, err)
	m, err := (&MPDBuilder{}).Profiles(ProfileFull).Period(period).Build()
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Encode(&b, m))
	assert.Contains(t, b.String(), `xlink:href="https://example.com/p.xml"`)
	assert.Contains(t, b.String(), `xlink:actuate="onRequest"`)

	parsed, err := Unmarshal([]byte(b.String()))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p.xml", parsed.Fields().Period[0].Fields().XLinkHref.Value())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "wrong root",
			doc:  `<Manifest/>`,
			want: ErrNotMPD,
		},
		{
			name: "empty",
			doc:  ``,
			want: ErrNotMPD,
		},
		{
			name: "unknown encoding",
			doc:  `<?xml version="1.0" encoding="bogus"?><MPD profiles="urn:mpeg:dash:profile:full:2011"/>`,
			want: ErrMalformedDocument,
		},
		{
			name: "mismatched end tag",
			doc:  `<MPD profiles="urn:mpeg:dash:profile:full:2011"><Period></MPD>`,
			want: ErrMalformedDocument,
		},
		{
			name: "no profiles",
			doc:  `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"/>`,
			want: ErrEmptyRequiredCollection,
		},
		{
			name: "dynamic without publishTime",
			doc:  `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011" type="dynamic" availabilityStartTime="2024-01-01T00:00:00Z"/>`,
			want: ErrMissingRequiredField,
		},
		{
			name: "representation without id",
			doc: `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011"><Period><AdaptationSet>` +
				`<Representation bandwidth="1"/></AdaptationSet></Period></MPD>`,
			want: ErrMissingRequiredField,
		},
		{
			name: "bad duration",
			doc:  `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011" minBufferTime="2s"/>`,
			want: ErrMalformedValue,
		},
		{
			name: "bad unsigned",
			doc:  `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011"><Period><AdaptationSet id="-1"/></Period></MPD>`,
			want: ErrUpstreamCodec,
		},
		{
			name: "zero segment duration",
			doc: `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011"><Period><SegmentTemplate><SegmentTimeline>` +
				`<S d="0"/></SegmentTimeline></SegmentTemplate></Period></MPD>`,
			want: ErrOutOfRange,
		},
		{
			name: "two segment schemes",
			doc: `<MPD profiles="urn:mpeg:dash:profile:isoff-live:2011"><Period><SegmentBase/>` +
				`<SegmentTemplate/></Period></MPD>`,
			want: ErrInvalidFieldCombination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<MPD profiles=\"urn:mpeg:dash:profile:full:2011\"><ProgramInformation><Title>Caf\xe9</Title></ProgramInformation></MPD>"
	m, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Café", m.Fields().ProgramInformation[0].Fields().Title.Value())
}
