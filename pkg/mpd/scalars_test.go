package mpd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		out  string
	}{
		{"PT3H11M53S", 3*time.Hour + 11*time.Minute + 53*time.Second, "PT3H11M53S"},
		{"PT0S", 0, "PT0S"},
		{"P0D", 0, "PT0S"},
		{"PT1.5S", 1500 * time.Millisecond, "PT1.5S"},
		{"PT90S", 90 * time.Second, "PT1M30S"},
		{"P1D", 24 * time.Hour, "PT24H"},
		{"P1M", 30 * 24 * time.Hour, "PT720H"},
		{"P1Y", 365 * 24 * time.Hour, "PT8760H"},
		{"P1DT2H", 26 * time.Hour, "PT26H"},
		{"-PT10S", -10 * time.Second, "-PT10S"},
		{"PT0.000000001S", time.Nanosecond, "PT0.000000001S"},
		{"PT1.0000000019S", time.Second + time.Nanosecond, "PT1.000000001S"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Std())
			assert.Equal(t, tt.out, d.String())
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	for _, in := range []string{"", "P", "PT", "1S", "P1S", "PT1D", "PT1.5M", "PT1H1H", "PT1M1H", "P1DT", "PTS", "PT1..5S", "P1.5D"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedValue), "got %v", err)
		})
	}
}

func TestDateTime(t *testing.T) {
	dt, err := ParseDateTime("2023-04-05T06:07:08.500Z")
	require.NoError(t, err)
	assert.Equal(t, "2023-04-05T06:07:08.5Z", dt.String())

	offset, err := ParseDateTime("2023-04-05T08:07:08.5+02:00")
	require.NoError(t, err)
	assert.True(t, dt.Equal(offset))

	naive, err := ParseDateTime("2023-04-05T06:07:08")
	require.NoError(t, err)
	assert.True(t, naive.Time().Equal(time.Date(2023, 4, 5, 6, 7, 8, 0, time.Local)))

	_, err = ParseDateTime("yesterday")
	assert.ErrorIs(t, err, ErrUpstreamCodec)

	_, err = ParseDateTime(" 2023-04-05T06:07:08Z")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"+007", "7"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		v, err := ParseInteger(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.out, v.String())
	}

	_, fits := mustInteger(t, "123456789012345678901234567890").Int64()
	assert.False(t, fits)

	_, err := ParseInteger("4.2")
	assert.ErrorIs(t, err, ErrMalformedValue)
	assert.True(t, NewInteger(-1).Equal(mustInteger(t, "-1")))
}

func mustInteger(t *testing.T, s string) Integer {
	t.Helper()
	v, err := ParseInteger(s)
	require.NoError(t, err)
	return v
}

func TestRatio(t *testing.T) {
	r, err := ParseRatio("1920:1080")
	require.NoError(t, err)
	assert.Equal(t, "16:9", r.String())
	assert.Equal(t, NewRatio(16, 9), r)

	zero, err := ParseRatio("0:0")
	require.NoError(t, err)
	assert.Equal(t, "0:0", zero.String())

	for _, in := range []string{"16:", ":9", "16", "16:9:1", "a:b", "-16:9"} {
		_, err := ParseRatio(in)
		assert.ErrorIs(t, err, ErrMalformedValue, in)
	}

	_, err = ParseRatio("99999999999999999999:1")
	assert.ErrorIs(t, err, ErrUpstreamCodec)
}

func TestFrameRate(t *testing.T) {
	fr, err := ParseFrameRate("30")
	require.NoError(t, err)
	assert.Equal(t, "30/1", fr.String())
	assert.Equal(t, uint64(1), fr.Denominator())

	ntsc, err := ParseFrameRate("30000/1001")
	require.NoError(t, err)
	assert.InDelta(t, 29.97, ntsc.Float64(), 0.001)

	_, err = ParseFrameRate("30/0")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = NewFrameRate(25, 0)
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestFourCC(t *testing.T) {
	f, err := ParseFourCC("avc1")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x61766331), f.Uint32())
	assert.Equal(t, f, FourCCFromUint32(0x61766331))
	assert.Equal(t, "avc1", f.String())

	_, err = ParseFourCC("avc")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestByteRange(t *testing.T) {
	for _, in := range []string{"0-499", "500-", "-500", "7"} {
		r, err := ParseByteRange(in)
		require.NoError(t, err, in)
		if in == "7" {
			assert.Equal(t, "7-", r.String())
			continue
		}
		assert.Equal(t, in, r.String())
	}

	empty, err := ParseByteRange("")
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())

	for _, in := range []string{"500-499", "1-2-3", "a-b"} {
		_, err := ParseByteRange(in)
		assert.ErrorIs(t, err, ErrMalformedValue, in)
	}

	_, err = NewByteRange(10, 9)
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestCodecs(t *testing.T) {
	t.Run("fancy with dots", func(t *testing.T) {
		c, err := ParseCodecs("avc1.4d401f,mp4a.40.2")
		require.NoError(t, err)
		assert.True(t, c.Fancy())
		assert.Equal(t, []string{"avc1.4d401f", "mp4a.40.2"}, c.IDs())
		assert.Equal(t, "avc1.4d401f,mp4a.40.2", c.String())
	})

	t.Run("fancy drops space after comma", func(t *testing.T) {
		c, err := ParseCodecs("avc1.4d401f,  mp4a.40.2")
		require.NoError(t, err)
		assert.Equal(t, []string{"avc1.4d401f", "mp4a.40.2"}, c.IDs())
		assert.Equal(t, "avc1.4d401f,mp4a.40.2", c.String())
	})

	t.Run("fancy with charset and language", func(t *testing.T) {
		c, err := ParseCodecs("UTF-8'en'avc1.4d401f")
		require.NoError(t, err)
		assert.Equal(t, "UTF-8", c.Charset())
		assert.Equal(t, "en", c.Language())
		assert.Equal(t, "UTF-8'en'avc1.4d401f", c.String())
	})

	t.Run("simple", func(t *testing.T) {
		c, err := ParseCodecs("avc1, mp4a")
		require.NoError(t, err)
		assert.False(t, c.Fancy())
		assert.Equal(t, []string{"avc1", "mp4a"}, c.IDs())
		assert.Equal(t, "avc1,mp4a", c.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{
			"", "avc1 mp4a", "avc1,", "'en'avc1.4d",
			"avc1.4d0028;mp4a.40.2", "avc1.4d401f ,mp4a.40.2", " avc1.4d401f",
		} {
			_, err := ParseCodecs(in)
			assert.ErrorIs(t, err, ErrMalformedValue, in)
		}
	})
}

func TestTextTypes(t *testing.T) {
	_, err := ParseNoWhitespace("has space")
	assert.ErrorIs(t, err, ErrMalformedValue)

	id, err := ParseIdentifier("video_1")
	require.NoError(t, err)
	assert.Equal(t, "video_1", id.String())
	_, err = ParseIdentifier("1video")
	assert.ErrorIs(t, err, ErrMalformedValue)

	lang, err := ParseLanguageTag("en-us")
	require.NoError(t, err)
	canonical, err := lang.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "en-US", canonical)
	_, err = ParseLanguageTag("english language")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestEnumerations(t *testing.T) {
	var p PresentationType
	require.NoError(t, p.UnmarshalText([]byte("dynamic")))
	assert.Equal(t, PresentationDynamic, p)

	err := p.UnmarshalText([]byte("live"))
	assert.ErrorIs(t, err, ErrMalformedValue)
	assert.Equal(t, PresentationDynamic, p)

	sap, err := ParseStreamAccessPoint("0")
	require.NoError(t, err)
	assert.Equal(t, SAPType0, sap)
	_, err = ParseStreamAccessPoint("7")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestProfiles(t *testing.T) {
	p, err := ParseProfile("urn:mpeg:dash:profile:isoff-live:2011")
	require.NoError(t, err)
	assert.Equal(t, ProfileISOLive, p)
	assert.True(t, p.Known())

	custom, err := ParseProfile("https://example.com/profiles/low-latency")
	require.NoError(t, err)
	assert.False(t, custom.Known())

	_, err = ParseProfile("isoff-live")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestTemplateIdentifiers(t *testing.T) {
	ids := TemplateIdentifiers("video/$RepresentationID$/seg-$Number%05d$-$Time$.m4s")
	assert.Equal(t, []TemplateIdentifier{TemplateRepresentationID, TemplateNumber, TemplateTime}, ids)
	assert.Empty(t, TemplateIdentifiers("init.mp4"))
}
