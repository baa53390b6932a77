package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

const vodManifest = `<?xml version="1.0" encoding="UTF-8"?>
<MPD xmlns="urn:mpeg:dash:schema:mpd:2011" type="static" id="bunny"
     profiles="urn:mpeg:dash:profile:isoff-on-demand:2011"
     mediaPresentationDuration="PT0H1M30.0S" minBufferTime="PT2S">
  <Period id="main">
    <AdaptationSet id="1" contentType="video" mimeType="video/mp4">
      <Representation id="v360" bandwidth="900000" width="640" height="360" codecs="avc1.4d401e"/>
      <Representation id="v720" bandwidth="3500000" width="1280" height="720" codecs="avc1.64001f"/>
    </AdaptationSet>
    <AdaptationSet id="2" contentType="audio" mimeType="audio/mp4" lang="en">
      <Representation id="a128" bandwidth="128000" codecs="mp4a.40.2"/>
    </AdaptationSet>
  </Period>
</MPD>
`

const invalidManifest = `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011">
  <Period><AdaptationSet><Representation id="v1"/></AdaptationSet></Period>
</MPD>`

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, s)
	}
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.mpd", vodManifest)
	bad := writeFile(t, "bad.mpd", invalidManifest)

	out, _, err := runCLI(t, "", "validate", good)
	if err != nil {
		t.Fatalf("validate good: %v", err)
	}
	requireContains(t, out, "good.mpd: ok")

	out, _, err = runCLI(t, "", "validate", good, bad)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	requireContains(t, out, "bad.mpd: missing required field")
}

func TestValidateJSON(t *testing.T) {
	out, _, err := runCLI(t, invalidManifest, "validate", "--json", "-")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}

	var results []validationResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Valid || results[0].Entity != "Representation" {
		t.Errorf("unexpected result %+v", results[0])
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "validate", filepath.Join(t.TempDir(), "missing.mpd"))
	if err == nil || errors.Is(err, errInvalid) {
		t.Fatalf("expected an I/O error, got %v", err)
	}
}

func TestParseCanonicalises(t *testing.T) {
	out, _, err := runCLI(t, vodManifest, "parse", "-")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, `mediaPresentationDuration="PT1M30S"`)

	// Canonical output is a fixed point
	again, _, err := runCLI(t, out, "parse", "-")
	if err != nil {
		t.Fatalf("parse canonical: %v", err)
	}
	if again != out {
		t.Errorf("canonical encoding changed on second pass:\n%s\nvs\n%s", out, again)
	}
}

func TestParseSummary(t *testing.T) {
	out, _, err := runCLI(t, vodManifest, "parse", "--summary", "-")
	if err != nil {
		t.Fatalf("parse --summary: %v", err)
	}
	requireContains(t, out, `"id": "bunny"`)
	requireContains(t, out, `"media_presentation_duration": "PT1M30S"`)
}

func TestInspect(t *testing.T) {
	path := writeFile(t, "vod.mpd", vodManifest)

	out, _, err := runCLI(t, "", "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "static")
	requireContains(t, out, "v720")
	requireContains(t, out, "1280x720")
	requireContains(t, out, "3.50 Mbps")
	requireContains(t, out, "128 kbps")
}

func TestQuery(t *testing.T) {
	out, _, err := runCLI(t, vodManifest, "query", "-", "//Representation/@id")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got := strings.Fields(out); strings.Join(got, " ") != "v360 v720 a128" {
		t.Errorf("unexpected ids %q", got)
	}

	out, _, err = runCLI(t, vodManifest, "query", "-", "count(//AdaptationSet)")
	if err != nil {
		t.Fatalf("query count: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("expected 2, got %q", out)
	}
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mpd")

	_, stderr, err := runCLI(t, "", "generate", "--ladder", "720p,360p", "--duration", "30s", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, stderr, "4 representations")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	m, err := mpd.Unmarshal(data)
	if err != nil {
		t.Fatalf("generated manifest does not decode: %v", err)
	}
	if m.Fields().Type.Value() != mpd.PresentationStatic {
		t.Errorf("expected static presentation")
	}
}

func TestGenerateFromSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mpd")

	// 144p through 480p plus a 64k and a 96k audio track
	_, stderr, err := runCLI(t, "", "generate", "--source", "854x480", "--duration", "1m", "-o", path)
	if err != nil {
		t.Fatalf("generate --source: %v", err)
	}
	requireContains(t, stderr, "6 representations")

	if _, _, err := runCLI(t, "", "generate", "--source", "wide", "--duration", "1m"); err == nil {
		t.Error("expected an error for a malformed --source")
	}
}

func TestGenerateLive(t *testing.T) {
	out, _, err := runCLI(t, "", "generate", "--live", "--ladder", "720p")
	if err != nil {
		t.Fatalf("generate --live: %v", err)
	}
	requireContains(t, out, `type="dynamic"`)
}

func TestGenerateErrors(t *testing.T) {
	if _, _, err := runCLI(t, "", "generate", "--ladder", "720p"); err == nil {
		t.Error("expected an error for a static manifest without duration")
	}
	if _, _, err := runCLI(t, "", "generate", "--ladder", "8K", "--duration", "1m"); err == nil {
		t.Error("expected an error for an unknown rendition")
	}
}

func TestToken(t *testing.T) {
	t.Setenv("DASHMPD_AUTH_JWTSECRET", "cli-secret")

	out, stderr, err := runCLI(t, "", "token", "--config", "", "--publisher", "encoder-01", "--ttl", "10m")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	requireContains(t, stderr, "Token for encoder-01 expires at")

	claims := &middleware.Claims{}
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	})
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Publisher != "encoder-01" {
		t.Errorf("expected publisher encoder-01, got %q", claims.Publisher)
	}
	if len(claims.Scopes) != 1 || claims.Scopes[0] != middleware.ScopeWrite {
		t.Errorf("unexpected scopes %v", claims.Scopes)
	}

	if _, _, err := runCLI(t, "", "token", "--config", ""); err == nil {
		t.Error("expected an error without --publisher")
	}
}
