package mpd

import (
	"regexp"
	"sync"
)

// Building blocks shared by several patterns.
const (
	integerExpr     = `[\-\+]?[0-9]+`
	ncNameExpr      = `[A-Za-z_][A-Za-z0-9_\-\.]*`
	languageExpr    = `[a-zA-Z]{1,8}(?:-[a-zA-Z0-9]{1,8})*`
	charsetExpr     = `[A-Za-z0-9\-]+`
	idEncodedExpr   = `[A-Za-z0-9.\-]+`
	idSimpleExpr    = `[A-Za-z0-9\-]+`
	noWhitespace    = `[^\r\n\t \p{Z}]*`
	urnExpr         = `urn:[a-zA-Z0-9\-]+(?::[a-zA-Z0-9\-]+)*`
	urlExpr         = `https?://[a-zA-Z0-9\-._~:/?#\[@\]!$&'()*+,;=%]+`
	templateIdsExpr = `\$(RepresentationID|Number|Bandwidth|Time|SubNumber)(%0[0-9]+[diuxXo])?\$`
)

func pattern(expr string) func() *regexp.Regexp {
	return sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(expr)
	})
}

// Compiled on first use and shared by every codec.
var (
	integerPattern      = pattern(`^` + integerExpr + `$`)
	unsignedPattern     = pattern(`^[0-9]+$`)
	ncNamePattern       = pattern(`^` + ncNameExpr + `$`)
	languagePattern     = pattern(`^` + languageExpr + `$`)
	noWhitespacePattern = pattern(`^` + noWhitespace + `$`)
	profilePattern      = pattern(`^(?:` + urnExpr + `|` + urlExpr + `)$`)
	frameRatePattern    = pattern(`^([0-9]+)(?:/([1-9][0-9]*))?$`)
	byteRangePattern    = pattern(`^([0-9]*)(?:-([0-9]*))?$`)
	templateIdPattern   = pattern(templateIdsExpr)

	fancyCodecsPattern = pattern(
		`^(?:(?P<charset>` + charsetExpr + `)'(?P<language>` + languageExpr + `)')?` +
			`(?P<codecs>` + idEncodedExpr + `(?:,\s*` + idEncodedExpr + `)*)$`,
	)
	simpleCodecsPattern = pattern(`^` + idSimpleExpr + `(?:,\s*` + idSimpleExpr + `)*$`)
)
