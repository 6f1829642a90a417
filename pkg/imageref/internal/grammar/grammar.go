// Package grammar assembles and compiles the regular expressions that
// define the image reference grammar. All expressions are compiled once
// at package initialization and are read-only afterwards, so they are
// safe for unlimited concurrent use.
package grammar

import (
	"regexp"
	"strings"
)

const (
	// alphaNumeric defines the alpha numeric atom of name path
	// components. Only lower case characters and digits are allowed.
	alphaNumeric = `[a-z0-9]+`

	// separator defines the separators allowed to be embedded in name
	// path components: one period, one or two underscores, or one or
	// more dashes.
	separator = `(?:[._]|__|[-]+)`

	// domainLabel restricts a registry hostname label to alphanumerics
	// and inner hyphens, forbidding a leading or trailing hyphen.
	domainLabel = `(?:[a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])`

	// ipv6address matches an IPv6 address enclosed in square brackets.
	// Zone identifiers (RFC 6874) and special addresses such as
	// IPv4-Mapped are excluded.
	ipv6address = `\[(?:[a-fA-F0-9:]+)\]`

	// port defines the registry port atom without the port separator.
	port = `[0-9]{1,5}`

	// tagPat matches valid tag names. Unlike names, tags allow upper
	// case characters. Total length is capped at 128.
	tagPat = `[A-Za-z0-9_][A-Za-z0-9._-]{0,127}`

	// digestPat matches well-formed digests, including the algorithm
	// prefix (e.g. "sha256:<hex>"). Whether the algorithm is actually
	// supported and the hex length correct is checked separately.
	digestPat = `[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*:[0-9a-f]{32,}`
)

var (
	// domainName is one or more dot-separated hostname labels. This is
	// purposely a subset of what DNS allows to stay compatible with the
	// names Docker accepts. It also covers IPv4 addresses in decimal
	// format.
	domainName = expression(
		domainLabel,
		optional(repeated(literal(`.`), domainLabel)),
	)

	// host is a domain name or a bracketed IPv6 address, per the URI
	// Host subcomponent of RFC 3986.
	host = group(domainName, `|`, ipv6address)

	// registryPat matches a host with an optional port suffix.
	registryPat = expression(host, optional(literal(`:`), port))

	// pathComponent is an alphanumeric run optionally continued by
	// separator-joined alphanumeric runs.
	pathComponent = expression(
		alphaNumeric,
		optional(repeated(separator, alphaNumeric)),
	)

	// namePat is one or more slash-joined path components.
	namePat = expression(
		pathComponent,
		optional(repeated(literal(`/`), pathComponent)),
	)
)

var (
	// AnchoredRegistry matches a whole string against the registry
	// (hostname with optional port) grammar.
	AnchoredRegistry = regexp.MustCompile(anchored(registryPat))

	// AnchoredName matches a whole string against the name grammar,
	// without any registry, tag or digest parts.
	AnchoredName = regexp.MustCompile(anchored(namePat))

	// AnchoredTag matches a whole string against the tag grammar.
	AnchoredTag = regexp.MustCompile(anchored(tagPat))

	// AnchoredDigest matches a whole string against the digest grammar.
	AnchoredDigest = regexp.MustCompile(anchored(digestPat))
)

// literal escapes any regexp reserved characters in s.
func literal(s string) string {
	return regexp.QuoteMeta(s)
}

// expression concatenates expressions, each one following the previous.
func expression(res ...string) string {
	return strings.Join(res, "")
}

// group wraps the expression in a non-capturing group.
func group(res ...string) string {
	return `(?:` + expression(res...) + `)`
}

// optional wraps the expression in a non-capturing group and matches it
// zero or one times.
func optional(res ...string) string {
	return group(res...) + `?`
}

// repeated wraps the expression in a non-capturing group and matches it
// one or more times.
func repeated(res ...string) string {
	return group(res...) + `+`
}

// anchored anchors the expression at the start and end of the matched
// string.
func anchored(res ...string) string {
	return `^` + expression(res...) + `$`
}
