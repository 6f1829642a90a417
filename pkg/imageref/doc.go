// Package imageref parses container image reference strings into their
// registry, name, tag and digest components, and renders the structured
// form back into its canonical string representation.
//
// # Grammar
//
//	reference          := [registry '/'] name [ ':' tag ] [ '@' digest ]
//	registry           := host [':' port]
//	host               := domain-name | '[' IPv6address ']'	; rfc3986 appendix-A
//	domain-name        := domain-label ['.' domain-label]*
//	domain-label       := /([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])/
//	port               := /[0-9]{1,5}/
//	name               := path-component ['/' path-component]*
//	path-component     := alpha-numeric [separator alpha-numeric]*
//	alpha-numeric      := /[a-z0-9]+/
//	separator          := /[_.]|__|[-]+/
//
//	tag                := /[A-Za-z0-9_][A-Za-z0-9._-]{0,127}/
//
//	digest             := algorithm ":" hex
//	algorithm          := algorithm-component [algorithm-separator algorithm-component]*
//	algorithm-separator:= /[+._-]/
//	algorithm-component:= /[A-Za-z][A-Za-z0-9]*/
//	hex                := /[0-9a-f]{32,}/ ; length must match the algorithm digest size
//
// The grammar is ambiguous on where a registry ends and a name begins:
// a single-segment prefix such as "nginx" could name either. Parse
// resolves it the way the Docker ecosystem does: the part before the
// first slash is a registry only when it contains a "." or a ":" or is
// the literal "localhost". A consequence worth knowing is that a
// single-label host with a port and no path, such as "myreg:5000",
// parses as the name "myreg" with tag "5000". This is inherent to the
// reference format and kept for compatibility.
//
// # NOTE
//
// This package draws inspiration deeply from the follow repositories:
//   - github.com/docker/distribution/reference
//   - oras.land/oras-go/v2/registry/reference.go
//   - github.com/google/go-containerregistry/pkg/name
package imageref
