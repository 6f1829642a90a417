package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/containerkit/imageref/pkg/imageref/internal/grammar"
)

func TestAnchoredRegistry(t *testing.T) {
	testcases := []struct {
		input string
		match bool
	}{
		{"docker.io", true},
		{"registry.example.com", true},
		{"my-registry.local:5000", true},
		{"localhost", true},
		{"localhost:3000", true},
		{"172.16.18.130", true},
		{"172.16.18.130:3000", true},
		{"[fd00:1:2::3]:7505", true},
		{"[2001:0db8:85a3:0000:0000:8a2e:0370:7334]", true},
		{"a", true},
		{"Registry.Example.COM", true},

		{"", false},
		{"-registry.com", false},
		{"registry-.com", false},
		{"registry..com", false},
		{"registry.com:", false},
		{"registry.com:123456", false},
		{"registry.com:port", false},
		{"registry.com/path", false},
		{"docker\U0001F680.io", false},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.match, grammar.AnchoredRegistry.MatchString(tc.input))
		})
	}
}

func TestAnchoredName(t *testing.T) {
	testcases := []struct {
		input string
		match bool
	}{
		{"nginx", true},
		{"library/nginx", true},
		{"a/b/c/d", true},
		{"my-image", true},
		{"my_image", true},
		{"my__image", true},
		{"my.image", true},
		{"foo-bar--baz", true},
		{"0sample", true},

		{"", false},
		{"NGINX", false},
		{"library/NGINX", false},
		{"-nginx", false},
		{"nginx-", false},
		{"nginx.", false},
		{"my..image", false},
		{"my___image", false},
		{"library//nginx", false},
		{"/nginx", false},
		{"nginx/", false},
		{"nginx\U0001F680", false},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.match, grammar.AnchoredName.MatchString(tc.input))
		})
	}
}

func TestAnchoredTag(t *testing.T) {
	testcases := []struct {
		input string
		match bool
	}{
		{"latest", true},
		{"v1.0.0", true},
		{"1.27", true},
		{"stable-alpine3.20-perl", true},
		{"_hidden", true},
		{"UPPER.case-OK", true},
		{strings.Repeat("a", 128), true},

		{"", false},
		{".start", false},
		{"-start", false},
		{"lat:est", false},
		{"lat est", false},
		{"lat\U0001F680est", false},
		{strings.Repeat("a", 129), false},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.match, grammar.AnchoredTag.MatchString(tc.input))
		})
	}
}

func TestAnchoredDigest(t *testing.T) {
	testcases := []struct {
		input string
		match bool
	}{
		{"sha256:" + strings.Repeat("a", 64), true},
		{"sha512:" + strings.Repeat("0", 128), true},
		{"sha256+b64:" + strings.Repeat("a", 64), true},
		{"multi.hash-v2:" + strings.Repeat("f", 32), true},

		{"", false},
		{"sha256", false},
		{"sha256:", false},
		{"sha256:" + strings.Repeat("a", 31), false},
		{"sha256:" + strings.Repeat("A", 64), false},
		{"sha256:not-a-hex-string", false},
		{":deadbeef", false},
		{"sha256:" + strings.Repeat("a", 32) + "\U0001F680", false},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.match, grammar.AnchoredDigest.MatchString(tc.input))
		})
	}
}
