// Package netutil provides network-name validation used by the path packages.
package netutil

import (
	"strings"

	"golang.org/x/net/idna"
)

// domainProfile applies lookup-grade hostname rules: length limits per label
// and overall, legal label characters, no leading/trailing hyphens. IDN input
// is accepted and checked in its punycode form.
var domainProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(true),
	idna.VerifyDNSLength(true),
)

// IsValidDomainName reports whether s is a legal DNS host or domain name.
// Bare single-label hosts (e.g. "fileserver") are accepted, as UNC paths
// name hosts as often as fully qualified domains.
func IsValidDomainName(s string) bool {
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}
	_, err := domainProfile.ToASCII(s)
	return err == nil
}
