package features

import (
	"context"
	"regexp"
	"strings"
)

// RequestContextPublisher receives the externally visible API host of the
// current request for the OAuth2 login flow.
type RequestContextPublisher interface {
	PublishAPIHost(ctx context.Context, host string) error
}

// Only dotted IPv4 hosts are detected; IPv6 literals pass through unchanged.
var ipv4HostPattern = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}`)

// ResolveAPIHost returns hostURL unless its host is a raw IPv4 address, which
// happens behind a reverse proxy that rewrites Host. Then fallback is used.
func ResolveAPIHost(hostURL, fallback string) string {
	host := hostURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if ipv4HostPattern.MatchString(host) {
		return fallback
	}
	return hostURL
}
