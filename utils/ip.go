package utils

import (
	"net"
	"strings"
)

// NormalizeIP strips the port from a RemoteAddr and maps loopback IPv6 to 127.0.0.1,
// so that local logins over IPv4 and IPv6 land on the same refresh-token row.
func NormalizeIP(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	addr = strings.TrimPrefix(addr, "::ffff:")
	if addr == "::1" {
		return "127.0.0.1"
	}
	return addr
}
