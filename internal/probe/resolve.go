// ABOUTME: Hostname resolution with literal fallback
// ABOUTME: Resolution failure is never fatal; the original host string is kept

package probe

import (
	"context"
	"net"

	"github.com/mauromedda/sipping/internal/log"
)

// Resolve returns the first resolved address for host, or host itself
// when resolution fails. Any address family is accepted.
func Resolve(ctx context.Context, host string) string {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil || len(addrs) == 0 {
		log.Debug("resolve %s: %v", host, err)
		return host
	}
	return addrs[0].IP.String()
}
