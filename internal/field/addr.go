package field

import (
	"net/netip"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// isV4Mapped reports whether raw is ::ffff:a.b.c.d.
func isV4Mapped(raw [16]byte) bool {
	return allZero(raw[:10]) && raw[10] == 0xff && raw[11] == 0xff
}

// Unmap moves the IPv4 address out of a v4-mapped IPv6 address into the
// leading four bytes, the layout login records use for plain IPv4 peers.
// Other addresses are returned unchanged.
func Unmap(raw [16]byte) [16]byte {
	if !isV4Mapped(raw) {
		return raw
	}
	var out [16]byte
	copy(out[:4], raw[12:])
	return out
}

// DecodeAddr classifies a packed login record address. Any non-zero byte
// past the first four makes it IPv6; a non-zero leading word alone is IPv4.
func DecodeAddr(raw [16]byte) model.RemoteAddr {
	a := Unmap(raw)
	switch {
	case !allZero(a[4:]):
		return model.RemoteAddr{Kind: model.AddrIPv6, Bytes: a}
	case !allZero(a[:4]):
		return model.RemoteAddr{Kind: model.AddrIPv4, Bytes: a}
	}
	return model.RemoteAddr{Kind: model.AddrNone}
}

// AddrText formats a for a column of width bytes. IPv6 text is cut to the
// width; IPv4 text that does not fit is dropped, as is an absent address.
func AddrText(a model.RemoteAddr, width int) string {
	switch a.Kind {
	case model.AddrIPv6:
		text := ipv6String(a.Bytes)
		if len(text) > width {
			text = text[:max(width, 0)]
		}
		return text
	case model.AddrIPv4:
		text := netip.AddrFrom4(a.IPv4()).String()
		if len(text) > width {
			return ""
		}
		return text
	}
	return ""
}

// ipv6String formats like inet_ntop, which keeps the deprecated
// IPv4-compatible form (::a.b.c.d) that netip does not.
func ipv6String(b [16]byte) string {
	if allZero(b[:12]) && (b[12] != 0 || b[13] != 0) {
		return "::" + netip.AddrFrom4([4]byte(b[12:])).String()
	}
	return netip.AddrFrom16(b).String()
}
