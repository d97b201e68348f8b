// Package field renders remote host columns of an exact width from raw,
// possibly garbled, login record bytes.
package field

import (
	"strings"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

func isPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// Host renders raw as exactly width columns. Printable bytes are copied up
// to the first NUL; the first space or unprintable byte is shown as a single
// '-' and ends the copy. An empty result still shows '-'. At most width bytes
// of raw are read. A width below 1 renders nothing.
func Host(raw []byte, width int) string {
	if width < 1 {
		return ""
	}
	var b strings.Builder
	b.Grow(width)
	writeHost(&b, raw, width)
	return b.String()
}

func writeHost(b *strings.Builder, raw []byte, width int) {
	n := len(raw)
	if n > width {
		n = width
	}
	w := 0
	for _, c := range raw[:n] {
		if c == 0 {
			break
		}
		w++
		if !isPrint(c) || c == ' ' {
			b.WriteByte('-')
			break
		}
		b.WriteByte(c)
	}
	if w == 0 {
		b.WriteByte('-')
		w++
	}
	for ; w < width; w++ {
		b.WriteByte(' ')
	}
}

// DisplayOrInterface renders the suffix of a host field into exactly rest
// columns. A single colon marks an X11 display and the text from the colon
// on is shown; two colons mark an IPv6 address and only a "%zone" suffix is
// shown. Anything else is blank padding.
func DisplayOrInterface(raw []byte, rest int) string {
	if rest <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(rest)
	writeDisplayOrInterface(&b, raw, rest)
	return b.String()
}

func writeDisplayOrInterface(b *strings.Builder, raw []byte, rest int) {
	end := len(raw)
	disp := 0
	for disp < end && raw[disp] != ':' && isPrint(raw[disp]) {
		disp++
	}
	if disp < end && raw[disp] == ':' {
		next := disp + 1
		for next < end && raw[next] != ':' && isPrint(raw[next]) {
			next++
		}
		if next >= end || raw[next] != ':' {
			rest = writeSuffix(b, raw, disp, rest)
		} else {
			zone := next
			for zone < end && raw[zone] != '%' && isPrint(raw[zone]) {
				zone++
			}
			if zone < end && raw[zone] == '%' {
				rest = writeSuffix(b, raw, zone, rest)
			}
		}
	}
	for ; rest > 0; rest-- {
		b.WriteByte(' ')
	}
}

// writeSuffix copies raw[from:] into at most rest columns and returns the
// columns left. A space or unprintable byte before the end is shown as '-'.
func writeSuffix(b *strings.Builder, raw []byte, from, rest int) int {
	n := len(raw) - from
	if n > rest {
		n = rest
	}
	i := from
	for n > 0 && isPrint(raw[i]) && raw[i] != ' ' {
		b.WriteByte(raw[i])
		i++
		n--
		rest--
	}
	if n > 0 && raw[i] != 0 {
		b.WriteByte('-')
		rest--
	}
	return rest
}

// From renders the FROM column of s into exactly width columns. Registry
// sessions show their remote host as is. Login records show the decoded
// remote address when ipMode is set and the address is usable, followed by
// any display or zone suffix of the host field; otherwise the host field.
func From(s model.LoginSession, ipMode bool, width int) string {
	if s.Kind == model.SessionLogind {
		return Host([]byte(s.RemoteHost), width)
	}
	if ipMode {
		if text := AddrText(DecodeAddr(s.Addr), width); text != "" {
			return text + DisplayOrInterface(s.Host, width-len(text))
		}
	}
	return Host(s.Host, width)
}
