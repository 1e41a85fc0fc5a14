package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailAddress checks RFC 5322 shape without touching the network; used
// for client emails on public bookings, where a DNS round trip per request
// would be too slow.
func IsEmailAddress(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsEmailDomainValid additionally requires the domain to resolve (MX, or
// A/AAAA as fallback). Used at signup only.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
