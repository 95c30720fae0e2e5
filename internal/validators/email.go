package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid acepta un correo solo si tiene forma local@dominio y
// el dominio resuelve: registros MX o, en su defecto, A/AAAA.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
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
