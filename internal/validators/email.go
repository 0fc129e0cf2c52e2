package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// IsEmail checks the address format only.
func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// DomainResolver is the part of *net.Resolver the domain check needs.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker accepts an address when its domain has an MX record
// or, failing that, any address record.
type EmailDomainChecker struct {
	Resolver DomainResolver
	Timeout  time.Duration
}

func NewEmailDomainChecker() *EmailDomainChecker {
	return &EmailDomainChecker{
		Resolver: net.DefaultResolver,
		Timeout:  3 * time.Second,
	}
}

func (c *EmailDomainChecker) Valid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	if mx, err := c.Resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := c.Resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

var defaultDomainChecker = NewEmailDomainChecker()

// IsEmailDomainValid runs the DNS check with the system resolver.
func IsEmailDomainValid(email string) bool {
	return defaultDomainChecker.Valid(email)
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	domain := strings.TrimSuffix(strings.ToLower(email[at+1:]), ".")
	if !strings.Contains(domain, ".") {
		return "", false
	}
	return domain, true
}
