package validators

import "strings"

// IsEmailDomainPlausible rejects addresses whose domain part cannot be a
// deliverable host (empty, no dot, leading/trailing dot). Format validation
// proper is handled by the request binding.
func IsEmailDomainPlausible(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return true
}
