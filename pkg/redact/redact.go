// redact маскирует персональные данные перед записью в лог.
package redact

import "strings"

// Email оставляет первые два символа локальной части и домен: "al***@mail.com".
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return "***"
	}

	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
