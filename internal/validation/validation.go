// Package validation implements the argument rules checked before any request
// reaches the platform API. Every rule returns nil or a
// *toolerr.ValidationError.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"

	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
)

const (
	CodeAppNameTooShort          = "APP_NAME_TOO_SHORT"
	CodeAppNameTooLong           = "APP_NAME_TOO_LONG"
	CodeAppNameInvalidCharacters = "APP_NAME_INVALID_CHARACTERS"
	CodeAppNameInvalidHyphen     = "APP_NAME_INVALID_HYPHEN"
	CodeInvalidDomainName        = "INVALID_DOMAIN_NAME"
	CodeInvalidEnvKey            = "INVALID_ENV_KEY"
	CodeInvalidDNSRecordType     = "INVALID_DNS_RECORD_TYPE"

	AppNameMinLength = 3
	AppNameMaxLength = 32
)

var (
	appNameChars = regexp.MustCompile(`^[a-z0-9-]+$`)
	domainName   = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	envKey       = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
	objectID     = regexp.MustCompile(`^[a-f0-9]{24}$`)
)

// RequireValue fails when value is nil, a nil pointer, or the empty string.
// Other zero values such as 0, false and empty collections count as present.
func RequireValue(value any, field string) error {
	if isMissing(value) {
		return toolerr.NewValidationError(field, toolerr.CodeMissingRequiredField,
			fmt.Sprintf("%s is required", field),
			fmt.Sprintf("Provide a value for %s", field),
		)
	}
	return nil
}

func isMissing(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Pointer {
		return false
	}
	if v.IsNil() {
		return true
	}
	return isMissing(v.Elem().Interface())
}

// ValidateAppName checks the platform's app naming rules. Consecutive hyphens
// and digit-only names are left for the API to judge.
func ValidateAppName(name string) error {
	if err := RequireValue(name, "name"); err != nil {
		return err
	}

	length := utf8.RuneCountInString(name)

	switch {
	case length < AppNameMinLength:
		return toolerr.NewValidationError("name", CodeAppNameTooShort,
			fmt.Sprintf("App name %q is too short: it must be at least %d characters", name, AppNameMinLength),
			fmt.Sprintf("Use a name between %d and %d characters long", AppNameMinLength, AppNameMaxLength),
		)
	case length > AppNameMaxLength:
		return toolerr.NewValidationError("name", CodeAppNameTooLong,
			fmt.Sprintf("App name is too long: it must be at most %d characters", AppNameMaxLength),
			fmt.Sprintf("Use a name between %d and %d characters long", AppNameMinLength, AppNameMaxLength),
			"Drop redundant words or use abbreviations",
		)
	case !appNameChars.MatchString(name):
		return toolerr.NewValidationError("name", CodeAppNameInvalidCharacters,
			fmt.Sprintf("App name %q contains invalid characters", name),
			"Use only lowercase letters, digits and hyphens",
			fmt.Sprintf("Try %q", suggestAppName(name)),
		)
	case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
		return toolerr.NewValidationError("name", CodeAppNameInvalidHyphen,
			fmt.Sprintf("App name %q cannot start or end with a hyphen", name),
			"Start and end the name with a letter or digit",
			fmt.Sprintf("Try %q", strings.Trim(name, "-")),
		)
	}

	return nil
}

func suggestAppName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '_' || r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// ValidateDomainName requires at least one dot and an alphabetic top level
// label of two or more characters.
func ValidateDomainName(domain string) error {
	if err := RequireValue(domain, "domain"); err != nil {
		return err
	}

	if !domainName.MatchString(domain) {
		return toolerr.NewValidationError("domain", CodeInvalidDomainName,
			fmt.Sprintf("%q is not a valid domain name", domain),
			"Use a fully qualified domain such as example.com or app.example.com",
			"Do not include a protocol, path, or leading/trailing dots",
		)
	}

	return nil
}

// ValidateEnvKey accepts uppercase letters, digits and underscores, not
// starting with a digit.
func ValidateEnvKey(key string) error {
	if err := RequireValue(key, "key"); err != nil {
		return err
	}

	if !envKey.MatchString(key) {
		return toolerr.NewValidationError("key", CodeInvalidEnvKey,
			fmt.Sprintf("%q is not a valid environment variable name", key),
			"Use only uppercase letters, digits and underscores",
			"Start the name with a letter or an underscore, e.g. DATABASE_URL",
		)
	}

	return nil
}

// ValidateDNSRecordType accepts any record type mnemonic known to the DNS
// protocol, case insensitively.
func ValidateDNSRecordType(recordType string) error {
	if err := RequireValue(recordType, "type"); err != nil {
		return err
	}

	if _, ok := dns.StringToType[strings.ToUpper(recordType)]; !ok {
		return toolerr.NewValidationError("type", CodeInvalidDNSRecordType,
			fmt.Sprintf("%q is not a DNS record type", recordType),
			"Use a record type such as A, AAAA, CNAME, MX, TXT, NS, SRV or CAA",
		)
	}

	return nil
}

// IsObjectID reports whether s has the shape of an internal resource ID:
// exactly 24 lowercase hex characters.
func IsObjectID(s string) bool {
	return objectID.MatchString(s)
}
