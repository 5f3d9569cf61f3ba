package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern is the shared local@domain.tld shape. It is intentionally
// simple; the authoritative check is deliverability, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePattern accepts digits with at most one leading +, applied after
// normalization has stripped every other character.
var phonePattern = regexp.MustCompile(`^\+?[0-9]+$`)

// phoneSeparators are the punctuation people type into phone numbers.
// Normalization removes only these, so stray letters still fail the pattern.
var phoneSeparators = regexp.MustCompile(`[\s\-().]`)
var nonDigitChars = regexp.MustCompile(`[^0-9]`)

// FileMeta describes an uploaded file without touching its content.
type FileMeta struct {
	Name        string
	Size        int64
	ContentType string
}

// Apply runs the rule against a trimmed string value. It returns "" when the
// value passes, or a human-readable message when it does not. Apply is pure
// and total: invalid input is a return value, never a panic.
func (r Rule) Apply(value string) string {
	if value == "" {
		if r.Required {
			return r.message(MsgRequired, r.Label+" is required")
		}
		return ""
	}

	switch r.Check {
	case CheckText:
		return r.checkLength(len(value), "characters")
	case CheckEmail:
		if !emailPattern.MatchString(value) {
			return r.message(MsgInvalid, "Enter a valid email address")
		}
	case CheckPhone:
		normalized := phoneSeparators.ReplaceAllString(value, "")
		if !phonePattern.MatchString(normalized) {
			return r.message(MsgInvalid, "Only digits and an optional + are allowed")
		}
		return r.checkLength(len(normalized), "digits")
	case CheckDigits:
		digits := nonDigitChars.ReplaceAllString(value, "")
		if len(digits) < r.Min || (r.Max > 0 && len(digits) > r.Max) {
			return r.message(MsgRange, fmt.Sprintf("%s must be %d-%d digits", r.Label, r.Min, r.Max))
		}
	case CheckURL:
		u, err := url.Parse(value)
		if err != nil || u.Host == "" {
			return r.message(MsgInvalid, "Enter a valid URL (include http/https)")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return r.message(MsgScheme, r.Label+" must start with http or https")
		}
	case CheckPastDate:
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			return r.message(MsgInvalid, "Enter a valid date")
		}
		if d.After(time.Now()) {
			return r.message(MsgFuture, r.Label+" cannot be in the future")
		}
	case CheckEnum:
		for _, allowed := range r.Enum {
			if value == allowed {
				return ""
			}
		}
		return r.message(MsgInvalid, "Invalid value selected")
	case CheckIntRange:
		n, err := strconv.Atoi(value)
		if err != nil || n < r.Min || n > r.Max {
			return r.message(MsgRange, fmt.Sprintf("%s must be between %d and %d", r.Label, r.Min, r.Max))
		}
	}
	return ""
}

// ApplyFile runs a file rule against an upload descriptor. A nil descriptor
// means no file was supplied.
func (r Rule) ApplyFile(f *FileMeta) string {
	if f == nil {
		if r.Required {
			return r.message(MsgRequired, r.Label+" is required")
		}
		return ""
	}
	if r.MaxBytes > 0 && f.Size > r.MaxBytes {
		return r.message(MsgTooBig, fmt.Sprintf("%s is too large", r.Label))
	}
	ext := strings.ToLower(ext(f.Name))
	for _, allowed := range r.Exts {
		if ext == allowed {
			return ""
		}
	}
	return r.message(MsgBadType, fmt.Sprintf("%s has a disallowed file type", r.Label))
}

func (r Rule) checkLength(n int, unit string) string {
	if r.Min > 0 && n < r.Min {
		return r.message(MsgTooShort, fmt.Sprintf("%s must be at least %d %s", r.Label, r.Min, unit))
	}
	if r.Max > 0 && n > r.Max {
		return r.message(MsgTooLong, fmt.Sprintf("%s must be under %d %s", r.Label, r.Max, unit))
	}
	return ""
}

func (r Rule) message(code, fallback string) string {
	if m, ok := r.Messages[code]; ok {
		return m
	}
	return fallback
}

func ext(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
