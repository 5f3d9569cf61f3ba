package form

// Kind identifies one of the public forms.
type Kind string

const (
	KindContact Kind = "contact"
	KindCareer  Kind = "career"
	KindQuery   Kind = "query"
)

// Check names the semantic a rule applies beyond presence and length.
type Check string

const (
	CheckText     Check = "text"
	CheckEmail    Check = "email"
	CheckPhone    Check = "phone"    // digits with optional leading +, bounds on normalized length
	CheckDigits   Check = "digits"   // digit count bounds, every other character ignored
	CheckURL      Check = "url"      // absolute http/https URL
	CheckPastDate Check = "pastDate" // YYYY-MM-DD, not in the future
	CheckEnum     Check = "enum"
	CheckIntRange Check = "intRange"
	CheckFile     Check = "file"
)

// Message codes a rule can override. Each code has a default template derived
// from the rule's label and bounds; see message() in validate.go.
const (
	MsgRequired = "required"
	MsgTooShort = "tooShort"
	MsgTooLong  = "tooLong"
	MsgInvalid  = "invalid"
	MsgRange    = "range"
	MsgScheme   = "scheme"
	MsgFuture   = "future"
	MsgTooBig   = "tooBig"
	MsgBadType  = "badType"
)

// Rule is one field's validation contract, expressed as data so the exact same
// table drives both the server-side gate and the browser's inline feedback.
// Min/Max are character bounds for text, digit bounds for phone/digits, and
// value bounds for intRange; zero means unbounded.
type Rule struct {
	Field    string            `json:"field"`
	Label    string            `json:"label"`
	Required bool              `json:"required"`
	Check    Check             `json:"check"`
	Min      int               `json:"min,omitempty"`
	Max      int               `json:"max,omitempty"`
	Enum     []string          `json:"enum,omitempty"`
	MaxBytes int64             `json:"maxBytes,omitempty"`
	Exts     []string          `json:"exts,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
}

// MaxResumeBytes is the upload size cap for career resumes.
const MaxResumeBytes = 1 << 20 // 1 MiB

var contactRules = []Rule{
	{Field: "name", Label: "Name", Required: true, Check: CheckText, Min: 2, Max: 100},
	{Field: "phone", Label: "Phone number", Required: true, Check: CheckPhone, Min: 10, Max: 20},
	{Field: "email", Label: "Email", Required: true, Check: CheckEmail},
	{Field: "message", Label: "Message", Required: true, Check: CheckText, Min: 10, Max: 2000},
}

var careerRules = []Rule{
	{Field: "firstName", Label: "First name", Required: true, Check: CheckText, Min: 2, Max: 60},
	{Field: "lastName", Label: "Last name", Required: true, Check: CheckText, Min: 2, Max: 60},
	{Field: "email", Label: "Email", Required: true, Check: CheckEmail},
	{Field: "mobileNumber", Label: "Mobile number", Required: true, Check: CheckDigits, Min: 10, Max: 15,
		Messages: map[string]string{MsgRange: "Mobile number must be 10-15 digits"}},
	{Field: "gender", Label: "Gender", Required: true, Check: CheckEnum, Enum: []string{"MALE", "FEMALE"},
		Messages: map[string]string{MsgRequired: "Please select gender", MsgInvalid: "Please select gender"}},
	{Field: "position", Label: "Position", Required: true, Check: CheckText, Min: 2},
	{Field: "dob", Label: "Date of birth", Required: true, Check: CheckPastDate,
		Messages: map[string]string{MsgInvalid: "Enter a valid date"}},
	{Field: "qualification", Label: "Qualification", Required: true, Check: CheckText, Min: 2},
	{Field: "website", Label: "Website", Check: CheckURL,
		Messages: map[string]string{MsgScheme: "Website must start with http or https"}},
	{Field: "lastCompanyName", Label: "Last company name", Required: true, Check: CheckText, Min: 2,
		Messages: map[string]string{MsgTooShort: "Company name must be at least 2 characters"}},
	{Field: "yearOfExperienceYear", Label: "Years of experience", Required: true, Check: CheckIntRange, Min: 0, Max: 50,
		Messages: map[string]string{MsgRange: "Years must be between 0 and 50"}},
	{Field: "yearOfExperienceMonth", Label: "Months of experience", Required: true, Check: CheckIntRange, Min: 0, Max: 11,
		Messages: map[string]string{MsgRange: "Months must be between 0 and 11"}},
	{Field: "reference", Label: "Reference", Check: CheckText, Min: 5, Max: 500,
		Messages: map[string]string{MsgTooShort: "Reference should be at least 5 characters"}},
	{Field: "resume", Label: "Resume", Required: true, Check: CheckFile,
		MaxBytes: MaxResumeBytes, Exts: []string{".pdf", ".doc", ".docx"},
		Messages: map[string]string{
			MsgTooBig:  "Resume must be 1 MB or smaller",
			MsgBadType: "Only PDF, DOC, and DOCX files are allowed",
		}},
}

var queryRules = []Rule{
	{Field: "name", Label: "Name", Required: true, Check: CheckText, Min: 2, Max: 100},
	{Field: "designation", Label: "Designation", Check: CheckText, Max: 100},
	{Field: "organization", Label: "Organization", Check: CheckText, Max: 150},
	{Field: "officeAddress", Label: "Office address", Check: CheckText, Max: 255},
	{Field: "city", Label: "City", Required: true, Check: CheckText, Min: 2, Max: 100},
	{Field: "email", Label: "Email", Required: true, Check: CheckEmail},
	{Field: "telephoneNo", Label: "Telephone number", Check: CheckPhone, Min: 6, Max: 20},
	{Field: "mobileNo", Label: "Mobile number", Required: true, Check: CheckPhone, Min: 10, Max: 20},
	{Field: "otherProfessional", Label: "Other professional updates", Required: true, Check: CheckEnum, Enum: []string{"YES", "NO"},
		Messages: map[string]string{MsgRequired: "Please select Yes or No", MsgInvalid: "Invalid value selected"}},
	{Field: "subjectQuery", Label: "Subject of query", Required: true, Check: CheckText},
	{Field: "queryText", Label: "Query", Required: true, Check: CheckText, Min: 10, Max: 4000},
}

var rulesByKind = map[Kind][]Rule{
	KindContact: contactRules,
	KindCareer:  careerRules,
	KindQuery:   queryRules,
}

// Rules returns the rule table for a form kind. The returned slice must be
// treated as read-only.
func Rules(k Kind) []Rule {
	return rulesByKind[k]
}

// RuleFor looks up a single field's rule within a form kind.
func RuleFor(k Kind, field string) (Rule, bool) {
	for _, r := range rulesByKind[k] {
		if r.Field == field {
			return r, true
		}
	}
	return Rule{}, false
}

// Export returns every form's rule table keyed by kind. This is what the
// browser fetches so inline feedback interprets the same rules the server
// enforces.
func Export() map[Kind][]Rule {
	return rulesByKind
}
