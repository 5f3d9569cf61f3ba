// Package upload guards the career form's resume attachment. The guard runs
// before any byte of the upload reaches durable storage, so a rejected file
// never needs cleanup.
package upload

import (
	"errors"
	"mime/multipart"

	"github.com/Kavitha8494/ca/internal/form"
)

// resumeField is the multipart field name the public form posts the file under.
const resumeField = "resume"

// ErrNoFile reports that the request carried no resume at all, as opposed to
// an unacceptable one.
var ErrNoFile = errors.New("no resume file supplied")

// FieldError is a rejection scoped to a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Resume extracts the single resume file from a parsed multipart form and
// checks it against the career form's file rule. It returns ErrNoFile when the
// field is absent and a *FieldError for every other rejection.
func Resume(mf *multipart.Form) (*multipart.FileHeader, error) {
	rule, ok := form.RuleFor(form.KindCareer, resumeField)
	if !ok {
		// Programmer error: the rules table must always carry the resume rule.
		panic("career resume rule missing from rules table")
	}

	var files []*multipart.FileHeader
	if mf != nil {
		files = mf.File[resumeField]
	}
	switch {
	case len(files) == 0:
		return nil, ErrNoFile
	case len(files) > 1:
		return nil, &FieldError{Field: resumeField, Message: "Only one resume file is allowed"}
	}

	fh := files[0]
	meta := &form.FileMeta{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}
	if msg := rule.ApplyFile(meta); msg != "" {
		return nil, &FieldError{Field: resumeField, Message: msg}
	}
	return fh, nil
}

// RequiredMessage is the field error shown when no file was supplied at all.
func RequiredMessage() string {
	rule, _ := form.RuleFor(form.KindCareer, resumeField)
	return rule.ApplyFile(nil)
}
