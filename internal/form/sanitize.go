package form

import "strings"

// Sanitizers turn a raw key-value mapping (possibly missing keys) into a
// fully-populated typed payload: every field trimmed, absent optionals
// defaulted to "", enum-like fields upper-cased. They never fail; an absent
// required field becomes "" and is rejected by the validators. Sanitizing an
// already-sanitized payload is a no-op.

// ContactPayload is the sanitized contact form.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SanitizeContact builds a ContactPayload from raw form values.
func SanitizeContact(raw map[string]string) ContactPayload {
	return ContactPayload{
		Name:    trim(raw, "name"),
		Email:   trim(raw, "email"),
		Phone:   trim(raw, "phone"),
		Message: trim(raw, "message"),
	}
}

// Values maps the payload back to wire field names for aggregate validation.
func (p ContactPayload) Values() map[string]string {
	return map[string]string{
		"name":    p.Name,
		"email":   p.Email,
		"phone":   p.Phone,
		"message": p.Message,
	}
}

// CareerPayload is the sanitized career application form. Numeric and date
// fields stay strings here; the validators prove them parseable before the
// service converts them.
type CareerPayload struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	MobileNumber     string `json:"mobileNumber"`
	Gender           string `json:"gender"`
	Position         string `json:"position"`
	DateOfBirth      string `json:"dob"`
	Qualification    string `json:"qualification"`
	Website          string `json:"website"`
	LastCompanyName  string `json:"lastCompanyName"`
	ExperienceYears  string `json:"yearOfExperienceYear"`
	ExperienceMonths string `json:"yearOfExperienceMonth"`
	Reference        string `json:"reference"`
}

// SanitizeCareer builds a CareerPayload from raw form values.
func SanitizeCareer(raw map[string]string) CareerPayload {
	return CareerPayload{
		FirstName:        trim(raw, "firstName"),
		LastName:         trim(raw, "lastName"),
		Email:            trim(raw, "email"),
		MobileNumber:     trim(raw, "mobileNumber"),
		Gender:           upper(raw, "gender"),
		Position:         trim(raw, "position"),
		DateOfBirth:      trim(raw, "dob"),
		Qualification:    trim(raw, "qualification"),
		Website:          trim(raw, "website"),
		LastCompanyName:  trim(raw, "lastCompanyName"),
		ExperienceYears:  trim(raw, "yearOfExperienceYear"),
		ExperienceMonths: trim(raw, "yearOfExperienceMonth"),
		Reference:        trim(raw, "reference"),
	}
}

func (p CareerPayload) Values() map[string]string {
	return map[string]string{
		"firstName":             p.FirstName,
		"lastName":              p.LastName,
		"email":                 p.Email,
		"mobileNumber":          p.MobileNumber,
		"gender":                p.Gender,
		"position":              p.Position,
		"dob":                   p.DateOfBirth,
		"qualification":         p.Qualification,
		"website":               p.Website,
		"lastCompanyName":       p.LastCompanyName,
		"yearOfExperienceYear":  p.ExperienceYears,
		"yearOfExperienceMonth": p.ExperienceMonths,
		"reference":             p.Reference,
	}
}

// QueryPayload is the sanitized query form.
type QueryPayload struct {
	Name              string `json:"name"`
	Designation       string `json:"designation"`
	Organization      string `json:"organization"`
	OfficeAddress     string `json:"officeAddress"`
	City              string `json:"city"`
	Email             string `json:"email"`
	TelephoneNo       string `json:"telephoneNo"`
	MobileNo          string `json:"mobileNo"`
	OtherProfessional string `json:"otherProfessional"`
	Subject           string `json:"subjectQuery"`
	QueryText         string `json:"queryText"`
}

// SanitizeQuery builds a QueryPayload from raw form values.
func SanitizeQuery(raw map[string]string) QueryPayload {
	return QueryPayload{
		Name:              trim(raw, "name"),
		Designation:       trim(raw, "designation"),
		Organization:      trim(raw, "organization"),
		OfficeAddress:     trim(raw, "officeAddress"),
		City:              trim(raw, "city"),
		Email:             trim(raw, "email"),
		TelephoneNo:       trim(raw, "telephoneNo"),
		MobileNo:          trim(raw, "mobileNo"),
		OtherProfessional: upper(raw, "otherProfessional"),
		Subject:           trim(raw, "subjectQuery"),
		QueryText:         trim(raw, "queryText"),
	}
}

func (p QueryPayload) Values() map[string]string {
	return map[string]string{
		"name":              p.Name,
		"designation":       p.Designation,
		"organization":      p.Organization,
		"officeAddress":     p.OfficeAddress,
		"city":              p.City,
		"email":             p.Email,
		"telephoneNo":       p.TelephoneNo,
		"mobileNo":          p.MobileNo,
		"otherProfessional": p.OtherProfessional,
		"subjectQuery":      p.Subject,
		"queryText":         p.QueryText,
	}
}

func trim(raw map[string]string, key string) string {
	return strings.TrimSpace(raw[key])
}

func upper(raw map[string]string, key string) string {
	return strings.ToUpper(strings.TrimSpace(raw[key]))
}
