package model

import "time"

// ContactStatus tracks whether staff have looked at a contact submission.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "NEW"
	ContactStatusReviewed ContactStatus = "REVIEWED"
)

// Gender is the closed set accepted by the career application form.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// YesNo is the closed set for the query form's professional-updates choice.
type YesNo string

const (
	Yes YesNo = "YES"
	No  YesNo = "NO"
)

// ContactSubmission is a message sent through the public contact form.
// Records are created by the submission pipeline only; the single permitted
// mutation is the NEW -> REVIEWED status transition.
type ContactSubmission struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CareerApplication is a job application with an attached resume.
// Immutable once created; ResumePath is the storage-relative key of the
// uploaded file, whose lifecycle is tied to this record.
type CareerApplication struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	MobileNumber     string    `json:"mobile_number"`
	Gender           Gender    `json:"gender"`
	Position         string    `json:"position"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Qualification    string    `json:"qualification"`
	Website          string    `json:"website,omitempty"`
	LastCompanyName  string    `json:"last_company_name"`
	ExperienceYears  int       `json:"experience_years"`
	ExperienceMonths int       `json:"experience_months"`
	Reference        string    `json:"reference,omitempty"`
	ResumePath       string    `json:"resume_path"`
	CreatedAt        time.Time `json:"created_at"`
}

// Query is a professional enquiry from the query form. Immutable once created.
type Query struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Designation       string    `json:"designation,omitempty"`
	Organization      string    `json:"organization,omitempty"`
	OfficeAddress     string    `json:"office_address,omitempty"`
	City              string    `json:"city"`
	Email             string    `json:"email"`
	TelephoneNo       string    `json:"telephone_no,omitempty"`
	MobileNo          string    `json:"mobile_no"`
	OtherProfessional YesNo     `json:"other_professional"`
	Subject           string    `json:"subject"`
	QueryText         string    `json:"query_text"`
	CreatedAt         time.Time `json:"created_at"`
}
