package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/Kavitha8494/ca/internal/form"
	"github.com/Kavitha8494/ca/internal/service"
)

// Confirmation copy shown by the site after a successful submission.
const (
	contactAcceptedMessage = "Thank you for contacting us. We will get back to you shortly."
	careerAcceptedMessage  = "Your application has been submitted successfully."
	queryAcceptedMessage   = "Your query has been submitted successfully."
)

// jsonValues decodes a flat JSON object of string fields, the wire format of
// the contact and query forms.
func jsonValues(c *fiber.Ctx) (map[string]string, error) {
	raw := make(map[string]string)
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid request body",
	})
}

// SubmitContact handles POST /api/contact.
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := jsonValues(c)
		if err != nil {
			return badBody(c)
		}

		if _, err := svc.Submit(c.UserContext(), raw); err != nil {
			if errs, ok := validationErrorsFrom(err); ok {
				return submitRejected(c, errs)
			}
			return submitFailed(c, err)
		}
		return submitAccepted(c, contactAcceptedMessage)
	}
}

// SubmitCareer handles POST /api/careers (multipart form with a `resume` file).
func SubmitCareer(svc service.CareerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mf, err := c.MultipartForm()
		if err != nil {
			return badBody(c)
		}

		raw := make(map[string]string, len(mf.Value))
		for field, vals := range mf.Value {
			if len(vals) > 0 {
				raw[field] = vals[0]
			}
		}

		if _, err := svc.Submit(c.UserContext(), raw, mf); err != nil {
			if errs, ok := validationErrorsFrom(err); ok {
				return submitRejected(c, errs)
			}
			return submitFailed(c, err)
		}
		return submitAccepted(c, careerAcceptedMessage)
	}
}

// SubmitQuery handles POST /api/query.
func SubmitQuery(svc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := jsonValues(c)
		if err != nil {
			return badBody(c)
		}

		if _, err := svc.Submit(c.UserContext(), raw); err != nil {
			if errs, ok := validationErrorsFrom(err); ok {
				return submitRejected(c, errs)
			}
			return submitFailed(c, err)
		}
		return submitAccepted(c, queryAcceptedMessage)
	}
}

// FormRules handles GET /api/forms/rules: it exports the validation rule
// tables so the browser applies the same checks the server enforces.
func FormRules() fiber.Handler {
	rules := form.Export()
	return func(c *fiber.Ctx) error {
		return c.JSON(rules)
	}
}
