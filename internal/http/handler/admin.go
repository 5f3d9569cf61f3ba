package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/service"
)

// AdminHandler serves the back office: login, submission review, and content
// management. Every route except Login sits behind middleware.RequireAdmin.
type AdminHandler struct {
	auth     service.AuthService
	contacts service.ContactService
	careers  service.CareerService
	queries  service.QueryService
	news     service.NewsService
	posts    service.PostService
	cookie   string
	expiry   time.Duration
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(
	auth service.AuthService,
	contacts service.ContactService,
	careers service.CareerService,
	queries service.QueryService,
	news service.NewsService,
	posts service.PostService,
	cfg config.AuthConfig,
) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		contacts: contacts,
		careers:  careers,
		queries:  queries,
		news:     news,
		posts:    posts,
		cookie:   cfg.CookieName,
		expiry:   cfg.TokenExpiry,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /admin/login. On success the session token travels in an
// HttpOnly cookie, never in the body.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}

	token, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
		}
		logInternal(c, err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    token,
		Expires:  time.Now().Add(h.expiry),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"username": req.Username})
}

// Logout handles POST /admin/logout by expiring the session cookie.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

func pageParams(c *fiber.Ctx) (limit, offset int, search string, err error) {
	limit, err = strconv.Atoi(c.Query("limit", "5"))
	if err != nil {
		return 0, 0, "", errors.New("invalid limit")
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, "", errors.New("invalid offset")
	}
	return limit, offset, c.Query("search"), nil
}

func idParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// writeValidationError reports admin-side field errors in the standard
// envelope plus a field->message map.
func writeValidationError(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"request_id": requestIDFromCtx(c),
		"error": errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "one or more fields are invalid",
		},
		"errors": errs,
	})
}

func (h *AdminHandler) writeServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	}
	if errs, ok := validationErrorsFrom(err); ok {
		return writeValidationError(c, errs)
	}
	logInternal(c, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ListContacts handles GET /admin/contacts.
func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	limit, offset, search, err := pageParams(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	res, err := h.contacts.List(c.UserContext(), limit, offset, search)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(res)
}

// GetContact handles GET /admin/contacts/:id.
func (h *AdminHandler) GetContact(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	sub, err := h.contacts.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(sub)
}

// ReviewContact handles POST /admin/contacts/:id/review. Reading a submission
// never changes it; this explicit action is the only status transition.
func (h *AdminHandler) ReviewContact(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.contacts.Review(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": "REVIEWED"})
}

// ListCareers handles GET /admin/careers.
func (h *AdminHandler) ListCareers(c *fiber.Ctx) error {
	limit, offset, search, err := pageParams(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	res, err := h.careers.List(c.UserContext(), limit, offset, search)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(res)
}

// GetCareer handles GET /admin/careers/:id.
func (h *AdminHandler) GetCareer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	app, err := h.careers.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(app)
}

// DownloadResume handles GET /admin/careers/:id/resume by streaming the
// stored file.
func (h *AdminHandler) DownloadResume(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	file, err := h.careers.OpenResume(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}

	if file.Info.ContentType != "" {
		c.Set(fiber.HeaderContentType, file.Info.ContentType)
	} else {
		c.Set(fiber.HeaderContentType, "application/octet-stream")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.SendStream(file.Body, int(file.Info.Size))
}

// ListQueries handles GET /admin/queries.
func (h *AdminHandler) ListQueries(c *fiber.Ctx) error {
	limit, offset, search, err := pageParams(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	res, err := h.queries.List(c.UserContext(), limit, offset, search)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(res)
}

// GetQuery handles GET /admin/queries/:id.
func (h *AdminHandler) GetQuery(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	q, err := h.queries.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(q)
}

// ListNews handles GET /admin/news.
func (h *AdminHandler) ListNews(c *fiber.Ctx) error {
	limit, offset, search, err := pageParams(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	res, err := h.news.List(c.UserContext(), c.Query("category"), limit, offset, search)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(res)
}

// CreateNews handles POST /admin/news.
func (h *AdminHandler) CreateNews(c *fiber.Ctx) error {
	var in service.NewsInput
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}
	n, err := h.news.Create(c.UserContext(), in)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

// UpdateNews handles PUT /admin/news/:id.
func (h *AdminHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var in service.NewsInput
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}
	n, err := h.news.Update(c.UserContext(), id, in)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(n)
}

// DeleteNews handles DELETE /admin/news/:id.
func (h *AdminHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.news.Delete(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func dateParam(c *fiber.Ctx, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &d, nil
}

// ListPosts handles GET /admin/posts. Supports type, search, and an inclusive
// dateFrom/dateTo window.
func (h *AdminHandler) ListPosts(c *fiber.Ctx) error {
	limit, offset, search, err := pageParams(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	dateFrom, err := dateParam(c, "dateFrom")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	dateTo, err := dateParam(c, "dateTo")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	res, err := h.posts.List(c.UserContext(), service.PostListQuery{
		Type:     c.Query("type"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    limit,
		Offset:   offset,
		Search:   search,
	})
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(res)
}

// CreatePost handles POST /admin/posts.
func (h *AdminHandler) CreatePost(c *fiber.Ctx) error {
	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}
	p, err := h.posts.Create(c.UserContext(), in)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdatePost handles PUT /admin/posts/:id.
func (h *AdminHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	}
	p, err := h.posts.Update(c.UserContext(), id, in)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(p)
}

// DeletePost handles DELETE /admin/posts/:id.
func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.posts.Delete(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
