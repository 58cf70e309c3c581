package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/23302610sole/clear-path-png/internal/entity"
	"github.com/23302610sole/clear-path-png/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	SignInStudent(ctx context.Context, email, password string) (entity.Session, error)
	SignInOfficer(ctx context.Context, email, password, departmentCode string) (entity.Session, error)
	SignInAdmin(ctx context.Context, email, password string) (entity.Session, error)
	SignOut(ctx context.Context, token string) error
	Navigate(ctx context.Context, token, currentPath string) (entity.Navigation, error)
	Clearance(ctx context.Context, session entity.Session) (entity.ClearanceView, error)
	RecordClearance(
		ctx context.Context,
		session entity.Session,
		studentID uuid.UUID,
		department string,
		status entity.ClearanceStatus,
		notes *string,
	) error
	SendReminder(ctx context.Context, session entity.Session, studentID uuid.UUID) error
	Certificate(ctx context.Context, session entity.Session) ([]byte, error)
	Stats(ctx context.Context, session entity.Session) (entity.Stats, error)
	Departments(ctx context.Context) ([]entity.Department, error)
}

// @title Clearance API
// @version 1.0
// @description Student clearance tracking for Papua New Guinea University of Technology.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// @Summary Service health check
// @Tags service
// @Produce plain
// @Success 200 {string} string "OK"
// @Router  /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK\n"))
}

type SignInRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	DepartmentCode string `json:"department_code,omitempty"`
}

type SignInResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// @Summary Student sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SignInResponse
// @Failure 401 {object} ResponseError "Invalid credentials"
// @Failure 422 {object} ResponseError "Invalid email or password format"
// @Failure 503 {object} ResponseError "Backend not configured"
// @Router  /api/auth/student/signin [post]
func (h *Handler) SignInStudent(w http.ResponseWriter, r *http.Request) {
	h.signIn(w, r, func(ctx context.Context, req SignInRequest) (entity.Session, error) {
		return h.s.SignInStudent(ctx, req.Email, req.Password)
	})
}

// @Summary Department officer sign-in
// @Description Signs an officer in. When department_code is given, the officer must belong to that department.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials with optional department code"
// @Success 200 {object} SignInResponse
// @Failure 401 {object} ResponseError "Invalid credentials"
// @Failure 403 {object} ResponseError "No officer profile or wrong department"
// @Failure 404 {object} ResponseError "Unknown department code"
// @Router  /api/auth/department/signin [post]
func (h *Handler) SignInOfficer(w http.ResponseWriter, r *http.Request) {
	h.signIn(w, r, func(ctx context.Context, req SignInRequest) (entity.Session, error) {
		return h.s.SignInOfficer(ctx, req.Email, req.Password, req.DepartmentCode)
	})
}

// @Summary Administrator sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SignInResponse
// @Failure 401 {object} ResponseError "Invalid credentials"
// @Failure 403 {object} ResponseError "No admin profile"
// @Router  /api/auth/admin/signin [post]
func (h *Handler) SignInAdmin(w http.ResponseWriter, r *http.Request) {
	h.signIn(w, r, func(ctx context.Context, req SignInRequest) (entity.Session, error) {
		return h.s.SignInAdmin(ctx, req.Email, req.Password)
	})
}

func (h *Handler) signIn(
	w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, req SignInRequest) (entity.Session, error),
) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req SignInRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	session, err := fn(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, SignInResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

type MessageResponse struct {
	Message string `json:"message"`
}

// @Summary Sign out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ResponseError "Missing token"
// @Router  /api/auth/signout [post]
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		sendErr(ctx, w, http.StatusUnauthorized, err, "Missing authorization token")
		return
	}

	err = h.s.SignOut(ctx, token)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Signed out"})
}

// @Summary Resolve session and navigation
// @Description Resolves the profile behind the bearer token and decides whether the client should be redirected, given the path it is on.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param path query string false "Current client path"
// @Success 200 {object} entity.Navigation
// @Failure 401 {object} ResponseError "Invalid or expired session"
// @Router  /api/auth/session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		sendErr(ctx, w, http.StatusUnauthorized, err, "Missing authorization token")
		return
	}

	nav, err := h.s.Navigate(ctx, token, r.URL.Query().Get("path"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, nav)
}

// @Summary Clearance overview
// @Description A student gets one row per target department; an officer gets one row per student for their department.
// @Tags clearance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.ClearanceView
// @Failure 401 {object} ResponseError "Invalid or expired session"
// @Failure 403 {object} ResponseError "No clearance view for this role"
// @Router  /api/clearance [get]
func (h *Handler) GetClearance(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "clearance")

	session, ok := entity.SessionFromCtx(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Not authorized")
		return
	}

	view, err := h.s.Clearance(ctx, session)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, view)
}

type RecordClearanceRequest struct {
	StudentID  uuid.UUID `json:"student_id"`
	Department string    `json:"department,omitempty"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
}

// @Summary Record a clearance decision
// @Description Upserts the officer's decision for one student. Only officers may write, and only for their own department.
// @Tags clearance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordClearanceRequest true "Decision"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ResponseError "Not an officer, or another department"
// @Failure 422 {object} ResponseError "Unknown status"
// @Router  /api/clearance [post]
func (h *Handler) RecordClearance(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "clearance")

	session, ok := entity.SessionFromCtx(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Not authorized")
		return
	}

	var req RecordClearanceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.s.RecordClearance(ctx, session, req.StudentID, req.Department, entity.ClearanceStatus(req.Status), req.Notes)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Clearance updated"})
}

type ReminderRequest struct {
	StudentID uuid.UUID `json:"student_id"`
}

// @Summary Send a clearance reminder
// @Description Queues a reminder for the student about their pending departments. Delivery is asynchronous.
// @Tags clearance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReminderRequest true "Student"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ResponseError "Not an officer"
// @Failure 404 {object} ResponseError "Unknown student"
// @Router  /api/clearance/reminder [post]
func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "clearance")

	session, ok := entity.SessionFromCtx(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Not authorized")
		return
	}

	var req ReminderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.s.SendReminder(ctx, session, req.StudentID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Reminder sent"})
}

// @Summary Printable clearance certificate
// @Description Renders the certificate HTML. Refused until every target department has cleared the student.
// @Tags clearance
// @Produce html
// @Security BearerAuth
// @Success 200 {string} string "Certificate HTML"
// @Failure 403 {object} ResponseError "Not a student"
// @Failure 409 {object} ResponseError "Clearance incomplete"
// @Router  /api/clearance/certificate [get]
func (h *Handler) Certificate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "clearance")

	session, ok := entity.SessionFromCtx(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Not authorized")
		return
	}

	html, err := h.s.Certificate(ctx, session)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

// @Summary Admin dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Stats
// @Failure 403 {object} ResponseError "Not an administrator"
// @Router  /api/admin/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "admin")

	session, ok := entity.SessionFromCtx(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Not authorized")
		return
	}

	stats, err := h.s.Stats(ctx, session)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, stats)
}

// @Summary Active departments
// @Description Lists the departments available on the officer sign-in form.
// @Tags service
// @Produce json
// @Success 200 {array} entity.Department
// @Failure 503 {object} ResponseError "Backend not configured"
// @Router  /api/departments [get]
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	departments, err := h.s.Departments(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, departments)
}
