package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"gest35bi/apperrors"
	"gest35bi/logger"
	"gest35bi/models"
	service "gest35bi/services"
	"gest35bi/utils"
	"gest35bi/views"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DashboardPath = "/dashboard/acompanhar"
	SectionTitle  = "Gest35BI"

	messageSaveFailed = "Erro ao salvar indicador. Tente novamente."
	messageLoadFailed = "Erro ao carregar indicadores."
)

type Renderer interface {
	Render(w io.Writer, page string, data any) error
}

type formPage struct {
	Error       string
	Form        models.IndicatorInput
	FieldErrors map[string]string
}

type dashboardPage struct {
	Secao  string
	Erro   string
	Groups []models.CategoryGroup
}

// PageHandler serves the server-rendered dashboard.
type PageHandler struct {
	service  service.IndicatorService
	renderer Renderer
	timeout  time.Duration
}

func NewPageHandler(service service.IndicatorService, renderer Renderer, timeout time.Duration) *PageHandler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &PageHandler{
		service:  service,
		renderer: renderer,
		timeout:  timeout,
	}
}

func (h *PageHandler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// render writes the page only once the template succeeded, so the status
// code always matches the body.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logger.ForContext(r.Context()).WithError(err).WithField("page", page).Error("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.ForContext(r.Context()).WithError(err).Warn("failed to write page")
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageIndex, nil)
}

func (h *PageHandler) RedirectDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, DashboardPath, http.StatusMovedPermanently)
}

func (h *PageHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageCreate, formPage{FieldErrors: map[string]string{}})
}

func formValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if values, ok := r.PostForm[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (h *PageHandler) CreateIndicator(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, views.PageCreate, formPage{
			Error:       utils.MessageInvalidBody,
			FieldErrors: map[string]string{},
		})
		return
	}

	input := models.IndicatorInput{
		Name:     formValue(r, "nome", "name"),
		Target:   formValue(r, "meta", "target"),
		Category: formValue(r, "oeo", "category"),
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if _, err := h.service.CreateIndicator(ctx, input); err != nil {
		page := formPage{Form: input, FieldErrors: map[string]string{}}

		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			page.Error = validationErr.Error()
			for field, message := range validationErr.Fields {
				page.FieldErrors[field] = message
			}
			h.render(w, r, http.StatusBadRequest, views.PageCreate, page)
			return
		}

		logger.ForContext(r.Context()).WithError(err).Error("failed to save indicator from form")
		page.Error = messageSaveFailed
		h.render(w, r, http.StatusInternalServerError, views.PageCreate, page)
		return
	}

	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, http.StatusOK, "")
}

// renderDashboard reloads the groups and renders them with an optional
// message. A failed load always answers 500.
func (h *PageHandler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, message string) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	groups, err := h.service.Dashboard(ctx)
	if err != nil {
		logger.ForContext(r.Context()).WithError(err).Error("failed to load dashboard")
		h.render(w, r, http.StatusInternalServerError, views.PageDashboard, dashboardPage{
			Secao: SectionTitle,
			Erro:  messageLoadFailed,
		})
		return
	}

	h.render(w, r, status, views.PageDashboard, dashboardPage{
		Secao:  SectionTitle,
		Erro:   message,
		Groups: groups,
	})
}

// dashboardError re-renders the dashboard with the message for err.
func (h *PageHandler) dashboardError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := utils.StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("dashboard action failed")
	}
	h.renderDashboard(w, r, status, message)
}

func (h *PageHandler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		h.renderDashboard(w, r, http.StatusBadRequest, utils.MessageInvalidID)
		return primitive.NilObjectID, false
	}
	return objectID, true
}

func (h *PageHandler) SetMonthlyValue(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderDashboard(w, r, http.StatusBadRequest, utils.MessageInvalidBody)
		return
	}

	month := formValue(r, "mes", "month")
	if month == "" {
		h.renderDashboard(w, r, http.StatusBadRequest, messageMonthValueRequired)
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if _, err := h.service.SetMonthlyValue(ctx, objectID, month, formValue(r, "valor", "value")); err != nil {
		h.dashboardError(w, r, err)
		return
	}

	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

func (h *PageHandler) DeleteIndicator(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if err := h.service.DeleteIndicator(ctx, objectID); err != nil {
		h.dashboardError(w, r, err)
		return
	}

	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}
