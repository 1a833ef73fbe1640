package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gest35bi/models"
	service "gest35bi/services"
	"gest35bi/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultRequestTimeout = 10 * time.Second

const messageMonthValueRequired = "Mês e valor são obrigatórios"

// indicatorRequest accepts the Portuguese keys and their English aliases.
// When both are sent the Portuguese key wins.
type indicatorRequest struct {
	Nome     *models.FlexString `json:"nome"`
	Name     *models.FlexString `json:"name"`
	Meta     *models.FlexString `json:"meta"`
	Target   *models.FlexString `json:"target"`
	OEO      *models.FlexString `json:"oeo"`
	Category *models.FlexString `json:"category"`
}

func (req indicatorRequest) patch() models.IndicatorPatch {
	return models.IndicatorPatch{
		Name:     firstOf(req.Nome, req.Name),
		Target:   firstOf(req.Meta, req.Target),
		Category: firstOf(req.OEO, req.Category),
	}
}

func (req indicatorRequest) input() models.IndicatorInput {
	p := req.patch()
	return models.IndicatorInput{
		Name:     deref(p.Name),
		Target:   deref(p.Target),
		Category: deref(p.Category),
	}
}

type monthlyValueRequest struct {
	Mes   *models.FlexString `json:"mes"`
	Month *models.FlexString `json:"month"`
	Valor *models.FlexString `json:"valor"`
	Value *models.FlexString `json:"value"`
}

func (req *indicatorRequest) DecodeForm(values url.Values) {
	req.Nome = formField(values, "nome")
	req.Name = formField(values, "name")
	req.Meta = formField(values, "meta")
	req.Target = formField(values, "target")
	req.OEO = formField(values, "oeo")
	req.Category = formField(values, "category")
}

func (req *monthlyValueRequest) DecodeForm(values url.Values) {
	req.Mes = formField(values, "mes")
	req.Month = formField(values, "month")
	req.Valor = formField(values, "valor")
	req.Value = formField(values, "value")
}

// formField is nil when key is absent, matching an omitted JSON key.
func formField(values url.Values, key string) *models.FlexString {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	s := models.FlexString(v[0])
	return &s
}

func firstOf(values ...*models.FlexString) *string {
	for _, v := range values {
		if v != nil {
			s := v.String()
			return &s
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type IndicatorHandler struct {
	service service.IndicatorService
	timeout time.Duration
}

func NewIndicatorHandler(service service.IndicatorService, timeout time.Duration) *IndicatorHandler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &IndicatorHandler{
		service: service,
		timeout: timeout,
	}
}

// parseID reads the {id} path value. On false the 400 is
// already written.
func parseID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleErrorResponse(w, utils.MessageInvalidID, http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return objectID, true
}

func (h *IndicatorHandler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *IndicatorHandler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	indicators, err := h.service.ListIndicators(ctx)
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, indicators, http.StatusOK)
}

func (h *IndicatorHandler) CategorySummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	summary, err := h.service.CategorySummary(ctx)
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, summary, http.StatusOK)
}

func (h *IndicatorHandler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	objectID, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	indicator, err := h.service.GetIndicator(ctx, objectID)
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, indicator, http.StatusOK)
}

func (h *IndicatorHandler) CreateIndicator(w http.ResponseWriter, r *http.Request) {
	var req indicatorRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	indicator, err := h.service.CreateIndicator(ctx, req.input())
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, indicator, http.StatusCreated)
}

func (h *IndicatorHandler) UpdateIndicator(w http.ResponseWriter, r *http.Request) {
	objectID, ok := parseID(w, r)
	if !ok {
		return
	}

	var req indicatorRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	indicator, err := h.service.UpdateIndicator(ctx, objectID, req.patch())
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, indicator, http.StatusOK)
}

func (h *IndicatorHandler) DeleteIndicator(w http.ResponseWriter, r *http.Request) {
	objectID, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if err := h.service.DeleteIndicator(ctx, objectID); err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *IndicatorHandler) SetMonthlyValue(w http.ResponseWriter, r *http.Request) {
	objectID, ok := parseID(w, r)
	if !ok {
		return
	}

	var req monthlyValueRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		return
	}

	month := firstOf(req.Mes, req.Month)
	value := firstOf(req.Valor, req.Value)
	if month == nil || value == nil || strings.TrimSpace(*month) == "" {
		utils.HandleErrorResponse(w, messageMonthValueRequired, http.StatusBadRequest)
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	indicator, err := h.service.SetMonthlyValue(ctx, objectID, *month, *value)
	if err != nil {
		utils.HandleServiceError(w, r, err)
		return
	}

	utils.HandleJSONResponse(w, indicator, http.StatusOK)
}
