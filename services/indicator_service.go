package services

import (
	"context"
	"strings"

	"gest35bi/apperrors"
	"gest35bi/logger"
	"gest35bi/models"
	repository "gest35bi/repositories"
	"gest35bi/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IndicatorService interface {
	CreateIndicator(ctx context.Context, input models.IndicatorInput) (*models.Indicator, error)
	ListIndicators(ctx context.Context) ([]models.Indicator, error)
	GetIndicator(ctx context.Context, id primitive.ObjectID) (*models.Indicator, error)
	UpdateIndicator(ctx context.Context, id primitive.ObjectID, patch models.IndicatorPatch) (*models.Indicator, error)
	DeleteIndicator(ctx context.Context, id primitive.ObjectID) error
	SetMonthlyValue(ctx context.Context, id primitive.ObjectID, month, value string) (*models.Indicator, error)
	// Dashboard
	Dashboard(ctx context.Context) ([]models.CategoryGroup, error)
	CategorySummary(ctx context.Context) ([]models.CategorySummary, error)
}

type indicatorService struct {
	repo repository.IndicatorRepository
}

func NewIndicatorService(repo repository.IndicatorRepository) IndicatorService {
	return &indicatorService{
		repo: repo,
	}
}

func (s *indicatorService) CreateIndicator(ctx context.Context, input models.IndicatorInput) (*models.Indicator, error) {
	input = models.IndicatorInput{
		Name:     strings.TrimSpace(input.Name),
		Target:   strings.TrimSpace(input.Target),
		Category: strings.TrimSpace(input.Category),
	}
	if err := utils.ValidateIndicatorInput(input); err != nil {
		return nil, err
	}

	category, _ := models.ParseCategory(input.Category)
	indicator := models.NewIndicator(input.Name, input.Target, category)

	if err := s.repo.Create(ctx, indicator); err != nil {
		return nil, err
	}

	logger.ForContext(ctx).WithFields(logger.Fields{
		"indicator_id": indicator.ID.Hex(),
		"oeo":          int(indicator.Category),
	}).Info("indicator created")

	return indicator, nil
}

func (s *indicatorService) ListIndicators(ctx context.Context) ([]models.Indicator, error) {
	return s.repo.GetAll(ctx)
}

func (s *indicatorService) GetIndicator(ctx context.Context, id primitive.ObjectID) (*models.Indicator, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateIndicator applies the provided fields. An empty patch is not an
// error: the current record comes back unchanged.
func (s *indicatorService) UpdateIndicator(ctx context.Context, id primitive.ObjectID, patch models.IndicatorPatch) (*models.Indicator, error) {
	update, err := validatePatch(patch)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	return s.repo.Update(ctx, id, update)
}

func validatePatch(patch models.IndicatorPatch) (models.IndicatorUpdate, error) {
	var update models.IndicatorUpdate
	fields := map[string]string{}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			fields["nome"] = "campo obrigatório"
		}
		update.Name = &name
	}
	if patch.Target != nil {
		target := strings.TrimSpace(*patch.Target)
		if target == "" {
			fields["meta"] = "campo obrigatório"
		}
		update.Target = &target
	}
	if patch.Category != nil {
		category, ok := models.ParseCategory(*patch.Category)
		if !ok {
			fields["oeo"] = utils.CategoryRangeMessage
		}
		update.Category = &category
	}

	if len(fields) > 0 {
		message := "Dados do indicador inválidos"
		if _, ok := fields["oeo"]; ok && len(fields) == 1 {
			message = utils.CategoryRangeMessage
		}
		return models.IndicatorUpdate{}, apperrors.NewValidationError(message, fields)
	}

	return update, nil
}

func (s *indicatorService) DeleteIndicator(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.ForContext(ctx).WithField("indicator_id", id.Hex()).Info("indicator deleted")
	return nil
}

// SetMonthlyValue records one month. Unknown months fail before the store
// is reached, so the record is left as it was.
func (s *indicatorService) SetMonthlyValue(ctx context.Context, id primitive.ObjectID, month, value string) (*models.Indicator, error) {
	key, ok := models.NormalizeMonth(strings.TrimSpace(month))
	if !ok {
		return nil, apperrors.NewInvalidMonthError(month)
	}

	return s.repo.SetMonthlyValue(ctx, id, key, value)
}

func (s *indicatorService) Dashboard(ctx context.Context) ([]models.CategoryGroup, error) {
	indicators, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return GroupByCategory(indicators), nil
}

func (s *indicatorService) CategorySummary(ctx context.Context) ([]models.CategorySummary, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return SummarizeCounts(counts), nil
}
