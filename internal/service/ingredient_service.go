package service

import (
	"errors"
	"strings"
	"sync"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ingredientService     *IngredientService
	ingredientServiceOnce sync.Once
)

// 批量导入时单批写入的行数
const importBatchSize = 500

// IngredientService 食材服务
type IngredientService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewIngredientService 创建食材服务实例
func NewIngredientService() *IngredientService {
	ingredientServiceOnce.Do(func() {
		ingredientService = &IngredientService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return ingredientService
}

// LIKE通配符转义，!在MySQL和SQLite下都能充当转义字符
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// List 获取食材列表，name为大小写不敏感的前缀搜索
// 搜索词中的%和_按字面量匹配
func (s *IngredientService) List(req *dto.IngredientListRequest) ([]dto.IngredientResponse, error) {
	query := s.db.Model(&model.Ingredient{})

	if req.Name != "" {
		prefix := likeEscaper.Replace(strings.ToLower(req.Name))
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", prefix+"%")
	}

	var ingredients []model.Ingredient
	if err := query.Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	list := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		list = append(list, *s.GenerateIngredientResponse(&ingredient))
	}
	return list, nil
}

// GetByID 根据ID获取食材
func (s *IngredientService) GetByID(id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "食材不存在"}
		}
		return nil, err
	}
	return &ingredient, nil
}

// BatchImport 批量导入食材目录，分批并发写入
func (s *IngredientService) BatchImport(ingredients []model.Ingredient) (int, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	var g errgroup.Group
	for start := 0; start < len(ingredients); start += importBatchSize {
		end := start + importBatchSize
		if end > len(ingredients) {
			end = len(ingredients)
		}
		batch := ingredients[start:end]
		g.Go(func() error {
			return s.db.Create(&batch).Error
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	s.logger.Infof("食材导入完成, 共%d条", len(ingredients))
	return len(ingredients), nil
}

// GenerateIngredientResponse 生成食材响应DTO
func (s *IngredientService) GenerateIngredientResponse(ingredient *model.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
