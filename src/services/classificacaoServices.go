package services

import (
	"errors"
	"strings"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type ClassificacaoService struct {
	db *gorm.DB
}

// NewClassificacaoService creates a new instance of ClassificacaoService
func NewClassificacaoService(db *gorm.DB) *ClassificacaoService {
	return &ClassificacaoService{db: db}
}

func (s *ClassificacaoService) GetAllClassificacoes() ([]models.ClassificacaoModel, error) {
	var classificacoes []models.ClassificacaoModel
	result := s.db.
		Where("ativo = ?", true).
		Order("classificacao").
		Find(&classificacoes)
	return classificacoes, result.Error
}

func (s *ClassificacaoService) GetClassificacaoByID(id int) (*models.ClassificacaoModel, error) {
	var classificacao models.ClassificacaoModel
	err := s.db.First(&classificacao, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "classificação", Id: id}
	}
	if err != nil {
		return nil, err
	}
	return &classificacao, nil
}

func (s *ClassificacaoService) CreateClassificacao(classificacao *models.ClassificacaoModel) error {
	if strings.TrimSpace(classificacao.Classificacao) == "" {
		return NewValidationError("classificacao", "Nome da classificação é obrigatório")
	}
	return s.db.Create(classificacao).Error
}

func (s *ClassificacaoService) UpdateClassificacao(id int, updates *models.ClassificacaoModel) (*models.ClassificacaoModel, error) {
	var existing models.ClassificacaoModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "classificação", Id: id}
		}
		return nil, err
	}

	updates.Id = id
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ClassificacaoModel{}).
		Where("id = ?", id).
		UpdateColumn("version", gorm.Expr("version + 1")).Error; err != nil {
		return nil, err
	}

	return s.GetClassificacaoByID(id)
}

func (s *ClassificacaoService) DeleteClassificacao(id int) error {
	result := s.db.Model(&models.ClassificacaoModel{}).
		Where("id = ? AND ativo = ?", id, true).
		Update("ativo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "classificação", Id: id}
	}
	return nil
}
