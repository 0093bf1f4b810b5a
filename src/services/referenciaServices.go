package services

import (
	"errors"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

// ReferenciaService serves the read-mostly reference entities consumed by
// the asset forms: health units, sectors, professionals and the maintainer
// company printed on responsibility terms.
type ReferenciaService struct {
	db *gorm.DB
}

func NewReferenciaService(db *gorm.DB) *ReferenciaService {
	return &ReferenciaService{db: db}
}

func (s *ReferenciaService) GetUnidadesSaude() ([]models.UnidadeSaudeModel, error) {
	var unidades []models.UnidadeSaudeModel
	result := s.db.
		Where("ativo = ?", true).
		Order("nome").
		Find(&unidades)
	return unidades, result.Error
}

func (s *ReferenciaService) GetSetores() ([]models.SetorModel, error) {
	var setores []models.SetorModel
	result := s.db.
		Where("ativo = ?", true).
		Order("nome").
		Find(&setores)
	return setores, result.Error
}

func (s *ReferenciaService) GetProfissionais() ([]models.ProfissionalModel, error) {
	var profissionais []models.ProfissionalModel
	result := s.db.
		Order("nome").
		Find(&profissionais)
	return profissionais, result.Error
}

// GetEmpresa returns the first registered maintainer company, or nil when
// none exists yet.
func (s *ReferenciaService) GetEmpresa() (*models.MantenedoraModel, error) {
	var mantenedora models.MantenedoraModel
	err := s.db.First(&mantenedora).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mantenedora, nil
}
