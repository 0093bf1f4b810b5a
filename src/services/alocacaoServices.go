package services

import (
	"errors"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type AlocacaoService struct {
	db *gorm.DB
}

// NewAlocacaoService creates a new instance of AlocacaoService
func NewAlocacaoService(db *gorm.DB) *AlocacaoService {
	return &AlocacaoService{db: db}
}

// GetAllAlocacoes retrieves every allocation, inactive ones included, since
// deactivated rows are the movement history of the asset.
func (s *AlocacaoService) GetAllAlocacoes() ([]models.AlocacaoModel, error) {
	var alocacoes []models.AlocacaoModel

	result := s.db.
		Preload("Tombamento").
		Preload("Tombamento.Produto").
		Preload("UnidadeSaude").
		Preload("Setor").
		Preload("Profissional").
		Preload("Fotos").
		Order("data_alocacao DESC").
		Find(&alocacoes)

	return alocacoes, result.Error
}

func (s *AlocacaoService) GetAlocacaoByID(id int) (*models.AlocacaoModel, error) {
	var alocacao models.AlocacaoModel

	result := s.db.
		Preload("Tombamento").
		Preload("Tombamento.Produto").
		Preload("UnidadeSaude").
		Preload("Setor").
		Preload("Profissional").
		Preload("Fotos").
		First(&alocacao, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "alocação", Id: id}
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &alocacao, nil
}

// CreateAlocacao inserts the allocation and flips the asset to "alocado"
// inside one transaction, so the ledger row and the status cache can never
// disagree after a partial failure.
func (s *AlocacaoService) CreateAlocacao(alocacao *models.AlocacaoModel) (*models.AlocacaoModel, error) {
	if alocacao.FkTombamento == 0 || alocacao.FkUnidadeSaude == 0 ||
		alocacao.ResponsavelUnidade == "" || alocacao.DataAlocacao.IsZero() {
		return nil, NewValidationError("alocacao", "Tombamento, unidade, responsável e data são obrigatórios")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tombamento models.TombamentoModel
		if err := tx.First(&tombamento, alocacao.FkTombamento).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "tombamento", Id: alocacao.FkTombamento}
			}
			return err
		}

		if err := tx.Create(alocacao).Error; err != nil {
			return err
		}

		return tx.Model(&models.TombamentoModel{}).
			Where("id = ?", alocacao.FkTombamento).
			Update("status", models.StatusAlocado).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetAlocacaoByID(alocacao.Id)
}

// UpdateAlocacao applies a partial update and bumps the version counter;
// it never touches the asset status.
func (s *AlocacaoService) UpdateAlocacao(id int, updates *models.AlocacaoModel) (*models.AlocacaoModel, error) {
	var existing models.AlocacaoModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "alocação", Id: id}
		}
		return nil, err
	}

	updates.Id = id
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		if len(updates.Fotos) > 0 {
			for i := range updates.Fotos {
				updates.Fotos[i].FkAlocacao = id
			}
			if err := tx.Create(&updates.Fotos).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.AlocacaoModel{}).
			Where("id = ?", id).
			UpdateColumn("version", gorm.Expr("version + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetAlocacaoByID(id)
}

// DeleteAlocacao deactivates the allocation and reverts the asset to
// "disponivel", both in one transaction.
func (s *AlocacaoService) DeleteAlocacao(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var alocacao models.AlocacaoModel
		if err := tx.First(&alocacao, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "alocação", Id: id}
			}
			return err
		}

		if err := tx.Model(&alocacao).Update("ativo", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.TombamentoModel{}).
			Where("id = ?", alocacao.FkTombamento).
			Update("status", models.StatusDisponivel).Error
	})
}
