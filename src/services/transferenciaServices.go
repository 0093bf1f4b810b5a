package services

import (
	"errors"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type TransferenciaService struct {
	db *gorm.DB
}

// NewTransferenciaService creates a new instance of TransferenciaService
func NewTransferenciaService(db *gorm.DB) *TransferenciaService {
	return &TransferenciaService{db: db}
}

func (s *TransferenciaService) GetAllTransferencias() ([]models.TransferenciaModel, error) {
	var transferencias []models.TransferenciaModel

	result := s.db.
		Preload("Tombamento").
		Preload("Tombamento.Produto").
		Preload("UnidadeOrigem").
		Preload("UnidadeDestino").
		Where("ativo = ?", true).
		Order("created_at DESC").
		Find(&transferencias)

	return transferencias, result.Error
}

// CreateTransferencia moves the active allocation of an asset from the
// origin unit to the destination. One transaction performs the three steps:
// deactivate the origin allocation, insert the transfer history row and
// open the destination allocation. The asset status stays "alocado"
// throughout. When no origin unit is given, step one is skipped and only
// the destination allocation is created.
func (s *TransferenciaService) CreateTransferencia(transferencia *models.TransferenciaModel) (*models.TransferenciaModel, error) {
	if transferencia.FkTombamento == 0 || transferencia.FkUnidadeDestino == 0 ||
		transferencia.DataTransferencia.IsZero() {
		return nil, NewValidationError("transferencia", "Tombamento, unidade destino e data são obrigatórios")
	}
	if transferencia.FkUnidadeOrigem != nil && *transferencia.FkUnidadeOrigem == transferencia.FkUnidadeDestino {
		return nil, NewValidationError("fkunidadesaude_destino", "Unidade de origem e destino devem ser diferentes")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tombamento models.TombamentoModel
		if err := tx.First(&tombamento, transferencia.FkTombamento).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "tombamento", Id: transferencia.FkTombamento}
			}
			return err
		}

		// 1) Deactivate the active allocation at the origin, if known
		if transferencia.FkUnidadeOrigem != nil {
			if err := tx.Model(&models.AlocacaoModel{}).
				Where("fk_tombamento = ? AND fk_unidade_saude = ? AND ativo = ?",
					transferencia.FkTombamento, *transferencia.FkUnidadeOrigem, true).
				Update("ativo", false).Error; err != nil {
				return err
			}
		}

		// 2) Insert the transfer history row
		if err := tx.Create(transferencia).Error; err != nil {
			return err
		}

		// 3) Open the allocation at the destination
		responsavelUnidade := transferencia.ResponsavelDestino
		if responsavelUnidade == "" {
			responsavelUnidade = "Transferência Automática"
		}
		responsavel := transferencia.Responsavel
		if responsavel == nil {
			sistema := "Sistema"
			responsavel = &sistema
		}

		alocacao := models.AlocacaoModel{
			FkTombamento:       transferencia.FkTombamento,
			FkUnidadeSaude:     transferencia.FkUnidadeDestino,
			FkSetor:            transferencia.FkSetorDestino,
			ResponsavelUnidade: responsavelUnidade,
			DataAlocacao:       transferencia.DataTransferencia,
			Responsavel:        responsavel,
			Ativo:              true,
		}
		return tx.Create(&alocacao).Error
	})
	if err != nil {
		return nil, err
	}

	var created models.TransferenciaModel
	if err := s.db.
		Preload("Tombamento").
		Preload("UnidadeOrigem").
		Preload("UnidadeDestino").
		First(&created, transferencia.Id).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteTransferencia soft-deletes a transfer; the record is immutable
// history otherwise.
func (s *TransferenciaService) DeleteTransferencia(id int) error {
	result := s.db.Model(&models.TransferenciaModel{}).
		Where("id = ? AND ativo = ?", id, true).
		Update("ativo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "transferência", Id: id}
	}
	return nil
}
