package services

import (
	"errors"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

// PrazoManutencao is how long a maintenance may stay open before it counts
// as delayed.
const PrazoManutencao = 15 * 24 * time.Hour

type ManutencaoService struct {
	db *gorm.DB

	// RestaurarAlocado switches the close behavior: when true, closing a
	// maintenance restores "alocado" if the asset still has an active
	// allocation. Off by default, matching the historical behavior of
	// always restoring "disponivel".
	// TODO: decide with the asset team whether the default should flip;
	// today a transferred asset loses its "alocado" status on return.
	RestaurarAlocado bool
}

// NewManutencaoService creates a new instance of ManutencaoService
func NewManutencaoService(db *gorm.DB) *ManutencaoService {
	return &ManutencaoService{db: db}
}

func (s *ManutencaoService) GetAllManutencoes() ([]models.ManutencaoModel, error) {
	var manutencoes []models.ManutencaoModel

	result := s.db.
		Preload("Tombamento").
		Preload("Tombamento.Produto").
		Where("ativo = ?", true).
		Order("created_at DESC").
		Find(&manutencoes)

	return manutencoes, result.Error
}

// CreateManutencao opens a maintenance and sets the asset to "manutencao"
// regardless of its prior status. Existing allocations are left untouched,
// so the asset keeps showing where it was allocated while it is out.
func (s *ManutencaoService) CreateManutencao(manutencao *models.ManutencaoModel) (*models.ManutencaoModel, error) {
	if manutencao.FkTombamento == 0 || manutencao.DataRetirada.IsZero() || manutencao.Motivo == "" {
		return nil, NewValidationError("manutencao", "Tombamento, data de retirada e motivo são obrigatórios")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tombamento models.TombamentoModel
		if err := tx.First(&tombamento, manutencao.FkTombamento).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "tombamento", Id: manutencao.FkTombamento}
			}
			return err
		}

		if err := tx.Create(manutencao).Error; err != nil {
			return err
		}

		return tx.Model(&models.TombamentoModel{}).
			Where("id = ?", manutencao.FkTombamento).
			Update("status", models.StatusManutencao).Error
	})
	if err != nil {
		return nil, err
	}

	return manutencao, nil
}

// UpdateManutencao applies a partial update. When the update sets the
// return date on a still-open maintenance, the maintenance is closed and
// the asset status restored.
func (s *ManutencaoService) UpdateManutencao(id int, updates *models.ManutencaoModel) (*models.ManutencaoModel, error) {
	var manutencao models.ManutencaoModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&manutencao, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "manutenção", Id: id}
			}
			return err
		}

		fechando := manutencao.DataRetorno == nil && updates.DataRetorno != nil

		updates.Id = id
		if err := tx.Model(&manutencao).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ManutencaoModel{}).
			Where("id = ?", id).
			UpdateColumn("version", gorm.Expr("version + 1")).Error; err != nil {
			return err
		}

		if fechando {
			status, err := s.statusAposRetorno(tx, manutencao.FkTombamento)
			if err != nil {
				return err
			}
			return tx.Model(&models.TombamentoModel{}).
				Where("id = ?", manutencao.FkTombamento).
				Update("status", status).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&manutencao, id).Error; err != nil {
		return nil, err
	}
	return &manutencao, nil
}

// CloseManutencao sets the return date of an open maintenance.
func (s *ManutencaoService) CloseManutencao(id int, dataRetorno time.Time) (*models.ManutencaoModel, error) {
	return s.UpdateManutencao(id, &models.ManutencaoModel{DataRetorno: &dataRetorno})
}

func (s *ManutencaoService) statusAposRetorno(tx *gorm.DB, fkTombamento int) (string, error) {
	if !s.RestaurarAlocado {
		return models.StatusDisponivel, nil
	}

	var ativas int64
	err := tx.Model(&models.AlocacaoModel{}).
		Where("fk_tombamento = ? AND ativo = ?", fkTombamento, true).
		Count(&ativas).Error
	if err != nil {
		return "", err
	}
	if ativas > 0 {
		return models.StatusAlocado, nil
	}
	return models.StatusDisponivel, nil
}

// DeleteManutencao soft-deletes the maintenance and reverts the asset to
// "disponivel".
func (s *ManutencaoService) DeleteManutencao(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var manutencao models.ManutencaoModel
		if err := tx.First(&manutencao, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "manutenção", Id: id}
			}
			return err
		}

		if err := tx.Model(&manutencao).Update("ativo", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.TombamentoModel{}).
			Where("id = ?", manutencao.FkTombamento).
			Update("status", models.StatusDisponivel).Error
	})
}

// ManutencaoAtrasada reports whether an open maintenance passed the return
// deadline. Pure function used for display filtering only.
func ManutencaoAtrasada(dataRetirada time.Time, dataRetorno *time.Time, agora time.Time) bool {
	if dataRetorno != nil {
		return false
	}
	return agora.Sub(dataRetirada) > PrazoManutencao
}
