package services

import (
	"fmt"
	"sort"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type HistoricoService struct {
	db *gorm.DB
}

// NewHistoricoService creates a new instance of HistoricoService
func NewHistoricoService(db *gorm.DB) *HistoricoService {
	return &HistoricoService{db: db}
}

// GetHistorico merges every allocation and transfer of one asset into a
// single movement log sorted by event date, most recent first. Read-only
// projection, recomputed on each call.
func (s *HistoricoService) GetHistorico(fkTombamento int) ([]dtos.HistoricoDTO, error) {
	var alocacoes []models.AlocacaoModel
	if err := s.db.
		Preload("UnidadeSaude").
		Preload("Setor").
		Where("fk_tombamento = ?", fkTombamento).
		Find(&alocacoes).Error; err != nil {
		return nil, err
	}

	var transferencias []models.TransferenciaModel
	if err := s.db.
		Preload("UnidadeOrigem").
		Preload("UnidadeDestino").
		Where("fk_tombamento = ?", fkTombamento).
		Find(&transferencias).Error; err != nil {
		return nil, err
	}

	historico := make([]dtos.HistoricoDTO, 0, len(alocacoes)+len(transferencias))

	for _, a := range alocacoes {
		entry := dtos.HistoricoDTO{
			Tipo:  "alocacao",
			Data:  a.DataAlocacao,
			Termo: a.Termo,
			Ativo: a.Ativo,
		}
		responsavel := a.ResponsavelUnidade
		entry.Responsavel = &responsavel
		if a.UnidadeSaude != nil {
			entry.Unidade = &a.UnidadeSaude.Nome
		}
		if a.Setor != nil {
			entry.Setor = &a.Setor.Nome
		}
		historico = append(historico, entry)
	}

	for _, t := range transferencias {
		entry := dtos.HistoricoDTO{
			Tipo:        "transferencia",
			Data:        t.DataTransferencia,
			Responsavel: t.Responsavel,
			Ativo:       t.Ativo,
		}
		origem, destino := "?", "?"
		if t.UnidadeOrigem != nil {
			origem = t.UnidadeOrigem.Nome
		}
		if t.UnidadeDestino != nil {
			destino = t.UnidadeDestino.Nome
		}
		rota := fmt.Sprintf("%s → %s", origem, destino)
		entry.Unidade = &rota
		historico = append(historico, entry)
	}

	sort.Slice(historico, func(i, j int) bool {
		return historico[i].Data.After(historico[j].Data)
	})

	return historico, nil
}
