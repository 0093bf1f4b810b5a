package services

import (
	"fmt"
	"sort"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) countByStatus(status string) (int64, error) {
	var count int64
	query := s.db.Model(&models.TombamentoModel{}).Where("ativo = ?", true)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// GetStats aggregates the dashboard counters: totals per status plus
// breakdowns by unit (active allocations) and by product classification.
func (s *DashboardService) GetStats() (*dtos.DashboardStatsDTO, error) {
	total, err := s.countByStatus("")
	if err != nil {
		return nil, err
	}
	disponiveis, err := s.countByStatus(models.StatusDisponivel)
	if err != nil {
		return nil, err
	}
	alocados, err := s.countByStatus(models.StatusAlocado)
	if err != nil {
		return nil, err
	}
	manutencao, err := s.countByStatus(models.StatusManutencao)
	if err != nil {
		return nil, err
	}

	var transferencias int64
	if err := s.db.Model(&models.TransferenciaModel{}).
		Where("ativo = ?", true).
		Count(&transferencias).Error; err != nil {
		return nil, err
	}

	porUnidade, err := s.itemsPorUnidade()
	if err != nil {
		return nil, err
	}
	porClassificacao, err := s.itemsPorClassificacao()
	if err != nil {
		return nil, err
	}
	atividades, err := s.atividadesRecentes()
	if err != nil {
		return nil, err
	}

	return &dtos.DashboardStatsDTO{
		TotalItems:            int(total),
		Available:             int(disponiveis),
		Allocated:             int(alocados),
		Maintenance:           int(manutencao),
		Transferred:           int(transferencias),
		ItemsByUnit:           porUnidade,
		ItemsByClassification: porClassificacao,
		RecentActivities:      atividades,
	}, nil
}

func (s *DashboardService) itemsPorUnidade() ([]dtos.UnidadeCountDTO, error) {
	type row struct {
		Unidade string
		Count   int
	}
	var rows []row

	err := s.db.Table("alocacao_models AS a").
		Select("u.nome AS unidade, COUNT(*) AS count").
		Joins("JOIN unidade_saude_models u ON u.id = a.fk_unidade_saude").
		Where("a.ativo = ?", true).
		Group("u.nome").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]dtos.UnidadeCountDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dtos.UnidadeCountDTO{Unidade: r.Unidade, Count: r.Count})
	}
	return result, nil
}

func (s *DashboardService) itemsPorClassificacao() ([]dtos.ClassificacaoCountDTO, error) {
	type row struct {
		Classificacao string
		Count         int
	}
	var rows []row

	err := s.db.Table("tombamento_models AS t").
		Select("c.classificacao AS classificacao, COUNT(*) AS count").
		Joins("JOIN produto_models p ON p.id = t.fk_produto").
		Joins("JOIN classificacao_models c ON c.id = p.fk_classificacao").
		Where("t.ativo = ?", true).
		Group("c.classificacao").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]dtos.ClassificacaoCountDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dtos.ClassificacaoCountDTO{Classificacao: r.Classificacao, Count: r.Count})
	}
	return result, nil
}

func (s *DashboardService) atividadesRecentes() ([]dtos.AtividadeDTO, error) {
	atividades := make([]dtos.AtividadeDTO, 0, 10)

	var alocacoes []models.AlocacaoModel
	if err := s.db.
		Preload("Tombamento").
		Preload("UnidadeSaude").
		Order("created_at DESC").
		Limit(5).
		Find(&alocacoes).Error; err != nil {
		return nil, err
	}
	for _, a := range alocacoes {
		descricao := "Alocação registrada"
		if a.Tombamento != nil && a.UnidadeSaude != nil {
			descricao = fmt.Sprintf("Tombamento %s alocado em %s", a.Tombamento.Tombamento, a.UnidadeSaude.Nome)
		}
		atividades = append(atividades, dtos.AtividadeDTO{
			Tipo:      "alocacao",
			Descricao: descricao,
			Data:      a.CreatedAt,
		})
	}

	var transferencias []models.TransferenciaModel
	if err := s.db.
		Preload("Tombamento").
		Preload("UnidadeDestino").
		Where("ativo = ?", true).
		Order("created_at DESC").
		Limit(5).
		Find(&transferencias).Error; err != nil {
		return nil, err
	}
	for _, t := range transferencias {
		descricao := "Transferência registrada"
		if t.Tombamento != nil && t.UnidadeDestino != nil {
			descricao = fmt.Sprintf("Tombamento %s transferido para %s", t.Tombamento.Tombamento, t.UnidadeDestino.Nome)
		}
		atividades = append(atividades, dtos.AtividadeDTO{
			Tipo:      "transferencia",
			Descricao: descricao,
			Data:      t.CreatedAt,
		})
	}

	sort.Slice(atividades, func(i, j int) bool {
		return atividades[i].Data.After(atividades[j].Data)
	})
	if len(atividades) > 10 {
		atividades = atividades[:10]
	}
	return atividades, nil
}
