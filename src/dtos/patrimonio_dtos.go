package dtos

import (
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
)

// LoteTombamentoDTO is the response of a batch creation; callers branch on
// the presence of count to tell it apart from a single record.
type LoteTombamentoDTO struct {
	Message     string                   `json:"message"`
	Tombamentos []models.TombamentoModel `json:"tombamentos"`
	Count       int                      `json:"count"`
}

// HistoricoDTO is one entry of the chronological movement log of an asset.
type HistoricoDTO struct {
	Tipo        string    `json:"tipo"` // "alocacao" ou "transferencia"
	Data        time.Time `json:"data"`
	Responsavel *string   `json:"responsavel"`
	Unidade     *string   `json:"unidade"`
	Setor       *string   `json:"setor"`
	Termo       *string   `json:"termo"`
	Ativo       bool      `json:"ativo"`
}

type UnidadeCountDTO struct {
	Unidade string `json:"unit"`
	Count   int    `json:"count"`
}

type ClassificacaoCountDTO struct {
	Classificacao string `json:"classification"`
	Count         int    `json:"count"`
}

type AtividadeDTO struct {
	Tipo      string    `json:"type"`
	Descricao string    `json:"description"`
	Data      time.Time `json:"date"`
}

type DashboardStatsDTO struct {
	TotalItems            int                     `json:"totalItems"`
	Available             int                     `json:"available"`
	Allocated             int                     `json:"allocated"`
	Maintenance           int                     `json:"maintenance"`
	Transferred           int                     `json:"transferred"`
	ItemsByUnit           []UnidadeCountDTO       `json:"itemsByUnit"`
	ItemsByClassification []ClassificacaoCountDTO `json:"itemsByClassification"`
	RecentActivities      []AtividadeDTO          `json:"recentActivities"`
}

// EntradaProdutoDTO is one purchase-order line of a product with the
// quantity still available for tagging.
type EntradaProdutoDTO struct {
	PkPedido             int       `json:"pkpedido"`
	DataPedido           time.Time `json:"datapedido"`
	PkPedidoItem         int       `json:"pkpedidoitem"`
	QuantidadeEntrada    float64   `json:"quantidadeentrada"`
	QuantidadeTombada    int       `json:"quantidade_tombada"`
	QuantidadeDisponivel float64   `json:"quantidade_disponivel"`
}

// FotoUploadDTO carries the metadata of one saved upload before it is bound
// to a tombamento or alocação row.
type FotoUploadDTO struct {
	Filename     string
	OriginalName string
	Mimetype     string
	Size         int64
}
