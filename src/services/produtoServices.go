package services

import (
	"errors"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"gorm.io/gorm"
)

type ProdutoService struct {
	db *gorm.DB
}

// NewProdutoService creates a new instance of ProdutoService
func NewProdutoService(db *gorm.DB) *ProdutoService {
	return &ProdutoService{db: db}
}

func (s *ProdutoService) GetAllProdutos() ([]models.ProdutoModel, error) {
	var produtos []models.ProdutoModel
	result := s.db.
		Preload("Classificacao").
		Where("ativo = ?", true).
		Order("produto").
		Find(&produtos)
	return produtos, result.Error
}

func (s *ProdutoService) GetProdutoByID(id int) (*models.ProdutoModel, error) {
	var produto models.ProdutoModel
	err := s.db.Preload("Classificacao").First(&produto, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "produto", Id: id}
	}
	if err != nil {
		return nil, err
	}
	return &produto, nil
}

// GetLocalizacao returns the location prefix used when formatting tags for
// this product; empty string when none is configured.
func (s *ProdutoService) GetLocalizacao(id int) (string, error) {
	produto, err := s.GetProdutoByID(id)
	if err != nil {
		return "", err
	}
	if produto.Localizacao == nil {
		return "", nil
	}
	return *produto.Localizacao, nil
}

// GetEntradas lists the closed purchase-order entries of a product with how
// much of each is still available for tagging. Lines already fully tagged
// are filtered out.
func (s *ProdutoService) GetEntradas(fkProduto int) ([]dtos.EntradaProdutoDTO, error) {
	if _, err := s.GetProdutoByID(fkProduto); err != nil {
		return nil, err
	}

	var rows []models.PedidoItemModel

	err := s.db.
		Preload("Pedido").
		Joins("JOIN pedido_models p ON p.id = pedido_item_models.fk_pedido").
		Where("pedido_item_models.fk_produto = ? AND p.tipo = ? AND p.estado = ? AND p.ativo = ?",
			fkProduto, "E", "F", true).
		Order("p.data_pedido DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entradas := make([]dtos.EntradaProdutoDTO, 0, len(rows))
	for _, item := range rows {
		var tombados int64
		if err := s.db.Model(&models.TombamentoModel{}).
			Where("fk_pedido_item = ? AND ativo = ?", item.Id, true).
			Count(&tombados).Error; err != nil {
			return nil, err
		}

		disponivel := item.QuantidadeEntrada - float64(tombados)
		if disponivel <= 0 {
			continue
		}

		entrada := dtos.EntradaProdutoDTO{
			PkPedido:             item.FkPedido,
			PkPedidoItem:         item.Id,
			QuantidadeEntrada:    item.QuantidadeEntrada,
			QuantidadeTombada:    int(tombados),
			QuantidadeDisponivel: disponivel,
		}
		if item.Pedido != nil {
			entrada.DataPedido = item.Pedido.DataPedido
		}
		entradas = append(entradas, entrada)
	}

	return entradas, nil
}
