package models

import "time"

type ProdutoModel struct {
	Id              int                 `json:"id" gorm:"primaryKey;autoIncrement"`
	Produto         string              `json:"produto" gorm:"type:varchar(255);not null"`
	Codigo          *string             `json:"codigo" gorm:"type:varchar(50)"`
	Localizacao     *string             `json:"localizacao" gorm:"type:varchar(20)"`
	FkClassificacao *int                `json:"fkclassificacao" gorm:"column:fk_classificacao"`
	Classificacao   *ClassificacaoModel `json:"classificacao,omitempty" gorm:"foreignKey:FkClassificacao;references:Id"`
	Ativo           bool                `json:"ativo" gorm:"type:boolean;default:true;not null"`
}

// PedidoModel é um pedido de compra; apenas pedidos de entrada (tipo "E")
// fechados (estado "F") contam para o tombamento.
type PedidoModel struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	DataPedido time.Time `json:"datapedido" gorm:"not null"`
	Tipo       string    `json:"tipo" gorm:"type:varchar(1);not null"`
	Estado     string    `json:"estado" gorm:"type:varchar(1);not null"`
	Ativo      bool      `json:"ativo" gorm:"type:boolean;default:true;not null"`
}

type PedidoItemModel struct {
	Id                int          `json:"id" gorm:"primaryKey;autoIncrement"`
	FkPedido          int          `json:"fkpedido" gorm:"column:fk_pedido;not null"`
	Pedido            *PedidoModel `json:"pedido,omitempty" gorm:"foreignKey:FkPedido;references:Id"`
	FkProduto         int          `json:"fkproduto" gorm:"column:fk_produto;not null"`
	QuantidadeEntrada float64      `json:"quantidadeentrada" gorm:"not null"`
}
