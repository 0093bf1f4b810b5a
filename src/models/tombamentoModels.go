package models

import "time"

// Valores possíveis do campo status de um tombamento.
const (
	StatusDisponivel = "disponivel"
	StatusAlocado    = "alocado"
	StatusManutencao = "manutencao"
)

type TombamentoModel struct {
	Id           int                   `json:"id" gorm:"primaryKey;autoIncrement"`
	FkProduto    int                   `json:"fkproduto" gorm:"column:fk_produto;not null"`
	Produto      *ProdutoModel         `json:"produto,omitempty" gorm:"foreignKey:FkProduto;references:Id"`
	FkPedidoItem *int                  `json:"fkpedidoitem" gorm:"column:fk_pedido_item"`
	Tombamento   string                `json:"tombamento" gorm:"type:varchar(50);not null;uniqueIndex"`
	Serial       *string               `json:"serial" gorm:"type:varchar(100)"`
	Imei         *string               `json:"imei" gorm:"type:varchar(15)"`
	Mac          *string               `json:"mac" gorm:"type:varchar(17)"`
	Observacao   *string               `json:"observacao" gorm:"type:text"`
	Responsavel  *string               `json:"responsavel" gorm:"type:varchar(255)"`
	Status       string                `json:"status" gorm:"type:varchar(20);not null;default:disponivel"`
	Fotos        []TombamentoFotoModel `json:"photos,omitempty" gorm:"foreignKey:FkTombamento;references:Id"`
	Ativo        bool                  `json:"ativo" gorm:"type:boolean;default:true;not null"`
	CreatedAt    time.Time             `json:"created_at"`
	Version      int                   `json:"version" gorm:"not null;default:1"`
}

type TombamentoFotoModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FkTombamento int    `json:"fktombamento" gorm:"column:fk_tombamento;not null"`
	Filename     string `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string `json:"originalName" gorm:"type:varchar(255)"`
	Mimetype     string `json:"mimetype" gorm:"type:varchar(100)"`
	Size         int64  `json:"size"`
}
