package models

import "time"

type TransferenciaModel struct {
	Id                  int                `json:"id" gorm:"primaryKey;autoIncrement"`
	FkTombamento        int                `json:"fktombamento" gorm:"column:fk_tombamento;not null"`
	Tombamento          *TombamentoModel   `json:"tombamento,omitempty" gorm:"foreignKey:FkTombamento;references:Id"`
	FkUnidadeOrigem     *int               `json:"fkunidadesaude_origem" gorm:"column:fk_unidade_origem"`
	UnidadeOrigem       *UnidadeSaudeModel `json:"unidade_origem,omitempty" gorm:"foreignKey:FkUnidadeOrigem;references:Id"`
	FkUnidadeDestino    int                `json:"fkunidadesaude_destino" gorm:"column:fk_unidade_destino;not null"`
	UnidadeDestino      *UnidadeSaudeModel `json:"unidade_destino,omitempty" gorm:"foreignKey:FkUnidadeDestino;references:Id"`
	FkSetorOrigem       *int               `json:"fksetor_origem" gorm:"column:fk_setor_origem"`
	FkSetorDestino      *int               `json:"fksetor_destino" gorm:"column:fk_setor_destino"`
	ResponsavelDestino  string             `json:"responsavel_destino" gorm:"type:varchar(255)"`
	DataTransferencia   time.Time          `json:"datatransferencia" gorm:"not null"`
	Responsavel         *string            `json:"responsavel" gorm:"type:varchar(255)"`
	Observacao          *string            `json:"observacao" gorm:"type:text"`
	Ativo               bool               `json:"ativo" gorm:"type:boolean;default:true;not null"`
	CreatedAt           time.Time          `json:"created_at"`
	Version             int                `json:"version" gorm:"not null;default:1"`
}
