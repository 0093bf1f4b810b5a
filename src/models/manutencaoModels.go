package models

import "time"

type ManutencaoModel struct {
	Id           int              `json:"id" gorm:"primaryKey;autoIncrement"`
	FkTombamento int              `json:"fktombamento" gorm:"column:fk_tombamento;not null"`
	Tombamento   *TombamentoModel `json:"tombamento,omitempty" gorm:"foreignKey:FkTombamento;references:Id"`
	DataRetirada time.Time        `json:"dataretirada" gorm:"not null"`
	DataRetorno  *time.Time       `json:"dataretorno"`
	Motivo       string           `json:"motivo" gorm:"type:text;not null"`
	Responsavel  *string          `json:"responsavel" gorm:"type:varchar(255)"`
	Observacao   *string          `json:"observacao" gorm:"type:text"`
	Ativo        bool             `json:"ativo" gorm:"type:boolean;default:true;not null"`
	CreatedAt    time.Time        `json:"created_at"`
	Version      int              `json:"version" gorm:"not null;default:1"`
}
