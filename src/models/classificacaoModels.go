package models

type ClassificacaoModel struct {
	Id            int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Classificacao string `json:"classificacao" gorm:"type:varchar(255);not null"`
	Ativo         bool   `json:"ativo" gorm:"type:boolean;default:true;not null"`
	Version       int    `json:"version" gorm:"not null;default:1"`
}
