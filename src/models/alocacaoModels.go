package models

import "time"

type AlocacaoModel struct {
	Id                 int                 `json:"id" gorm:"primaryKey;autoIncrement"`
	FkTombamento       int                 `json:"fktombamento" gorm:"column:fk_tombamento;not null"`
	Tombamento         *TombamentoModel    `json:"tombamento,omitempty" gorm:"foreignKey:FkTombamento;references:Id"`
	FkUnidadeSaude     int                 `json:"fkunidadesaude" gorm:"column:fk_unidade_saude;not null"`
	UnidadeSaude       *UnidadeSaudeModel  `json:"unidadesaude,omitempty" gorm:"foreignKey:FkUnidadeSaude;references:Id"`
	FkSetor            *int                `json:"fksetor" gorm:"column:fk_setor"`
	Setor              *SetorModel         `json:"setor,omitempty" gorm:"foreignKey:FkSetor;references:Id"`
	FkProfissional     *int                `json:"fkprofissional" gorm:"column:fk_profissional"`
	Profissional       *ProfissionalModel  `json:"profissional,omitempty" gorm:"foreignKey:FkProfissional;references:Id"`
	ResponsavelUnidade string              `json:"responsavel_unidade" gorm:"type:varchar(255);not null"`
	DataAlocacao       time.Time           `json:"dataalocacao" gorm:"not null"`
	Termo              *string             `json:"termo" gorm:"type:text"`
	Responsavel        *string             `json:"responsavel" gorm:"type:varchar(255)"`
	Observacao         *string             `json:"observacao" gorm:"type:text"`
	Fotos              []AlocacaoFotoModel `json:"photos,omitempty" gorm:"foreignKey:FkAlocacao;references:Id"`
	Ativo              bool                `json:"ativo" gorm:"type:boolean;default:true;not null"`
	CreatedAt          time.Time           `json:"created_at"`
	Version            int                 `json:"version" gorm:"not null;default:1"`
}

type AlocacaoFotoModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FkAlocacao   int    `json:"fkalocacao" gorm:"column:fk_alocacao;not null"`
	Filename     string `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string `json:"originalName" gorm:"type:varchar(255)"`
	Mimetype     string `json:"mimetype" gorm:"type:varchar(100)"`
	Size         int64  `json:"size"`
}
