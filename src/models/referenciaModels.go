package models

type UnidadeSaudeModel struct {
	Id          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome        string  `json:"nome" gorm:"type:varchar(255);not null"`
	Cnes        *string `json:"cnes" gorm:"type:varchar(20)"`
	Endereco    *string `json:"endereco" gorm:"type:varchar(255)"`
	Telefone    *string `json:"telefone" gorm:"type:varchar(20)"`
	Responsavel *string `json:"responsavel" gorm:"type:varchar(255)"`
	Ativo       bool    `json:"ativo" gorm:"type:boolean;default:true;not null"`
}

type SetorModel struct {
	Id        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome      string  `json:"nome" gorm:"type:varchar(255);not null"`
	Descricao *string `json:"descricao" gorm:"type:text"`
	Ativo     bool    `json:"ativo" gorm:"type:boolean;default:true;not null"`
}

// ProfissionalModel corresponde ao interveniente que assina o termo de
// responsabilidade de uma alocação.
type ProfissionalModel struct {
	Id      int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome    string  `json:"nome" gorm:"type:varchar(255);not null"`
	CnsCnes *string `json:"cns" gorm:"type:varchar(20)"`
	CpfCnpj *string `json:"cpf" gorm:"type:varchar(20)"`
	Ativo   bool    `json:"ativo" gorm:"type:boolean;default:true;not null"`
}

type MantenedoraModel struct {
	Id          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Mantenedora string  `json:"mantenedora" gorm:"type:varchar(255);not null"`
	Cnpj        *string `json:"cnpj" gorm:"type:varchar(20)"`
}
