package handler

type checkRequest struct {
	CPF  string `json:"cpf"  validate:"required"`
	PIN  string `json:"pin"  validate:"required,min=4,max=8"`
	Acao string `json:"acao" validate:"required,oneof=Entrada Saída"`
}

type checkResponse struct {
	OK       bool   `json:"ok"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Acao     string `json:"acao"`
	DataHora string `json:"data_hora"`
}

type createUserRequest struct {
	Nome  string `json:"nome" validate:"required"`
	CPF   string `json:"cpf"  validate:"required"`
	PIN   string `json:"pin"  validate:"required,min=4,max=8"`
	Ativo *bool  `json:"ativo"`
}

type createUserResponse struct {
	OK   bool   `json:"ok"`
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
