package models

// ValidateRequest representa uma requisição de validação de documento
// @Description Estrutura de dados para validação de um documento
type ValidateRequest struct {
	// Valor do documento, com ou sem formatação
	// @example "123.456.789-09"
	Value string `json:"value" binding:"required" example:"123.456.789-09"`
}

// GenerateCPFRequest representa opções de geração de CPF
type GenerateCPFRequest struct {
	// Retornar o documento formatado
	// @example true
	Formatted bool `json:"formatted" example:"true"`
}

// GenerateCNPJRequest representa opções de geração de CNPJ
type GenerateCNPJRequest struct {
	// Retornar o documento formatado
	// @example true
	Formatted bool `json:"formatted" example:"true"`
	// Número da filial (1 a 9999, padrão 1 = matriz)
	// @example 1
	Branch *int `json:"branch" example:"1"`
}

// GeneratePhoneRequest representa opções de geração de telefone
type GeneratePhoneRequest struct {
	// Tipo da linha (mobile ou landline)
	// @example "mobile"
	Kind string `json:"kind" example:"mobile"`
	// DDD desejado (vazio = aleatório)
	// @example "11"
	AreaCode string `json:"area_code" example:"11"`
	// Retornar o número formatado
	// @example true
	Formatted bool `json:"formatted" example:"true"`
}

// GeneratePlateRequest representa opções de geração de placa
type GeneratePlateRequest struct {
	// Padrão da placa (legacy ou mercosul)
	// @example "mercosul"
	Kind string `json:"kind" example:"mercosul"`
	// Retornar a placa formatada
	// @example true
	Formatted bool `json:"formatted" example:"true"`
}

// PixBatchRequest representa uma requisição de validação de chaves Pix em lote
type PixBatchRequest struct {
	// Chaves Pix a validar
	Keys []string `json:"keys" binding:"required"`
}

// PixMaskRequest representa uma requisição de mascaramento de chave Pix
type PixMaskRequest struct {
	// Chave Pix a mascarar
	// @example "12345678909"
	Key string `json:"key" binding:"required" example:"12345678909"`
}

// PixEqualRequest representa uma comparação entre duas chaves Pix
type PixEqualRequest struct {
	// Primeira chave
	Left string `json:"left" binding:"required"`
	// Segunda chave
	Right string `json:"right" binding:"required"`
}
