package models

// ValidationData representa o resultado de uma validação de documento
// @Description Resultado da validação de um documento
type ValidationData struct {
	// Valor recebido na requisição
	// @example "123.456.789-09"
	Input string `json:"input" example:"123.456.789-09"`
	// Indica se o documento é válido
	// @example true
	Valid bool `json:"valid" example:"true"`
	// Esquema do documento (cpf, cnpj, cep, phone, plate, pix)
	// @example "cpf"
	Scheme string `json:"scheme" example:"cpf"`
	// Documento apenas com dígitos
	// @example "12345678909"
	Cleaned string `json:"cleaned,omitempty" example:"12345678909"`
	// Documento formatado no padrão canônico
	// @example "123.456.789-09"
	Formatted string `json:"formatted,omitempty" example:"123.456.789-09"`
	// Motivo da rejeição (apenas quando valid = false)
	// @example "checksum_mismatch"
	Reason string `json:"reason,omitempty" example:"checksum_mismatch"`
}

// GeneratedData representa um documento gerado
type GeneratedData struct {
	// Esquema do documento gerado
	// @example "cpf"
	Scheme string `json:"scheme" example:"cpf"`
	// Documento gerado
	// @example "935.411.347-80"
	Value string `json:"value" example:"935.411.347-80"`
}

// CNPJDetails representa informações derivadas de um CNPJ válido
type CNPJDetails struct {
	ValidationData
	// Indica se o estabelecimento é a matriz (filial 0001)
	// @example true
	Headquarters bool `json:"headquarters" example:"true"`
	// Número da filial
	// @example 1
	BranchNumber int `json:"branch_number" example:"1"`
	// Raiz do CNPJ (8 primeiros dígitos)
	// @example "11222333"
	BaseNumber string `json:"base_number" example:"11222333"`
}

// PhoneDetails representa informações derivadas de um telefone válido
type PhoneDetails struct {
	ValidationData
	// Código de área (DDD)
	// @example "11"
	AreaCode string `json:"area_code" example:"11"`
	// UF atendida pelo DDD
	// @example "SP"
	State string `json:"state" example:"SP"`
	// Tipo da linha (mobile ou landline)
	// @example "mobile"
	Kind string `json:"kind" example:"mobile"`
}

// PlateDetails representa informações derivadas de uma placa válida
type PlateDetails struct {
	ValidationData
	// Padrão da placa (legacy ou mercosul)
	// @example "mercosul"
	Kind string `json:"kind" example:"mercosul"`
}

// PixKeyData representa o resultado da análise de uma chave Pix
type PixKeyData struct {
	// Chave recebida, após sanitização
	Input string `json:"input"`
	// Indica se a chave é válida
	Valid bool `json:"valid"`
	// Tipo detectado (cpf, cnpj, email, phone, random)
	Type string `json:"type,omitempty"`
	// Chave normalizada para registro
	Cleaned string `json:"cleaned,omitempty"`
	// Chave formatada para exibição
	Formatted string `json:"formatted,omitempty"`
	// Chave mascarada para logs e telas
	Masked string `json:"masked,omitempty"`
	// Informações adicionais específicas do tipo
	Extras map[string]interface{} `json:"extras,omitempty"`
	// Motivo da rejeição (apenas quando valid = false)
	Reason string `json:"reason,omitempty"`
}

// PixBatchData representa o resultado de uma validação em lote
type PixBatchData struct {
	// Total de chaves analisadas
	Total int `json:"total"`
	// Quantidade de chaves válidas
	ValidCount int `json:"valid_count"`
	// Resultado individual de cada chave, na ordem recebida
	Results []PixKeyData `json:"results"`
}

// HealthResponse representa resposta do health check
type HealthResponse struct {
	Status   string                 `json:"status"`
	Service  string                 `json:"service"`
	Version  string                 `json:"version"`
	Uptime   string                 `json:"uptime"`
	Services map[string]interface{} `json:"services,omitempty"`
}
