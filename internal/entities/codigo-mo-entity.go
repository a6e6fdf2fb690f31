package entities

// CodigoMO é uma entrada do catálogo de mão de obra (somente leitura
// neste subsistema): código, descrição, unidade, fator UPS, modalidade e
// operação.
type CodigoMO struct {
	ID        uint64  `json:"id"`
	Codigo    string  `json:"codigo_mao_de_obra"`
	Descricao string  `json:"descricao"`
	Unidade   string  `json:"unidade"`
	Ups       float64 `json:"ups"`
	Tipo      string  `json:"tipo"` // LM | LV
	Operacao  string  `json:"operacao"`
	Ativo     bool    `json:"ativo"`
}
