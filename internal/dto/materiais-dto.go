package dto

// PreListaItemRequest é uma linha da pré-lista enviada ao almoxarifado.
type PreListaItemRequest struct {
	CodigoMaterial string  `json:"codigo_material" validate:"required"`
	Quantidade     float64 `json:"quantidade" validate:"required,gt=0"`
}

type SalvarPreListaRequest struct {
	Itens []PreListaItemRequest `json:"itens" validate:"dive"`
}

type ConsumoItemRequest struct {
	CodigoMaterial string  `json:"codigo_material" validate:"required"`
	Quantidade     float64 `json:"quantidade" validate:"required,gt=0"`
	Descricao      string  `json:"descricao"`
	Unidade        string  `json:"unidade"`
}

type SalvarConsumoRequest struct {
	Itens []ConsumoItemRequest `json:"itens" validate:"dive"`
}

type SucataItemRequest struct {
	CodigoMaterial     string  `json:"codigo_material" validate:"required"`
	QuantidadeRetirada float64 `json:"quantidade_retirada" validate:"required,gt=0"`
	Classificacao      string  `json:"classificacao" validate:"required,oneof=sucata reforma bom descarte"`
	Descricao          string  `json:"descricao"`
	Unidade            string  `json:"unidade"`
}

type SalvarSucataRequest struct {
	Itens []SucataItemRequest `json:"itens" validate:"dive"`
}
