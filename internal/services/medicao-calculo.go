package services

import (
	"strings"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
)

// Códigos contratuais do adicional emergencial. O de horário comercial
// acresce 12% sobre a base; o de fora do horário, 30%.
const (
	CodigoAdicionalComercial   = "92525"
	CodigoAdicionalForaHorario = "26376"

	DescricaoAdicionalComercial   = "SERV. EMERG. HORÁRIO COMERCIAL – ADICIONAL 12%"
	DescricaoAdicionalForaHorario = "SERV. EMERG. FORA DO HORÁRIO COMERCIAL – ADICIONAL 30%"

	PercentualComercial   = 0.12
	PercentualForaHorario = 0.30

	// Abaixo disso o adicional é ruído de ponto flutuante e não entra no
	// documento.
	limiarAdicional = 0.005
)

// SubtotalItem calcula o valor de uma linha: quantidade vezes o fator
// UPS do código vezes o valor monetário da UPS da modalidade.
func SubtotalItem(item entities.MedicaoItem, valorUps float64) float64 {
	return item.Quantidade * item.ValorUps * valorUps
}

// TotalBase soma os subtotais de todos os itens da modalidade.
func TotalBase(itens []entities.MedicaoItem, valorUps float64) float64 {
	var total float64
	for _, item := range itens {
		total += SubtotalItem(item, valorUps)
	}
	return total
}

// CalcularResumo fecha a medição de uma modalidade: itens com subtotal,
// total base, adicional emergencial quando aplicável e total final.
func CalcularResumo(linha string, itens []entities.MedicaoItem, valorUps float64, foraHorario bool) dto.ResumoMaoDeObra {
	resumo := dto.ResumoMaoDeObra{
		Linha:       linha,
		Itens:       make([]dto.ItemCalculado, 0, len(itens)),
		ForaHorario: foraHorario,
	}

	for _, item := range itens {
		resumo.Itens = append(resumo.Itens, dto.ItemCalculado{
			Codigo:     item.Codigo,
			Descricao:  item.Descricao,
			Unidade:    item.Unidade,
			ValorUps:   item.ValorUps,
			Quantidade: item.Quantidade,
			Operacao:   item.Operacao,
			Subtotal:   SubtotalItem(item, valorUps),
		})
		resumo.TotalBase += SubtotalItem(item, valorUps)
	}

	percentual := PercentualComercial
	codigo := CodigoAdicionalComercial
	descricao := DescricaoAdicionalComercial
	if foraHorario {
		percentual = PercentualForaHorario
		codigo = CodigoAdicionalForaHorario
		descricao = DescricaoAdicionalForaHorario
	}

	adicional := resumo.TotalBase * percentual
	resumo.TotalFinal = resumo.TotalBase + adicional
	if adicional > limiarAdicional {
		resumo.CodigoAdicional = codigo
		resumo.DescricaoAdicional = descricao
		resumo.PercentualAdicional = percentual
		resumo.ValorAdicional = adicional
	}
	return resumo
}

func mesmaLinhaItem(item entities.MedicaoItem, codigo, operacao string) bool {
	return item.Codigo == codigo && strings.EqualFold(item.Operacao, operacao)
}

// AdicionarItem insere o código na lista ou, se já existe a mesma
// combinação (código, operação), incrementa a quantidade.
func AdicionarItem(itens []entities.MedicaoItem, novo entities.MedicaoItem) []entities.MedicaoItem {
	for i := range itens {
		if mesmaLinhaItem(itens[i], novo.Codigo, novo.Operacao) {
			itens[i].Quantidade += novo.Quantidade
			return itens
		}
	}
	if novo.Quantidade <= 0 {
		novo.Quantidade = 1
	}
	return append(itens, novo)
}

// RemoverItem tira a combinação (código, operação) da lista.
func RemoverItem(itens []entities.MedicaoItem, codigo, operacao string) []entities.MedicaoItem {
	resultado := itens[:0]
	for _, item := range itens {
		if !mesmaLinhaItem(item, codigo, operacao) {
			resultado = append(resultado, item)
		}
	}
	return resultado
}

// AjustarQuantidade fixa a quantidade da combinação, nunca abaixo de
// zero.
func AjustarQuantidade(itens []entities.MedicaoItem, codigo, operacao string, quantidade float64) []entities.MedicaoItem {
	if quantidade < 0 {
		quantidade = 0
	}
	for i := range itens {
		if mesmaLinhaItem(itens[i], codigo, operacao) {
			itens[i].Quantidade = quantidade
			break
		}
	}
	return itens
}
