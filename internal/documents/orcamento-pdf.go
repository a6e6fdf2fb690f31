package documents

import (
	"bytes"

	"acionamento-system/internal/dto"

	"github.com/jung-kurt/gofpdf/v2"
)

// GerarOrcamentoPDF monta o orçamento paisagem enviado no book: cabeçalho
// do acionamento, tabela de mão de obra com o adicional emergencial,
// materiais aplicados, sucata retirada e assinaturas.
func GerarOrcamentoPDF(contexto dto.OrcamentoContexto) ([]byte, error) {
	cores := paletaParaLinha(contexto.Linha)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Faixa de título
	pdf.SetFillColor(cores.principal[0], cores.principal[1], cores.principal[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("ORÇAMENTO DE SERVIÇOS - "+tituloLinha(contexto.Linha)), "", 1, "C", true, 0, "")
	pdf.Ln(3)

	pdf.SetTextColor(0, 0, 0)
	escreveInfo := func(rotulo1, valor1, rotulo2, valor2 string) {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(35, 6, tr(rotulo1), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(103, 6, tr(ouTraco(valor1)), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(35, 6, tr(rotulo2), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, tr(ouTraco(valor2)), "", 1, "L", false, 0, "")
	}

	escreveInfo("Acionamento:", contexto.CodigoAcionamento, "Município:", contexto.Municipio)
	escreveInfo("Equipe:", contexto.EquipeDisplay, "Encarregado:", contexto.Encarregado)
	escreveInfo("Nº OS:", contexto.NumeroOS, "Nº Obra:", contexto.NumeroObra)
	escreveInfo("Despacho:", contexto.DataDespacho, "Execução:", contexto.DataExecucao)
	if contexto.Descricao != "" {
		escreveInfo("Descrição:", contexto.Descricao, "Emissão:", contexto.DataEmissao)
	} else {
		escreveInfo("Emissão:", contexto.DataEmissao, "", "")
	}
	pdf.Ln(3)

	// Mão de obra
	cabecalhoTabela(pdf, tr, cores, []coluna{
		{"Código", 25}, {"Descrição", 122}, {"Unid.", 18}, {"UPS", 25}, {"Qtde", 25}, {"Subtotal", 40},
	})
	pdf.SetFont("Arial", "", 8)
	for _, item := range contexto.Resumo.Itens {
		pdf.CellFormat(25, 6, tr(item.Codigo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(122, 6, tr(item.Descricao), "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, tr(item.Unidade), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, formatarQuantidade(item.ValorUps), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, formatarQuantidade(item.Quantidade), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(formatarMoeda(item.Subtotal)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(215, 6, tr("Total base"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, tr(formatarMoeda(contexto.Resumo.TotalBase)), "1", 1, "R", false, 0, "")

	if contexto.Resumo.ValorAdicional > 0 {
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(25, 6, tr(contexto.Resumo.CodigoAdicional), "1", 0, "C", false, 0, "")
		pdf.CellFormat(190, 6, tr(contexto.Resumo.DescricaoAdicional), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(formatarMoeda(contexto.Resumo.ValorAdicional)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFillColor(cores.clara[0], cores.clara[1], cores.clara[2])
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(215, 7, tr("TOTAL"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, tr(formatarMoeda(contexto.Resumo.TotalFinal)), "1", 1, "R", true, 0, "")
	pdf.Ln(4)

	if len(contexto.Consumo) > 0 {
		tituloSecao(pdf, tr, cores, "MATERIAL APLICADO")
		cabecalhoTabela(pdf, tr, cores, []coluna{
			{"Código", 30}, {"Descrição", 165}, {"Unid.", 20}, {"Qtde", 40},
		})
		pdf.SetFont("Arial", "", 8)
		for _, item := range contexto.Consumo {
			pdf.CellFormat(30, 6, tr(item.CodigoMaterial), "1", 0, "C", false, 0, "")
			pdf.CellFormat(165, 6, tr(ouTraco(item.Descricao.String)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 6, tr(ouTraco(item.Unidade.String)), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 6, formatarQuantidade(item.Quantidade), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(contexto.Sucata) > 0 {
		tituloSecao(pdf, tr, cores, "MATERIAL RETIRADO")
		cabecalhoTabela(pdf, tr, cores, []coluna{
			{"Código", 30}, {"Descrição", 135}, {"Unid.", 20}, {"Qtde", 30}, {"Classificação", 40},
		})
		pdf.SetFont("Arial", "", 8)
		for _, item := range contexto.Sucata {
			pdf.CellFormat(30, 6, tr(item.CodigoMaterial), "1", 0, "C", false, 0, "")
			pdf.CellFormat(135, 6, tr(ouTraco(item.Descricao.String)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 6, tr(ouTraco(item.Unidade.String)), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, formatarQuantidade(item.QuantidadeRetirada), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, tr(item.Classificacao), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(4)
	}

	assinaturas(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type coluna struct {
	titulo  string
	largura float64
}

func cabecalhoTabela(pdf *gofpdf.Fpdf, tr func(string) string, cores paleta, colunas []coluna) {
	pdf.SetFillColor(cores.clara[0], cores.clara[1], cores.clara[2])
	pdf.SetFont("Arial", "B", 8)
	for i, c := range colunas {
		fim := 0
		alinhamento := "C"
		if i == len(colunas)-1 {
			fim = 1
		}
		pdf.CellFormat(c.largura, 7, tr(c.titulo), "1", fim, alinhamento, true, 0, "")
	}
}

func tituloSecao(pdf *gofpdf.Fpdf, tr func(string) string, cores paleta, titulo string) {
	pdf.SetFillColor(cores.principal[0], cores.principal[1], cores.principal[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, tr(titulo), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func assinaturas(pdf *gofpdf.Fpdf, tr func(string) string) {
	if pdf.GetY() > 165 {
		pdf.AddPage()
	}
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(120, 6, "_________________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(15, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(120, 6, "_________________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(120, 6, tr("Encarregado da equipe"), "", 0, "C", false, 0, "")
	pdf.CellFormat(15, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(120, 6, tr("Fiscal da concessionária"), "", 1, "C", false, 0, "")
}
