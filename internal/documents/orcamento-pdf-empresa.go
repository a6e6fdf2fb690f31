package documents

import (
	"bytes"

	"acionamento-system/internal/dto"

	"github.com/jung-kurt/gofpdf/v2"
)

// GerarOrcamentoEmpresaPDF é o layout retrato usado internamente pela
// empresa: blocos por seção em vez da tabela corrida do layout enviado à
// concessionária.
func GerarOrcamentoEmpresaPDF(contexto dto.OrcamentoContexto) ([]byte, error) {
	cores := paletaParaLinha(contexto.Linha)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFillColor(cores.principal[0], cores.principal[1], cores.principal[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 11, tr("ORÇAMENTO - "+tituloLinha(contexto.Linha)), "", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, tr("Acionamento "+contexto.CodigoAcionamento+" - emitido em "+contexto.DataEmissao), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	bloco := func(titulo string, linhas [][2]string) {
		tituloSecao(pdf, tr, cores, titulo)
		pdf.SetFont("Arial", "", 9)
		for _, par := range linhas {
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(55, 6, tr(par[0]), "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(0, 6, tr(ouTraco(par[1])), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	bloco("IDENTIFICAÇÃO", [][2]string{
		{"Município", contexto.Municipio},
		{"Endereço", contexto.Endereco},
		{"Descrição", contexto.Descricao},
		{"Nº OS", contexto.NumeroOS},
		{"Nº Obra", contexto.NumeroObra},
	})

	bloco("EQUIPE", [][2]string{
		{"Equipe", contexto.EquipeDisplay},
		{"Encarregado", contexto.Encarregado},
		{"Despacho", contexto.DataDespacho},
		{"Execução", contexto.DataExecucao},
	})

	if e := contexto.Execucao; e != nil {
		linhas := [][2]string{
			{"Alimentador", e.Alimentador.String},
			{"Subestação", e.Subestacao.String},
			{"Transformador", e.NumeroTransformador.String},
			{"Poste", e.IDPoste.String},
		}
		if e.KmTotal.Valid {
			linhas = append(linhas, [2]string{"Km rodados", formatarQuantidade(e.KmTotal.Float64)})
		}
		bloco("EXECUÇÃO", linhas)
	}

	tituloSecao(pdf, tr, cores, "MÃO DE OBRA")
	cabecalhoTabela(pdf, tr, cores, []coluna{
		{"Código", 22}, {"Descrição", 88}, {"UPS", 20}, {"Qtde", 20}, {"Subtotal", 40},
	})
	pdf.SetFont("Arial", "", 8)
	for _, item := range contexto.Resumo.Itens {
		pdf.CellFormat(22, 6, tr(item.Codigo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(88, 6, tr(item.Descricao), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, formatarQuantidade(item.ValorUps), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, formatarQuantidade(item.Quantidade), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(formatarMoeda(item.Subtotal)), "1", 1, "R", false, 0, "")
	}
	if contexto.Resumo.ValorAdicional > 0 {
		pdf.CellFormat(22, 6, tr(contexto.Resumo.CodigoAdicional), "1", 0, "C", false, 0, "")
		pdf.CellFormat(128, 6, tr(contexto.Resumo.DescricaoAdicional), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(formatarMoeda(contexto.Resumo.ValorAdicional)), "1", 1, "R", false, 0, "")
	}
	pdf.SetFillColor(cores.clara[0], cores.clara[1], cores.clara[2])
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(150, 7, tr("TOTAL"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, tr(formatarMoeda(contexto.Resumo.TotalFinal)), "1", 1, "R", true, 0, "")
	pdf.Ln(4)

	assinaturas(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
