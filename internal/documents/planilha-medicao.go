package documents

import (
	"bytes"
	"fmt"

	"acionamento-system/internal/dto"

	"github.com/xuri/excelize/v2"
)

const abaMedicao = "Medição"

// GerarPlanilhaMedicao monta a planilha de medição da modalidade no
// formato aceito pela fiscalização: cabeçalho de identificação, tabela
// de mão de obra com subtotais e o fechamento com o adicional.
func GerarPlanilhaMedicao(contexto dto.OrcamentoContexto) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", abaMedicao)

	larguras := map[string]float64{"A": 14, "B": 58, "C": 10, "D": 12, "E": 12, "F": 16}
	for col, largura := range larguras {
		if err := f.SetColWidth(abaMedicao, col, col, largura); err != nil {
			return nil, err
		}
	}

	cores := paletaParaLinha(contexto.Linha)
	corPrincipal := fmt.Sprintf("#%02X%02X%02X", cores.principal[0], cores.principal[1], cores.principal[2])
	corClara := fmt.Sprintf("#%02X%02X%02X", cores.clara[0], cores.clara[1], cores.clara[2])

	estiloTitulo, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{corPrincipal}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{corClara}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    bordasFinas(),
	})
	if err != nil {
		return nil, err
	}
	estiloCelula, err := f.NewStyle(&excelize.Style{Border: bordasFinas()})
	if err != nil {
		return nil, err
	}
	estiloMoeda, err := f.NewStyle(&excelize.Style{Border: bordasFinas(), NumFmt: 4})
	if err != nil {
		return nil, err
	}
	estiloTotal, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{corClara}},
		Border: bordasFinas(),
		NumFmt: 4,
	})
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(abaMedicao, "A1", "F1"); err != nil {
		return nil, err
	}
	f.SetCellValue(abaMedicao, "A1", "MEDIÇÃO DE SERVIÇOS - "+tituloLinha(contexto.Linha))
	f.SetCellStyle(abaMedicao, "A1", "F1", estiloTitulo)
	if err := f.SetRowHeight(abaMedicao, 1, 24); err != nil {
		return nil, err
	}

	identificacao := [][2]string{
		{"Acionamento", contexto.CodigoAcionamento},
		{"Município", ouTraco(contexto.Municipio)},
		{"Equipe", ouTraco(contexto.EquipeDisplay)},
		{"Encarregado", ouTraco(contexto.Encarregado)},
		{"Nº OS", ouTraco(contexto.NumeroOS)},
		{"Nº Obra", ouTraco(contexto.NumeroObra)},
		{"Despacho", contexto.DataDespacho},
		{"Execução", contexto.DataExecucao},
	}
	linha := 3
	for _, par := range identificacao {
		f.SetCellValue(abaMedicao, fmt.Sprintf("A%d", linha), par[0])
		f.SetCellValue(abaMedicao, fmt.Sprintf("B%d", linha), par[1])
		linha++
	}

	linha++
	cabecalhos := []string{"Código", "Descrição", "Unid.", "UPS", "Qtde", "Subtotal"}
	for i, titulo := range cabecalhos {
		celula, _ := excelize.CoordinatesToCellName(i+1, linha)
		f.SetCellValue(abaMedicao, celula, titulo)
	}
	f.SetCellStyle(abaMedicao, fmt.Sprintf("A%d", linha), fmt.Sprintf("F%d", linha), estiloCabecalho)
	linha++

	for _, item := range contexto.Resumo.Itens {
		f.SetCellValue(abaMedicao, fmt.Sprintf("A%d", linha), item.Codigo)
		f.SetCellValue(abaMedicao, fmt.Sprintf("B%d", linha), item.Descricao)
		f.SetCellValue(abaMedicao, fmt.Sprintf("C%d", linha), item.Unidade)
		f.SetCellValue(abaMedicao, fmt.Sprintf("D%d", linha), item.ValorUps)
		f.SetCellValue(abaMedicao, fmt.Sprintf("E%d", linha), item.Quantidade)
		f.SetCellValue(abaMedicao, fmt.Sprintf("F%d", linha), item.Subtotal)
		f.SetCellStyle(abaMedicao, fmt.Sprintf("A%d", linha), fmt.Sprintf("E%d", linha), estiloCelula)
		f.SetCellStyle(abaMedicao, fmt.Sprintf("F%d", linha), fmt.Sprintf("F%d", linha), estiloMoeda)
		linha++
	}

	f.SetCellValue(abaMedicao, fmt.Sprintf("B%d", linha), "Total base")
	f.SetCellValue(abaMedicao, fmt.Sprintf("F%d", linha), contexto.Resumo.TotalBase)
	f.SetCellStyle(abaMedicao, fmt.Sprintf("A%d", linha), fmt.Sprintf("F%d", linha), estiloTotal)
	linha++

	if contexto.Resumo.ValorAdicional > 0 {
		f.SetCellValue(abaMedicao, fmt.Sprintf("A%d", linha), contexto.Resumo.CodigoAdicional)
		f.SetCellValue(abaMedicao, fmt.Sprintf("B%d", linha), contexto.Resumo.DescricaoAdicional)
		f.SetCellValue(abaMedicao, fmt.Sprintf("F%d", linha), contexto.Resumo.ValorAdicional)
		f.SetCellStyle(abaMedicao, fmt.Sprintf("A%d", linha), fmt.Sprintf("E%d", linha), estiloCelula)
		f.SetCellStyle(abaMedicao, fmt.Sprintf("F%d", linha), fmt.Sprintf("F%d", linha), estiloMoeda)
		linha++
	}

	f.SetCellValue(abaMedicao, fmt.Sprintf("B%d", linha), "TOTAL")
	f.SetCellValue(abaMedicao, fmt.Sprintf("F%d", linha), contexto.Resumo.TotalFinal)
	f.SetCellStyle(abaMedicao, fmt.Sprintf("A%d", linha), fmt.Sprintf("F%d", linha), estiloTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func bordasFinas() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "#999999"},
		{Type: "right", Style: 1, Color: "#999999"},
		{Type: "top", Style: 1, Color: "#999999"},
		{Type: "bottom", Style: 1, Color: "#999999"},
	}
}
