package documents

import (
	"fmt"
	"strings"
)

// paleta de cores do documento por modalidade. LM imprime em azul,
// LV em verde, seguindo os modelos aprovados pela fiscalização.
type paleta struct {
	principal [3]int
	clara     [3]int
}

var (
	paletaLM = paleta{principal: [3]int{51, 102, 153}, clara: [3]int{226, 235, 244}}
	paletaLV = paleta{principal: [3]int{16, 95, 64}, clara: [3]int{224, 238, 231}}
)

func paletaParaLinha(linha string) paleta {
	if linha == "LV" {
		return paletaLV
	}
	return paletaLM
}

func tituloLinha(linha string) string {
	if linha == "LV" {
		return "LINHA VIVA"
	}
	return "LINHA MORTA"
}

// formatarMoeda escreve valores no padrão brasileiro: R$ 1.234,56.
func formatarMoeda(valor float64) string {
	texto := fmt.Sprintf("%.2f", valor)
	partes := strings.SplitN(texto, ".", 2)
	inteiro, decimal := partes[0], partes[1]

	negativo := strings.HasPrefix(inteiro, "-")
	inteiro = strings.TrimPrefix(inteiro, "-")

	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sinal, b.String(), decimal)
}

// formatarQuantidade corta zeros inúteis: 2.00 vira 2, 1.50 vira 1,5.
func formatarQuantidade(valor float64) string {
	texto := fmt.Sprintf("%.2f", valor)
	texto = strings.TrimRight(texto, "0")
	texto = strings.TrimRight(texto, ".")
	return strings.ReplaceAll(texto, ".", ",")
}

func ouTraco(valor string) string {
	if strings.TrimSpace(valor) == "" {
		return "--"
	}
	return valor
}
