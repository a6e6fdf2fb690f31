package services

import (
	"context"

	"acionamento-system/internal/catalog"
	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EquipeResolverService monta as opções de equipe de um acionamento.
// O dado histórico chega por meia dúzia de campos diferentes (código,
// nome livre, UUID do cadastro, vínculos com papel), então cada
// candidata passa por um pipeline de inferência de modalidade antes de
// virar opção.
type EquipeResolverService struct {
	equipeRepo repositories.EquipeRepositoryInterface
	logger     *zap.Logger
}

func NewEquipeResolverService(equipeRepo repositories.EquipeRepositoryInterface, logger *zap.Logger) *EquipeResolverService {
	return &EquipeResolverService{equipeRepo: equipeRepo, logger: logger}
}

// ListarEquipes devolve o cadastro ativo para as telas de referência.
func (s *EquipeResolverService) ListarEquipes(ctx context.Context) ([]entities.Equipe, error) {
	return s.equipeRepo.ListarAtivas(ctx)
}

func ehUUID(valor string) bool {
	_, err := uuid.Parse(valor)
	return err == nil
}

type candidataEquipe struct {
	valor       string
	origem      string
	linhaFixa   catalog.Linha // modalidade imposta pela origem do campo
	encarregado string
}

// InferirLinhaEquipe aplica as estratégias na ordem fixa: papel
// explícito, texto livre, catálogo por código, escala de encarregados.
func InferirLinhaEquipe(c candidataEquipe) catalog.Linha {
	if c.linhaFixa != "" {
		return c.linhaFixa
	}
	if linha := catalog.NormalizarLinha(c.valor); linha != "" {
		return linha
	}
	if linha := catalog.InferirLinhaPorCodigo(catalog.ExtrairSigla(c.valor)); linha != "" {
		return linha
	}
	if linha := catalog.InferirLinhaPorEncarregado(c.encarregado); linha != "" {
		return linha
	}
	return ""
}

// OpcoesParaAcionamento resolve UUIDs contra o cadastro, junta os
// vínculos e devolve as opções com os padrões por modalidade.
func (s *EquipeResolverService) OpcoesParaAcionamento(ctx context.Context, a *entities.Acionamento) (*dto.OpcoesEquipeResponse, error) {
	vinculos, err := s.equipeRepo.ListarVinculos(ctx, a.IDAcionamento)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, campo := range []string{a.IDEquipe.String, a.Equipe.String, a.NomeEquipe.String} {
		if campo != "" && ehUUID(campo) {
			ids = append(ids, campo)
		}
	}
	for _, v := range vinculos {
		if v.IDEquipe.String != "" && ehUUID(v.IDEquipe.String) {
			ids = append(ids, v.IDEquipe.String)
		}
	}

	cadastro, err := s.equipeRepo.BuscarPorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resposta := MontarOpcoes(a, vinculos, cadastro)
	return &resposta, nil
}

// MontarOpcoes é o núcleo puro do resolvedor. UUIDs que não existem no
// cadastro são descartados: nenhuma opção exibe UUID cru.
func MontarOpcoes(a *entities.Acionamento, vinculos []entities.AcionamentoEquipe, cadastro map[string]entities.Equipe) dto.OpcoesEquipeResponse {
	candidatas := make([]candidataEquipe, 0, 8)

	adiciona := func(valor, origem string, linhaFixa catalog.Linha, encarregado string) {
		if valor == "" {
			return
		}
		if ehUUID(valor) {
			eq, ok := cadastro[valor]
			if !ok {
				return
			}
			c := candidataEquipe{valor: eq.NomeEquipe, origem: origem, linhaFixa: linhaFixa, encarregado: eq.EncarregadoNome.String}
			if c.linhaFixa == "" {
				c.linhaFixa = catalog.NormalizarLinha(eq.Linha.String)
			}
			candidatas = append(candidatas, c)
			return
		}
		candidatas = append(candidatas, candidataEquipe{valor: valor, origem: origem, linhaFixa: linhaFixa, encarregado: encarregado})
	}

	adiciona(a.IDEquipe.String, "id_equipe", "", a.Encarregado.String)
	adiciona(a.CodigoEquipe.String, "codigo_equipe", "", a.Encarregado.String)
	adiciona(utils.PickValue(a.Equipe.String, a.NomeEquipe.String), "equipe", "", a.Encarregado.String)
	adiciona(a.EquipeLM.String, "equipe_lm", catalog.LinhaLM, a.EncarregadoLM.String)
	adiciona(a.EquipeLV.String, "equipe_lv", catalog.LinhaLV, a.EncarregadoLV.String)

	for _, v := range vinculos {
		linha := catalog.NormalizarLinha(v.Papel.String)
		valor := v.IDEquipe.String
		if valor == "" {
			valor = v.EncarregadoNome.String
			if codigo, linhaCatalogo, ok := catalog.InferirEquipePorEncarregado(valor); ok {
				valor = codigo
				if linha == "" {
					linha = linhaCatalogo
				}
			}
		}
		adiciona(valor, "vinculo", linha, v.EncarregadoNome.String)
	}

	resposta := dto.OpcoesEquipeResponse{
		Opcoes:    make([]dto.EquipeOpcao, 0, len(candidatas)),
		SuportaLM: a.SuportaLM(),
		SuportaLV: a.SuportaLV(),
	}

	vistos := make(map[string]bool, len(candidatas))
	for _, c := range candidatas {
		sigla := catalog.ExtrairSigla(c.valor)
		if vistos[sigla] {
			continue
		}
		vistos[sigla] = true

		opcao := dto.EquipeOpcao{
			Valor:       sigla,
			Label:       c.valor,
			Linha:       string(InferirLinhaEquipe(c)),
			Encarregado: c.encarregado,
			Origem:      c.origem,
		}
		if info, ok := catalog.InfoEquipePorCodigo(sigla); ok {
			opcao.Label = info.Label
			if opcao.Encarregado == "" {
				opcao.Encarregado = info.Encarregado
			}
		}
		resposta.Opcoes = append(resposta.Opcoes, opcao)
	}

	resposta.PadraoLM = padraoParaLinha(resposta.Opcoes, catalog.LinhaLM)
	resposta.PadraoLV = padraoParaLinha(resposta.Opcoes, catalog.LinhaLV)
	return resposta
}

// padraoParaLinha escolhe a seleção inicial: primeira opção da
// modalidade pedida, senão primeira cujo encarregado resolve para ela.
func padraoParaLinha(opcoes []dto.EquipeOpcao, linha catalog.Linha) string {
	for _, o := range opcoes {
		if o.Linha == string(linha) {
			return o.Valor
		}
	}
	for _, o := range opcoes {
		if catalog.InferirLinhaPorEncarregado(o.Encarregado) == linha {
			return o.Valor
		}
	}
	return ""
}

// EquipeValidaParaLinha diz se a opção escolhida serve para medir a
// modalidade: a linha resolvida precisa bater.
func EquipeValidaParaLinha(opcoes []dto.EquipeOpcao, valor string, linha catalog.Linha) bool {
	for _, o := range opcoes {
		if o.Valor == valor {
			return o.Linha == string(linha)
		}
	}
	return false
}
