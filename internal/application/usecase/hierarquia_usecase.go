package usecase

import (
	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// Limite alto para as listagens internas que montam a árvore completa.
const arvoreListLimit = 10000

// HierarquiaUseCase monta a árvore completa Central → Almoxarifado →
// Sub-Almoxarifado → Setor em memória, a partir das quatro listagens.
type HierarquiaUseCase struct {
	centralRepo repository.CentralRepository
	almoxRepo   repository.AlmoxarifadoRepository
	subRepo     repository.SubAlmoxarifadoRepository
	setorRepo   repository.SetorRepository
}

// NewHierarquiaUseCase constrói o caso de uso.
func NewHierarquiaUseCase(
	centralRepo repository.CentralRepository,
	almoxRepo repository.AlmoxarifadoRepository,
	subRepo repository.SubAlmoxarifadoRepository,
	setorRepo repository.SetorRepository,
) *HierarquiaUseCase {
	return &HierarquiaUseCase{
		centralRepo: centralRepo,
		almoxRepo:   almoxRepo,
		subRepo:     subRepo,
		setorRepo:   setorRepo,
	}
}

// Arvore devolve a hierarquia completa. Setores sem vínculo a
// sub-almoxarifado aparecem como filhos diretos do almoxarifado; setores
// multi-pai aparecem duplicados sob cada sub-almoxarifado vinculado.
func (uc *HierarquiaUseCase) Arvore() ([]dto.ArvoreNode, error) {
	centrais, err := uc.centralRepo.List(arvoreListLimit, 0)
	if err != nil {
		return nil, err
	}
	almoxarifados, err := uc.almoxRepo.List(arvoreListLimit, 0)
	if err != nil {
		return nil, err
	}
	subs, err := uc.subRepo.List(arvoreListLimit, 0)
	if err != nil {
		return nil, err
	}
	setores, err := uc.setorRepo.List(arvoreListLimit, 0)
	if err != nil {
		return nil, err
	}

	almoxPorCentral := make(map[string][]*entity.Almoxarifado)
	for _, a := range almoxarifados {
		almoxPorCentral[a.CentralID] = append(almoxPorCentral[a.CentralID], a)
	}
	subPorAlmox := make(map[string][]*entity.SubAlmoxarifado)
	for _, s := range subs {
		subPorAlmox[s.AlmoxarifadoID] = append(subPorAlmox[s.AlmoxarifadoID], s)
	}
	setorPorSub := make(map[string][]*entity.Setor)
	setorDiretoPorAlmox := make(map[string][]*entity.Setor)
	for _, s := range setores {
		if len(s.SubAlmoxarifadoIDs) == 0 {
			setorDiretoPorAlmox[s.AlmoxarifadoID] = append(setorDiretoPorAlmox[s.AlmoxarifadoID], s)
			continue
		}
		for _, subID := range s.SubAlmoxarifadoIDs {
			setorPorSub[subID] = append(setorPorSub[subID], s)
		}
	}

	raiz := make([]dto.ArvoreNode, 0, len(centrais))
	for _, c := range centrais {
		nodeCentral := dto.ArvoreNode{Tipo: entity.LocalTipoCentral, ID: c.ID, Nome: c.Nome}
		for _, a := range almoxPorCentral[c.ID] {
			nodeAlmox := dto.ArvoreNode{Tipo: entity.LocalTipoAlmoxarifado, ID: a.ID, Nome: a.Nome}
			for _, sub := range subPorAlmox[a.ID] {
				nodeSub := dto.ArvoreNode{Tipo: entity.LocalTipoSubAlmoxarifado, ID: sub.ID, Nome: sub.Nome}
				for _, setor := range setorPorSub[sub.ID] {
					nodeSub.Filhos = append(nodeSub.Filhos, dto.ArvoreNode{
						Tipo: entity.LocalTipoSetor, ID: setor.ID, Nome: setor.Nome,
					})
				}
				nodeAlmox.Filhos = append(nodeAlmox.Filhos, nodeSub)
			}
			for _, setor := range setorDiretoPorAlmox[a.ID] {
				nodeAlmox.Filhos = append(nodeAlmox.Filhos, dto.ArvoreNode{
					Tipo: entity.LocalTipoSetor, ID: setor.ID, Nome: setor.Nome,
				})
			}
			nodeCentral.Filhos = append(nodeCentral.Filhos, nodeAlmox)
		}
		raiz = append(raiz, nodeCentral)
	}
	return raiz, nil
}
