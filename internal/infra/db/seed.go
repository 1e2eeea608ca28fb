package db

import (
	"context"
	"fmt"

	"storefront/internal/domain/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedSub struct {
	ID   int64
	Name string
	Slug string
}

type seedCategory struct {
	ID   int64
	Name string
	Slug string
	Subs []seedSub
}

// フロントと同じID/slugで揃える
var referenceCategories = []seedCategory{
	{1, "Medicamentos", "medicamentos", []seedSub{
		{101, "Antibióticos", "antibioticos"}, {102, "Anti-inflamatórios", "anti-inflamatorios"},
		{103, "Vermífugos", "vermiFugos"}, {104, "Demais Medicamentos", "demais-medicamentos"},
		{105, "Mosquicidas e Carrapaticidas", "mosquicidas-e-carrapaticidas"}, {106, "Mata Bicheira", "mata-bicheira"},
		{107, "Terapêuticos", "terapeuticos"}, {108, "IATF", "iatf"}, {109, "Outros", "outros"},
	}},
	{2, "Fertilizantes", "fertilizantes", []seedSub{
		{201, "NPK", "npk"}, {202, "Orgânicos", "organicos"}, {203, "Foliares", "foliares"}, {204, "Outros", "outros"},
	}},
	{3, "Defensivos", "defensivos", []seedSub{
		{301, "Herbicidas", "herbicidas"}, {302, "Inseticidas", "inseticidas"}, {303, "Fungicidas", "fungicidas"}, {304, "Outros", "outros"},
	}},
	{4, "Sementes", "sementes", []seedSub{
		{401, "Milho", "milho"}, {402, "Soja", "soja"}, {403, "Hortaliças", "hortalicas"}, {404, "Outros", "outros"},
	}},
	{5, "Equipamentos", "equipamentos", []seedSub{
		{501, "Pulverizadores", "pulverizadores"}, {502, "Ferramentas", "ferramentas"}, {503, "Botas", "botas"}, {504, "Outros", "outros"},
	}},
	{6, "Saúde Animal", "saude-animal", []seedSub{
		{601, "Vermífugos", "vermiFugos"}, {602, "Vacinas", "vacinas"}, {603, "Acessórios", "acessorios"}, {604, "Outros", "outros"},
	}},
	{7, "Fazenda", "fazenda", []seedSub{
		{701, "Arames", "arames"}, {702, "Cercas", "cercas"}, {703, "Comedouros", "comedouros"},
		{704, "Alimentadores", "alimentadores"}, {705, "Outros", "outros"},
	}},
	{8, "Pets", "pet", []seedSub{
		{801, "Brinquedos", "brinquedos"}, {802, "Coleiras", "coleiras"}, {803, "Higiene", "higiene"}, {804, "Outros", "outros"},
	}},
	{9, "Vestuário", "vestuario", []seedSub{
		{901, "Acessórios", "acessorios"}, {902, "Bonés", "bones"}, {903, "Botas", "botas"}, {904, "Botinas", "botinas"},
		{905, "Carteira", "carteira"}, {906, "Chapéu", "chapeu"}, {907, "Cinto", "cinto"}, {908, "Outros", "outros"},
	}},
	{10, "Higienização e limpeza", "higienizacao-e-limpeza", []seedSub{
		{1001, "Desinfetantes", "desinfetantes"}, {1002, "Detergentes", "detergentes"}, {1003, "Outros Químicos", "outros-quimicos"},
	}},
	{11, "Ferragista", "ferragista", []seedSub{
		{1101, "Acessórios para Ferramentas", "acessorios-para-ferramentas"}, {1102, "Bombas de Água", "bombas-de-agua"},
		{1103, "Cabos Elétricos", "cabos-eletricos"}, {1104, "Carrinho de Mão", "carrinho-de-mao"},
		{1105, "Canos e Tubos", "canos-e-tubos"}, {1106, "Conexões de Água", "conexoes-de-agua"},
		{1107, "Conexões de Esgoto", "conexoes-de-esgoto"}, {1108, "Ferramentas a Bateria", "ferramentas-a-bateria"},
		{1109, "Ferramentas Elétricas", "ferramentas-eletricas"}, {1110, "Ferramentas Manuais", "ferramentas-manuais"},
		{1111, "Ralos e Sifões", "ralos-e-sifoes"}, {1112, "Registros", "registros"}, {1113, "Outros", "outros"},
	}},
	{12, "Suplementos", "suplementos", []seedSub{
		{1201, "Aves", "aves"}, {1202, "Bovinos", "bovinos"}, {1203, "Equinos", "equinos"}, {1204, "Suínos", "suinos"}, {1205, "Outros", "outros"},
	}},
}

func referenceRows() ([]model.Category, []model.Subcategory) {
	cats := make([]model.Category, 0, len(referenceCategories))
	var subs []model.Subcategory
	for _, c := range referenceCategories {
		cats = append(cats, model.Category{ID: c.ID, Name: c.Name, Slug: c.Slug})
		for _, s := range c.Subs {
			subs = append(subs, model.Subcategory{ID: s.ID, CategoryID: c.ID, Name: s.Name, Slug: s.Slug})
		}
	}
	return cats, subs
}

// SeedCategories は基準カテゴリを投入する。既にある行はそのまま（何度実行してもよい）
func SeedCategories(ctx context.Context, gdb *gorm.DB) error {
	cats, subs := referenceRows()

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&cats).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&subs).Error; err != nil {
			return fmt.Errorf("seed subcategories: %w", err)
		}
		zap.L().Info("categories seeded",
			zap.Int("categories", len(cats)),
			zap.Int("subcategories", len(subs)),
		)
		return nil
	})
}
