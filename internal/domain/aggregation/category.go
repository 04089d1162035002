package aggregation

import (
	"sort"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

// CategoryVolume soma order_item_id por categoria, em ordem decrescente.
// Empates mantêm a ordem em que a categoria apareceu pela primeira vez.
func CategoryVolume(rows []entity.OrderLine) []entity.CategoryVolume {
	result := []entity.CategoryVolume{}
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(result)
			index[row.Category] = i
			result = append(result, entity.CategoryVolume{Category: row.Category})
		}
		result[i].ItemCount += row.OrderItemID
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ItemCount > result[j].ItemCount
	})

	return result
}

// CategoryRating calcula a nota média por categoria, em ordem decrescente.
// Categorias sem nenhuma avaliação ficam no fim com AvgScore nil.
func CategoryRating(rows []entity.OrderLine) []entity.CategoryRating {
	var categories []string
	scores := make(map[string]*meanAcc)

	for _, row := range rows {
		acc, ok := scores[row.Category]
		if !ok {
			acc = &meanAcc{}
			scores[row.Category] = acc
			categories = append(categories, row.Category)
		}
		acc.addPtr(row.ReviewScore)
	}

	result := make([]entity.CategoryRating, 0, len(categories))
	for _, category := range categories {
		result = append(result, entity.CategoryRating{
			Category: category,
			AvgScore: scores[category].mean(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].AvgScore, result[j].AvgScore
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})

	return result
}

// LeastCategoryVolume reordena a visão de volume em ordem crescente,
// para o painel de categorias menos vendidas.
func LeastCategoryVolume(view []entity.CategoryVolume) []entity.CategoryVolume {
	result := make([]entity.CategoryVolume, len(view))
	copy(result, view)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ItemCount < result[j].ItemCount
	})
	return result
}
