package domain

// RevenueMonths é o tamanho da janela de receita
const RevenueMonths = 6

// MonthLayout é o formato de mês usado nos pontos de receita
const MonthLayout = "2006-01"

// RevenuePoint é a receita de um mês em centavos
type RevenuePoint struct {
	Month string `json:"month"` // Formato yyyy-mm
	Total int64  `json:"total"`
}

type RevenueChartPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// RevenueChart é a janela de receita convertida para unidades de exibição
type RevenueChart struct {
	Points   []RevenueChartPoint `json:"points"`
	TopLabel int64               `json:"top_label"`
	HasData  bool                `json:"has_data"`
}
