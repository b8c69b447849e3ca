package utils

// ItemsPerPage é o tamanho fixo das páginas de listagem
const ItemsPerPage = 6

// PageWindow normaliza a página (mínimo 1) e calcula limit e offset
func PageWindow(page int) (int, uint64, uint64) {
	if page < 1 {
		page = 1
	}

	return page, ItemsPerPage, uint64(page-1) * ItemsPerPage
}

// TotalPages arredonda para cima a quantidade de páginas de um total
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}

	return int((count + ItemsPerPage - 1) / ItemsPerPage)
}
