// Package permissions отображает роль пользователя на фиксированный набор
// разрешений. Обычный пользователь получает права на просмотр, привилегированный
// дополнительно получает права на изменение каталога.
package permissions

// Именованные разрешения, проверяемые на каждом запросе.
const (
	ViewCategory   = "view_category"
	ViewItem       = "view_item"
	UpdateUser     = "update_user"
	CreateCategory = "create_category"
	UpdateCategory = "update_category"
	DeleteCategory = "delete_category"
	CreateItem     = "create_item"
	UpdateItem     = "update_item"
	DeleteItem     = "delete_item"
)

var common = []string{ViewCategory, ViewItem, UpdateUser}

var elevated = []string{
	CreateCategory, UpdateCategory, DeleteCategory,
	CreateItem, UpdateItem, DeleteItem,
}

// For возвращает набор разрешений для роли. Чистая функция флага
// привилегированности, без побочных эффектов.
func For(superuser bool) []string {
	perms := make([]string, 0, len(common)+len(elevated))
	perms = append(perms, common...)
	if superuser {
		perms = append(perms, elevated...)
	}
	return perms
}

// ContainsAll сообщает, содержит ли granted каждое из required разрешений.
// Семантика строго AND: отсутствие любого требуемого разрешения — отказ.
func ContainsAll(granted, required []string) bool {
	set := make(map[string]struct{}, len(granted))
	for _, p := range granted {
		set[p] = struct{}{}
	}
	for _, p := range required {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}
