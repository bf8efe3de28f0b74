package domain

import "strings"

// ValidCourseURL — минимальная проверка входного URL.
// Детальную валидацию делает скрейпер, тут отсекаем явный мусор.
func ValidCourseURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
