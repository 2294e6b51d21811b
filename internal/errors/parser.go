package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ParseError maps a storage-layer error to the Russian message the API
// returns. context is a short hint ("product", "order", ...) used to pick
// the right not-found wording; sensitive driver details never leak out.
func ParseError(err error, context string) string {
	if err == nil {
		return "Внутренняя ошибка сервера"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundMessage(context)
	}

	errLower := strings.ToLower(err.Error())

	// SQLite constraint failures come back as plain strings.
	if strings.Contains(errLower, "unique constraint failed") {
		return duplicateMessage(errLower)
	}
	if strings.Contains(errLower, "check constraint failed") {
		if strings.Contains(errLower, "rating") {
			return "Рейтинг должен быть от 1 до 5"
		}
		return "Некорректные данные"
	}
	if strings.Contains(errLower, "foreign key constraint failed") {
		return notFoundMessage(context)
	}

	if strings.Contains(errLower, "database is locked") {
		return "Сервис временно недоступен, попробуйте позже"
	}

	return "Внутренняя ошибка сервера"
}

func duplicateMessage(errLower string) string {
	if strings.Contains(errLower, "users.email") {
		return "Пользователь с таким email уже существует"
	}
	if strings.Contains(errLower, "favorites") {
		return "Товар уже в избранном"
	}
	if strings.Contains(errLower, "reviews") {
		return "Вы уже оставили обзор на этот товар"
	}
	return "Запись уже существует"
}

func notFoundMessage(context string) string {
	switch strings.ToLower(context) {
	case "product":
		return "Товар не найден"
	case "order":
		return "Заказ не найден"
	case "user":
		return "Пользователь не найден"
	case "review":
		return "Обзор не найден"
	case "post":
		return "Пост не найден"
	case "track":
		return "Трек не найден"
	default:
		return "Ресурс не найден"
	}
}
