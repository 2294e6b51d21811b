package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blueberries/blueberries-backend/internal/app/model"
)

func TestAdminGetProduct(t *testing.T) {
	env := setupTestEnv(t)
	_, adminToken := env.createUser(t, "admin@admin.com", model.RoleAdmin)
	product := env.createProduct(t, "Клавиатура mchose jet75", 9000)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", product.ID), adminToken, nil)
	statusOK(t, w, http.StatusOK)

	body := decodeBody(t, w)["product"].(map[string]interface{})
	assert.Equal(t, float64(product.ID), body["id"])
	assert.Equal(t, "Клавиатура mchose jet75", body["title"])
	assert.Equal(t, "9000 рублей", body["price_display"])

	w = env.request(t, http.MethodGet, "/api/admin/products/9999", adminToken, nil)
	statusOK(t, w, http.StatusNotFound)
	assert.Equal(t, "Товар не найден", errorMessage(t, w))
}

func TestAdminUpdateUserRole(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "member@example.com", model.RoleUser)
	_, adminToken := env.createUser(t, "admin@admin.com", model.RoleAdmin)

	path := fmt.Sprintf("/api/admin/users/%d", user.ID)

	w := env.request(t, http.MethodPut, path, adminToken, map[string]interface{}{
		"role": "admin",
	})
	statusOK(t, w, http.StatusOK)
	assert.Equal(t, "admin", decodeBody(t, w)["user"].(map[string]interface{})["role"])

	// Banning is reserved for the block toggle; the profile update
	// rejects it like any other unknown role.
	for _, role := range []string{"banned", "superuser"} {
		w = env.request(t, http.MethodPut, path, adminToken, map[string]interface{}{
			"role": role,
		})
		statusOK(t, w, http.StatusBadRequest)
		assert.Equal(t, "Некорректная роль пользователя", errorMessage(t, w))
	}

	// The rejected role never reached the database.
	var stored model.User
	assert.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.Equal(t, model.RoleAdmin, stored.Role)
}
