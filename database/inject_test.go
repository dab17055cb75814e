package database

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type injectableController struct {
	DB *gorm.DB
}

type controllerWithoutDB struct {
	Name string
}

func performInject(t *testing.T, controller interface{}) int {
	t.Helper()

	app := fiber.New()
	app.Use(InjectDBMiddleware(controller))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestInjectDBMiddlewareRejectsNonPointerController(t *testing.T) {
	status := performInject(t, injectableController{})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestInjectDBMiddlewareRejectsNilController(t *testing.T) {
	var controller *injectableController
	status := performInject(t, controller)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestInjectDBMiddlewareRejectsControllerWithoutDBField(t *testing.T) {
	status := performInject(t, &controllerWithoutDB{})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
