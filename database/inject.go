package database

import (
	"reflect"

	"freight-app/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InjectDBMiddleware mengisi field DB milik controller dengan koneksi dari pool.
// Controller divalidasi dulu supaya kesalahan wiring ketahuan tanpa menyentuh database.
func InjectDBMiddleware(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		val := reflect.ValueOf(controller)
		if val.Kind() != reflect.Ptr || val.IsNil() {
			return fiber.NewError(fiber.StatusInternalServerError, "controller must be a non-nil pointer")
		}

		elem := val.Elem()
		dbField := elem.FieldByName("DB")
		if !dbField.IsValid() || !dbField.CanSet() {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field not found or cannot be set in controller")
		}

		if dbField.Type() != reflect.TypeOf((*gorm.DB)(nil)) {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field has wrong type")
		}

		db, err := GetDBConnection(config.DBName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "error connecting to database")
		}

		dbField.Set(reflect.ValueOf(db))

		return c.Next()
	}
}
