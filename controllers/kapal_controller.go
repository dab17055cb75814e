package controllers

import (
	"errors"

	"freight-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type KapalController struct {
	DB *gorm.DB
}

type kapalRequest struct {
	ID           uint   `json:"id"`
	ShippingLine string `json:"shipping_line" validate:"required"`
	FeederName   string `json:"feeder_name" validate:"required"`
	Destination  string `json:"destination"`
	EtdSub       string `json:"etd_sub"`
	ClosingTime  string `json:"closing_time"`
	OpenDate     string `json:"open_date"`
	FullDate     string `json:"full_date"`
}

func NewKapalController(db *gorm.DB) *KapalController {
	return &KapalController{DB: db}
}

func (c *KapalController) GetAllKapals(ctx *fiber.Ctx) error {
	var kapals []models.Kapal
	if err := c.DB.Order("etd_sub DESC").Find(&kapals).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Kapals found", "data": kapals})
}

func (c *KapalController) GetKapalByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Kapal
	if err := c.DB.Preload("Containers").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kapal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Kapal found", "data": result})
}

func (c *KapalController) CreateKapal(ctx *fiber.Ctx) error {
	var kapalInput kapalRequest
	if err := ctx.BodyParser(&kapalInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(kapalInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	kapal := models.Kapal{
		ShippingLine: kapalInput.ShippingLine,
		FeederName:   kapalInput.FeederName,
		Destination:  kapalInput.Destination,
		EtdSub:       kapalInput.EtdSub,
		ClosingTime:  kapalInput.ClosingTime,
		OpenDate:     kapalInput.OpenDate,
		FullDate:     kapalInput.FullDate,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&kapal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Kapal created successfully", "data": kapal})
}

func (c *KapalController) UpdateKapal(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var kapalInput kapalRequest
	if err := ctx.BodyParser(&kapalInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.
		Model(&models.Kapal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"shipping_line": kapalInput.ShippingLine,
			"feeder_name":   kapalInput.FeederName,
			"destination":   kapalInput.Destination,
			"etd_sub":       kapalInput.EtdSub,
			"closing_time":  kapalInput.ClosingTime,
			"open_date":     kapalInput.OpenDate,
			"full_date":     kapalInput.FullDate,
			"updated_by":    int(ctx.Locals("userID").(float64)),
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Kapal updated successfully", "data": kapalInput})
}

// DeleteKapal menghapus kapal; container miliknya menjadi yatim (kapal_id tetap,
// laporan menampilkan placeholder "unknown"), tidak ikut dihapus.
func (c *KapalController) DeleteKapal(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var kapal models.Kapal
	if err := c.DB.First(&kapal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kapal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	kapal.DeletedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&kapal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&kapal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Kapal deleted successfully", "data": kapal})
}
