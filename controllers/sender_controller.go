package controllers

import (
	"errors"

	"freight-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Registry pengirim tersendiri; barang tetap memakai Customer untuk peran
// pengirim/penerima di alur pricing.
type SenderController struct {
	DB *gorm.DB
}

type senderRequest struct {
	ID         uint   `json:"id"`
	SenderName string `json:"sender_name" validate:"required,min=3"`
	SenderAddr string `json:"sender_addr"`
}

func NewSenderController(db *gorm.DB) *SenderController {
	return &SenderController{DB: db}
}

func (c *SenderController) GetAllSenders(ctx *fiber.Ctx) error {
	var senders []models.Sender
	if err := c.DB.Find(&senders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Senders found", "data": senders})
}

func (c *SenderController) GetSenderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Sender
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sender not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sender found", "data": result})
}

func (c *SenderController) CreateSender(ctx *fiber.Ctx) error {
	var senderInput senderRequest
	if err := ctx.BodyParser(&senderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(senderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sender := models.Sender{
		SenderName: senderInput.SenderName,
		SenderAddr: senderInput.SenderAddr,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&sender).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sender created successfully", "data": sender})
}

func (c *SenderController) UpdateSender(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var senderInput senderRequest
	if err := ctx.BodyParser(&senderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.
		Model(&models.Sender{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sender_name": senderInput.SenderName,
			"sender_addr": senderInput.SenderAddr,
			"updated_by":  int(ctx.Locals("userID").(float64)),
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sender updated successfully", "data": senderInput})
}

func (c *SenderController) DeleteSender(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sender models.Sender
	if err := c.DB.First(&sender, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sender not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sender.DeletedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&sender).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&sender).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sender deleted successfully", "data": sender})
}
