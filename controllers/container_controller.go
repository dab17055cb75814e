package controllers

import (
	"errors"
	"strconv"

	"freight-app/models"
	"freight-app/pricing"
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContainerController struct {
	DB *gorm.DB
}

type containerRequest struct {
	ID          uint   `json:"id"`
	KapalID     *uint  `json:"kapal_id"`
	Etd         string `json:"etd"`
	Party       string `json:"party"`
	NoContainer string `json:"no_container" validate:"required"`
	NoSeal      string `json:"no_seal"`
	RefJoa      string `json:"ref_joa"`
}

type deliveryCostRequest struct {
	Delivery   string  `json:"delivery"`
	Keterangan string  `json:"keterangan" validate:"required"`
	Biaya      float64 `json:"biaya" validate:"required,gt=0"`
	TglInput   string  `json:"tgl_input"`
}

func NewContainerController(db *gorm.DB) *ContainerController {
	return &ContainerController{DB: db}
}

func (c *ContainerController) GetAllContainers(ctx *fiber.Ctx) error {
	var containers []models.Container
	if err := c.DB.Order("id DESC").Find(&containers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Containers found", "data": containers})
}

func (c *ContainerController) GetContainerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Container
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container found", "data": result})
}

func (c *ContainerController) CreateContainer(ctx *fiber.Ctx) error {
	var containerInput containerRequest
	if err := ctx.BodyParser(&containerInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(containerInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if containerInput.KapalID != nil {
		var kapal models.Kapal
		if err := c.DB.First(&kapal, *containerInput.KapalID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kapal not found"})
		}
	}

	container := models.Container{
		KapalID:     containerInput.KapalID,
		Etd:         containerInput.Etd,
		Party:       containerInput.Party,
		NoContainer: containerInput.NoContainer,
		NoSeal:      containerInput.NoSeal,
		RefJoa:      containerInput.RefJoa,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container created successfully", "data": container})
}

func (c *ContainerController) UpdateContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var containerInput containerRequest
	if err := ctx.BodyParser(&containerInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.
		Model(&models.Container{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"kapal_id":     containerInput.KapalID,
			"etd":          containerInput.Etd,
			"party":        containerInput.Party,
			"no_container": containerInput.NoContainer,
			"no_seal":      containerInput.NoSeal,
			"ref_joa":      containerInput.RefJoa,
			"updated_by":   int(ctx.Locals("userID").(float64)),
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container updated successfully", "data": containerInput})
}

// AssignBarang memuat barang ke container lewat engine penempatan.
func (c *ContainerController) AssignBarang(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input repositories.AssignInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input.ContainerID = uint(id)
	input.UserID = int(ctx.Locals("userID").(float64))

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewContainerRepository(c.DB)
	detail, err := repo.Assign(input)
	if err != nil {
		var missingRate *pricing.MissingRateError
		var notFound *repositories.UnresolvedReferenceError
		switch {
		case errors.As(err, &missingRate):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &notFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barang assigned successfully", "data": detail})
}

// GetContainerDetails daftar isi container urut kronologis.
func (c *ContainerController) GetContainerDetails(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewContainerRepository(c.DB)
	rows, err := repo.ListDetails(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container details found", "data": rows})
}

func (c *ContainerController) AddDeliveryCost(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var deliveryCostInput deliveryCostRequest
	if err := ctx.BodyParser(&deliveryCostInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(deliveryCostInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost := models.DeliveryCost{
		ContainerID: uint(id),
		Delivery:    deliveryCostInput.Delivery,
		Keterangan:  deliveryCostInput.Keterangan,
		Biaya:       deliveryCostInput.Biaya,
		TglInput:    deliveryCostInput.TglInput,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewContainerRepository(c.DB)
	if err := repo.AddDeliveryCost(&cost); err != nil {
		var notFound *repositories.UnresolvedReferenceError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery cost added successfully", "data": cost})
}

func (c *ContainerController) GetDeliveryCosts(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewContainerRepository(c.DB)
	costs, err := repo.ListDeliveryCosts(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery costs found", "data": costs})
}

func (c *ContainerController) GetContainerSummary(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewReportRepository(c.DB)
	summary, err := repo.GetContainerSummary(uint(id))
	if err != nil {
		var notFound *repositories.UnresolvedReferenceError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container summary found", "data": summary})
}

func (c *ContainerController) GetTopContainers(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	ascending := ctx.Query("order") == "asc"

	repo := repositories.NewReportRepository(c.DB)
	rankings, err := repo.GetTopContainers(limit, ascending)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container rankings found", "data": rankings})
}

func (c *ContainerController) SearchContainersByValue(ctx *fiber.Ctx) error {
	min, err := strconv.ParseFloat(ctx.Query("min", "0"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid min value"})
	}
	max, err := strconv.ParseFloat(ctx.Query("max", "0"), 64)
	if err != nil || max < min {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid max value"})
	}

	repo := repositories.NewReportRepository(c.DB)
	rankings, err := repo.SearchContainersByValue(min, max)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Containers found", "data": rankings})
}
