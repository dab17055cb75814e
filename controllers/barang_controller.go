package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freight-app/models"
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BarangController struct {
	DB *gorm.DB
}

type barangRequest struct {
	ID            uint    `json:"id"`
	SenderID      uint    `json:"sender_id" validate:"required"`
	ReceiverID    uint    `json:"receiver_id" validate:"required"`
	BarangName    string  `json:"barang_name" validate:"required"`
	Panjang       float64 `json:"panjang"`
	Lebar         float64 `json:"lebar"`
	Tinggi        float64 `json:"tinggi"`
	Volume        float64 `json:"volume"`
	Berat         float64 `json:"berat"`
	PartContainer float64 `json:"part_container"`
	M3PP          float64 `json:"m3_pp"`
	M3PD          float64 `json:"m3_pd"`
	M3DD          float64 `json:"m3_dd"`
	KgPP          float64 `json:"kg_pp"`
	KgPD          float64 `json:"kg_pd"`
	KgDD          float64 `json:"kg_dd"`
	ContainerPP   float64 `json:"container_pp"`
	ContainerPD   float64 `json:"container_pd"`
	ContainerDD   float64 `json:"container_dd"`
	HasTax        bool    `json:"has_tax"`
}

func NewBarangController(db *gorm.DB) *BarangController {
	return &BarangController{DB: db}
}

func (c *BarangController) GetAllBarangs(ctx *fiber.Ctx) error {
	repo := repositories.NewBarangRepository(c.DB)
	barangs, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barangs found", "data": barangs})
}

func (c *BarangController) GetBarangByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewBarangRepository(c.DB)
	barang, err := repo.GetByID(uint(id))
	if err != nil {
		var notFound *repositories.UnresolvedReferenceError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Barang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barang found", "data": barang})
}

func (c *BarangController) CreateBarang(ctx *fiber.Ctx) error {
	var barangInput barangRequest
	if err := ctx.BodyParser(&barangInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(barangInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sender, receiver models.Customer
	if err := c.DB.First(&sender, barangInput.SenderID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sender customer not found"})
	}
	if err := c.DB.First(&receiver, barangInput.ReceiverID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receiver customer not found"})
	}

	barang := models.Barang{
		SenderID:      barangInput.SenderID,
		ReceiverID:    barangInput.ReceiverID,
		BarangName:    barangInput.BarangName,
		Panjang:       barangInput.Panjang,
		Lebar:         barangInput.Lebar,
		Tinggi:        barangInput.Tinggi,
		Volume:        barangInput.Volume,
		Berat:         barangInput.Berat,
		PartContainer: barangInput.PartContainer,
		M3PP:          barangInput.M3PP,
		M3PD:          barangInput.M3PD,
		M3DD:          barangInput.M3DD,
		KgPP:          barangInput.KgPP,
		KgPD:          barangInput.KgPD,
		KgDD:          barangInput.KgDD,
		ContainerPP:   barangInput.ContainerPP,
		ContainerPD:   barangInput.ContainerPD,
		ContainerDD:   barangInput.ContainerDD,
		HasTax:        barangInput.HasTax,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewBarangRepository(c.DB)
	if err := repo.Create(&barang); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barang created successfully", "data": barang})
}

func (c *BarangController) UpdateBarang(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var barangInput barangRequest
	if err := ctx.BodyParser(&barangInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewBarangRepository(c.DB)
	barang, err := repo.GetByID(uint(id))
	if err != nil {
		var notFound *repositories.UnresolvedReferenceError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Barang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	barang.SenderID = barangInput.SenderID
	barang.ReceiverID = barangInput.ReceiverID
	barang.BarangName = barangInput.BarangName
	barang.Panjang = barangInput.Panjang
	barang.Lebar = barangInput.Lebar
	barang.Tinggi = barangInput.Tinggi
	barang.Volume = barangInput.Volume
	barang.Berat = barangInput.Berat
	barang.PartContainer = barangInput.PartContainer
	barang.M3PP = barangInput.M3PP
	barang.M3PD = barangInput.M3PD
	barang.M3DD = barangInput.M3DD
	barang.KgPP = barangInput.KgPP
	barang.KgPD = barangInput.KgPD
	barang.KgDD = barangInput.KgDD
	barang.ContainerPP = barangInput.ContainerPP
	barang.ContainerPD = barangInput.ContainerPD
	barang.ContainerDD = barangInput.ContainerDD
	barang.HasTax = barangInput.HasTax
	barang.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := repo.Update(barang); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barang updated successfully", "data": barang})
}

func (c *BarangController) DeleteBarang(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewBarangRepository(c.DB)
	if err := repo.Delete(uint(id), int(ctx.Locals("userID").(float64))); err != nil {
		var notFound *repositories.UnresolvedReferenceError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Barang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barang deleted successfully"})
}

var barangTemplateHeader = []string{
	"SENDER_CODE", "RECEIVER_CODE", "BARANG_NAME",
	"PANJANG_CM", "LEBAR_CM", "TINGGI_CM", "BERAT_TON",
	"M3_PP", "M3_PD", "M3_DD", "KG_PP", "KG_PD", "KG_DD",
	"CONT_PP", "CONT_PD", "CONT_DD", "HAS_TAX",
}

// DownloadTemplate menghasilkan file template import barang.
func (c *BarangController) DownloadTemplate(ctx *fiber.Ctx) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &barangTemplateHeader); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	example := []interface{}{"CUST01", "CUST02", "SPAREPART MESIN", 120, 80, 100, 0.5,
		850000, 900000, 950000, 0, 0, 0, 0, 0, 0, "YES"}
	if err := f.SetSheetRow(sheet, "A2", &example); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="template_barang.xlsx"`)
	return ctx.Send(buf.Bytes())
}

type BarangUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateBarangFromExcel memproses import massal barang. Tiap baris berdiri
// sendiri: baris gagal dicatat di daftar error, baris sebelumnya yang sudah
// tersimpan tidak di-rollback.
func (c *BarangController) CreateBarangFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := BarangUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))
	repo := repositories.NewBarangRepository(c.DB)

	for i, row := range rows[1:] {
		rowNum := i + 2

		if isBlankBarangRow(row) {
			continue
		}

		barang, err := c.parseBarangRow(row)
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}

		barang.CreatedBy = userID
		if err := repo.Create(barang); err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create barang - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d errors",
			result.SuccessCount, result.ErrorCount),
		"data": result,
	})
}

// isBlankBarangRow: baris tanpa kolom pertama dilewati, bukan error.
func isBlankBarangRow(row []string) bool {
	return len(row) == 0 || strings.TrimSpace(row[0]) == ""
}

// parseBarangCells memetakan satu baris template ke barang tanpa query;
// resolusi kode customer dilakukan pemanggil.
func parseBarangCells(row []string) (string, string, *models.Barang, error) {
	if len(row) < 3 {
		return "", "", nil, errors.New("insufficient columns (expected at least 3)")
	}

	senderCode := strings.ToUpper(strings.TrimSpace(row[0]))
	receiverCode := strings.ToUpper(strings.TrimSpace(row[1]))
	barangName := strings.TrimSpace(row[2])

	if senderCode == "" || receiverCode == "" || barangName == "" {
		return "", "", nil, errors.New("SENDER_CODE, RECEIVER_CODE and BARANG_NAME are required")
	}

	numbers := make([]float64, 13)
	for idx := 0; idx < 13; idx++ {
		value := cellAt(row, idx+3)
		if value == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
		if err != nil {
			return "", "", nil, fmt.Errorf("invalid number '%s' in column %s", value, barangTemplateHeader[idx+3])
		}
		numbers[idx] = parsed
	}

	hasTax := strings.EqualFold(cellAt(row, 16), "YES") || cellAt(row, 16) == "1"

	return senderCode, receiverCode, &models.Barang{
		BarangName:  barangName,
		Panjang:     numbers[0],
		Lebar:       numbers[1],
		Tinggi:      numbers[2],
		Berat:       numbers[3],
		M3PP:        numbers[4],
		M3PD:        numbers[5],
		M3DD:        numbers[6],
		KgPP:        numbers[7],
		KgPD:        numbers[8],
		KgDD:        numbers[9],
		ContainerPP: numbers[10],
		ContainerPD: numbers[11],
		ContainerDD: numbers[12],
		HasTax:      hasTax,
	}, nil
}

func (c *BarangController) parseBarangRow(row []string) (*models.Barang, error) {
	senderCode, receiverCode, barang, err := parseBarangCells(row)
	if err != nil {
		return nil, err
	}

	var sender, receiver models.Customer
	if err := c.DB.Where("customer_code = ?", senderCode).First(&sender).Error; err != nil {
		return nil, fmt.Errorf("sender customer '%s' not found", senderCode)
	}
	if err := c.DB.Where("customer_code = ?", receiverCode).First(&receiver).Error; err != nil {
		return nil, fmt.Errorf("receiver customer '%s' not found", receiverCode)
	}

	barang.SenderID = sender.ID
	barang.ReceiverID = receiver.ID
	return barang, nil
}
