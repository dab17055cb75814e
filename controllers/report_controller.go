package controllers

import (
	"fmt"

	"freight-app/costing"
	"freight-app/repositories"
	"freight-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (c *ReportController) GetJoaStatement(ctx *fiber.Ctx) error {
	ref := ctx.Params("ref")
	if ref == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JOA reference is required"})
	}

	repo := repositories.NewReportRepository(c.DB)
	statement, err := repo.GetJoaStatement(ref)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "JOA statement found", "data": statement})
}

func (c *ReportController) GetLiftingReport(ctx *fiber.Ctx) error {
	start := ctx.Query("start")
	end := ctx.Query("end")
	if start == "" || end == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start and end dates are required"})
	}

	repo := repositories.NewReportRepository(c.DB)
	report, err := repo.GetLiftingReport(start, end)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Lifting report found", "data": report})
}

// ExportJoaStatement membuat file Excel JOA: blok sales invoice dan blok
// purchase invoice (POL lalu POD) berdampingan, plus total dan margin.
func (c *ReportController) ExportJoaStatement(ctx *fiber.Ctx) error {
	ref := ctx.Params("ref")
	if ref == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JOA reference is required"})
	}

	repo := repositories.NewReportRepository(c.DB)
	statement, err := repo.GetJoaStatement(ref)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetSheetName(sheet, "JOA")
	sheet = "JOA"

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f.SetCellValue(sheet, "A1", "JOB ORDER ACCOUNT")
	f.SetCellValue(sheet, "A2", "Ref: "+statement.RefJoa)
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Party: %s (20ft: %d, 21ft: %d, 40HC: %d)",
		statement.Sizes.Raw, statement.Sizes.C20, statement.Sizes.C21, statement.Sizes.C40))
	f.SetCellStyle(sheet, "A1", "A1", totalStyle)

	// Blok kiri: sales invoice per penerima.
	salesHeader := []interface{}{"CUSTOMER", "COLLI", "VOLUME (M3)", "BERAT (TON)", "VALUE"}
	f.SetSheetRow(sheet, "A5", &salesHeader)
	f.SetCellStyle(sheet, "A5", "E5", headerStyle)

	row := 6
	for _, sales := range statement.Sales {
		values := []interface{}{sales.ReceiverName, sales.TotalColli, sales.Volume, sales.Berat, sales.Value}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "SALES TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), statement.SalesTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), totalStyle)

	// Blok kanan: purchase invoice POL dulu, lalu POD.
	purchaseHeader := []interface{}{"BUCKET", "CATEGORY", "KETERANGAN", "UNIT COST", "QTY", "TOTAL"}
	f.SetSheetRow(sheet, "G5", &purchaseHeader)
	f.SetCellStyle(sheet, "G5", "L5", headerStyle)

	row = 6
	for _, bucket := range []string{costing.BucketPOL, costing.BucketPOD} {
		for _, line := range statement.Purchase.Lines {
			if line.Bucket != bucket {
				continue
			}
			values := []interface{}{line.Bucket, line.Category, line.Keterangan, line.UnitCost, line.Multiplier, line.TotalCost}
			f.SetSheetRow(sheet, fmt.Sprintf("G%d", row), &values)
			row++
		}

		subtotal := statement.Purchase.PolTotal
		label := "POL TOTAL"
		if bucket == costing.BucketPOD {
			subtotal = statement.Purchase.PodTotal
			label = "POD TOTAL"
		}
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), subtotal)
		f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("L%d", row), totalStyle)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), "PURCHASE TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("L%d", row), statement.PurchaseTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("L%d", row), totalStyle)
	row += 2

	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), "MARGIN")
	f.SetCellValue(sheet, fmt.Sprintf("L%d", row), statement.Margin)
	f.SetCellValue(sheet, fmt.Sprintf("M%d", row), utils.FormatRupiah(statement.Margin))
	f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("M%d", row), totalStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="joa_%s.xlsx"`, ref))
	return ctx.Send(buf.Bytes())
}
