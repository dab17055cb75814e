package repositories

import (
	"errors"

	"freight-app/models"
	"freight-app/reports"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// GetContainerSummary: nilai total, jumlah barang, colli, breakdown per penerima.
// Container tanpa kapal tetap dilaporkan dengan placeholder "unknown".
func (r *ReportRepository) GetContainerSummary(containerID uint) (*reports.ContainerSummary, error) {
	var container models.Container
	if err := r.db.First(&container, containerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnresolvedReferenceError{Entity: "container", ID: containerID}
		}
		return nil, &StorageError{Op: "load container", Err: err}
	}

	var kapal *models.Kapal
	if container.KapalID != nil {
		var k models.Kapal
		if err := r.db.First(&k, *container.KapalID).Error; err == nil {
			kapal = &k
		}
	}

	containerRepo := ContainerRepository{db: r.db}
	rows, err := containerRepo.ListDetails(containerID)
	if err != nil {
		return nil, err
	}

	summary := reports.BuildContainerSummary(container, kapal, rows)
	return &summary, nil
}

// GetJoaStatement mengumpulkan semua container dengan ref JOA yang sama lalu
// menyusun sales invoice, purchase invoice POL/POD, dan margin.
func (r *ReportRepository) GetJoaStatement(ref string) (*reports.JoaStatement, error) {
	var containers []models.Container
	if err := r.db.Where("ref_joa = ?", ref).Find(&containers).Error; err != nil {
		return nil, &StorageError{Op: "list joa containers", Err: err}
	}

	var rows []reports.AssignmentRow
	sql := `SELECT cd.container_id, cd.barang_id, b.barang_name,
			b.receiver_id, COALESCE(c.customer_name, 'Unknown') AS receiver_name,
			cd.qty_colli, b.volume, b.berat AS berat, cd.total, cd.order_key
		FROM container_details cd
		INNER JOIN containers ct ON cd.container_id = ct.id
		INNER JOIN barangs b ON cd.barang_id = b.id
		LEFT JOIN customers c ON b.receiver_id = c.id
		WHERE ct.ref_joa = ? AND cd.deleted_at IS NULL AND ct.deleted_at IS NULL
		ORDER BY cd.order_key ASC`

	if err := r.db.Raw(sql, ref).Scan(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list joa assignments", Err: err}
	}

	var costs []models.DeliveryCost
	costSQL := `SELECT dc.* FROM delivery_costs dc
		INNER JOIN containers ct ON dc.container_id = ct.id
		WHERE ct.ref_joa = ? AND dc.deleted_at IS NULL AND ct.deleted_at IS NULL
		ORDER BY dc.id ASC`

	if err := r.db.Raw(costSQL, ref).Scan(&costs).Error; err != nil {
		return nil, &StorageError{Op: "list joa costs", Err: err}
	}

	statement := reports.BuildJoaStatement(ref, containers, rows, costs)
	return &statement, nil
}

// GetLiftingReport: profit per grup (ref JOA, ETD subline) untuk rentang
// tanggal ETD subline kapal.
func (r *ReportRepository) GetLiftingReport(start, end string) (*reports.LiftingReport, error) {
	var containers []models.Container
	sql := `SELECT ct.* FROM containers ct
		INNER JOIN kapals k ON ct.kapal_id = k.id
		WHERE k.etd_sub >= ? AND k.etd_sub <= ?
		AND ct.deleted_at IS NULL AND k.deleted_at IS NULL
		ORDER BY k.etd_sub ASC, ct.ref_joa ASC`

	if err := r.db.Raw(sql, start, end).Scan(&containers).Error; err != nil {
		return nil, &StorageError{Op: "list lifting containers", Err: err}
	}

	inputs := make([]reports.LiftingInput, 0, len(containers))
	for _, container := range containers {
		input := reports.LiftingInput{Container: container}

		if container.KapalID != nil {
			var kapal models.Kapal
			if err := r.db.First(&kapal, *container.KapalID).Error; err == nil {
				input.EtdSub = kapal.EtdSub
			}
		}

		var invoice float64
		if err := r.db.Model(&models.ContainerDetail{}).
			Where("container_id = ?", container.ID).
			Select("COALESCE(SUM(total), 0)").Scan(&invoice).Error; err != nil {
			return nil, &StorageError{Op: "sum container invoice", Err: err}
		}
		input.InvoiceValue = invoice

		var costs []models.DeliveryCost
		if err := r.db.Where("container_id = ?", container.ID).Find(&costs).Error; err != nil {
			return nil, &StorageError{Op: "list container costs", Err: err}
		}
		input.Costs = costs

		inputs = append(inputs, input)
	}

	report := reports.BuildLiftingReport(start, end, inputs)
	return &report, nil
}

type ContainerRanking struct {
	ContainerID uint    `json:"container_id"`
	NoContainer string  `json:"no_container"`
	RefJoa      string  `json:"ref_joa"`
	ItemCount   int     `json:"item_count"`
	TotalValue  float64 `json:"total_value"`
}

// GetTopContainers peringkat container berdasarkan nilai invoice.
func (r *ReportRepository) GetTopContainers(limit int, ascending bool) ([]ContainerRanking, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var rankings []ContainerRanking
	sql := `WITH cv AS (
			SELECT container_id, COUNT(id) AS item_count, SUM(total) AS total_value
			FROM container_details
			WHERE deleted_at IS NULL
			GROUP BY container_id
		)
		SELECT ct.id AS container_id, ct.no_container, ct.ref_joa,
			COALESCE(cv.item_count, 0) AS item_count,
			COALESCE(cv.total_value, 0) AS total_value
		FROM containers ct
		LEFT JOIN cv ON ct.id = cv.container_id
		WHERE ct.deleted_at IS NULL
		ORDER BY total_value ` + direction

	if err := r.db.Raw(sql).Scan(&rankings).Error; err != nil {
		return nil, &StorageError{Op: "rank containers", Err: err}
	}

	// LIMIT/TOP beda sintaks antar driver; volume data kecil, potong di sini.
	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}

	return rankings, nil
}

// SearchContainersByValue mencari container dengan nilai invoice dalam rentang.
func (r *ReportRepository) SearchContainersByValue(min, max float64) ([]ContainerRanking, error) {
	var rankings []ContainerRanking
	sql := `WITH cv AS (
			SELECT container_id, COUNT(id) AS item_count, SUM(total) AS total_value
			FROM container_details
			WHERE deleted_at IS NULL
			GROUP BY container_id
		)
		SELECT ct.id AS container_id, ct.no_container, ct.ref_joa,
			COALESCE(cv.item_count, 0) AS item_count,
			COALESCE(cv.total_value, 0) AS total_value
		FROM containers ct
		LEFT JOIN cv ON ct.id = cv.container_id
		WHERE ct.deleted_at IS NULL
		AND COALESCE(cv.total_value, 0) >= ? AND COALESCE(cv.total_value, 0) <= ?
		ORDER BY total_value DESC`

	if err := r.db.Raw(sql, min, max).Scan(&rankings).Error; err != nil {
		return nil, &StorageError{Op: "search containers by value", Err: err}
	}

	return rankings, nil
}
