package repositories

import (
	"errors"
	"time"

	"freight-app/controllers/idgen"
	"freight-app/models"
	"freight-app/pricing"
	"freight-app/reports"
	"freight-app/types"

	"gorm.io/gorm"
)

type ContainerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) *ContainerRepository {
	return &ContainerRepository{db: db}
}

type AssignInput struct {
	BarangID    uint   `json:"barang_id" validate:"required"`
	ContainerID uint   `json:"container_id" validate:"required"`
	Satuan      string `json:"satuan" validate:"required,oneof=m3 kg container"`
	Door        string `json:"door" validate:"required,oneof=pp pd dd"`
	QtyColli    int    `json:"qty_colli" validate:"required,min=1"`
	TglMuat     string `json:"tgl_muat"`
	UserID      int    `json:"-"`
}

// Assign memuat satu barang ke container: resolve harga, derive pajak bila
// barang kena pajak, generate kunci urut, lalu simpan dalam satu transaksi.
// Kegagalan di langkah mana pun membatalkan seluruh penempatan.
func (r *ContainerRepository) Assign(input AssignInput) (*models.ContainerDetail, error) {
	var barang models.Barang
	if err := r.db.First(&barang, input.BarangID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnresolvedReferenceError{Entity: "barang", ID: input.BarangID}
		}
		return nil, &StorageError{Op: "load barang", Err: err}
	}

	var container models.Container
	if err := r.db.First(&container, input.ContainerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnresolvedReferenceError{Entity: "container", ID: input.ContainerID}
		}
		return nil, &StorageError{Op: "load container", Err: err}
	}

	harga, total, err := pricing.ResolvePrice(&barang, input.Satuan, input.Door, input.QtyColli)
	if err != nil {
		return nil, err
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, &StorageError{Op: "begin assign", Err: tx.Error}
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	detail := models.ContainerDetail{
		BarangID:    barang.ID,
		ContainerID: container.ID,
		Satuan:      input.Satuan,
		Door:        input.Door,
		QtyColli:    input.QtyColli,
		Harga:       harga,
		Total:       total,
		TglMuat:     input.TglMuat,
		CreatedBy:   input.UserID,
	}

	if barang.HasTax {
		taxID, err := r.createTaxRecord(tx, &barang, container.ID, total, input.UserID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		detail.BarangTaxID = taxID
	}

	orderKey, err := r.nextOrderKey(tx, barang.ID, container.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	detail.OrderKey = orderKey

	if err := tx.Create(&detail).Error; err != nil {
		tx.Rollback()
		return nil, &StorageError{Op: "create container detail", Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, &StorageError{Op: "commit assign", Err: err}
	}

	return &detail, nil
}

// createTaxRecord membuat record pajak dengan snapshot nama penerima saat itu.
// Penerima yang tidak ketemu didegradasi ke "Unknown" sesuai kebijakan;
// rename customer setelahnya tidak mengubah record pajak lama.
func (r *ContainerRepository) createTaxRecord(tx *gorm.DB, barang *models.Barang, containerID uint, total float64, userID int) (*types.SnowflakeID, error) {
	penerima := pricing.UnknownReceiverName
	var receiver models.Customer
	err := tx.First(&receiver, barang.ReceiverID).Error
	if err == nil {
		penerima = receiver.CustomerName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StorageError{Op: "load receiver", Err: err}
	} else if pricing.OnMissingReceiver == pricing.FailOnMissing {
		return nil, &UnresolvedReferenceError{Entity: "customer", ID: barang.ReceiverID}
	}

	amounts := pricing.ComputeTax(total)
	record := models.BarangTax{
		ID:          types.SnowflakeID(idgen.GenerateID()),
		ContainerID: containerID,
		BarangID:    barang.ID,
		Penerima:    penerima,
		Dpp:         amounts.Dpp,
		PpnRate:     pricing.PpnRate,
		Pph23Rate:   pricing.Pph23Rate,
		Ppn:         amounts.Ppn,
		Pph23:       amounts.Pph23,
		TotalTax:    amounts.TotalTax,
		CreatedBy:   userID,
	}

	if err := tx.Create(&record).Error; err != nil {
		return nil, &StorageError{Op: "create barang tax", Err: err}
	}

	return &record.ID, nil
}

func (r *ContainerRepository) nextOrderKey(tx *gorm.DB, barangID, containerID uint) (string, error) {
	var keys []string
	if err := tx.Model(&models.ContainerDetail{}).
		Where("barang_id = ? AND container_id = ?", barangID, containerID).
		Pluck("order_key", &keys).Error; err != nil {
		return "", &StorageError{Op: "load order keys", Err: err}
	}

	taken := make(map[string]bool, len(keys))
	last := ""
	for _, key := range keys {
		taken[key] = true
		if key > last {
			last = key
		}
	}

	return NextOrderKey(time.Now(), taken, last), nil
}

// ListDetails mengembalikan isi container urut kronologis (order key ascending),
// sudah di-join dengan nama barang dan penerima.
func (r *ContainerRepository) ListDetails(containerID uint) ([]reports.AssignmentRow, error) {
	var rows []reports.AssignmentRow

	sql := `SELECT cd.container_id, cd.barang_id, b.barang_name,
			b.receiver_id, COALESCE(c.customer_name, 'Unknown') AS receiver_name,
			cd.qty_colli, b.volume, b.berat AS berat, cd.total, cd.order_key
		FROM container_details cd
		INNER JOIN barangs b ON cd.barang_id = b.id
		LEFT JOIN customers c ON b.receiver_id = c.id
		WHERE cd.container_id = ? AND cd.deleted_at IS NULL
		ORDER BY cd.order_key ASC`

	if err := r.db.Raw(sql, containerID).Scan(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list container details", Err: err}
	}

	return rows, nil
}

func (r *ContainerRepository) AddDeliveryCost(cost *models.DeliveryCost) error {
	var container models.Container
	if err := r.db.First(&container, cost.ContainerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &UnresolvedReferenceError{Entity: "container", ID: cost.ContainerID}
		}
		return &StorageError{Op: "load container", Err: err}
	}

	if err := r.db.Create(cost).Error; err != nil {
		return &StorageError{Op: "create delivery cost", Err: err}
	}
	return nil
}

func (r *ContainerRepository) ListDeliveryCosts(containerID uint) ([]models.DeliveryCost, error) {
	var costs []models.DeliveryCost
	if err := r.db.Where("container_id = ?", containerID).
		Order("id ASC").Find(&costs).Error; err != nil {
		return nil, &StorageError{Op: "list delivery costs", Err: err}
	}
	return costs, nil
}
