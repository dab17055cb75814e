package repositories

import (
	"errors"

	"freight-app/models"

	"gorm.io/gorm"
)

type BarangRepository struct {
	db *gorm.DB
}

func NewBarangRepository(db *gorm.DB) *BarangRepository {
	return &BarangRepository{db: db}
}

func (r *BarangRepository) GetAll() ([]models.Barang, error) {
	var barangs []models.Barang
	if err := r.db.Order("id DESC").Find(&barangs).Error; err != nil {
		return nil, &StorageError{Op: "list barang", Err: err}
	}
	return barangs, nil
}

func (r *BarangRepository) GetByID(id uint) (*models.Barang, error) {
	var barang models.Barang
	if err := r.db.First(&barang, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnresolvedReferenceError{Entity: "barang", ID: id}
		}
		return nil, &StorageError{Op: "load barang", Err: err}
	}
	return &barang, nil
}

// Create menyimpan barang baru. Volume dihitung dari dimensi (cm -> m3)
// bila tidak diisi manual.
func (r *BarangRepository) Create(barang *models.Barang) error {
	if barang.Volume == 0 {
		barang.Volume = computeVolume(barang.Panjang, barang.Lebar, barang.Tinggi)
	}

	if err := r.db.Create(barang).Error; err != nil {
		return &StorageError{Op: "create barang", Err: err}
	}
	return nil
}

func (r *BarangRepository) Update(barang *models.Barang) error {
	if barang.Volume == 0 {
		barang.Volume = computeVolume(barang.Panjang, barang.Lebar, barang.Tinggi)
	}

	if err := r.db.Save(barang).Error; err != nil {
		return &StorageError{Op: "update barang", Err: err}
	}
	return nil
}

func (r *BarangRepository) Delete(id uint, userID int) error {
	var barang models.Barang
	if err := r.db.First(&barang, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &UnresolvedReferenceError{Entity: "barang", ID: id}
		}
		return &StorageError{Op: "load barang", Err: err}
	}

	barang.DeletedBy = userID
	if err := r.db.Select("deleted_by").Where("id = ?", id).Updates(&barang).Error; err != nil {
		return &StorageError{Op: "mark barang deleted", Err: err}
	}

	if err := r.db.Delete(&barang).Error; err != nil {
		return &StorageError{Op: "delete barang", Err: err}
	}
	return nil
}

func computeVolume(panjang, lebar, tinggi float64) float64 {
	return panjang * lebar * tinggi / 1000000
}
