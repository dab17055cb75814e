package repositories

import "fmt"

// UnresolvedReferenceError: id yang direferensikan operasi tidak ada.
// Fatal untuk target utama (barang/container); lookup nama penerima pajak
// didegradasi sesuai kebijakan di package pricing.
type UnresolvedReferenceError struct {
	Entity string
	ID     uint
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// StorageError membungkus kegagalan storage layer. Tidak ada retry otomatis.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
