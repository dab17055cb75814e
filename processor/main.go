package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"freight-app/config"
	"freight-app/database"
	"freight-app/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Hasil pemrosesan satu file CSV. Baris yang gagal dicatat, tidak
// menghentikan baris berikutnya.
type importResult struct {
	Filename     string
	SuccessCount int
	ErrorCount   int
	Messages     []string
}

func main() {
	config.LoadConfig()

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}

	processAllCSV(db)
}

// Proses semua file CSV di drop folder.
func processAllCSV(db *gorm.DB) {
	files, err := filepath.Glob(filepath.Join(config.DropFolder, "*.csv"))
	if err != nil {
		log.Fatal("❌ Gagal membaca folder:", err)
	}

	for _, file := range files {
		processFile(db, file)
	}
}

func processFile(db *gorm.DB, filename string) {
	fileNameOnly := filepath.Base(filename)

	// Cek apakah file sudah pernah diproses
	var existingFile models.FileLog
	if err := db.Where("filename = ?", fileNameOnly).First(&existingFile).Error; err == nil {
		log.Println("⚠️ File sudah pernah diproses, skip:", filename)
		return
	}

	info, err := os.Stat(filename)
	if err != nil {
		fmt.Println("❌ Gagal membaca file:", err)
		return
	}

	fmt.Println("📂 Memproses file:", filename)

	result := processBarangCSV(db, filename)

	db.Create(&models.FileLog{Filename: fileNameOnly, DateModified: info.ModTime()})

	if err := sendEmailNotification(config.NotifyEmails, result); err != nil {
		fmt.Println("⚠️  Gagal kirim email notifikasi:", err)
	}

	moveToProcessed(filename)
}

// Format kolom CSV: SENDER_CODE, RECEIVER_CODE, BARANG_NAME, PANJANG, LEBAR,
// TINGGI, VOLUME, BERAT, PART_CONTAINER, M3_PP, M3_PD, M3_DD, KG_PP, KG_PD,
// KG_DD, CONTAINER_PP, CONTAINER_PD, CONTAINER_DD, HAS_TAX
func processBarangCSV(db *gorm.DB, filename string) importResult {
	result := importResult{Filename: filepath.Base(filename)}

	file, err := os.Open(filename)
	if err != nil {
		result.ErrorCount++
		result.Messages = append(result.Messages, "gagal membuka file: "+err.Error())
		return result
	}

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	file.Close()
	if err != nil {
		result.ErrorCount++
		result.Messages = append(result.Messages, "gagal membaca CSV: "+err.Error())
		return result
	}

	for i, record := range records {
		if i == 0 {
			continue // Skip header
		}
		if err := importBarangRow(db, record); err != nil {
			result.ErrorCount++
			result.Messages = append(result.Messages, fmt.Sprintf("baris %d: %v", i+1, err))
			continue
		}
		result.SuccessCount++
	}

	fmt.Printf("✅ %s selesai: %d sukses, %d gagal\n", result.Filename, result.SuccessCount, result.ErrorCount)
	return result
}

// parseBarangRecord memetakan satu baris CSV ke barang tanpa menyentuh
// database; resolusi sender/receiver dilakukan caller.
func parseBarangRecord(record []string) (string, string, models.Barang, error) {
	if len(record) < 19 {
		return "", "", models.Barang{}, fmt.Errorf("kolom kurang, butuh 19 dapat %d", len(record))
	}

	senderCode := strings.ToUpper(strings.TrimSpace(record[0]))
	receiverCode := strings.ToUpper(strings.TrimSpace(record[1]))
	barangName := strings.TrimSpace(record[2])
	if senderCode == "" || receiverCode == "" || barangName == "" {
		return "", "", models.Barang{}, fmt.Errorf("sender, receiver, dan nama barang wajib diisi")
	}

	nums := make([]float64, 15)
	for n := 0; n < 15; n++ {
		raw := strings.TrimSpace(record[3+n])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", "", models.Barang{}, fmt.Errorf("kolom %d bukan angka: %q", 4+n, raw)
		}
		nums[n] = v
	}

	hasTax := strings.EqualFold(strings.TrimSpace(record[18]), "YES") ||
		strings.TrimSpace(record[18]) == "1"

	barang := models.Barang{
		BarangName:    barangName,
		Panjang:       nums[0],
		Lebar:         nums[1],
		Tinggi:        nums[2],
		Volume:        nums[3],
		Berat:         nums[4],
		PartContainer: nums[5],
		M3PP:          nums[6],
		M3PD:          nums[7],
		M3DD:          nums[8],
		KgPP:          nums[9],
		KgPD:          nums[10],
		KgDD:          nums[11],
		ContainerPP:   nums[12],
		ContainerPD:   nums[13],
		ContainerDD:   nums[14],
		HasTax:        hasTax,
	}

	if barang.Volume == 0 && barang.Panjang > 0 && barang.Lebar > 0 && barang.Tinggi > 0 {
		barang.Volume = barang.Panjang * barang.Lebar * barang.Tinggi / 1000000
	}

	return senderCode, receiverCode, barang, nil
}

func importBarangRow(db *gorm.DB, record []string) error {
	senderCode, receiverCode, barang, err := parseBarangRecord(record)
	if err != nil {
		return err
	}

	// Sender adalah customer dalam peran pengirim; dibuat otomatis kalau
	// belum ada, seperti master lain yang tumbuh dari data impor.
	var sender models.Customer
	db.Where("customer_code = ?", senderCode).First(&sender)
	if sender.ID == 0 {
		sender = models.Customer{CustomerCode: senderCode, CustomerName: senderCode}
		if err := db.Create(&sender).Error; err != nil {
			return err
		}
	}

	var receiver models.Customer
	if err := db.Where("customer_code = ?", receiverCode).First(&receiver).Error; err != nil {
		return fmt.Errorf("receiver %s tidak ditemukan", receiverCode)
	}

	barang.SenderID = sender.ID
	barang.ReceiverID = receiver.ID

	return db.Create(&barang).Error
}

func moveToProcessed(filename string) {
	time.Sleep(1 * time.Second) // Tunggu sebentar untuk memastikan file tidak terkunci

	processedFolder := filepath.Join(filepath.Dir(config.DropFolder), "processed")
	if _, err := os.Stat(processedFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(processedFolder, os.ModePerm); err != nil {
			log.Fatalf("❌ Gagal membuat folder processed: %v", err)
		}
	}

	processedFilePath := filepath.Join(processedFolder, filepath.Base(filename))
	if err := os.Rename(filename, processedFilePath); err != nil {
		fmt.Println("⚠️  Rename gagal, coba metode copy & delete...")
		if err := copyAndDeleteFile(filename, processedFilePath); err != nil {
			log.Fatalf("❌ Gagal memindahkan file ke folder processed: %v", err)
		}
	}
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	sourceFile.Close()
	return os.Remove(src)
}

func sendEmailNotification(toEmails []string, result importResult) error {
	if len(toEmails) == 0 || config.SMTPHost == "" {
		return nil
	}

	subject := "📦 Import Barang " + result.Filename
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Import barang selesai</h3>
				<p>File: %s</p>
				<p>Sukses: %d, Gagal: %d</p>
				<pre>%s</pre>
			</body>
		</html>`,
		result.Filename, result.SuccessCount, result.ErrorCount,
		strings.Join(result.Messages, "\n"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPSender)
	m.SetHeader("To", toEmails...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return d.DialAndSend(m)
}
