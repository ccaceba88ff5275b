package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"reserva-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase inserts a default admin plus demo records so a fresh
// install is usable right away. Each block is idempotent.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@reserva.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Responsibles ----------------
	var respCount int64
	DB.Model(&models.Responsible{}).Count(&respCount)
	if respCount == 0 {
		responsibles := []models.Responsible{
			{ID: uuid.NewString(), Name: "Carlos Santos", Email: "carlos.santos@reserva.local", Phone: "+351 912 345 678", Role: "Gestor de Espaços"},
			{ID: uuid.NewString(), Name: "Ana Oliveira", Email: "ana.oliveira@reserva.local", Phone: "+351 913 222 111", Role: "Coordenadora de Eventos"},
		}
		if err := DB.Create(&responsibles).Error; err != nil {
			log.Printf("warning: failed to seed responsibles: %v", err)
		} else {
			log.Println("Responsibles seeded")
		}
	}

	// ---------------- Spaces ----------------
	var spaceCount int64
	DB.Model(&models.Space{}).Count(&spaceCount)
	var auditorio models.Space
	if spaceCount == 0 {
		spaces := []models.Space{
			{
				ID:          uuid.NewString(),
				Name:        "Auditório Principal",
				Address:     "Rua do Comércio 12, Lisboa",
				Capacity:    100,
				Extras:      "Projetor, sistema de som, palco",
				Description: "Auditório com palco para conferências e espetáculos",
				Active:      true,
			},
			{
				ID:          uuid.NewString(),
				Name:        "Sala de Reunião 01",
				Address:     "Rua do Comércio 12, Lisboa",
				Capacity:    10,
				Extras:      "Ecrã, videoconferência",
				Description: "Sala de reunião para equipas pequenas",
				Active:      true,
			},
		}
		for i := range spaces {
			if err := spaces[i].SetImageList(nil); err != nil {
				log.Printf("warning: failed to init space images: %v", err)
			}
		}
		if err := DB.Create(&spaces).Error; err != nil {
			log.Printf("warning: failed to seed spaces: %v", err)
		} else {
			log.Println("Spaces seeded")
			auditorio = spaces[0]
		}
	} else {
		DB.Where("name = ?", "Auditório Principal").First(&auditorio)
	}

	// ---------------- Customers ----------------
	var custCount int64
	DB.Model(&models.Customer{}).Count(&custCount)
	var scml models.Customer
	if custCount == 0 {
		scml = models.Customer{
			ID:    uuid.NewString(),
			Name:  "Santa Casa da Misericórdia de Lisboa",
			Email: "eventos@scml.pt",
			// Legacy single-contact columns, migrated on first edit.
			Company: "SCML",
			Phone:   "+351 213 235 000",
			Status:  models.EntityActive,
			Notes:   "Cliente institucional",
		}
		if err := scml.SetContactList(nil); err != nil {
			log.Printf("warning: failed to init customer contacts: %v", err)
		}
		if err := scml.SetAttachmentList(nil); err != nil {
			log.Printf("warning: failed to init customer attachments: %v", err)
		}

		assoc := models.Customer{
			ID:     uuid.NewString(),
			Name:   "Associação Cultural do Bairro",
			Email:  "geral@acbairro.pt",
			Status: models.EntityActive,
		}
		if err := assoc.SetContactList([]models.ContactPerson{
			{ID: uuid.NewString(), Name: "Maria Ferreira", RGPDConsent: true, Email: "maria@acbairro.pt", Phone: "+351 914 555 666"},
		}); err != nil {
			log.Printf("warning: failed to set customer contacts: %v", err)
		}
		if err := assoc.SetAttachmentList(nil); err != nil {
			log.Printf("warning: failed to init customer attachments: %v", err)
		}

		customers := []models.Customer{scml, assoc}
		if err := DB.Create(&customers).Error; err != nil {
			log.Printf("warning: failed to seed customers: %v", err)
		} else {
			log.Println("Customers seeded")
		}
	} else {
		DB.Where("name = ?", "Santa Casa da Misericórdia de Lisboa").First(&scml)
	}

	// ---------------- Bookings ----------------
	var bookingCount int64
	DB.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 && auditorio.ID != "" && scml.ID != "" {
		start := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
		booking := models.Booking{
			ID:             "1",
			SpaceID:        auditorio.ID,
			CustomerID:     scml.ID,
			StartDate:      start,
			EndDate:        start.Add(4 * time.Hour),
			Responsible:    "Carlos Santos",
			EventName:      "Conferência Anual",
			Status:         models.StatusConfirmed,
			Type:           models.TypePaid,
			ApprovalStatus: models.ApprovalAuthorized,
			Price:          350,
			Attendees:      80,
		}
		if err := DB.Create(&booking).Error; err != nil {
			log.Printf("warning: failed to seed booking: %v", err)
		} else {
			log.Println("Bookings seeded")
		}
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "reserva_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Responsible{},
		&models.Space{},
		&models.Booking{},
		&models.Plan{},
		&models.Subscription{},
		&models.Payment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
