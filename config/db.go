package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"dormitory-backend/models"
	"dormitory-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

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

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
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
	dbName := envOrDefault("DB_NAME", "dormitory_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// MigrateModels creates every table the service uses, including the four
// table-scoped room specification catalogs that share one model.
func MigrateModels(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Floor{},
		&models.RoomCategory{},
		&models.PaidItem{},
		&models.Person{},
		&models.Room{},
		&models.RoomDetails{},
		&models.RoomBooking{},
	); err != nil {
		return err
	}

	for _, table := range []string{
		models.TableCommonFeatures,
		models.TableFurnitures,
		models.TableBeds,
		models.TableBathrooms,
	} {
		if err := db.Table(table).AutoMigrate(&models.RoomSpecItem{}); err != nil {
			return err
		}
	}
	return nil
}

// SeedDatabase makes sure at least one login exists so the admin panel is
// reachable on a fresh database.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	email := envOrDefault("ADMIN_EMAIL", "admin@dormitory.local")
	password := envOrDefault("ADMIN_PASSWORD", "admin123")

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}

	user := models.User{
		Name:      "Admin User",
		Email:     email,
		Password:  hash,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin seeded")
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
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
