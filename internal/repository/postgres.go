package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/pkg/logger"
)

type PostgresDB struct {
	logger *logger.Logger

	Conn *gorm.DB
}

func NewPostgresDB(user, password, dbname, host string, port int, logger *logger.Logger) (models.Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	// Configure GORM logger to suppress "record not found" messages
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %s", err)
	}

	if err := db.AutoMigrate(&models.GatewayRecord{}, &models.StatusCheck{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %s", err)
	}
	logger.Info("Successfully connected to PostgreSQL!")
	return &PostgresDB{Conn: db, logger: logger}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %s", err)
	}
	return sqlDB.Close()
}

// GetSettings assembles the full settings document from the per-gateway
// rows. Gateways that were never written come back as disabled defaults.
func (db *PostgresDB) GetSettings() (*models.PaymentSettings, error) {
	var records []models.GatewayRecord
	if err := db.Conn.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get gateway records: %s", err)
	}

	settings := &models.PaymentSettings{
		Stripe:     models.Gateway{Data: map[string]string{}},
		SSLCommerz: models.Gateway{Data: map[string]string{}},
		PayPal:     models.Gateway{Data: map[string]string{}},
	}
	for _, record := range records {
		data := map[string]string{}
		if record.Data != "" {
			if err := json.Unmarshal([]byte(record.Data), &data); err != nil {
				db.logger.Warn("Corrupt gateway data, treating as empty ", "gateway ", record.Key, "error ", err)
				data = map[string]string{}
			}
		}
		settings.SetGateway(record.Key, models.Gateway{Enabled: record.Enabled, Data: data})
		if record.UpdatedAt > settings.UpdatedAt {
			settings.UpdatedAt = record.UpdatedAt
		}
	}

	return settings, nil
}

// UpdateSettings replaces the whole {enabled, data} node for each gateway
// named in the update and returns the resulting full document.
func (db *PostgresDB) UpdateSettings(update *models.SettingsUpdate) (*models.PaymentSettings, error) {
	now := time.Now().Unix()
	for _, key := range models.GatewayKeys {
		node := update.Gateway(key)
		if node == nil {
			continue
		}

		data, err := json.Marshal(node.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize gateway data: %s", err)
		}

		record := models.GatewayRecord{
			Key:       key,
			Enabled:   node.Enabled,
			Data:      string(data),
			UpdatedAt: now,
		}
		if err := db.Conn.Save(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to save gateway record: %s", err)
		}
	}

	return db.GetSettings()
}

func (db *PostgresDB) AddStatusCheck(check *models.StatusCheck) error {
	if err := db.Conn.Create(check).Error; err != nil {
		return fmt.Errorf("failed to create status check: %s", err)
	}

	return nil
}

func (db *PostgresDB) ListStatusChecks() ([]*models.StatusCheck, error) {
	var checks []*models.StatusCheck
	if err := db.Conn.Order("timestamp").Limit(1000).Find(&checks).Error; err != nil {
		return nil, fmt.Errorf("failed to list status checks: %s", err)
	}

	return checks, nil
}
