package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func NewDB(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// gen_random_uuid() nos defaults das chaves
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Warn().Err(err).Msg("pgcrypto extension not created")
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Barbershop{},
		&models.Appointment{},
		&models.Favorite{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if err := applySlotLock(db, cfg.BookingSlotLock); err != nil {
		log.Fatal().Err(err).Msg("failed to apply slot lock")
	}

	return db
}

// applySlotLock liga ou desliga o índice que impede duas reservas
// ativas no mesmo profissional, dia e horário.
func applySlotLock(db *gorm.DB, enabled bool) error {
	if !enabled {
		return db.Exec(`DROP INDEX IF EXISTS ux_appointments_active_slot`).Error
	}
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_active_slot
        ON user_appointments (barbershop_id, professional_id, "date", "time")
        WHERE status <> 'canceled'
    `).Error
}

func NewRedis(cfg *config.Config, log *logger.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect redis")
	}
	return rdb
}
