package postgres

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerrors "github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/infrastructure/config"
)

// NewDatabaseConnection cria uma nova conexão com o PostgreSQL
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	// GORM config
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
		// Traduz erros do driver (ex: violação de unicidade vira gorm.ErrDuplicatedKey)
		TranslateError: true,
	}

	// Conectar
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	// Ping para verificar conexão
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	return db, nil
}

// Migrate cria/atualiza o schema de todas as tabelas
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CompanyModel{},
		&RepresentanteModel{},
		&FlowModel{},
		&NoteModel{},
		&ParecerModel{},
		&TaskModel{},
		&NotificationModel{},
	)
}

// translateError converte erros do GORM para a taxonomia do domínio
func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", domainerrors.ErrConstraintConflict, op)
	}
	return domainerrors.NewRemoteStoreError(op, err)
}
