package infrastructure

import (
	"strings"

	"Garagem/config"
	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	"Garagem/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(openDialector(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("dsn", cfg.Database.DSN).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("dsn", cfg.Database.DSN).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// openDialector escolhe o driver pelo formato do DSN: URLs e strings
// chave=valor vão para o Postgres, qualquer outra coisa é tratada como
// caminho de arquivo SQLite.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&vehicle.Vehicle{},
		&maintenance.MaintenanceItem{},
		&maintenance.MaintenanceLog{},
		&general.GeneralRecord{},
		&attachment.Attachment{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *vehicle.Vehicle:
		return "Vehicle"
	case *maintenance.MaintenanceItem:
		return "MaintenanceItem"
	case *maintenance.MaintenanceLog:
		return "MaintenanceLog"
	case *general.GeneralRecord:
		return "GeneralRecord"
	case *attachment.Attachment:
		return "Attachment"
	default:
		return "Unknown"
	}
}
