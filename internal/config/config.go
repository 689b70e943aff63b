package config

import (
	"log"

	"github.com/joho/godotenv"

	pkgcfg "github.com/Skotchmaster/kitchenpos/pkg/config"
)

type ServiceConfig struct {
	pkgcfg.Config
}

// LoadEnvFile loads path into the environment when it exists.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("notice: %s not loaded: %v. Using system environment variables", path, err)
	}
}

func Load() (ServiceConfig, error) {
	cfg := ServiceConfig{Config: pkgcfg.Load()}

	if err := pkgcfg.Require(
		pkgcfg.NonEmpty("DATABASE_URL", cfg.DatabaseURL),
		pkgcfg.NonEmptyBytes("JWT_SECRET", cfg.JWTAccessSecret),
	); err != nil {
		return ServiceConfig{}, err
	}
	return cfg, nil
}

func (c ServiceConfig) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
