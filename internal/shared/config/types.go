// Package config defines the typed configuration structures shared across layers.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string   `mapstructure:"host" binding:"required"`
	Port        int      `mapstructure:"port" binding:"required,gte=1,lte=65535"`
	Mode        string   `mapstructure:"mode" binding:"omitempty,oneof=debug release test"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host" binding:"required"`
	Port            int    `mapstructure:"port" binding:"required,gte=1,lte=65535"`
	Username        string `mapstructure:"username" binding:"required"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" binding:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWT      JWTConfig      `mapstructure:"jwt"`
	Password PasswordConfig `mapstructure:"password"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret   string `mapstructure:"secret" binding:"required"`
	ExpHours int    `mapstructure:"exp_hours" binding:"required,gt=0"`
}

// PasswordConfig holds password hashing settings.
type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" binding:"omitempty,gte=4,lte=31"`
}
