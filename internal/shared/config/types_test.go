package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "explicit dsn wins",
			cfg:  DatabaseConfig{Driver: DriverPostgres, DSN: "postgres://x@y/z", Host: "ignored"},
			want: "postgres://x@y/z",
		},
		{
			name: "mysql",
			cfg:  DatabaseConfig{Driver: DriverMySQL, Username: "root", Password: "pw", Host: "db", Port: 3306, Database: "tickets"},
			want: "root:pw@tcp(db:3306)/tickets?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres with sslmode",
			cfg:  DatabaseConfig{Driver: DriverPostgres, Username: "app", Password: "s3cret", Host: "pg", Port: 5432, Database: "tickets", SSLMode: "disable"},
			want: "postgres://app:s3cret@pg:5432/tickets?sslmode=disable",
		},
		{
			name: "sqlite uses the database path",
			cfg:  DatabaseConfig{Driver: DriverSQLite, Database: "/tmp/tickets.db"},
			want: "/tmp/tickets.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetDSN())
		})
	}
}

func TestServerConfig_GetAddr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 3001}
	assert.Equal(t, "0.0.0.0:3001", s.GetAddr())
}
