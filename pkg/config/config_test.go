package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employee-directory-api/pkg/config"
)

// clearEnv neutraliza variables del entorno del runner; viper trata el valor vacío como no definido.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_NAME", "LOG_LEVEL", "DATABASE_URL", "MONGO_URI", "DB_NAME",
		"JWT_SECRET", "JWT_EXPIRATION_MINUTES", "JWT_ISSUER", "HTTP_HOST", "PORT", "GRAPHQL_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 4000, cfg.HTTP.Port, "el puerto por defecto es 4000")
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, "/graphql", cfg.HTTP.GraphQLPath)
	assert.Equal(t, 60, cfg.JWT.Expiration, "el token expira en una hora por defecto")
	assert.Equal(t, "mongodb://localhost:27017", cfg.DB.URL)

	driver, err := cfg.DB.Driver()
	require.NoError(t, err)
	assert.Equal(t, config.DriverMongo, driver)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://user:pw@db:5432/directory?sslmode=disable")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	driver, err := cfg.DB.Driver()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, driver)
}

func TestLoad_MongoURIHeredado(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("MONGO_URI", "mongodb+srv://cluster.example.net/app")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb+srv://cluster.example.net/app", cfg.DB.URL)
}

func TestLoad_SinJWTSecret_Falla(t *testing.T) {
	clearEnv(t)

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
}

func TestLoad_EsquemaNoSoportado_Falla(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("DATABASE_URL", "mysql://root@localhost/app")

	_, err := config.Load()
	assert.Error(t, err)
}
