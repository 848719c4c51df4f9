// Herramienta de migraciones de esquema. Usa golang-migrate con los archivos
// SQL versionados de ./migrations.
//
// Uso:
//
//	migrate up                  aplica todas las migraciones pendientes
//	migrate down                revierte la última migración
//	migrate version             muestra la versión actual
//	migrate force <version>     fuerza la versión (cuidado: no ejecuta SQL)
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/remitospro/remitos-api/pkg/config"
	"github.com/remitospro/remitos-api/pkg/logger"
)

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", "migrations", "directorio de migraciones")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping a PostgreSQL")
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("crear driver de migración")
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatal().Err(err).Msg("migrate up")
		}
		logVersion(m, log)

	case "down":
		if err := m.Steps(-1); err != nil && err != migrate.ErrNoChange {
			log.Fatal().Err(err).Msg("migrate down")
		}
		logVersion(m, log)

	case "version":
		logVersion(m, log)

	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("uso: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Str("valor", args[1]).Msg("versión inválida")
		}
		log.Warn().Int("version", version).Msg("forzando versión de migración")
		if err := m.Force(version); err != nil {
			log.Fatal().Err(err).Msg("migrate force")
		}

	default:
		printUsage()
		os.Exit(1)
	}
}

func logVersion(m *migrate.Migrate, log *logger.Logger) {
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		log.Info().Msg("sin migraciones aplicadas")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("leer versión de migración")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión actual")
}

func printUsage() {
	fmt.Println(`Herramienta de migraciones

Uso:
  migrate [-path dir] <up|down|version|force <n>>

Variables de entorno:
  DATABASE_URL o DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE`)
}
