package postgresql

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("não foi possível criar o pool de conexões: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("não foi possível conectar ao PostgreSQL: %v", err)
	}
	return pool
}

// RunMigrations aplica as migrações SQL do diretório ./migrations via goose,
// reutilizando o pool pgx através do driver stdlib.
func RunMigrations(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
