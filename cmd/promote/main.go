// promote troca o papel de um usuário e, opcionalmente, emite um token de sessão.
// Serve para subir o primeiro admin sem passar pelo provedor de login.
//
//	go run ./cmd/promote -id <openId> -role admin -token
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/config"
	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/internal/infra/auth"
	"github.com/xavierca1/aliar-cursos/internal/infra/database"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

func main() {
	var (
		id     = flag.String("id", "", "openId do usuário")
		role   = flag.String("role", string(entity.RoleAdmin), "papel: user ou admin")
		name   = flag.String("name", "", "nome, usado quando o usuário ainda não existe")
		create = flag.Bool("create", false, "cria o usuário se não existir")
		token  = flag.Bool("token", false, "imprime um token de sessão para o usuário")
	)
	flag.Parse()

	if *id == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*id, entity.Role(*role), *name, *create, *token); err != nil {
		slog.Error("promote falhou", slog.String("id", *id), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(id string, role entity.Role, name string, create, issueToken bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewDBConnection(ctx, cfg.Database.URL, database.PoolConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	uc := usecase.NewAuthUseCase(database.NewUserRepository(db), sessions, cfg.Auth.OwnerID)

	if create {
		u := entity.UserUpsert{ID: id}
		if name != "" {
			u.Name = &name
		}
		if err := uc.UpsertUser(ctx, u); err != nil {
			return err
		}
	}

	if err := uc.Promote(ctx, id, role); err != nil {
		return err
	}
	slog.Info("papel atualizado", slog.String("id", id), slog.String("role", string(role)))

	if !issueToken {
		return nil
	}

	tok, expiresAt, err := sessions.Issue(id)
	if err != nil {
		return fmt.Errorf("emitir token: %w", err)
	}
	fmt.Printf("%s\n# expira em %s (cookie %s)\n", tok, expiresAt.Format(time.RFC3339), cfg.Auth.CookieName)
	return nil
}
