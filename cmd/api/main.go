package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/aliar-cursos/internal/config"
	"github.com/xavierca1/aliar-cursos/internal/infra/auth"
	"github.com/xavierca1/aliar-cursos/internal/infra/database"
	httpapi "github.com/xavierca1/aliar-cursos/internal/infra/http"
	"github.com/xavierca1/aliar-cursos/internal/infra/http/handlers"
	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/aliar-cursos/internal/infra/integration/kommo"
	"github.com/xavierca1/aliar-cursos/internal/infra/mail"
	"github.com/xavierca1/aliar-cursos/internal/infra/notification"
	"github.com/xavierca1/aliar-cursos/internal/infra/queue"
	"github.com/xavierca1/aliar-cursos/internal/infra/telegram"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		slog.Error("falha ao iniciar a API", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.School.Location()
	if err != nil {
		return err
	}

	// 1. Banco
	db, err := database.NewDBConnection(ctx, cfg.Database.URL, database.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
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

	leadRepo := database.NewLeadRepository(db)
	trialRepo := database.NewTrialClassRepository(db)
	feedbackRepo := database.NewFeedbackRepository(db)
	curriculoRepo := database.NewCurriculoRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Rate limit: Redis se configurado, senão em memória
	proxies, err := cfg.RateLimit.Proxies()
	if err != nil {
		return err
	}

	var (
		rdb     *redis.Client
		limiter middleware.Limiter
	)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("REDIS_URL inválida: %w", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)
		slog.Info("rate limit via Redis")
	} else {
		mem := middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		go mem.Cleanup(ctx, cfg.RateLimit.Window)
		limiter = mem
		slog.Info("rate limit em memória")
	}

	// 3. Canais de notificação
	sink := notification.NewSink(notificationChannels(cfg, loc)...)
	slog.Info("canais de notificação", slog.Any("channels", sink.Channels()))

	// 4. Despacho: fila se houver broker, senão goroutine
	var (
		rabbitConn *amqp.Connection
		notifier   usecase.LeadNotifier
	)
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			return err
		}
		defer rabbit.Close()
		rabbitConn = rabbit.Conn

		consumerCh, err := rabbit.NewConsumerChannel(cfg.RabbitMQ.Prefetch)
		if err != nil {
			return err
		}
		worker := queue.NewWorker(consumerCh, sink)
		go func() {
			if err := worker.Start(ctx, queue.QueueName); err != nil {
				slog.Error("worker de notificações parou", slog.String("error", err.Error()))
			}
		}()

		notifier = queue.NewProducer(rabbit.Ch)
	} else {
		dispatcher := notification.NewAsyncDispatcher(sink, cfg.Notification.Timeout)
		defer dispatcher.Wait()
		notifier = dispatcher
	}

	// 5. Sessão e usecases
	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	leadUC := usecase.NewLeadUseCase(leadRepo, notifier)
	trialUC := usecase.NewTrialClassUseCase(trialRepo, loc)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo)
	curriculoUC := usecase.NewCurriculoUseCase(curriculoRepo)
	authUC := usecase.NewAuthUseCase(userRepo, sessions, cfg.Auth.OwnerID)

	// 6. Router
	router := httpapi.NewRouter(httpapi.RouterDependencies{
		Leads:            handlers.NewLeadHandler(leadUC, loc),
		TrialClasses:     handlers.NewTrialClassHandler(trialUC),
		Feedbacks:        handlers.NewFeedbackHandler(feedbackUC),
		Curriculos:       handlers.NewCurriculoHandler(curriculoUC),
		Auth:             handlers.NewAuthHandler(authUC, cfg.Auth.CookieName, cfg.Auth.SecureCookie),
		Health:           handlers.NewHealthHandler(db, rabbitConn, rdb, cfg.Server.Version),
		Sessions:         sessions,
		Users:            userRepo,
		CookieName:       cfg.Auth.CookieName,
		Limiter:          limiter,
		InternalKey:      cfg.Auth.InternalKey,
		TrustedProxies:   proxies,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API Aliar Cursos rodando", slog.String("addr", srv.Addr), slog.String("version", cfg.Server.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// notificationChannels monta os canais ativos. Canal que falha ao subir só é logado.
func notificationChannels(cfg *config.Config, loc *time.Location) []notification.Channel {
	var channels []notification.Channel

	if cfg.Notification.Enabled() {
		channels = append(channels, notification.NewHTTPClient(
			cfg.Notification.Endpoint, cfg.Notification.APIKey, cfg.Notification.Timeout,
		))
	}

	if cfg.Mail.Enabled() {
		channels = append(channels, mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
			cfg.Mail.From, cfg.Mail.StaffTo, cfg.Mail.DashboardURL, loc,
		))
	}

	if cfg.Telegram.Enabled() {
		tg, err := telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, loc)
		if err != nil {
			slog.Warn("telegram desativado", slog.String("error", err.Error()))
		} else {
			channels = append(channels, tg)
		}
	}

	if cfg.Kommo.Enabled() {
		channels = append(channels, kommo.NewClient(
			cfg.Kommo.BaseURL, cfg.Kommo.Token, cfg.Kommo.StatusID, cfg.Kommo.Timeout,
		))
	}

	if len(channels) == 0 {
		slog.Warn("nenhum canal de notificação configurado; leads novos não geram aviso")
	}
	return channels
}
