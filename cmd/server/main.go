package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"gamereview_backend/internal/app/di"
	"gamereview_backend/internal/app/router"
	authadapters "gamereview_backend/internal/feature/auth/adapters"
	"gamereview_backend/internal/feature/auth/transport/cookie"
	authhandler "gamereview_backend/internal/feature/auth/transport/handler"
	authmw "gamereview_backend/internal/feature/auth/transport/middleware"
	authusecase "gamereview_backend/internal/feature/auth/usecase"
	gameshandler "gamereview_backend/internal/feature/gamecatalog/transport/handler"
	gamesusecase "gamereview_backend/internal/feature/gamecatalog/usecase"
	reviewadapters "gamereview_backend/internal/feature/review/adapters"
	reviewhandler "gamereview_backend/internal/feature/review/transport/handler"
	reviewusecase "gamereview_backend/internal/feature/review/usecase"
	infradb "gamereview_backend/internal/platform/db"
	jwtmw "gamereview_backend/internal/platform/jwt"
	infraredis "gamereview_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis: sessions and catalog caching degrade to MySQL / pass-through
	// when it is unavailable
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL sessions, no catalog cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token signing configuration is injected once here; nothing reads the
	// secret from the environment at request time.
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(jwtCfg)
	tokenVerifier := jwtmw.NewVerifier(jwtCfg)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	reviewRepo := reviewadapters.NewReviewMySQL(db)
	catalogRepo := di.NewCatalogRepository(rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen, sessionTTL())
	reviewUC := reviewusecase.NewReviewUsecase(reviewRepo)
	catalogUC := gamesusecase.NewCatalogUsecase(catalogRepo)

	// Handler
	cookieCfg := cookie.LoadConfig()
	authH := authhandler.NewAuthHandler(authUC, cookieCfg)
	reviewH := reviewhandler.NewReviewHandler(reviewUC)
	gamesH := gameshandler.NewGamesHandler(catalogUC)

	authRequired := authmw.AuthRequired(sessionRepo, userRepo, tokenVerifier, cookieCfg)

	r := router.NewRouter(authH, reviewH, gamesH, authRequired)

	// Expired MySQL sessions pile up without this; Redis expires its own.
	go cleanupSessions(sessionRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// sessionTTL reads SESSION_TTL (e.g. "1h"), defaulting to one hour.
func sessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[WARN] invalid SESSION_TTL %q, using default", v)
	}
	return time.Hour
}

// cleanupSessions periodically deletes expired sessions from the store.
func cleanupSessions(sessions authusecase.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := sessions.DeleteExpired(ctx)
		cancel()
		if err != nil {
			slog.Warn("session cleanup failed", "error", err)
			continue
		}
		if n > 0 {
			slog.Info("expired sessions deleted", "count", n)
		}
	}
}
