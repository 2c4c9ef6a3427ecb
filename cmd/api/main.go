package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"unilocal/internal/auth"
	"unilocal/internal/db"
	"unilocal/internal/domain/storage"
	"unilocal/internal/images"
	"unilocal/internal/mailer"
	"unilocal/internal/notifications"
	"unilocal/internal/ratelimiter"
	"unilocal/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a console zap logger with colored levels.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func envInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return n
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

var version = "1.0.0"

//	@title			UniLocal API
//	@description	API for UniLocal, a directory of local places with reviews and moderation.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// A missing .env is fine in containers where the environment is injected.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	useSSL, _ := strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))

	cfg := config{
		addr:        envOr("ADDR", ":8080"),
		env:         envOr("ENV", "development"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		apiURL:      os.Getenv("EXTERNAL_URL"),
		db: dbConfig{
			addr:         os.Getenv("DB_ADDR"),
			maxOpenConns: envInt("DB_MAX_OPEN_CONNS", 30),
			maxIdleTime:  envOr("DB_MAX_IDLE_TIME", "15m"),
		},
		redis: redisConfig{
			addr:     envOr("REDIS_ADDR", "localhost:6379"),
			password: os.Getenv("REDIS_PASSWORD"),
			db:       envInt("REDIS_DB", 0),
		},
		mail: mailConfig{
			resetExp:  time.Hour, // 1 hour
			fromEmail: os.Getenv("MAIL_FROM"),
			smtp: smtpConfig{
				host:     os.Getenv("SMTP_HOST"),
				port:     envInt("SMTP_PORT", 587),
				username: os.Getenv("SMTP_USERNAME"),
				password: os.Getenv("SMTP_PASSWORD"),
			},
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				refreshSecret:   os.Getenv("AUTH_TOKEN_REFRESH_SECRET"),
				secret:          os.Getenv("AUTH_TOKEN_SECRET"),
				accessTokenExp:  time.Hour * 24 * 3, // 3 days
				refreshTokenExp: time.Hour * 24 * 9, // 9 days
				iss:             "unilocal",
			},
		},
		images: imagesConfig{
			backend:       envOr("IMAGE_BACKEND", "cloudinary"),
			cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
			minio: minioConfig{
				endpoint:  os.Getenv("MINIO_ENDPOINT"),
				accessKey: os.Getenv("MINIO_ACCESS_KEY"),
				secretKey: os.Getenv("MINIO_SECRET_KEY"),
				bucket:    envOr("MINIO_BUCKET", "unilocal"),
				useSSL:    useSSL,
			},
		},
		expo: expoConfig{
			accessToken: os.Getenv("EXPO_ACCESS_TOKEN"),
		},
		turnstile: turnstileConfig{
			secretKey:        os.Getenv("TURNSTILE_SECRET_KEY"),
			expectedHostname: os.Getenv("TURNSTILE_EXPECTED_HOSTNAME"),
			verifyURL:        envOr("TURNSTILE_VERIFY_URL", defaultTurnstileVerifyURL),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	pool, err := db.New(cfg.db.addr, int32(cfg.db.maxOpenConns), cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	rdb, err := db.NewRedis(cfg.redis.addr, cfg.redis.password, cfg.redis.db)
	if err != nil {
		logger.Fatal(err)
	}
	defer rdb.Close()
	logger.Info("redis connection established")

	store := storage.NewContainer(pool, rdb)

	imageStore, err := newImageStore(cfg.images)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("image storage ready", "backend", cfg.images.backend)

	smtpMailer, err := mailer.NewSMTPMailer(
		cfg.mail.smtp.host,
		cfg.mail.smtp.port,
		cfg.mail.smtp.username,
		cfg.mail.smtp.password,
		cfg.mail.fromEmail,
	)
	if err != nil {
		logger.Fatal(err)
	}

	// Push notifications
	expo := notifications.NewExpoAdapter(cfg.expo.accessToken)
	notifier := notifications.NewModerationNotifier(expo, store.PushTokens)

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.accessTokenExp,
		cfg.auth.token.refreshTokenExp,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		turnstile:     newTurnstileClient(),

		accounts: services.NewAccountService(
			store.Users, store.ResetTokens, smtpMailer, logger,
			cfg.mail.resetExp, cfg.frontendURL,
		),
		places:     services.NewPlaceService(store.Places, imageStore, logger),
		reviews:    services.NewReviewService(store.Reviews, store.Places, logger),
		favorites:  services.NewFavoriteService(store.Users, store.Places, logger),
		moderation: services.NewModerationService(store.Places, notifier, logger),
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]int32{
			"total_conns":    s.TotalConns(),
			"idle_conns":     s.IdleConns(),
			"acquired_conns": s.AcquiredConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	jobs, err := app.startBackgroundJobs()
	if err != nil {
		logger.Fatal(err)
	}
	defer jobs.Stop()

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}

func newImageStore(cfg imagesConfig) (images.Store, error) {
	switch cfg.backend {
	case "minio":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return images.NewMinIOStore(ctx, images.MinIOConfig{
			Endpoint:  cfg.minio.endpoint,
			AccessKey: cfg.minio.accessKey,
			SecretKey: cfg.minio.secretKey,
			Bucket:    cfg.minio.bucket,
			UseSSL:    cfg.minio.useSSL,
		})
	case "cloudinary", "":
		return images.NewCloudinaryStore(cfg.cloudinaryURL)
	default:
		return nil, fmt.Errorf("unknown IMAGE_BACKEND %q", cfg.backend)
	}
}
