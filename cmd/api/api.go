package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unilocal/docs" //this is required to generate swagger docs
	"unilocal/internal/auth"
	"unilocal/internal/domain/storage"
	"unilocal/internal/ratelimiter"
	"unilocal/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-resty/resty/v2"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	turnstile     *resty.Client

	accounts   *services.AccountService
	places     *services.PlaceService
	reviews    *services.ReviewService
	favorites  *services.FavoriteService
	moderation *services.ModerationService
}

type config struct {
	addr        string
	db          dbConfig
	redis       redisConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	images      imagesConfig
	expo        expoConfig
	turnstile   turnstileConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	resetExp  time.Duration
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

type redisConfig struct {
	addr     string
	password string
	db       int
}

type imagesConfig struct {
	backend       string
	cloudinaryURL string
	minio         minioConfig
}

type minioConfig struct {
	endpoint  string
	accessKey string
	secretKey string
	bucket    string
	useSSL    bool
}

type expoConfig struct {
	accessToken string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
			r.Post("/password-reset", app.requestResetPasswordHandler)
			r.Post("/password-reset/confirm", app.resetPasswordHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/me", app.getCurrentUserHandler)
			r.Put("/me", app.updateProfileHandler)
			r.Post("/logout", app.logoutHandler)
			r.Post("/push-tokens", app.savePushTokenHandler)
			r.Delete("/push-tokens", app.removePushTokenHandler)

			r.Route("/me/favorites", func(r chi.Router) {
				r.Get("/", app.listFavoritesHandler)
				r.Put("/{placeID}", app.addFavoriteHandler)
				r.Delete("/{placeID}", app.removeFavoriteHandler)
				r.Post("/{placeID}/toggle", app.toggleFavoriteHandler)
			})
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/", app.listPlacesHandler)
			r.With(app.AuthTokenMiddleware).Post("/", app.createPlaceHandler)
			r.With(app.AuthTokenMiddleware).Get("/mine", app.listMyPlacesHandler)

			r.Route("/{placeID}", func(r chi.Router) {
				r.Get("/", app.getPlaceHandler)
				r.Get("/reviews", app.listReviewsHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.AuthTokenMiddleware)
					r.Delete("/", app.deletePlaceHandler)
					r.Post("/photos", app.addPlacePhotoHandler)
					r.Post("/reviews", app.createReviewHandler)
					r.Put("/reviews/{reviewID}/reply", app.replyReviewHandler)
				})
			})
		})

		r.With(app.AuthTokenMiddleware).Post("/images", app.uploadImageHandler)

		r.Route("/moderation", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireModerator)
			r.Get("/places", app.listModerationPlacesHandler)
			r.Get("/places/approved", app.listApprovedByMeHandler)
			r.Post("/places/{placeID}/approve", app.approvePlaceHandler)
			r.Post("/places/{placeID}/reject", app.rejectPlaceHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
