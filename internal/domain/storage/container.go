package storage

import (
	"unilocal/internal/domain/passwordreset"
	"unilocal/internal/domain/places"
	"unilocal/internal/domain/pushtokens"
	"unilocal/internal/domain/reviews"
	"unilocal/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	Users       users.Store
	Places      places.Store
	Reviews     reviews.Store
	PushTokens  pushtokens.Store
	ResetTokens passwordreset.Store
}

func NewContainer(db *pgxpool.Pool, rdb *redis.Client) *Container {
	return &Container{
		Users:       users.NewRepository(db),
		Places:      places.NewRepository(db),
		Reviews:     reviews.NewRepository(db),
		PushTokens:  pushtokens.NewRepository(db),
		ResetTokens: passwordreset.NewRedisStore(rdb),
	}
}
