// Package store is the persistence layer: typed create/read/list queries per entity and
// the generic existence, patch and cascading delete operations that work off the
// entity graph below.
package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/domain/library"
	"videogame-catalog/internal/domain/users"
)

type Kind string

const (
	KindUser        Kind = "user"
	KindVideoGame   Kind = "video game"
	KindPlatform    Kind = "platform"
	KindPublication Kind = "publication"
	KindGame        Kind = "game"
	KindGenre       Kind = "genre"
	KindCategory    Kind = "category"
)

// Key selects rows by column value.
type Key map[string]any

// Ref names a row a write depends on. When the write fails on a foreign key, refs are
// probed in order and the first missing one is reported.
type Ref struct {
	Kind Kind
	Key  Key
}

type entity struct {
	model    func() any
	pk       []string
	children []edge
}

// edge is a foreign key from child rows to their parent's primary key.
type edge struct {
	child  Kind
	column string
}

var entities = map[Kind]entity{
	KindUser: {
		model:    func() any { return &users.User{} },
		pk:       []string{"id"},
		children: []edge{{KindGame, "user_id"}},
	},
	KindVideoGame: {
		model:    func() any { return &catalog.VideoGame{} },
		pk:       []string{"id"},
		children: []edge{{KindPublication, "video_game_id"}, {KindCategory, "video_game_id"}},
	},
	KindPlatform: {
		model:    func() any { return &catalog.Platform{} },
		pk:       []string{"code"},
		children: []edge{{KindPublication, "platform_code"}},
	},
	KindPublication: {
		model:    func() any { return &catalog.Publication{} },
		pk:       []string{"id"},
		children: []edge{{KindGame, "publication_id"}},
	},
	KindGame: {
		model: func() any { return &library.Game{} },
		pk:    []string{"user_id", "publication_id"},
	},
	KindGenre: {
		model:    func() any { return &catalog.Genre{} },
		pk:       []string{"id"},
		children: []edge{{KindCategory, "genre_id"}},
	},
	KindCategory: {
		model: func() any { return &catalog.Category{} },
		pk:    []string{"genre_id", "video_game_id"},
	},
}

// StepHook runs inside the delete transaction after each dependent row is removed.
// Returning an error rolls the whole delete back.
type StepHook func(kind Kind, key Key) error

type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
	step   StepHook
	inTx   bool
}

type Option func(*Store)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithStepHook(hook StepHook) Option {
	return func(s *Store) { s.step = hook }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transaction runs fn against a store bound to one database transaction. Reference
// failures inside fn are resolved once the transaction has rolled back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, logger: s.logger, step: s.step, inTx: true})
	})
	var pending *unresolvedReference
	if errors.As(err, &pending) {
		return s.resolveReference(ctx, pending)
	}
	return err
}

func lookup(kind Kind) entity {
	e, ok := entities[kind]
	if !ok {
		panic("store: unknown kind " + string(kind))
	}
	return e
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
