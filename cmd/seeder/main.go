// Command seeder loads a deterministic sample data set into the store so a
// local instance has something to search against.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hireloop/peoplesearch/internal/config"
	"github.com/hireloop/peoplesearch/internal/db"
	dbRedis "github.com/hireloop/peoplesearch/internal/db/redis"
	"github.com/hireloop/peoplesearch/internal/domain/person"
	logpkg "github.com/hireloop/peoplesearch/internal/logger"
	recordrepo "github.com/hireloop/peoplesearch/internal/repository/record"
)

// uuidNamespace keeps seeded IDs stable across runs so re-seeding
// overwrites instead of duplicating.
var uuidNamespace = uuid.MustParse("8a9c2f1e-4b3d-4c5e-9f6a-7b8c9d0e1f2a")

type seedPerson struct {
	firstName       string
	lastName        string
	email           string
	phoneNumber     string
	roleID          int
	location        string
	totalExperience float64
	skills          []string
}

var seedUsers = []seedPerson{
	{"John", "Doe", "john.doe@hireloop.dev", "+1 (555) 010-0001", 1, "", 0, nil},
	{"Jane", "Smith", "jane.smith@hireloop.dev", "+1 (555) 010-0002", 2, "", 0, nil},
	{"Maria", "Garcia", "maria.garcia@hireloop.dev", "+44 20 5550 0003", 2, "", 0, nil},
	{"Wei", "Chen", "wei.chen@hireloop.dev", "+86 10 5550 0004", 3, "", 0, nil},
	{"Aisha", "Khan", "aisha.khan@hireloop.dev", "+91 11 5550 0005", 3, "", 0, nil},
	{"Olivier", "Martin", "olivier.martin@hireloop.dev", "+33 1 5550 0006", 2, "", 0, nil},
}

var seedCandidates = []seedPerson{
	{"Lucas", "Meyer", "lucas.meyer@example.com", "+49 30 5550 0101", 0, "Berlin", 4.5,
		[]string{"go", "redis", "kubernetes"}},
	{"Emma", "Fischer", "emma.fischer@example.com", "+49 89 5550 0102", 0, "Munich", 7.0,
		[]string{"python", "django"}},
	{"Noah", "Johansson", "noah.johansson@example.com", "+46 8 5550 0103", 0, "Stockholm", 2.0,
		[]string{"typescript", "react"}},
	{"Sofia", "Rossi", "sofia.rossi@example.com", "+39 02 5550 0104", 0, "Milan", 9.5,
		[]string{"java", "spring", "postgres"}},
	{"Liam", "O'Brien", "liam.obrien@example.com", "+353 1 5550 0105", 0, "Dublin", 5.5,
		[]string{"go", "grpc"}},
	{"Yuki", "Tanaka", "yuki.tanaka@example.com", "+81 3 5550 0106", 0, "Tokyo", 3.0,
		[]string{"rust", "wasm"}},
	{"Ana", "Silva", "ana.silva@example.com", "+55 11 5550 0107", 0, "Sao Paulo", 6.0,
		[]string{"python", "ml"}},
	{"David", "Cohen", "david.cohen@example.com", "+972 3 5550 0108", 0, "Tel Aviv", 8.0,
		[]string{"go", "redis", "terraform"}},
}

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	if err := seedCollection(ctx, store, cfg.Storage.KeyPrefix, person.CollectionUsers, seedUsers); err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}
	if err := seedCollection(ctx, store, cfg.Storage.KeyPrefix, person.CollectionCandidates, seedCandidates); err != nil {
		logger.Fatal("Failed to seed candidates", zap.Error(err))
	}

	logger.Info("Seed complete",
		zap.Int("users", len(seedUsers)),
		zap.Int("candidates", len(seedCandidates)),
	)
}

func seedCollection(
	ctx context.Context, store db.Store, keyPrefix, collection string, people []seedPerson,
) error {
	createdAt := time.Now().UnixMilli()

	items := make([]db.HashSetItem, 0, len(people))
	for _, p := range people {
		id := uuid.NewSHA1(uuidNamespace, []byte(collection+":"+p.email)).String()
		rec := person.Reconstruct(
			id, p.firstName, p.lastName, p.email, p.phoneNumber,
			p.roleID, p.location, p.totalExperience, p.skills, createdAt,
		)
		items = append(items, db.HashSetItem{
			Key:    keyPrefix + collection + ":" + id,
			Fields: recordrepo.BuildHashFields(&rec),
		})
	}

	return store.HSetMulti(ctx, items)
}
