package main

import (
	"os"
	"strconv"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/database"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	numPlayers = 12
	numRounds  = 50
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "hogballs.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"SEED":              strconv.FormatInt(time.Now().UnixNano(), 10),
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	seed, err := strconv.ParseUint(cfg["SEED"], 10, 64)
	if err != nil {
		log.Fatalf("Invalid SEED %q: %s", cfg["SEED"], err)
	}
	faker := gofakeit.New(seed)

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()
	store := roundstore.New(db)

	roster := make([]round.RosterEntry, numPlayers)
	for i := range roster {
		h := handicap.Handicap(faker.Number(-4, 30))
		// Plus handicaps are entered as negative numbers.
		roster[i] = round.RosterEntry{Name: faker.FirstName(), Handicap: strconv.Itoa(h.Value())}
		if err := store.UpsertFavoritePlayer(roster[i].Name, h.Value()); err != nil {
			log.Fatalf("Failed to insert favorite player %s: %s", roster[i].Name, err)
		}
	}
	log.Info("Ensured favorite players exist.", "count", numPlayers)

	c := course.Bloomington()
	startTime := time.Now()
	for i := 0; i < numRounds; i++ {
		s, err := seedRound(faker, roster, c)
		if err != nil {
			log.Fatalf("Failed to play seeded round: %s", err)
		}
		createdAt := time.Now().Add(-time.Duration(faker.Number(0, 365*24)) * time.Hour)
		err = store.SaveRound(&roundstore.StoredRound{
			ID:            uuid.NewString(),
			Course:        c.Name,
			Tee:           s.Tee(),
			StartingStake: s.StartingStake(),
			Status:        s.Status(),
			CurrentHole:   s.CurrentHole(),
			Record:        s.Record(),
			CreatedAt:     createdAt,
		})
		if err != nil {
			log.Fatalf("Failed to save seeded round: %s", err)
		}
	}

	log.Info("Successfully inserted all seeded rounds.", "total", numRounds, "duration", time.Since(startTime))
}

// seedRound plays a random number of holes with a random foursome or fivesome.
func seedRound(faker *gofakeit.Faker, roster []round.RosterEntry, c course.Course) (*round.Session, error) {
	picked := make([]round.RosterEntry, len(roster))
	copy(picked, roster)
	faker.ShuffleAnySlice(picked)
	picked = picked[:faker.Number(4, 5)]

	s, err := round.Setup(picked, c, c.DefaultTee, faker.Number(1, 3))
	if err != nil {
		return nil, err
	}

	holes := faker.Number(0, round.Holes)
	for h := 1; h <= holes; h++ {
		info, _ := c.Hole(h)
		gross := make([]int, len(picked))
		for i := range gross {
			gross[i] = max(1, info.Par+faker.Number(-1, 3))
		}
		if _, err := s.SubmitHoleScores(gross); err != nil {
			return nil, err
		}
		if s.Status() == round.StatusInProgress && faker.Bool() {
			for g := range s.Games() {
				if _, err := s.Press(g); err != nil {
					return nil, err
				}
			}
		}
	}
	return s, nil
}
