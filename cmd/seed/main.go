package main

import (
	"context"
	"flag"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/carelane/clinic-api/pkg/hash"
	"github.com/carelane/clinic-api/pkg/logger"

	"github.com/carelane/clinic-api/internal/config"
	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/repository/postgres"
	doctorService "github.com/carelane/clinic-api/internal/service/doctor"
)

// Doctors are created out-of-band; this command is the admin action that
// seeds them.
func main() {
	var (
		name     = flag.String("name", "", "doctor display name")
		email    = flag.String("email", "", "doctor login email")
		gender   = flag.Int("gender", 0, "gender code")
		password = flag.String("password", "", "initial password")
	)
	flag.Parse()

	logger.Setup(nil)

	req := &model.CreateDoctorRequest{
		Name:     *name,
		Email:    *email,
		Gender:   *gender,
		Password: *password,
	}
	// Same tag name gin's binding layer uses, so the request struct
	// carries a single set of rules.
	v := validator.New()
	v.SetTagName("binding")
	if err := v.Struct(req); err != nil {
		log.Fatal().Err(err).Msg("invalid doctor details")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	svc := doctorService.NewService(postgres.NewDoctorRepository(db), hash.NewSHA256Hasher())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doctor, err := svc.CreateDoctor(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create doctor")
	}

	log.Info().
		Str("id", doctor.ID.String()).
		Str("email", doctor.Email).
		Msg("doctor created")
}
