package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/clients/dnd5e"
	"github.com/hearthforge/sheet-engine/internal/config"
	"github.com/hearthforge/sheet-engine/internal/repositories/sheets"
	"github.com/hearthforge/sheet-engine/internal/services"
	sheetservice "github.com/hearthforge/sheet-engine/internal/services/sheet"
)

var showCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Derive and print one character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		sheet, err := svc.GetSheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printSheet(sheet)
		return nil
	},
}

// buildRepository wires the Redis repository from the environment.
// Redis is required for the CLI; the in-memory repository only makes
// sense in-process.
func buildRepository() (sheets.Repository, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return sheets.NewRedisRepository(&sheets.RedisRepoConfig{Client: redisClient})
}

func buildService() (sheetservice.Service, error) {
	repo, err := buildRepository()
	if err != nil {
		return nil, err
	}

	apiClient, err := dnd5e.New(&dnd5e.Config{})
	if err != nil {
		return nil, err
	}

	provider := services.NewProvider(&services.ProviderConfig{
		DNDClient:       apiClient,
		SheetRepository: repo,
	})
	return provider.SheetService, nil
}

func printSheet(s *sheetservice.Sheet) {
	fmt.Printf("%s (%s)\n\n", s.Name, s.ID)

	for _, ability := range character.Abilities {
		v := s.Abilities[ability]
		fmt.Printf("  %-13s %2d (%+d)\n", ability, v.Score, v.Modifier)
	}

	fmt.Printf("\n  AC %d  Initiative %+d  Max HP %d  Passive Perception %d  Proficiency %+d\n",
		s.AC, s.Initiative, s.MaxHP, s.PassivePerception, s.Proficiency)

	printNamed("Skills", s.Skills)
	printNamed("Saves", s.Saves)
	printNamed("Speeds", s.Speeds)

	if len(s.Senses) > 0 {
		fmt.Println("\nSenses:")
		for _, sense := range s.Senses {
			fmt.Printf("  %s %d ft\n", sense.Type, sense.Range)
		}
	}

	if len(s.Sources) > 0 {
		fmt.Println("\nBonus sources:")
		keys := make([]string, 0, len(s.Sources))
		for key := range s.Sources {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, b := range s.Sources[key] {
				fmt.Printf("  %-24s %+d (%s, %s)\n", key, b.Value, b.Source.Label, b.Type)
			}
		}
	}

	for _, d := range s.Diagnostics {
		log.Printf("diagnostic: %s %s (%s)", d.Kind, d.BenefitType, d.Detail)
	}
}

func printNamed(title string, values map[string]int) {
	if len(values) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %+d\n", name, values[name])
	}
}
