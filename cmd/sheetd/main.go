// Command sheetd is the character sheet derivation service CLI
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/hearthlight/charsheet/internal/clients/content"
	"github.com/hearthlight/charsheet/internal/compendium"
	"github.com/hearthlight/charsheet/internal/entities/sheet"
	sheetorch "github.com/hearthlight/charsheet/internal/orchestrators/sheet"
	"github.com/hearthlight/charsheet/internal/pkg/idgen"
	"github.com/hearthlight/charsheet/internal/redis"
	characterrepo "github.com/hearthlight/charsheet/internal/repositories/character"
	"github.com/hearthlight/charsheet/internal/rules"
	sheetservice "github.com/hearthlight/charsheet/internal/services/sheet"
)

type config struct {
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	ContentDir string `env:"CONTENT_DIR" envDefault:"./content"`
}

var rootCmd = &cobra.Command{
	Use:   "sheetd",
	Short: "Character sheet derivation service",
	Long:  `sheetd stores characters and derives their sheets from compendium content.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService wires the service from environment configuration
func newService() (sheetservice.Service, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	contentClient, err := content.NewFilesystem(&content.FilesystemConfig{
		Root: cfg.ContentDir,
	})
	if err != nil {
		return nil, fmt.Errorf("create content client: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := compendium.New(&compendium.Config{
		ContentClient: contentClient,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create compendium store: %w", err)
	}

	orchestrator, err := sheetorch.New(&sheetorch.Config{
		CharacterRepo: characterrepo.NewRedisRepository(redisClient),
		Compendium:    store,
		Rules:         rules.Default(),
		IDGenerator:   idgen.NewUUID("char"),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create orchestrator: %w", err)
	}

	return orchestrator, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd, listCmd, deriveCmd, chooseCmd, catalogCmd)

	createCmd.Flags().StringVar(&createPlayerID, "player", "", "owning player ID")
	createCmd.Flags().StringVar(&createName, "name", "", "character name")
	createCmd.Flags().StringVar(&createBackground, "background", "", "background document ID")
	createCmd.Flags().StringVar(&createHeritage, "heritage", "", "heritage document ID")
	createCmd.Flags().StringVar(&createLineage, "lineage", "", "lineage document ID")
	createCmd.Flags().StringVar(&createClass, "class", "", "class document ID")
	createCmd.Flags().Int32Var(&createScores.str, "str", 10, "strength score")
	createCmd.Flags().Int32Var(&createScores.dex, "dex", 10, "dexterity score")
	createCmd.Flags().Int32Var(&createScores.con, "con", 10, "constitution score")
	createCmd.Flags().Int32Var(&createScores.intl, "int", 10, "intelligence score")
	createCmd.Flags().Int32Var(&createScores.wis, "wis", 10, "wisdom score")
	createCmd.Flags().Int32Var(&createScores.cha, "cha", 10, "charisma score")

	listCmd.Flags().StringVar(&listPlayerID, "player", "", "owning player ID")

	deriveCmd.Flags().StringVar(&deriveCharacterID, "character", "", "character ID")

	chooseCmd.Flags().StringVar(&chooseCharacterID, "character", "", "character ID")
	chooseCmd.Flags().StringVar(&chooseTraitID, "trait", "", "trait ID")
	chooseCmd.Flags().StringVar(&chooseSlotKey, "slot", "", "choice slot key")
	chooseCmd.Flags().StringSliceVar(&chooseValues, "values", nil, "chosen values")

	catalogCmd.Flags().StringVar(&catalogSubtype, "subtype", "", "document subtype")
}

var (
	createPlayerID   string
	createName       string
	createBackground string
	createHeritage   string
	createLineage    string
	createClass      string
	createScores     struct {
		str, dex, con, intl, wis, cha int32
	}

	listPlayerID string

	deriveCharacterID string

	chooseCharacterID string
	chooseTraitID     string
	chooseSlotKey     string
	chooseValues      []string

	catalogSubtype string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		output, err := svc.CreateCharacter(cmd.Context(), &sheetservice.CreateCharacterInput{
			PlayerID: createPlayerID,
			Name:     createName,
			AbilityScores: map[string]int32{
				sheet.AbilityStrength:     createScores.str,
				sheet.AbilityDexterity:    createScores.dex,
				sheet.AbilityConstitution: createScores.con,
				sheet.AbilityIntelligence: createScores.intl,
				sheet.AbilityWisdom:       createScores.wis,
				sheet.AbilityCharisma:     createScores.cha,
			},
			BackgroundID: createBackground,
			HeritageID:   createHeritage,
			LineageID:    createLineage,
			ClassID:      createClass,
		})
		if err != nil {
			return err
		}
		return printJSON(output.Character)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		output, err := svc.ListCharacters(cmd.Context(), &sheetservice.ListCharactersInput{
			PlayerID: listPlayerID,
		})
		if err != nil {
			return err
		}
		return printJSON(output.Characters)
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Run a derivation pass and print the sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		output, err := svc.DeriveSheet(cmd.Context(), &sheetservice.DeriveSheetInput{
			CharacterID: deriveCharacterID,
		})
		if err != nil {
			return err
		}
		return printJSON(output.Sheet)
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Record a trait choice selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		output, err := svc.UpdateTraitChoice(cmd.Context(), &sheetservice.UpdateTraitChoiceInput{
			CharacterID:  chooseCharacterID,
			TraitID:      chooseTraitID,
			SlotKey:      chooseSlotKey,
			ChosenValues: chooseValues,
		})
		if err != nil {
			return err
		}
		return printJSON(output.Sheet)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List a compendium collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		output, err := svc.ListCompendium(cmd.Context(), &sheetservice.ListCompendiumInput{
			Subtype: sheet.Subtype(catalogSubtype),
		})
		if err != nil {
			return err
		}
		return printJSON(output.Documents)
	},
}
