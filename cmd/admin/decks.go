package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/service"
	"github.com/dtroode/quizzme-server/internal/study"
)

// deckFile is the YAML layout accepted by decks import.
type deckFile struct {
	Name  string       `yaml:"name"`
	Cards []model.Card `yaml:"cards"`
}

func newDecksCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decks",
		Short: "Inspect and import flashcard decks",
	}
	cmd.AddCommand(
		newDecksListCmd(d),
		newDecksShowCmd(d),
		newDecksImportCmd(d),
	)
	return cmd
}

func newDecksListCmd(d *deps) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withDecks(cmd, func(decks *service.Deck) error {
				summaries, err := decks.ListDecks(cmd.Context(), owner)
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no decks")
					return nil
				}
				for _, s := range summaries {
					fmt.Fprintln(cmd.OutOrStdout(), s.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newDecksShowCmd(d *deps) *cobra.Command {
	var owner, name string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cards of a deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withDecks(cmd, func(decks *service.Deck) error {
				cards, err := decks.GetDeckCards(cmd.Context(), owner, name)
				if err != nil {
					return err
				}
				for i, c := range cards {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s | %s\n", i+1, c.Front, c.Back)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner id")
	cmd.Flags().StringVar(&name, "name", "", "deck name")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDecksImportCmd(d *deps) *cobra.Command {
	var owner, name, file, generateFrom string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Save a deck from a YAML file or generate it from study text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, deckName, err := d.loadDraft(cmd, owner, file, generateFrom)
			if err != nil {
				return err
			}
			if name != "" {
				deckName = name
			}
			cards := draft.CardsToSave()

			return d.withDecks(cmd, func(decks *service.Deck) error {
				err := decks.SaveDeck(cmd.Context(), model.SaveDeckParams{
					Owner: owner,
					Name:  deckName,
					Cards: cards,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %d cards to %q\n", len(cards), deckName)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner id")
	cmd.Flags().StringVar(&name, "name", "", "deck name, overrides the name in the file")
	cmd.Flags().StringVar(&file, "file", "", "YAML deck file")
	cmd.Flags().StringVar(&generateFrom, "generate", "", "text file to generate cards from")
	_ = cmd.MarkFlagRequired("user")
	cmd.MarkFlagsOneRequired("file", "generate")
	cmd.MarkFlagsMutuallyExclusive("file", "generate")
	return cmd
}

// loadDraft builds the composer state for an import, the way the create
// page does: manual cards from a file or generated cards from text.
func (d *deps) loadDraft(cmd *cobra.Command, owner, file, generateFrom string) (study.Draft, string, error) {
	draft := study.NewDraft()

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return draft, "", fmt.Errorf("failed to read deck file: %w", err)
		}
		var df deckFile
		if err := yaml.Unmarshal(raw, &df); err != nil {
			return draft, "", fmt.Errorf("failed to parse deck file: %w", err)
		}
		draft = draft.ToggleMode()
		draft.Manual = df.Cards
		return draft, df.Name, nil
	}

	text, err := os.ReadFile(generateFrom)
	if err != nil {
		return draft, "", fmt.Errorf("failed to read text file: %w", err)
	}
	generation := service.NewGeneration(d.generator(), d.logger)

	draft = draft.BeginGeneration()
	cards, err := generation.Generate(cmd.Context(), owner, string(text))
	if err != nil {
		draft = draft.FailGeneration()
		return draft, "", err
	}
	return draft.CompleteGeneration(cards), "", nil
}

func (d *deps) withDecks(cmd *cobra.Command, fn func(decks *service.Deck) error) error {
	store, closeStore, err := d.openStore(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer closeStore()

	return fn(service.NewDeck(store, d.logger))
}
