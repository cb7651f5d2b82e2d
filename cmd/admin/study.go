package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtroode/quizzme-server/internal/service"
	"github.com/dtroode/quizzme-server/internal/study"
)

const studyHelp = "f flip, n next, p prev, q quit"

func newStudyCmd(d *deps) *cobra.Command {
	var owner, name string

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Flip through a deck on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withDecks(cmd, func(decks *service.Deck) error {
				cards, err := decks.GetDeckCards(cmd.Context(), owner, name)
				if err != nil {
					return err
				}
				if len(cards) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%q has no cards\n", name)
					return nil
				}

				s := study.NewSession(cards)
				fmt.Fprintln(cmd.OutOrStdout(), studyHelp)
				printCard(cmd, s)

				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					switch strings.TrimSpace(scanner.Text()) {
					case "f":
						s = s.Flip(s.Cursor())
					case "n":
						s = s.Next()
					case "p":
						s = s.Prev()
					case "q":
						return nil
					default:
						fmt.Fprintln(cmd.OutOrStdout(), studyHelp)
						continue
					}
					printCard(cmd, s)
				}
				return scanner.Err()
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner id")
	cmd.Flags().StringVar(&name, "name", "", "deck name")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func printCard(cmd *cobra.Command, s study.Session) {
	_, side, _ := s.Current()
	face := "front"
	if s.Flipped(s.Cursor()) {
		face = "back"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%d/%d %s] %s\n", s.Cursor()+1, s.Len(), face, side)
}
