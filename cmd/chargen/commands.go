package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ie-chargen/internal/errors"
	charactersvc "github.com/KirkDiggler/ie-chargen/internal/services/character"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create [race]",
		Short: "Create a character of a race",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.CreateCharacter(ctx, &charactersvc.CreateCharacterInput{Race: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.CharacterID)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.ListCharacters(ctx, &charactersvc.ListCharactersInput{})
			if err != nil {
				return err
			}

			for _, id := range out.CharacterIDs {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newClassesCmd(a *app) *cobra.Command {
	var multi bool

	cmd := &cobra.Command{
		Use:   "classes [character-id]",
		Short: "List the classes a character may pick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.ListClassOptions(ctx, &charactersvc.ListClassOptionsInput{
				CharacterID: args[0],
				Multiclass:  multi,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, option := range out.Options {
				marker := " "
				if !option.Enabled() {
					marker = "x"
				}
				fmt.Fprintf(w, "%s %2d  %-20s %s\n", marker, option.Selection, option.Name, option.DisplayName)
			}
			if !multi {
				fmt.Fprintf(w, "multiclass: %s\n", enabledText(out.HasMulti))
			}
			if out.MageSchool != 0 {
				fmt.Fprintf(w, "mage school: %d\n", out.MageSchool)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&multi, "multi", false, "list multiclass combinations")
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [selection]",
		Short: "Show the description of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := parseSelection(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.DescribeClass(ctx, &charactersvc.DescribeClassInput{Selection: selection})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", out.DisplayName, out.Description)
			return nil
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	var kit, school int

	cmd := &cobra.Command{
		Use:   "select [character-id] [selection]",
		Short: "Pick a class for a character",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := parseSelection(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.SelectClass(ctx, &charactersvc.SelectClassInput{
				CharacterID: args[0],
				Selection:   selection,
				PendingKit:  kit,
				MageSchool:  school,
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out.Summary)
			return nil
		},
	}
	cmd.Flags().IntVar(&kit, "kit", 0, "kit already chosen for the character")
	cmd.Flags().IntVar(&school, "school", 0, "pending mage school row")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [character-id]",
		Short: "Show the class summary of a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			out, err := a.service.GetClassSummary(ctx, &charactersvc.GetClassSummaryInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out.Summary)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [character-id]",
		Short: "Delete a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if _, err := a.service.DeleteCharacter(ctx, &charactersvc.DeleteCharacterInput{CharacterID: args[0]}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func parseSelection(arg string) (int, error) {
	selection, err := strconv.Atoi(arg)
	if err != nil || selection < 1 {
		return 0, errors.InvalidArgumentf("selection must be a positive number, got %q", arg)
	}
	return selection, nil
}

func printSummary(w io.Writer, s *charactersvc.ClassSummary) {
	fmt.Fprintf(w, "character:   %s\n", s.CharacterID)
	fmt.Fprintf(w, "race:        %s\n", s.Race)
	if s.ClassRow == "" {
		fmt.Fprintln(w, "class:       none")
		return
	}

	fmt.Fprintf(w, "class:       %s (%d)\n", s.ClassRow, s.ClassID)
	if s.HasTitle {
		fmt.Fprintf(w, "title:       %s\n", s.Title)
	}
	if s.Kit != "" {
		fmt.Fprintf(w, "kit:         %s (%d)\n", s.Kit, s.KitIndex)
	}

	kind := "single"
	switch {
	case s.IsDual:
		kind = "dual"
		if s.IsDualSwap {
			kind = "dual, swapped"
		}
	case s.IsMulti:
		kind = "multi"
	}
	fmt.Fprintf(w, "classes:     %s [%s], %d active\n", strings.Join(s.ClassNames, " "), kind, s.NumClasses)
	fmt.Fprintf(w, "xp:          %d\n", s.XP)
	fmt.Fprintf(w, "levels:      %s\n", joinInts(s.Levels))
	fmt.Fprintf(w, "next levels: %s\n", joinInts(s.NextLevels))
	fmt.Fprintf(w, "level ups:   %s\n", joinInts(s.LevelDiffs))
	fmt.Fprintf(w, "next xp:     %s\n", joinInts(s.NextLevelExp))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func enabledText(enabled bool) string {
	if enabled {
		return "available"
	}
	return "unavailable"
}
