package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jmcampanini/authorcheck/internal/authorsfile"
	"github.com/jmcampanini/authorcheck/internal/config"
	"github.com/jmcampanini/authorcheck/internal/people"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors [directory]",
	Short: "List the authors declared in the AUTHORS file",
	Long: `Authors prints the entries of the AUTHORS file as authorcheck reads them:
comments and unparseable lines are dropped and each name appears once.

By default, outputs one "Name <email> (url)" entry per line.
With --table, outputs a formatted table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().Bool("table", false, "Output a formatted table")
	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	return runAuthorsWithDeps(cmd, args, nil, nil)
}

func runAuthorsWithDeps(cmd *cobra.Command, args []string, deps *commandDeps, cfg *config.Config) error {
	dir := directoryArg(args)

	env, err := initCommandEnv(dir, deps, cfg)
	if err != nil {
		return err
	}

	entries, err := authorsfile.NewReader(env.cfg.Authors.FileName).ReadEntries(dir)
	if err != nil {
		return err
	}

	if tableFlag(cmd) {
		return outputAuthorsTable(cmd, entries, env.cfg.Authors.FileName)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), entry); err != nil {
			return err
		}
	}
	return nil
}

// outputAuthorsTable renders the declared authors as a lipgloss table.
func outputAuthorsTable(cmd *cobra.Command, entries []people.Person, fileName string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "No authors found in %s.\n", fileName)
		return err
	}

	purple := lipgloss.Color("99")
	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Name, entry.Email, entry.URL}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Email", "URL").
		Rows(rows...)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
