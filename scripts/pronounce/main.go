// Command pronounce queries a CMU pronouncing dictionary from the command line and exports
// it to SQLite for the bot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/kalexmills/pronouncing/src/db"
	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/kalexmills/pronouncing/src/pronouncing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetDefault("source", "file")
	v.SetDefault("dbPath", "./pronouncing.sqlite3")
	v.SetEnvPrefix("PRONOUNCING")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "pronounce",
		Short:        "Look up pronunciations, stresses and rhymes in the CMU pronouncing dictionary",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if v.GetBool("debug") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().String("dict", "", "dictionary file, optionally .gz or .zst (default $"+dict.EnvPath+" or the user data directory)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database used by --source sqlite and export (default ./pronouncing.sqlite3)")
	rootCmd.PersistentFlags().String("source", "", "where to read the dictionary from: file or sqlite")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	_ = v.BindPFlag("dictPath", rootCmd.PersistentFlags().Lookup("dict"))
	_ = v.BindPFlag("dbPath", rootCmd.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	l := &loader{v: v}
	rootCmd.AddCommand(
		wordCmd(l, "phones", "Print every pronunciation of a word", func(d *pronouncing.Dictionary, word string) []string {
			return d.PhonesForWord(word)
		}),
		wordCmd(l, "stresses", "Print the stress pattern of each pronunciation of a word", func(d *pronouncing.Dictionary, word string) []string {
			return d.StressesForWord(word)
		}),
		wordCmd(l, "syllables", "Print the syllable count of each pronunciation of a word", func(d *pronouncing.Dictionary, word string) []string {
			var counts []string
			for _, phones := range d.PhonesForWord(word) {
				counts = append(counts, fmt.Sprint(pronouncing.SyllableCount(phones)))
			}
			return counts
		}),
		rhymesCmd(l),
		searchCmd(l, "search", "Print words whose phones match a regular expression", (*pronouncing.Dictionary).Search),
		searchCmd(l, "search-stresses", "Print words whose stress pattern matches a regular expression", (*pronouncing.Dictionary).SearchStresses),
		rhymingPartCmd(),
		exportCmd(l),
	)
	return rootCmd
}

// loader reads the dictionary named by the configuration once per command.
type loader struct {
	v *viper.Viper
}

func (l *loader) load(ctx context.Context) (*pronouncing.Dictionary, error) {
	switch source := l.v.GetString("source"); source {
	case "file":
		entries, err := l.parseFile()
		if err != nil {
			return nil, err
		}
		return pronouncing.New(entries), nil
	case "sqlite":
		return db.LoadDictionary(ctx, l.v.GetString("dbPath"))
	default:
		return nil, fmt.Errorf("unknown dictionary source %q, expected file or sqlite", source)
	}
}

func (l *loader) parseFile() ([]dict.Entry, error) {
	path := l.v.GetString("dictPath")
	if path == "" {
		var err error
		if path, err = dict.DefaultPath(); err != nil {
			return nil, err
		}
	}
	rc, err := dict.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, stats, err := dict.Parser{}.ParseWithStats(rc)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	log.Debug("parsed dictionary", "path", path, "entries", humanize.Comma(int64(stats.Entries)), "recoded", stats.Recoded)
	return entries, nil
}

func wordCmd(l *loader, use, short string, lookup func(*pronouncing.Dictionary, string) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " WORD",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := l.load(cmd.Context())
			if err != nil {
				return err
			}
			results := lookup(d, args[0])
			if len(results) == 0 {
				return unknownWord(d, args[0])
			}
			return printLines(cmd.OutOrStdout(), results)
		},
	}
}

func rhymesCmd(l *loader) *cobra.Command {
	return &cobra.Command{
		Use:   "rhymes WORD",
		Short: "Print words that rhyme with the first pronunciation of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := l.load(cmd.Context())
			if err != nil {
				return err
			}
			if len(d.PhonesForWord(args[0])) == 0 {
				return unknownWord(d, args[0])
			}
			return printLines(cmd.OutOrStdout(), d.Rhymes(args[0]))
		},
	}
}

func searchCmd(l *loader, use, short string, search func(*pronouncing.Dictionary, string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PATTERN",
		Short: short,
		Long:  short + ".\nSeveral arguments are joined with spaces, so `" + use + " S K L` needs no quoting.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := l.load(cmd.Context())
			if err != nil {
				return err
			}
			words, err := search(d, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), words)
		},
	}
}

func rhymingPartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rhyming-part PHONES",
		Short: "Print the rhyming part of a phone string, from its last stressed vowel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLines(cmd.OutOrStdout(), []string{pronouncing.RhymingPart(strings.Join(args, " "))})
		},
	}
}

func exportCmd(l *loader) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Parse the dictionary file and store its entries in the SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := l.parseFile()
			if err != nil {
				return err
			}
			path := l.v.GetString("dbPath")
			sqlDB, err := db.Open(path)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := db.SaveEntries(cmd.Context(), sqlDB, entries); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %s entries to %s\n", humanize.Comma(int64(len(entries))), path)
			return err
		},
	}
}

func unknownWord(d *pronouncing.Dictionary, word string) error {
	if suggestions := d.Suggest(word, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown word %q, did you mean %s?", word, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown word %q", word)
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
