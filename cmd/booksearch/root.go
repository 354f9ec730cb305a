package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/amp-labs/sortkit/book"
	"github.com/amp-labs/sortkit/catalog"
	"github.com/amp-labs/sortkit/cli"
	"github.com/amp-labs/sortkit/compare"
	"github.com/amp-labs/sortkit/logger"
	"github.com/amp-labs/sortkit/search"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	errNoCatalog = errors.New("no catalog given: use --catalog or BOOKSEARCH_CATALOG")
	errNotFound  = errors.New("book not found")
	errUnsorted  = errors.New("values must be sorted ascending")
)

// prompter is the part of cli.Prompter used by the interactive commands.
type prompter interface {
	PromptString(label string) (string, error)
	PromptConfirm(label string) (bool, error)
}

var _ prompter = (*cli.Prompter)(nil)

type app struct {
	env    *viper.Viper
	log    *slog.Logger
	prompt prompter
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithPrompter(cli.NewPrompter())
}

func newRootCmdWithPrompter(p prompter) *cobra.Command {
	a := &app{
		env:    viper.New(),
		prompt: p,
	}

	a.env.SetEnvPrefix("BOOKSEARCH")
	a.env.AutomaticEnv()

	root := &cobra.Command{
		Use:          "booksearch",
		Short:        "Look books up in a sorted catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.ConfigureLogging("booksearch", logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			a.log = log

			return nil
		},
	}

	root.PersistentFlags().String("catalog", "", "path to the catalog file (.yaml, optionally .gz/.zst/.br/.lz4/.deflate)")

	if err := a.env.BindPFlag("catalog", root.PersistentFlags().Lookup("catalog")); err != nil {
		panic(err)
	}

	root.AddCommand(a.listCmd(), a.findCmd(), a.intsCmd())

	return root
}

func (a *app) openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path := a.env.GetString("catalog")
	if path == "" {
		return nil, errNoCatalog
	}

	return catalog.Open(cmd.Context(), path, catalog.WithLogger(a.log))
}

var naturalTitle = compare.By[*book.Book, string]((*book.Book).Title, compare.NaturalString)

// byNaturalTitle orders books so that numbers in titles compare numerically
// ("Vol. 2" before "Vol. 10"), falling back to the catalog order.
func byNaturalTitle(a, b *book.Book) int {
	if c := naturalTitle(a, b); c != 0 {
		return c
	}

	return book.Compare(a, b)
}

func (a *app) listCmd() *cobra.Command {
	var natural bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}

			order := make([]int, 0, c.Len())
			for i := range c.All() {
				order = append(order, i)
			}

			if natural {
				slices.SortStableFunc(order, func(i, j int) int {
					return byNaturalTitle(c.Get(i), c.Get(j))
				})
			}

			for _, i := range order {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, c.Get(i)) //nolint:errcheck
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&natural, "natural", false, "order titles with embedded numbers numerically; indexes stay those of the catalog")

	return cmd
}

func (a *app) findCmd() *cobra.Command {
	var (
		title, author, publisher string
		interactive              bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a book by title, author and publisher (case-insensitive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			fields := []cli.Field{
				{Label: "Title", Value: &title, Set: flags.Changed("title")},
				{Label: "Author", Value: &author, Set: flags.Changed("author")},
				{Label: "Publisher", Value: &publisher, Set: flags.Changed("publisher")},
			}

			if interactive {
				if err := cli.FillMissing(a.prompt.PromptString, fields...); err != nil {
					return err
				}

				for i := range fields {
					fields[i].Set = true
				}
			}

			query, err := book.FromFields(present(fields[1]), present(fields[0]), present(fields[2]))
			if err != nil {
				return err
			}

			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}

			idx, found := c.Find(query)
			if !found {
				if interactive {
					if err := a.offerSameTitle(cmd, c, query); err != nil {
						return err
					}
				}

				return fmt.Errorf("%w: %s", errNotFound, query)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", idx, c.Get(idx)) //nolint:errcheck

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&publisher, "publisher", "", "book publisher")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for fields not given as flags")

	return cmd
}

// offerSameTitle asks whether to show the books sharing the title of a query
// that had no exact match, and prints them if the user agrees.
func (a *app) offerSameTitle(cmd *cobra.Command, c *catalog.Catalog, query *book.Book) error {
	same := c.FindTitle(query.Title())
	if len(same) == 0 {
		return nil
	}

	show, err := a.prompt.PromptConfirm(fmt.Sprintf("No exact match. Show %d book(s) titled %q", len(same), query.Title()))
	if err != nil || !show {
		return err
	}

	for _, b := range same {
		idx, _ := c.Find(b)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", idx, b) //nolint:errcheck
	}

	return nil
}

func present(f cli.Field) *string {
	if !f.Set {
		return nil
	}

	return f.Value
}

func (a *app) intsCmd() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "ints --target N VALUE...",
		Short: "Binary search a sorted list of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))

			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid integer %q: %w", arg, err)
				}

				values = append(values, v)
			}

			if !slices.IsSorted(values) {
				return errUnsorted
			}

			idx, err := search.BinarySearch(values, target)
			if err != nil {
				return err
			}

			a.log.Debug("searched integers", "values", len(values), "target", target, "index", idx)

			fmt.Fprintln(cmd.OutOrStdout(), idx) //nolint:errcheck

			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "value to search for")

	if err := cmd.MarkFlagRequired("target"); err != nil {
		panic(err)
	}

	return cmd
}
