package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesnip/internal/corpus"
	"github.com/verte-zerg/typesnip/internal/model"
	"github.com/verte-zerg/typesnip/internal/store"
)

const (
	defaultShowStyle = "auto"
	defaultWrapWidth = 80
)

var (
	snippetsCategory string
	showCategory     string
	showStyle        string
)

func newSnippetsCmd() *cobra.Command {
	snippetsCmd := &cobra.Command{
		Use:   "snippets",
		Short: "Manage practice snippets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories with snippet counts",
		Args:  cobra.NoArgs,
		RunE:  runSnippetsList,
	}

	addCmd := &cobra.Command{
		Use:   "add FILE...",
		Short: "Add snippets from text files separated by --- lines",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSnippetsAdd,
	}
	addCmd.Flags().StringVar(&snippetsCategory, "category", "", "category to add snippets to (required)")

	importCmd := &cobra.Command{
		Use:   "import PACK.yaml...",
		Short: "Import YAML snippet packs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSnippetsImport,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print every snippet of a category",
		Args:  cobra.NoArgs,
		RunE:  runSnippetsShow,
	}
	showCmd.Flags().StringVar(&showCategory, "category", defaultCategory, "category to show")
	showCmd.Flags().StringVar(&showStyle, "style", defaultShowStyle, "render style: auto, dark, light, notty")

	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete all user snippets of a category",
		Args:  cobra.NoArgs,
		RunE:  runSnippetsRemove,
	}
	removeCmd.Flags().StringVar(&snippetsCategory, "category", "", "category to remove (required)")

	snippetsCmd.AddCommand(listCmd, addCmd, importCmd, showCmd, removeCmd)
	return snippetsCmd
}

func runSnippetsList(cmd *cobra.Command, _ []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	counts, err := corpus.NewLibrary(st, nil, nil).Counts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	return corpus.RenderCategories(cmd.OutOrStdout(), counts)
}

func runSnippetsAdd(cmd *cobra.Command, args []string) error {
	category, err := requireCategory(snippetsCategory)
	if err != nil {
		return err
	}
	var bodies []string
	for _, path := range args {
		snippets, err := corpus.LoadText(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		bodies = append(bodies, snippets...)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	added, err := st.AddSnippets(cmd.Context(), category, bodies)
	if err != nil {
		return fmt.Errorf("failed to add snippets: %w", err)
	}
	reportAdded(cmd, category, added, len(bodies))
	return nil
}

func runSnippetsImport(cmd *cobra.Command, args []string) error {
	packs := make([]corpus.Pack, 0, len(args))
	for _, path := range args {
		pack, err := corpus.LoadPack(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		packs = append(packs, pack)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	for _, pack := range packs {
		added, err := st.AddSnippets(cmd.Context(), pack.Category, pack.Snippets)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", pack.Category, err)
		}
		reportAdded(cmd, pack.Category, added, len(pack.Snippets))
	}
	return nil
}

func runSnippetsShow(cmd *cobra.Command, _ []string) error {
	category, err := requireCategory(showCategory)
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	pool := corpus.NewLibrary(st, nil, nil).Pool(cmd.Context(), category)
	if len(pool) == 0 {
		return fmt.Errorf("category %q has no snippets", category)
	}

	renderer, err := newMarkdownRenderer(showStyle, terminalWidth())
	if err != nil {
		return err
	}
	out, err := renderer.Render(snippetsMarkdown(category, pool))
	if err != nil {
		return fmt.Errorf("failed to render snippets: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func runSnippetsRemove(cmd *cobra.Command, _ []string) error {
	category, err := requireCategory(snippetsCategory)
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	removed, err := st.DeleteCategory(cmd.Context(), category)
	if err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}
	if removed == 0 {
		logErrf("no user snippets in %q\n", category)
		return nil
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d snippets from %s\n", removed, category)
	return err
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	if _, err := loadFileConfig(cmd); err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
}

func requireCategory(name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("--category is required")
	}
	return model.Category(name), nil
}

func reportAdded(cmd *cobra.Command, category model.Category, added, total int) {
	if skipped := total - added; skipped > 0 {
		logErrln(fmt.Sprintf("skipped %d duplicate snippets in %s", skipped, category))
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "added %d snippets to %s\n", added, category); err != nil {
		// Best-effort status output.
		_ = err
	}
}

func newMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(style))
	default:
		return nil, fmt.Errorf("--style must be one of auto, dark, light, notty")
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return renderer, nil
}

// snippetsMarkdown renders each snippet as a numbered fenced block.
func snippetsMarkdown(category model.Category, pool []string) string {
	lang := fenceLanguage(category)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", category)
	for i, snippet := range pool {
		fmt.Fprintf(&b, "## %d\n\n```%s\n%s\n```\n\n", i+1, lang, snippet)
	}
	return b.String()
}

func fenceLanguage(category model.Category) string {
	if category == corpus.English {
		return "text"
	}
	return strings.ToLower(strings.Fields(string(category) + " text")[0])
}

func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return defaultWrapWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWrapWidth
	}
	return width
}
