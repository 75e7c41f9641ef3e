// Command theologai looks up scripture, classic commentary, historic
// confessions, and cross-references, and serves the same lookups as
// JSON-RPC tools over stdio or a websocket.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"theologai/core/ref"
	"theologai/core/toc"
	"theologai/internal/confession"
	"theologai/internal/fetch"
	"theologai/internal/logging"
	"theologai/internal/markdown"
	"theologai/internal/server"
	"theologai/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for theologai.
var CLI struct {
	// Global flags
	LogLevel   string        `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log verbosity"`
	LogJSON    bool          `name:"log-json" help:"Emit logs as JSON"`
	CacheDB    string        `name:"cache-db" default:"theologai-cache.db" env:"THEOLOGAI_CACHE_DB" help:"Response cache database path"`
	CacheTTL   time.Duration `name:"cache-ttl" default:"168h" env:"THEOLOGAI_CACHE_TTL" help:"Response cache lifetime"`
	ESVToken   string        `name:"esv-token" env:"ESV_API_TOKEN" help:"ESV API token; bible-api.com is used without one"`
	Confession string        `name:"confession" env:"THEOLOGAI_CONFESSION" help:"Path to a confession JSON document"`

	Passage    PassageCmd      `cmd:"" help:"Look up a Bible passage"`
	Commentary CommentaryCmd   `cmd:"" help:"Look up classic commentary on a chapter"`
	Classic    ClassicGroup    `cmd:"" help:"Classic works on CCEL (lookup, toc)"`
	Crossref   CrossrefCmd     `cmd:"" help:"List cross-references for a verse or chapter"`
	Confess    ConfessionGroup `cmd:"" name:"confession-doc" help:"Confession documents (show, import)"`
	Serve      ServeGroup      `cmd:"" help:"Serve the lookup tools over JSON-RPC"`
	Cache      CacheGroup      `cmd:"" help:"Response cache maintenance"`
	Version    VersionCmd      `cmd:"" help:"Print version information"`
}

func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.Init(level, format)
}

// clients bundles the provider clients a command needs. Close releases
// the response cache.
type clients struct {
	store     *store.Store
	esv       *fetch.ESVClient
	bibleAPI  *fetch.BibleAPIClient
	ccel      *fetch.CCELClient
	openBible *fetch.OpenBibleClient
}

func (c *clients) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

func buildClients() (*clients, error) {
	initLogging()

	st, err := store.Open(CLI.CacheDB, CLI.CacheTTL)
	if err != nil {
		return nil, err
	}
	httpc := fetch.NewClient(st)

	c := &clients{
		store:     st,
		bibleAPI:  &fetch.BibleAPIClient{Client: httpc},
		ccel:      fetch.NewCCELClient(httpc),
		openBible: fetch.NewOpenBibleClient(httpc),
	}
	if CLI.ESVToken != "" {
		c.esv = &fetch.ESVClient{Client: httpc, Token: CLI.ESVToken}
	}
	return c, nil
}

func loadConfession() (*confession.Document, error) {
	if CLI.Confession == "" {
		return nil, nil
	}
	return confession.Load(CLI.Confession)
}

func parseRef(words []string) (ref.Ref, error) {
	return ref.Parse(strings.Join(words, " "))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// PassageCmd looks up a Bible passage.
type PassageCmd struct {
	Reference []string `arg:"" help:"Scripture reference, e.g. John 3:16"`
}

func (c *PassageCmd) Run(ctx *kong.Context) error {
	r, err := parseRef(c.Reference)
	if err != nil {
		return err
	}
	cl, err := buildClients()
	if err != nil {
		return err
	}
	defer cl.Close()

	bg := context.Background()
	var p *fetch.Passage
	if cl.esv != nil {
		p, err = cl.esv.Lookup(bg, r)
	}
	if p == nil {
		p, err = cl.bibleAPI.Lookup(bg, r)
	}
	if err != nil {
		return err
	}
	fmt.Println(markdown.Passage(p))
	return nil
}

// CommentaryCmd looks up classic commentary on a chapter.
type CommentaryCmd struct {
	Commentator string   `default:"henry" help:"henry, henry-concise, or calvin"`
	Reference   []string `arg:"" help:"Scripture reference, resolved to its chapter"`
}

func (c *CommentaryCmd) Run(ctx *kong.Context) error {
	r, err := parseRef(c.Reference)
	if err != nil {
		return err
	}
	ed, err := editionFor(c.Commentator)
	if err != nil {
		return err
	}
	cl, err := buildClients()
	if err != nil {
		return err
	}
	defer cl.Close()

	commentary, err := cl.ccel.Commentary(context.Background(), ed, r)
	if err != nil {
		return err
	}
	fmt.Println(markdown.Commentary(commentary))
	return nil
}

func editionFor(name string) (ref.CommentaryEdition, error) {
	switch name {
	case "henry", "":
		return ref.EditionMatthewHenry, nil
	case "henry-concise":
		return ref.EditionMatthewHenryConcise, nil
	case "calvin":
		return ref.EditionCalvin, nil
	}
	return ref.CommentaryEdition{}, fmt.Errorf("unknown commentator %q", name)
}

// ClassicGroup contains classic-work operations.
type ClassicGroup struct {
	Lookup ClassicLookupCmd `cmd:"" help:"Find and print a section of a classic work"`
	Toc    ClassicTocCmd    `cmd:"" help:"Show a work's table of contents"`
}

// ClassicLookupCmd resolves a query against a work's table of contents
// and prints the matching section.
type ClassicLookupCmd struct {
	Work  string   `arg:"" help:"CCEL work identifier, e.g. calvin/institutes"`
	Query []string `arg:"" help:"Section query, e.g. Book 1 Chapter 2"`
}

func (c *ClassicLookupCmd) Run(ctx *kong.Context) error {
	cl, err := buildClients()
	if err != nil {
		return err
	}
	defer cl.Close()

	bg := context.Background()
	parsed, err := cl.ccel.TOC(bg, c.Work)
	if err != nil {
		return err
	}
	query := strings.Join(c.Query, " ")
	entry := toc.Resolve(parsed.Entries, query)
	if entry == nil {
		return fmt.Errorf("no section of %s matches %q", c.Work, query)
	}
	text, err := cl.ccel.Section(bg, c.Work, entry.Section)
	if err != nil {
		return err
	}
	fmt.Println(markdown.ClassicSection(c.Work, entry.Title, text))
	return nil
}

// ClassicTocCmd lists a work's table of contents, optionally filtered.
type ClassicTocCmd struct {
	Work   string `arg:"" help:"CCEL work identifier"`
	Filter string `help:"Only show entries matching this query"`
	Limit  int    `default:"25" help:"Maximum entries to show"`
}

func (c *ClassicTocCmd) Run(ctx *kong.Context) error {
	cl, err := buildClients()
	if err != nil {
		return err
	}
	defer cl.Close()

	parsed, err := cl.ccel.TOC(context.Background(), c.Work)
	if err != nil {
		return err
	}
	entries := parsed.Entries
	if c.Filter != "" {
		entries = toc.FindMatches(entries, c.Filter, c.Limit)
	} else if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	for _, e := range entries {
		indent := e.Level - 1
		if indent < 0 {
			indent = 0
		}
		fmt.Printf("%s%s  [%s]\n", strings.Repeat("  ", indent), e.Title, e.Section)
	}
	return nil
}

// CrossrefCmd lists cross-references for a verse or chapter.
type CrossrefCmd struct {
	Limit     int      `default:"10" help:"Maximum results"`
	Reference []string `arg:"" help:"Scripture reference"`
}

func (c *CrossrefCmd) Run(ctx *kong.Context) error {
	r, err := parseRef(c.Reference)
	if err != nil {
		return err
	}
	cl, err := buildClients()
	if err != nil {
		return err
	}
	defer cl.Close()

	refs, err := cl.openBible.CrossReferences(context.Background(), r, c.Limit)
	if err != nil {
		return err
	}
	fmt.Println(markdown.CrossReferences(r, refs))
	return nil
}

// ConfessionGroup contains confession document operations.
type ConfessionGroup struct {
	Show   ConfessionShowCmd   `cmd:"" help:"Look up a confession by chapter, topic, or text"`
	Import ConfessionImportCmd `cmd:"" help:"Import the Westminster Confession from plain text"`
}

// ConfessionShowCmd prints matching confession sections.
type ConfessionShowCmd struct {
	Chapter int    `help:"Chapter number"`
	Topic   string `help:"Topic tag, e.g. justification"`
	Query   string `help:"Free-text search"`
}

func (c *ConfessionShowCmd) Run(ctx *kong.Context) error {
	initLogging()
	doc, err := loadConfession()
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("no confession document configured; set --confession or THEOLOGAI_CONFESSION")
	}

	var sections []confession.Section
	switch {
	case c.Chapter > 0:
		s, ok := doc.Chapter(c.Chapter)
		if !ok {
			return fmt.Errorf("%s has no chapter %d", doc.Title, c.Chapter)
		}
		sections = []confession.Section{*s}
	case c.Topic != "":
		sections = doc.ByTopic(c.Topic)
	case c.Query != "":
		sections = doc.Search(c.Query)
	default:
		return fmt.Errorf("pass --chapter, --topic, or --query")
	}
	if len(sections) == 0 {
		return fmt.Errorf("no sections matched")
	}
	for _, s := range sections {
		fmt.Printf("Chapter %s: %s\n\n%s\n\n", s.Chapter, s.Title, s.Content)
	}
	return nil
}

// ConfessionImportCmd parses the plain-text Westminster Confession into
// structured JSON.
type ConfessionImportCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Plain-text source file"`
	Output string `arg:"" help:"Destination JSON path"`
}

func (c *ConfessionImportCmd) Run(ctx *kong.Context) error {
	initLogging()
	f, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := confession.ParseWestminsterText(f)
	if err != nil {
		return err
	}
	if err := doc.Save(c.Output); err != nil {
		return err
	}
	fmt.Printf("parsed %d chapters into %s\n", len(doc.Sections), c.Output)
	return nil
}

// ServeGroup contains the JSON-RPC transports.
type ServeGroup struct {
	Stdio ServeStdioCmd `cmd:"" help:"Serve JSON-RPC over stdin/stdout"`
	WS    ServeWSCmd    `cmd:"" help:"Serve JSON-RPC over a websocket"`
}

func buildRegistry() (*server.Registry, *clients, error) {
	cl, err := buildClients()
	if err != nil {
		return nil, nil, err
	}
	doc, err := loadConfession()
	if err != nil {
		cl.Close()
		return nil, nil, err
	}

	deps := server.Deps{
		BibleAPI:   cl.bibleAPI,
		Classics:   cl.ccel,
		CrossRefs:  cl.openBible,
		Confession: doc,
	}
	if cl.esv != nil {
		deps.ESV = cl.esv
	}
	return server.NewToolRegistry(deps), cl, nil
}

// ServeStdioCmd serves JSON-RPC on stdin/stdout.
type ServeStdioCmd struct{}

func (c *ServeStdioCmd) Run(ctx *kong.Context) error {
	reg, cl, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cl.Close()

	sigCtx, cancel := signalContext()
	defer cancel()
	return server.ServeStdio(sigCtx, reg, os.Stdin, os.Stdout)
}

// ServeWSCmd serves JSON-RPC on a websocket endpoint.
type ServeWSCmd struct {
	Addr string `default:":8765" help:"Listen address"`
}

func (c *ServeWSCmd) Run(ctx *kong.Context) error {
	reg, cl, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cl.Close()

	sigCtx, cancel := signalContext()
	defer cancel()
	return server.ServeWS(sigCtx, reg, c.Addr)
}

// CacheGroup contains response cache maintenance.
type CacheGroup struct {
	Prune CachePruneCmd `cmd:"" help:"Delete expired cache entries"`
}

// CachePruneCmd deletes expired cache entries.
type CachePruneCmd struct{}

func (c *CachePruneCmd) Run(ctx *kong.Context) error {
	initLogging()
	st, err := store.Open(CLI.CacheDB, CLI.CacheTTL)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Prune(context.Background())
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Printf("theologai %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("theologai"),
		kong.Description("Scripture, commentary, and confession lookups from the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
