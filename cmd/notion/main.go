package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/notion"
	"github.com/akeil/notion/pkg/api"
	"github.com/akeil/notion/pkg/config"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	notion.SetLogLevel("warning")

	app := kingpin.New("notion", "Notion API Tool")
	app.HelpFlag.Short('h')

	var (
		configPath = app.Flag("config", "Path to the config file").Short('c').String()
		logLevel   = app.Flag("log-level", "Log level (debug, info, warning, error)").String()
	)

	getBlock := app.Command("retrieve-block", "Show a single block")
	blockID := getBlock.Flag("block-id", "ID of the block").Required().String()

	getPage := app.Command("retrieve-page", "Show the properties of a page")
	pageID := getPage.Flag("page-id", "ID or URL of the page").Required().String()

	getDatabase := app.Command("retrieve-database", "Show a database and its schema")
	databaseID := getDatabase.Flag("database-id", "ID of the database").Required().String()

	children := app.Command("children", "List the children of a block or page")
	var (
		childrenID = children.Flag("block-id", "ID or URL of the block or page").Required().String()
		recursive  = children.Flag("recursive", "Fetch nested children as well").Short('r').Bool()
	)

	appendCmd := app.Command("append", "Append a paragraph to a block or page")
	var (
		appendID = appendCmd.Flag("block-id", "ID or URL of the block or page").Required().String()
		text     = appendCmd.Flag("text", "Text of the new paragraph").Required().String()
	)

	deleteCmd := app.Command("delete-block", "Move a block to the trash")
	deleteID := deleteCmd.Flag("block-id", "ID of the block").Required().String()

	export := app.Command("export", "Export a page as PDF")
	var (
		exportID = export.Flag("page-id", "ID or URL of the page").Required().String()
		output   = export.Flag("output", "Output file").Short('o').Default("page.pdf").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(*configPath, *logLevel, func(c *api.Client) error {
		switch command {
		case getBlock.FullCommand():
			return doRetrieveBlock(ctx, c, *blockID)
		case getPage.FullCommand():
			return doRetrievePage(ctx, c, *pageID)
		case getDatabase.FullCommand():
			return doRetrieveDatabase(ctx, c, *databaseID)
		case children.FullCommand():
			return doChildren(ctx, c, *childrenID, *recursive)
		case appendCmd.FullCommand():
			return doAppend(ctx, c, *appendID, *text)
		case deleteCmd.FullCommand():
			return doDelete(ctx, c, *deleteID)
		case export.FullCommand():
			return doExport(ctx, c, *exportID, *output)
		}
		return fmt.Errorf("unknown command: %q", command)
	})

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run(configPath, logLevel string, cmd func(c *api.Client) error) error {
	client, err := setupClient(configPath, logLevel)
	if err != nil {
		return err
	}
	return cmd(client)
}

// common ---------------------------------------------------------------------

func setupClient(configPath, logLevel string) (*api.Client, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// the command line wins over the config file
	switch {
	case logLevel != "":
		notion.SetLogLevel(logLevel)
	case s.LogLevel != "":
		notion.SetLogLevel(s.LogLevel)
	}

	return api.NewClient(s.ClientConfig())
}

// show prints a value as Go debug text followed by indented JSON.
func show(v interface{}) error {
	fmt.Printf("%+v\n\n", v)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// parseBlockID accepts a plain id or a URL copied from the browser.
func parseBlockID(s string) (notion.BlockID, error) {
	if id, ok := notion.BlockIDFromURL(s); ok {
		return id, nil
	}
	// a page is the parent block of its content
	if id, ok := notion.PageIDFromURL(s); ok {
		return id.BlockID(), nil
	}
	return notion.ParseBlockID(s)
}

func parsePageID(s string) (notion.PageID, error) {
	if id, ok := notion.PageIDFromURL(s); ok {
		return id, nil
	}
	return notion.ParsePageID(s)
}
