package main

import (
	"context"
	"fmt"
	"io"

	"github.com/akeil/notion/internal/fs"
	"github.com/akeil/notion/pkg/api"
	"github.com/akeil/notion/pkg/render"
)

func doExport(ctx context.Context, c *api.Client, raw, path string) error {
	id, err := parsePageID(raw)
	if err != nil {
		return err
	}

	fmt.Printf("%v download %v\n", ellipsis, id)
	page, err := c.RetrievePage(ctx, id)
	if err != nil {
		fmt.Printf("%v Failed to download %v: %v\n", crossmark, id, err)
		return err
	}
	blocks, err := fetchTree(ctx, c, id.BlockID())
	if err != nil {
		fmt.Printf("%v Failed to download content of %q: %v\n", crossmark, page.Title(), err)
		return err
	}

	fmt.Printf("%v render %q\n", ellipsis, page.Title())
	doc := render.Document{
		Title:      page.Title(),
		LastEdited: page.LastEditedTime,
		Blocks:     blocks,
	}
	err = fs.WriteFile(path, func(w io.Writer) error {
		return render.RenderPDF(doc, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, page.Title(), err)
		return err
	}

	fmt.Printf("%v page %q saved as %q.\n", checkmark, page.Title(), path)
	return nil
}
