package main

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/notion"
	"github.com/akeil/notion/pkg/api"
)

const pageSize = 100

func doChildren(ctx context.Context, c *api.Client, raw string, recursive bool) error {
	id, err := parseBlockID(raw)
	if err != nil {
		return err
	}

	var blocks []notion.Block
	if recursive {
		blocks, err = fetchTree(ctx, c, id)
	} else {
		blocks, err = fetchChildren(ctx, c, id)
	}
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		fmt.Println("Block has no children.")
		return nil
	}

	return notion.Walk(blocks, func(b notion.Block, depth int) error {
		marker := "-"
		if b.HasChildren && len(b.Children()) == 0 {
			marker = "+"
		}
		fmt.Printf("%v%v %v [%v] %v\n", strings.Repeat("  ", depth), marker, b.ID, b.Type(), b.PlainText())
		return nil
	})
}

// fetchChildren fetches all pages of the immediate children of a block.
func fetchChildren(ctx context.Context, c *api.Client, id notion.BlockID) ([]notion.Block, error) {
	blocks := make([]notion.Block, 0)
	opts := &notion.ListOptions{PageSize: pageSize}
	for opts != nil {
		l, err := c.RetrieveBlockChildren(ctx, id, opts)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, l.Results...)
		opts = l.NextOptions(pageSize)
	}
	return blocks, nil
}

// maxRequests limits the number of concurrent requests for a tree.
const maxRequests = 4

// fetchTree fetches the children of a block and, concurrently,
// their descendants. Sub pages and databases are not descended into.
func fetchTree(ctx context.Context, c *api.Client, id notion.BlockID) ([]notion.Block, error) {
	t := &treeFetcher{
		client: c,
		slots:  make(chan struct{}, maxRequests),
	}
	return t.fetch(ctx, id)
}

type treeFetcher struct {
	client *api.Client
	slots  chan struct{}
}

// children fetches the direct children of a block.
// A slot is held only while the request runs, never during recursion.
func (t *treeFetcher) children(ctx context.Context, id notion.BlockID) ([]notion.Block, error) {
	select {
	case t.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-t.slots }()
	return fetchChildren(ctx, t.client, id)
}

func (t *treeFetcher) fetch(ctx context.Context, id notion.BlockID) ([]notion.Block, error) {
	blocks, err := t.children(ctx, id)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	for i := range blocks {
		i := i
		b := blocks[i]
		if !b.HasChildren || !b.AcceptsChildren() {
			continue
		}
		group.Go(func() error {
			nested, err := t.fetch(ctx, b.ID)
			if err != nil {
				return err
			}
			withChildren, err := b.WithChildren(nested...)
			if err != nil {
				return err
			}
			blocks[i] = withChildren
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
