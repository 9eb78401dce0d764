package main

import (
	"context"

	"github.com/akeil/notion"
	"github.com/akeil/notion/pkg/api"
)

func doRetrieveBlock(ctx context.Context, c *api.Client, raw string) error {
	id, err := notion.ParseBlockID(raw)
	if err != nil {
		return err
	}
	b, err := c.RetrieveBlock(ctx, id)
	if err != nil {
		return err
	}
	return show(b)
}

func doRetrievePage(ctx context.Context, c *api.Client, raw string) error {
	id, err := parsePageID(raw)
	if err != nil {
		return err
	}
	p, err := c.RetrievePage(ctx, id)
	if err != nil {
		return err
	}
	return show(p)
}

func doRetrieveDatabase(ctx context.Context, c *api.Client, raw string) error {
	id, err := notion.ParseDatabaseID(raw)
	if err != nil {
		return err
	}
	d, err := c.RetrieveDatabase(ctx, id)
	if err != nil {
		return err
	}
	return show(d)
}
