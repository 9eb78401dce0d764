package main

import (
	"context"
	"fmt"

	"github.com/akeil/notion"
	"github.com/akeil/notion/pkg/api"
)

func doAppend(ctx context.Context, c *api.Client, raw, text string) error {
	id, err := parseBlockID(raw)
	if err != nil {
		return err
	}

	b, err := notion.NewBlock(notion.NewParagraph(notion.NewText(text)))
	if err != nil {
		return err
	}

	_, err = c.AppendBlockChildren(ctx, id, []notion.Block{b})
	if err != nil {
		fmt.Printf("%v Failed to append to %v: %v\n", crossmark, id, err)
		return err
	}
	fmt.Printf("%v Appended paragraph to %v\n", checkmark, id)
	return nil
}

func doDelete(ctx context.Context, c *api.Client, raw string) error {
	id, err := notion.ParseBlockID(raw)
	if err != nil {
		return err
	}

	b, err := c.DeleteBlock(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			fmt.Printf("%v No block %v, or it is not shared with the integration\n", crossmark, id)
		}
		return err
	}
	fmt.Printf("%v Moved %v block %v to the trash\n", checkmark, b.Type(), id)
	return nil
}
