package client

import (
	"context"
	"fmt"

	"github.com/minta-io/minta/internal/api"
	"github.com/minta-io/minta/internal/core"
)

func (c *Client) CreateItem(ctx context.Context, name, description string) (*core.Item, error) {
	payload := api.ItemPayload{Name: name, Description: description}

	var item core.Item
	if _, err := c.post(ctx, c.url().
		setPath(api.ItemsRoute).
		build(), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*core.Item, error) {
	var item core.Item
	if _, err := c.get(ctx, c.url().
		setPath(itemPath(id)).
		build(), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id int64, name, description string) (*core.Item, error) {
	payload := api.ItemPayload{Name: name, Description: description}

	var item core.Item
	if _, err := c.put(ctx, c.url().
		setPath(itemPath(id)).
		build(), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, c.url().
		setPath(itemPath(id)).
		build())
	return err
}

func (c *Client) ListItems(ctx context.Context) ([]core.Item, error) {
	var items []core.Item
	if _, err := c.get(ctx, c.url().
		setPath(api.ItemsRoute).
		build(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", api.ItemsRoute, id)
}
