// Package sqlstore loads a user directory from a SQL database.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/CameronXie/storefront-auth/internal/authn"
	"github.com/CameronXie/storefront-auth/internal/directory"
)

const (
	usersQuery = `SELECT id, username, email, password, role, balance FROM users ORDER BY id`
	itemsQuery = `SELECT user_id, item_id, name, value FROM owned_items ORDER BY user_id, position, item_id`
)

type loader struct {
	db *sql.DB
}

// New creates a Loader reading from db. Users are returned ordered by id and
// their owned items by position.
func New(db *sql.DB) directory.Loader {
	return &loader{db: db}
}

// Load reads every user with their owned items.
func (l *loader) Load(ctx context.Context) ([]authn.User, error) {
	users, index, err := l.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if err := l.loadItems(ctx, users, index); err != nil {
		return nil, err
	}

	return users, nil
}

func (l *loader) loadUsers(ctx context.Context) ([]authn.User, map[int]int, error) {
	rows, err := l.db.QueryContext(ctx, usersQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]authn.User, 0)
	index := make(map[int]int)
	for rows.Next() {
		u := authn.User{OwnedItems: []authn.OwnedItem{}}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.Balance); err != nil {
			return nil, nil, fmt.Errorf("scan user: %w", err)
		}

		index[u.ID] = len(users)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, index, nil
}

func (l *loader) loadItems(ctx context.Context, users []authn.User, index map[int]int) error {
	rows, err := l.db.QueryContext(ctx, itemsQuery)
	if err != nil {
		return fmt.Errorf("query owned items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID int
			item   authn.OwnedItem
		)

		if err := rows.Scan(&userID, &item.ID, &item.Name, &item.Value); err != nil {
			return fmt.Errorf("scan owned item: %w", err)
		}

		i, ok := index[userID]
		if !ok {
			return fmt.Errorf("owned item %s references unknown user %d", item.ID, userID)
		}

		users[i].OwnedItems = append(users[i].OwnedItems, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate owned items: %w", err)
	}

	return nil
}
