package directory

import (
	"context"
	"fmt"
	"slices"

	"github.com/CameronXie/storefront-auth/internal/authn"
)

// Loader reads user records from a backing source.
type Loader interface {
	// Load returns every user in source order.
	Load(ctx context.Context) ([]authn.User, error)
}

// Directory is an immutable, ordered collection of users. It is built once and
// safe for concurrent reads.
type Directory struct {
	users []authn.User
}

// New builds a Directory from users. The records are copied, so later changes
// to the argument are not visible through the Directory.
func New(users []authn.User) *Directory {
	copied := make([]authn.User, len(users))
	for i, u := range users {
		u.OwnedItems = slices.Clone(u.OwnedItems)
		copied[i] = u
	}

	return &Directory{users: copied}
}

// Load builds a Directory from the records returned by l.
func Load(ctx context.Context, l Loader) (*Directory, error) {
	users, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return New(users), nil
}

// AllUsers returns the users in directory order. The returned slice is a fresh
// copy of the index; the records themselves must be treated as read-only.
func (d *Directory) AllUsers() []authn.User {
	return slices.Clone(d.users)
}

// Len returns the number of users.
func (d *Directory) Len() int {
	return len(d.users)
}

// DuplicateEmails returns every email held by more than one user, in order of
// first appearance. Sign-in resolves duplicates by taking the first record
// whose password also matches.
func (d *Directory) DuplicateEmails() []string {
	seen := make(map[string]int, len(d.users))
	var duplicates []string

	for _, u := range d.users {
		seen[u.Email]++
		if seen[u.Email] == 2 {
			duplicates = append(duplicates, u.Email)
		}
	}

	return duplicates
}
