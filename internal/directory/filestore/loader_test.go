package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CameronXie/storefront-auth/internal/authn"
)

const jsonFixture = `{
  "users": [
    {
      "id": 1,
      "username": "alice",
      "email": "a@x.com",
      "password": "secret",
      "role": "user",
      "balance": 100,
      "ownedItems": [{"id": "n1", "name": "Sunset", "value": 2.5}]
    },
    {
      "id": 2,
      "username": "bob",
      "email": "b@x.com",
      "password": "hunter2",
      "role": "admin",
      "balance": 0,
      "ownedItems": [{"id": "n2", "name": "Harbour", "value": 1}]
    }
  ]
}`

const yamlFixture = `users:
  - id: 1
    username: alice
    email: a@x.com
    password: secret
    role: user
    balance: 100
    ownedItems:
      - id: n1
        name: Sunset
        value: 2.5
  - id: 2
    username: bob
    email: b@x.com
    password: hunter2
    role: admin
    balance: 0
    ownedItems:
      - id: n2
        name: Harbour
        value: 1
`

func expectedUsers() []authn.User {
	return []authn.User{
		{
			ID:         1,
			Username:   "alice",
			Email:      "a@x.com",
			Password:   "secret",
			Role:       "user",
			Balance:    100,
			OwnedItems: []authn.OwnedItem{{ID: "n1", Name: "Sunset", Value: 2.5}},
		},
		{
			ID:         2,
			Username:   "bob",
			Email:      "b@x.com",
			Password:   "hunter2",
			Role:       "admin",
			Balance:    0,
			OwnedItems: []authn.OwnedItem{{ID: "n2", Name: "Harbour", Value: 1}},
		},
	}
}

func TestLoader_Load(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, tempDir, "users.json", jsonFixture)
	writeFile(t, tempDir, "users.yaml", yamlFixture)
	writeFile(t, tempDir, "users.yml", yamlFixture)
	writeFile(t, tempDir, "users.txt", jsonFixture)
	writeFile(t, tempDir, "broken.json", `{"users": [`)
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "dir.json"), 0o755))

	cases := map[string]struct {
		file          string
		expectedUsers []authn.User
		expectedError string
	}{
		"should load json file":  {file: "users.json", expectedUsers: expectedUsers()},
		"should load yaml file":  {file: "users.yaml", expectedUsers: expectedUsers()},
		"should load yml file":   {file: "users.yml", expectedUsers: expectedUsers()},
		"should reject txt file": {file: "users.txt", expectedError: `unsupported directory file extension ".txt"`},
		"should return error when file does not exist": {
			file:          "missing.json",
			expectedError: "directory file not found",
		},
		"should return error when path is a directory": {
			file:          "dir.json",
			expectedError: "is a directory, not a file",
		},
		"should return error when file is malformed": {
			file:          "broken.json",
			expectedError: "failed to decode directory file",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			users, err := New(filepath.Join(tempDir, tc.file)).Load(context.Background())

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, users)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedUsers, users)
		})
	}
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, tempDir, "users.json", jsonFixture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(filepath.Join(tempDir, "users.json")).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
