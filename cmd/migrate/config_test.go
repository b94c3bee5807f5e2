package main

import (
	"testing"

	"libraryapi/internal/config"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir_FlagOverride(t *testing.T) {
	cfg := &config.Config{Migrations: config.MigrationsConfig{Dir: "db/migrations"}}

	assert.Equal(t, "/custom/migrations", migrationsDir(CLI{Dir: "/custom/migrations"}, cfg))
}

func TestMigrationsDir_FromConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MIGRATIONS_DIR", "/from/env")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", migrationsDir(CLI{}, cfg))
}

func TestCLI_Parse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("migrate"))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"create", "add_loans_returned_at"})
	require.NoError(t, err)
	assert.Equal(t, "create <name>", ctx.Command())
	assert.Equal(t, "add_loans_returned_at", cli.Create.Name)

	ctx, err = parser.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, "up", ctx.Command())
}

func TestWithDB_RejectsSQLite(t *testing.T) {
	e := &env{cfg: &config.Config{DB: config.DBConfig{Driver: "sqlite"}}}

	err := withDB(e, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
