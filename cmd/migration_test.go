package cmd

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr    error
	stepsErr error
	steps    int
}

func (f *fakeMigrator) Up() error {
	return f.upErr
}

func (f *fakeMigrator) Steps(n int) error {
	f.steps = n
	return f.stepsErr
}

func TestApplyMigrationsUp(t *testing.T) {
	message, err := applyMigrations(&fakeMigrator{}, "up")
	require.NoError(t, err)
	assert.Equal(t, "Applied migrations successfully.", message)
}

func TestApplyMigrationsDown(t *testing.T) {
	m := &fakeMigrator{}
	message, err := applyMigrations(m, "down")
	require.NoError(t, err)
	assert.Equal(t, "Reverted last migration successfully.", message)
	assert.Equal(t, -1, m.steps)
}

func TestApplyMigrationsNoChange(t *testing.T) {
	message, err := applyMigrations(&fakeMigrator{upErr: migrate.ErrNoChange}, "up")
	require.NoError(t, err)
	assert.Equal(t, "Applied migrations successfully.", message)
}

func TestApplyMigrationsFailureReturnsNoMessage(t *testing.T) {
	m := &fakeMigrator{upErr: errors.New("dirty database version 3")}
	message, err := applyMigrations(m, "up")
	require.Error(t, err)
	assert.Empty(t, message)
}

func TestApplyMigrationsUnknownDirection(t *testing.T) {
	_, err := applyMigrations(&fakeMigrator{}, "sideways")
	require.Error(t, err)
}
