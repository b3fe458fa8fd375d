package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr      error
	steps      []int
	migratedTo []uint
	migrateErr error
	version    uint
	dirty      bool
	versionErr error
}

func (f *fakeMigrator) Up() error { return f.upErr }

func (f *fakeMigrator) Steps(n int) error {
	f.steps = append(f.steps, n)
	return nil
}

func (f *fakeMigrator) Migrate(version uint) error {
	f.migratedTo = append(f.migratedTo, version)
	return f.migrateErr
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}

func TestRunUp(t *testing.T) {
	msg, err := run(&fakeMigrator{}, []string{"up"})
	require.NoError(t, err)
	assert.Equal(t, "migrations applied", msg)

	msg, err = run(&fakeMigrator{upErr: migrate.ErrNoChange}, []string{"up"})
	require.NoError(t, err)
	assert.Equal(t, "database is up to date", msg)

	boom := errors.New("boom")
	_, err = run(&fakeMigrator{upErr: boom}, []string{"up"})
	assert.ErrorIs(t, err, boom)
}

func TestRunDownStepsBackOnce(t *testing.T) {
	m := &fakeMigrator{}
	_, err := run(m, []string{"down"})
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, m.steps)
}

func TestRunGoto(t *testing.T) {
	m := &fakeMigrator{}
	msg, err := run(m, []string{"goto", "3"})
	require.NoError(t, err)
	assert.Equal(t, "migrated to version 3", msg)
	assert.Equal(t, []uint{3}, m.migratedTo)

	_, err = run(m, []string{"goto"})
	assert.ErrorIs(t, err, errUsage)

	_, err = run(m, []string{"goto", "abc"})
	assert.ErrorContains(t, err, "invalid version number")
}

func TestRunVersion(t *testing.T) {
	msg, err := run(&fakeMigrator{version: 1, dirty: true}, []string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version 1 (dirty)", msg)

	msg, err = run(&fakeMigrator{versionErr: migrate.ErrNilVersion}, []string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "no migrations applied yet", msg)
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := run(&fakeMigrator{}, []string{"status"})
	assert.ErrorIs(t, err, errUsage)

	_, err = run(&fakeMigrator{}, nil)
	assert.ErrorIs(t, err, errUsage)
}
