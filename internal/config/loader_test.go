package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herobattle/internal/config"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadAll_Defaults(t *testing.T) {
	hc, rc, err := config.LoadAll("")
	require.NoError(t, err)

	require.Len(t, hc.Heroes, 4)
	thor, ok := hc.Find("Thor")
	require.True(t, ok)
	assert.Equal(t, 7, thor.Level)
	assert.Nil(t, thor.Defense, "the built-in lineup keeps roster defaults")
	assert.Nil(t, thor.CritChance)
	assert.Nil(t, thor.DodgeChance)

	assert.Equal(t, &config.RulesConfig{
		SpecialCost:   50,
		AttackEnergy:  15,
		HealEnergy:    10,
		PassEnergy:    25,
		PassHealRatio: 0.05,
		Rounds:        5,
	}, rc)
}

func TestLoadAll_EmptyDirKeepsDefaults(t *testing.T) {
	hc, rc, err := config.LoadAll(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, hc.Heroes, 4)
	assert.Equal(t, 5, rc.Rounds)
}

func TestLoadAll_Overlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "heroes.yaml", `
heroes:
  - name: Ayla
    level: 3
    health: 90
    attack: 20
  - name: Brom
    level: 4
    health: 140
    attack: 15
    defense: 10
`)
	writeFile(t, dir, "rules.yaml", "rounds: 12\npass_energy: 30\n")

	hc, rc, err := config.LoadAll(dir)
	require.NoError(t, err)

	require.Len(t, hc.Heroes, 2, "a heroes file replaces the catalog")
	_, ok := hc.Find("Thor")
	assert.False(t, ok)
	ayla, ok := hc.Find("Ayla")
	require.True(t, ok)
	assert.Nil(t, ayla.Defense)
	assert.Nil(t, ayla.CritChance)
	brom, ok := hc.Find("Brom")
	require.True(t, ok)
	require.NotNil(t, brom.Defense)
	assert.Equal(t, 10, *brom.Defense)

	assert.Equal(t, 12, rc.Rounds)
	assert.Equal(t, 30, rc.PassEnergy)
	assert.Equal(t, 50, rc.SpecialCost, "fields missing from the file keep defaults")
}

func TestLoadAll_Rejects(t *testing.T) {
	tests := []struct {
		name, file, body, errPart string
	}{
		{"level out of range", "heroes.yaml", "heroes:\n  - {name: x, level: 0, health: 50, attack: 10}\n", "heroes.yaml"},
		{"crit above one", "heroes.yaml", "heroes:\n  - {name: x, level: 1, health: 50, attack: 10, crit_chance: 1.5}\n", "heroes.yaml"},
		{"duplicate", "heroes.yaml", "heroes:\n  - {name: x, level: 1, health: 50, attack: 10}\n  - {name: x, level: 2, health: 60, attack: 12}\n", `duplicate hero "x"`},
		{"empty catalog", "heroes.yaml", "heroes: []\n", "heroes.yaml"},
		{"zero rounds", "rules.yaml", "rounds: 0\n", "rules.yaml"},
		{"bad yaml", "rules.yaml", "rounds: [\n", "rules.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.body)
			_, _, err := config.LoadAll(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestHeroesConfig_FindOnNil(t *testing.T) {
	var hc *config.HeroesConfig
	_, ok := hc.Find("Thor")
	assert.False(t, ok)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("HEROBATTLE_SEED", "99")
	t.Setenv("HEROBATTLE_ROUNDS", "7")
	t.Setenv("HEROBATTLE_LOG_FORMAT", "json")

	s, err := config.ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Settings{
		Seed:      99,
		Rounds:    7,
		LogLevel:  "info",
		LogFormat: "json",
		Workers:   8,
	}, s)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("HEROBATTLE_WORKERS", "many")
	_, err := config.ParseEnv()
	assert.Error(t, err)
}
