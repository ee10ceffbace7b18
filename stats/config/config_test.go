package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markerscan/stats/scanner"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TARGET_CHROMOSOME", "EMPTY_VALUE", "MALFORMED_POLICY", "MALE_THRESHOLD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "24", cfg.Chromosome)
	assert.Equal(t, "0", cfg.EmptyValue)
	assert.Equal(t, "abort", cfg.MalformedPolicy)
	assert.Equal(t, scanner.DefaultMaleThreshold, cfg.MaleThreshold)

	opts, err := cfg.ScanOptions()
	require.NoError(t, err)
	assert.Equal(t, scanner.DefaultOptions(), opts)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "TARGET_CHROMOSOME=23\nEMPTY_VALUE=--\nMALFORMED_POLICY=skip\nMALE_THRESHOLD=42\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Chromosome:      "23",
		EmptyValue:      "--",
		MalformedPolicy: "skip",
		MaleThreshold:   42,
	}, cfg)

	opts, err := cfg.ScanOptions()
	require.NoError(t, err)
	assert.Equal(t, scanner.PolicySkip, opts.Policy)
}

func TestLoadBadThresholdFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MALE_THRESHOLD", "many")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, scanner.DefaultMaleThreshold, cfg.MaleThreshold)
}

func TestScanOptionsRejectsUnknownPolicy(t *testing.T) {
	cfg := &Config{Chromosome: "24", EmptyValue: "0", MalformedPolicy: "retry"}
	_, err := cfg.ScanOptions()
	assert.Error(t, err)
}
