package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/schematicscan/internal/grid"
	"github.com/specialistvlad/schematicscan/internal/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeSchematic(t, t.TempDir(), "engine.txt", sampleSchematic)
	testApp, out, logs := setupAppTest(t, Config{InputPath: path}, nil)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "part_sum: 4361\ngear_ratio_sum: 467835\n", out.String())
	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "Schematic analyzed.")
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, Config{InputPath: StdinPath}, strings.NewReader(sampleSchematic))

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "part_sum: 4361\ngear_ratio_sum: 467835\n", out.String())
}

func TestRun_DirectoryBatchJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeSchematic(t, dir, "a.txt", sampleSchematic)
	writeSchematic(t, dir, "b.txt", "12*\n..3\n")
	writeSchematic(t, dir, "ignored.md", "not a schematic")

	testApp, out, _ := setupAppTest(t, Config{InputPath: dir, Format: "json", Workers: 3}, nil)

	// --- Act ---
	require.NoError(t, testApp.Run(context.Background()))

	// --- Assert ---
	var doc struct {
		Schematics []struct {
			Source       string `json:"source"`
			PartSum      int    `json:"part_sum"`
			GearRatioSum int    `json:"gear_ratio_sum"`
		} `json:"schematics"`
		Total struct {
			PartSum      int `json:"part_sum"`
			GearRatioSum int `json:"gear_ratio_sum"`
		} `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc), out.String())
	require.Len(t, doc.Schematics, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), doc.Schematics[0].Source)
	assert.Equal(t, 15, doc.Schematics[1].PartSum)
	assert.Equal(t, 36, doc.Schematics[1].GearRatioSum)
	assert.Equal(t, 4361+15, doc.Total.PartSum)
	assert.Equal(t, 467835+36, doc.Total.GearRatioSum)
}

func TestRun_DirectoryWithOneSchematic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeSchematic(t, dir, "only.txt", sampleSchematic)
	testApp, out, _ := setupAppTest(t, Config{InputPath: dir}, nil)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t,
		path+": part_sum=4361 gear_ratio_sum=467835\n"+
			"total: part_sum=4361 gear_ratio_sum=467835\n",
		out.String())
}

func TestRun_OverflowAbortsWithoutReport(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, Config{InputPath: StdinPath}, strings.NewReader("4294967296*4294967296\n"))
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, schematic.ErrNumberOverflow)
	assert.Empty(t, out.String())
}

func TestRun_ProfileChangesAlphabet(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	profile := writeSchematic(t, dir, "profile.hcl", "scanner {\n  separator = \"_\"\n  gear = \"^\"\n  symbols = [\"^\"]\n}\n")
	input := writeSchematic(t, dir, "in.txt", "2_\n^3\n")

	testApp, out, _ := setupAppTest(t, Config{InputPath: input, ProfilePath: profile}, nil)

	// --- Act & Assert ---
	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "part_sum: 5\ngear_ratio_sum: 6\n", out.String())
}

func TestRun_MalformedGridAbortsWithoutReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSchematic(t, dir, "a.txt", sampleSchematic)
	writeSchematic(t, dir, "b.txt", "...\n..\n")

	testApp, out, _ := setupAppTest(t, Config{InputPath: dir}, nil)
	err := testApp.Run(context.Background())

	require.Error(t, err)
	var malformed *grid.MalformedGridError
	assert.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "b.txt")
	assert.Empty(t, out.String(), "no partial results are reported")
}

func TestRun_UnexpectedCharacter(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, Config{InputPath: StdinPath}, strings.NewReader("1.\n.?\n"))
	err := testApp.Run(context.Background())

	var unexpected *schematic.UnexpectedCharacterError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, byte('?'), unexpected.Char)
}

func TestRun_NoSchematicsFound(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, Config{InputPath: t.TempDir()}, nil)
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt schematics found")
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, Config{InputPath: filepath.Join(t.TempDir(), "missing.txt")}, nil)
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_NoStdinReader(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, Config{InputPath: StdinPath}, nil)
	err := testApp.Run(context.Background())
	assert.EqualError(t, err, "no standard input available")
}

func TestNewApp_BadProfile(t *testing.T) {
	t.Parallel()

	profile := writeSchematic(t, t.TempDir(), "profile.hcl", `scanner { gear = "##" }`)
	cfg, err := NewConfig(Config{InputPath: StdinPath, ProfilePath: profile})
	require.NoError(t, err)

	_, err = NewApp(&SafeBuffer{}, &SafeBuffer{}, nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "gear must be exactly one ASCII character")
}
