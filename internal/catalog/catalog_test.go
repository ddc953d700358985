package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/khrees2412/careerkit/internal/schemas"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	jobs := Generate()
	require.Len(t, jobs, Size)

	first := jobs[0]
	assert.Equal(t, "job-0", first.ID)
	assert.Equal(t, "SDE Intern", first.Title)
	assert.Equal(t, "Infosys", first.Company)
	assert.Equal(t, "Bengaluru", first.Location)
	assert.Equal(t, models.ModeRemote, first.Mode)
	assert.Equal(t, []string{"React", "Node.js", "Java"}, first.Skills)
	assert.Equal(t, "LinkedIn", first.Source)
	assert.Equal(t, 0, first.PostedDaysAgo)
	assert.Equal(t, "https://infosys.com/careers/jobs/0", first.ApplyURL)

	j := jobs[13]
	assert.Equal(t, "Razorpay", j.Company)
	assert.Equal(t, "Graduate Engineer Trainee", j.Title)
	assert.Equal(t, []string{"Node.js", "Java", "Python", "AWS"}, j.Skills)
	assert.Equal(t, 2, j.PostedDaysAgo)
	assert.Contains(t, j.Description, "Graduate Engineer Trainee to join our engineering team at Razorpay.")

	assert.Equal(t, jobs, Generate())
}

func TestGenerateUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, j := range Generate() {
		assert.False(t, seen[j.ID], j.ID)
		seen[j.ID] = true
		assert.GreaterOrEqual(t, len(j.Skills), 3)
		assert.LessOrEqual(t, len(j.Skills), 5)
	}
}

func TestGeneratedCatalogMatchesSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	jobs := Generate()[:5]
	data, err := json.Marshal(jobs)
	require.NoError(t, err)
	require.NoError(t, schemas.ValidateCatalog(data))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, jobs, loaded)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x"}]`), 0o644))

	_, err := Load(path)
	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestOpenDefaultsToGenerated(t *testing.T) {
	jobs, err := Open("")
	require.NoError(t, err)
	assert.Len(t, jobs, Size)
}

func TestFindAndDistinct(t *testing.T) {
	jobs := Generate()
	j, ok := Find(jobs, "job-7")
	require.True(t, ok)
	assert.Equal(t, "Python Developer (Fresher)", j.Title)

	_, ok = Find(jobs, "job-999")
	assert.False(t, ok)

	assert.Equal(t, Locations, Distinct(jobs, func(j models.Job) string { return j.Location }))
	assert.Equal(t, Sources, Distinct(jobs, func(j models.Job) string { return j.Source }))
}
