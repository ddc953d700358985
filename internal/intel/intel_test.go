package intel

import (
	"encoding/json"
	"testing"

	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want models.CompanySize
	}{
		{"", models.SizeUnknown},
		{"Google", models.SizeEnterprise},
		{"JPMorgan Chase", models.SizeEnterprise},
		{"Google India", models.SizeStartup},
		{"Stanford University", models.SizeEnterprise},
		{"City College", models.SizeEnterprise},
		{"Acme Solutions", models.SizeMidSize},
		{"FinTech Labs", models.SizeMidSize},
		{"Razorpay", models.SizeStartup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestGenerate(t *testing.T) {
	assert.Nil(t, Generate(""))

	ci := Generate("Infosys")
	require.NotNil(t, ci)
	assert.Equal(t, "Infosys", ci.Name)
	assert.Equal(t, Industry, ci.Industry)
	assert.Equal(t, models.SizeEnterprise, ci.Size)
	assert.Equal(t, "Structured Problem-Solving", ci.HiringFocus)

	assert.Equal(t, "Practical Skills & Scalability", Generate("Nimbus Tech").HiringFocus)
	assert.Equal(t, "Stack Versatility & Impact", Generate("Zepto").HiringFocus)
}

func TestRoundsEnterprise(t *testing.T) {
	rounds := Rounds(models.ExtractedSkills{Web: []string{"React"}}, Generate("Amazon"))
	require.Len(t, rounds, 4)
	assert.Equal(t, "Online Assessment", rounds[0].Title)
	assert.Equal(t, "Hiring Manager / HR Round", rounds[3].Title)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Round)
	}

	// callers may not mutate the shared table
	rounds[0].Title = "changed"
	assert.Equal(t, "Online Assessment", Rounds(models.ExtractedSkills{}, Generate("Amazon"))[0].Title)
}

func TestRoundsWebFocus(t *testing.T) {
	withWeb := Rounds(models.ExtractedSkills{Web: []string{"React"}}, Generate("Acme Solutions"))
	assert.Equal(t, "Practical Coding Challenge", withWeb[0].Focus)
	assert.Equal(t, "Stack-Specific Implementation", withWeb[1].Focus)

	noWeb := Rounds(models.ExtractedSkills{CoreCS: []string{"DSA"}}, nil)
	assert.Equal(t, "Problem-Solving", noWeb[0].Focus)
	assert.Equal(t, "Advanced DSA", noWeb[1].Focus)
	assert.Equal(t, "Founder / Team-Fit Round", noWeb[3].Title)
}

func TestRoundsDeterministic(t *testing.T) {
	skills := models.ExtractedSkills{Web: []string{"React"}, Data: []string{"SQL"}}
	ci := Generate("Acme")

	a, err := json.Marshal(Rounds(skills, ci))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b, err := json.Marshal(Rounds(skills, ci))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
