package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/types"
)

type scriptedCall struct {
	prompt string
	tier   llm.ModelTier
}

// fakeClient returns scripted responses in call order; a non-nil error at an
// index fails that call.
type fakeClient struct {
	responses []string
	errs      []error
	calls     []scriptedCall
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, scriptedCall{prompt: prompt, tier: tier})
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "scripted" }
func (f *fakeClient) Close() error                  { return nil }

func testResume() *types.ParsedResume {
	resume := types.NewParsedResume()
	resume.Experience = []types.ExperienceEntry{
		{Company: "Tech Corp", Position: "Engineer", StartDate: "2020", EndDate: "2023"},
	}
	resume.Skills = []string{"Python", "AWS"}
	return resume
}

func TestGenerate_CleanFirstDraft(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Worked at Tech Corp since 2020 using Python and AWS.\n",
	}}

	result, err := Generate(context.Background(), client, testResume(), "Backend role", KindSummary)
	require.NoError(t, err)

	assert.Equal(t, "Worked at Tech Corp since 2020 using Python and AWS.", result.Text)
	assert.Equal(t, KindSummary, result.Kind)
	assert.True(t, result.Report.Passed)
	assert.False(t, result.Regenerated)

	require.Len(t, client.calls, 1)
	assert.Equal(t, llm.TierStandard, client.calls[0].tier)
	assert.Contains(t, client.calls[0].prompt, "Backend role")
	assert.Contains(t, client.calls[0].prompt, "Tech Corp")
}

func TestGenerate_RegeneratesFlaggedDraft(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Led teams at Google Inc. using Python.",
		"Worked at Tech Corp using Python.",
	}}

	result, err := Generate(context.Background(), client, testResume(), "Backend role", KindCoverLetter)
	require.NoError(t, err)

	assert.Equal(t, "Worked at Tech Corp using Python.", result.Text)
	assert.True(t, result.Regenerated)
	assert.True(t, result.Report.Passed)

	require.Len(t, client.calls, 2)
	assert.Equal(t, llm.TierAdvanced, client.calls[1].tier)
	assert.Contains(t, client.calls[1].prompt, "Google Inc.")
	assert.Contains(t, client.calls[1].prompt, "Led teams at Google Inc. using Python.")
}

func TestGenerate_RetryFailureFallsBackToDraft(t *testing.T) {
	client := &fakeClient{
		responses: []string{"Led teams at Google Inc. using Python.", ""},
		errs:      []error{nil, errors.New("model unavailable")},
	}

	result, err := Generate(context.Background(), client, testResume(), "Backend role", KindSummary)
	require.NoError(t, err)

	assert.Equal(t, "Led teams at Google Inc. using Python.", result.Text)
	assert.False(t, result.Regenerated)
	assert.False(t, result.Report.Passed)
	require.Len(t, result.Report.Issues, 1)
	assert.Equal(t, types.IssueInventedEmployer, result.Report.Issues[0].Type)
}

func TestGenerate_UnknownKind(t *testing.T) {
	client := &fakeClient{}

	result, err := Generate(context.Background(), client, testResume(), "Backend role", Kind("poem"))
	assert.Nil(t, result)
	require.Error(t, err)

	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Empty(t, client.calls)
}

func TestGenerate_ModelFailure(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("quota exceeded")}}

	result, err := Generate(context.Background(), client, testResume(), "Backend role", KindSummary)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model call failed")
}
