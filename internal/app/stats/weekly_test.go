package stats

import (
	"testing"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name string, t models.GrievanceType) models.Grievance {
	g := models.Grievance{
		ID:   uuid.New(),
		Type: t,
	}
	if name != "" {
		g.Student = &models.Student{ID: uuid.New(), Name: name}
	}
	return g
}

func TestWeeklySingleStudent(t *testing.T) {
	records := []models.Grievance{
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeLateArrival),
	}

	result := Weekly(records, DefaultRepeatThreshold)

	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].StudentName)
	assert.Equal(t, 3, result[0].Count)
	assert.Equal(t, []models.GrievanceType{models.GrievanceTypeUniform, models.GrievanceTypeLateArrival}, result[0].Types)
	assert.True(t, result[0].RepeatOffender)
}

func TestWeeklyEmptyInput(t *testing.T) {
	result := Weekly(nil, DefaultRepeatThreshold)
	assert.Empty(t, result)

	result = Weekly([]models.Grievance{}, DefaultRepeatThreshold)
	assert.Empty(t, result)
}

func TestWeeklyMissingJoinCountsAsUnknown(t *testing.T) {
	records := []models.Grievance{
		record("", models.GrievanceTypeShoes),
		record("Bora", models.GrievanceTypeUniform),
		record("", models.GrievanceTypeOther),
	}

	result := Weekly(records, DefaultRepeatThreshold)

	require.Len(t, result, 2)
	assert.Equal(t, models.UnknownStudentName, result[0].StudentName)
	assert.Equal(t, 2, result[0].Count)
	assert.Equal(t, "Bora", result[1].StudentName)
	assert.Equal(t, 1, result[1].Count)
}

func TestWeeklySortedDescendingByCount(t *testing.T) {
	records := []models.Grievance{
		record("Cem", models.GrievanceTypeUniform),
		record("Derya", models.GrievanceTypeShoes),
		record("Derya", models.GrievanceTypeHairCut),
		record("Derya", models.GrievanceTypeShoes),
		record("Cem", models.GrievanceTypeOther),
		record("Ela", models.GrievanceTypeLateArrival),
	}

	result := Weekly(records, DefaultRepeatThreshold)

	require.Len(t, result, 3)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Count, result[i].Count)
	}
	assert.Equal(t, "Derya", result[0].StudentName)
}

func TestWeeklyTiesKeepFirstAppearanceOrder(t *testing.T) {
	records := []models.Grievance{
		record("Cem", models.GrievanceTypeUniform),
		record("Ayla", models.GrievanceTypeShoes),
		record("Bora", models.GrievanceTypeHairCut),
	}

	result := Weekly(records, DefaultRepeatThreshold)

	require.Len(t, result, 3)
	assert.Equal(t, "Cem", result[0].StudentName)
	assert.Equal(t, "Ayla", result[1].StudentName)
	assert.Equal(t, "Bora", result[2].StudentName)
}

func TestWeeklyTypesAreDeduplicated(t *testing.T) {
	records := []models.Grievance{
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeShoes),
		record("Alice", models.GrievanceTypeShoes),
	}

	result := Weekly(records, DefaultRepeatThreshold)

	require.Len(t, result, 1)
	seen := map[models.GrievanceType]int{}
	for _, typ := range result[0].Types {
		seen[typ]++
	}
	for typ, n := range seen {
		assert.Equal(t, 1, n, "type %s appears more than once", typ)
	}
}

func TestWeeklyCountsMatchInput(t *testing.T) {
	records := []models.Grievance{
		record("Alice", models.GrievanceTypeUniform),
		record("Bora", models.GrievanceTypeShoes),
		record("Alice", models.GrievanceTypeOther),
		record("", models.GrievanceTypeOther),
		record("Alice", models.GrievanceTypeHairCut),
	}

	want := map[string]int{}
	for i := range records {
		want[records[i].StudentName()]++
	}

	result := Weekly(records, DefaultRepeatThreshold)

	total := 0
	for _, stat := range result {
		assert.Equal(t, want[stat.StudentName], stat.Count)
		total += stat.Count
	}
	assert.Equal(t, len(records), total)
}

func TestWeeklyIdempotent(t *testing.T) {
	records := []models.Grievance{
		record("Alice", models.GrievanceTypeUniform),
		record("Bora", models.GrievanceTypeShoes),
		record("Alice", models.GrievanceTypeLateArrival),
	}

	first := Weekly(records, DefaultRepeatThreshold)
	second := Weekly(records, DefaultRepeatThreshold)

	assert.Equal(t, first, second)
}

func TestWeeklyRepeatOffenderThreshold(t *testing.T) {
	records := []models.Grievance{
		record("Alice", models.GrievanceTypeUniform),
		record("Alice", models.GrievanceTypeShoes),
		record("Bora", models.GrievanceTypeUniform),
	}

	result := Weekly(records, 2)

	require.Len(t, result, 2)
	assert.True(t, result[0].RepeatOffender)
	assert.False(t, result[1].RepeatOffender)
}
