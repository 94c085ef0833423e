package fieldrules_test

import (
	"testing"

	v "github.com/Gobd/fieldrules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types for schema generation ---

type schemaBasic struct {
	Name  *string `json:"name"`
	Phone string  `json:"phone"`
	Notes string  `json:"notes"`
	Age   int     `json:"age"`
}

func (s *schemaBasic) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&s.Name, v.Required("name is required"), v.MinLength(1, "name is empty"), v.MaxLength(100, "name is too long")),
		v.Field(&s.Phone, v.Pattern(`^[0-9]{11}$`, "bad phone")),
		v.Field(&s.Age, v.Required("age is required")),
	}
}

// --- Embedded struct ---

type schemaEmbedBase struct {
	ID *string `json:"id"`
}

type schemaWithEmbed struct {
	schemaEmbedBase
	Value string `json:"value"`
}

func (s *schemaWithEmbed) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&s.ID, v.Required("id is required")),
		v.Field(&s.Value, v.MaxLength(10, "value is too long")),
	}
}

// --- Nested Ruler documented on its own ---

type schemaParent struct {
	Title string      `json:"title"`
	Child schemaBasic `json:"child"`
}

func (s *schemaParent) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&s.Title, v.MinLength(1, "title is required")),
	}
}

// --- Tests ---

func TestSchemaBasic(t *testing.T) {
	ref, err := v.NewSchemaRefForValue(schemaBasic{})
	require.NoError(t, err)
	s := ref.Value

	assert.ElementsMatch(t, []string{"name", "age"}, s.Required)

	name := s.Properties["name"].Value
	assert.Equal(t, uint64(1), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(100), *name.MaxLength)
	assert.False(t, name.Nullable)

	assert.Equal(t, `^[0-9]{11}$`, s.Properties["phone"].Value.Pattern)

	notes := s.Properties["notes"].Value
	assert.Zero(t, notes.MinLength)
	assert.Nil(t, notes.MaxLength)
	assert.Empty(t, notes.Pattern)
}

func TestSchemaPointerValue(t *testing.T) {
	ref, err := v.NewSchemaRefForValue(&schemaBasic{})
	require.NoError(t, err)
	assert.Contains(t, ref.Value.Required, "name")
}

func TestSchemaEmbedded(t *testing.T) {
	ref, err := v.NewSchemaRefForValue(schemaWithEmbed{})
	require.NoError(t, err)
	s := ref.Value

	assert.Contains(t, s.Required, "id")
	require.Contains(t, s.Properties, "value")
	assert.Equal(t, uint64(10), *s.Properties["value"].Value.MaxLength)
}

func TestSchemaNested(t *testing.T) {
	ref, err := v.NewSchemaRefForValue(schemaParent{})
	require.NoError(t, err)
	s := ref.Value

	assert.Equal(t, uint64(1), s.Properties["title"].Value.MinLength)
	child := s.Properties["child"].Value
	assert.ElementsMatch(t, []string{"name", "age"}, child.Required)
}

func TestSchemaConfigError(t *testing.T) {
	_, err := v.NewSchemaRefForValue(minOnInt{})
	require.Error(t, err)
	assert.True(t, v.IsConfigError(err))
}

func TestSchemaNonRuler(t *testing.T) {
	type plain struct {
		Name string `json:"name"`
	}
	ref, err := v.NewSchemaRefForValue(plain{})
	require.NoError(t, err)
	assert.Empty(t, ref.Value.Required)
}
