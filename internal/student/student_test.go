package student_test

import (
	"testing"

	"github.com/Gobd/fieldrules"
	"github.com/Gobd/fieldrules/internal/student"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](x T) *T { return &x }

func TestRulesRegister(t *testing.T) {
	require.NoError(t, fieldrules.Register(&student.Student{}))
	assert.Empty(t, fieldrules.MissingRules(&student.Student{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    *student.Student
		want string
	}{
		{
			name: "id absent",
			s:    &student.Student{Telephone: ptr("15858293092"), Birthday: ptr("!")},
			want: "id不能为空",
		},
		{
			name: "name absent",
			s:    &student.Student{ID: ptr(1), Telephone: ptr("15858293092"), Birthday: ptr("!")},
			want: "姓名不能为空",
		},
		{
			name: "all valid",
			s:    &student.Student{ID: ptr(1), Name: ptr("Alice"), Telephone: ptr("15858293092")},
		},
		{
			name: "bad telephone",
			s:    &student.Student{ID: ptr(1), Name: ptr("Alice"), Telephone: ptr("123")},
			want: "手机格式错误",
		},
		{
			name: "telephone absent",
			s:    &student.Student{ID: ptr(1), Name: ptr("Alice")},
			want: "手机号不能为空",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := fieldrules.Check(tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestNormalize(t *testing.T) {
	s := &student.Student{Name: ptr("  "), Telephone: ptr(" 15858293092 ")}
	s.Normalize()
	assert.Equal(t, "", *s.Name)
	assert.Equal(t, "15858293092", *s.Telephone)
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set(student.KeyID, "7")
	v.Set(student.KeyName, " Alice ")

	s, err := student.FromViper(v)
	require.NoError(t, err)
	require.NotNil(t, s.ID)
	assert.Equal(t, 7, *s.ID)
	assert.Equal(t, "Alice", *s.Name)
	assert.Nil(t, s.Telephone)
	assert.Nil(t, s.Birthday)
}

func TestFromViperBadID(t *testing.T) {
	v := viper.New()
	v.Set(student.KeyID, "seven")

	_, err := student.FromViper(v)
	assert.ErrorContains(t, err, "id")
}
