// Package student defines the Student record validated by the fieldcheck
// command.
package student

import (
	"fmt"
	"strconv"

	"github.com/Gobd/fieldrules"
	"github.com/Gobd/fieldrules/transform"
	"github.com/spf13/viper"
)

// Keys of the Student fields, shared by JSON, flags and environment.
const (
	KeyID        = "id"
	KeyName      = "name"
	KeyTelephone = "telephone"
	KeyBirthday  = "birthday"
)

// Student is a student record. Nil fields are absent.
type Student struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	Telephone *string `json:"telephone"`
	Birthday  *string `json:"birthday" validate:"-"`
}

func (s *Student) Rules() []*fieldrules.FieldRules {
	return []*fieldrules.FieldRules{
		fieldrules.Field(&s.ID, fieldrules.Required("id不能为空")),
		fieldrules.Field(&s.Name, fieldrules.MinLength(1, "姓名不能为空")),
		fieldrules.Field(&s.Telephone,
			fieldrules.Required("手机号不能为空"),
			fieldrules.Pattern("[0-9]{11}", "手机格式错误"),
		),
	}
}

// Normalize trims surrounding whitespace from the string fields.
func (s *Student) Normalize() {
	transform.StructTrimSpace(s)
}

// FromViper builds a Student from the keys set in v. Keys that are not set
// leave their field absent.
func FromViper(v *viper.Viper) (*Student, error) {
	s := &Student{}
	if v.IsSet(KeyID) {
		id, err := strconv.Atoi(v.GetString(KeyID))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyID, err)
		}
		s.ID = &id
	}
	s.Name = optionalString(v, KeyName)
	s.Telephone = optionalString(v, KeyTelephone)
	s.Birthday = optionalString(v, KeyBirthday)
	s.Normalize()
	return s, nil
}

func optionalString(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}
	s := v.GetString(key)
	return &s
}
