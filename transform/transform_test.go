package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/fieldrules/transform"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Code string
}

type record struct {
	inner
	Name     string
	Nickname *string
	Missing  *string
	Count    int
	secret   string
}

func ptr(s string) *string { return &s }

func TestStructTrimSpace(t *testing.T) {
	r := &record{
		inner:    inner{Code: " ab "},
		Name:     "  Alice ",
		Nickname: ptr("\tal\n"),
		secret:   " keep ",
	}
	transform.StructTrimSpace(r)

	assert.Equal(t, "ab", r.Code)
	assert.Equal(t, "Alice", r.Name)
	assert.Equal(t, "al", *r.Nickname)
	assert.Nil(t, r.Missing)
	assert.Equal(t, " keep ", r.secret)
}

func TestStructNilIfEmpty(t *testing.T) {
	r := &record{Nickname: ptr(""), Name: ""}
	transform.StructNilIfEmpty(r)
	assert.Nil(t, r.Nickname)
	assert.Equal(t, "", r.Name)
}

func TestStructMulti(t *testing.T) {
	r := &record{Name: "  Bob  ", Nickname: ptr("   ")}
	transform.StructMulti(r,
		transform.StructTrimSpace,
		transform.StructNilIfEmpty,
		func(v any) { transform.StructStringFunc(v, strings.ToUpper) },
	)
	assert.Equal(t, "BOB", r.Name)
	assert.Nil(t, r.Nickname)
}

func TestStructStringFuncIgnoresNonPointer(t *testing.T) {
	r := record{Name: " x "}
	transform.StructTrimSpace(r)
	assert.Equal(t, " x ", r.Name)
}
