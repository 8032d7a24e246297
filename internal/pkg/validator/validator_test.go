package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gt=0,lte=10"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "a", Count: 3}))

	errs := Validate(sample{Count: 11})
	assert.Equal(t, map[string]string{"Name": "required", "Count": "lte"}, errs)
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "a", Count: 1}))

	err := Struct(sample{})
	assert.EqualError(t, err, `validation failed: Count failed on "gt", Name failed on "required"`)
}
