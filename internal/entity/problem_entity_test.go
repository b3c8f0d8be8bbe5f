package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemExcerpt(t *testing.T) {
	p := &Problem{Descriptions: []string{"first", "second"}}
	assert.Equal(t, "first", p.Excerpt())
	assert.Equal(t, "", (&Problem{}).Excerpt())
}
