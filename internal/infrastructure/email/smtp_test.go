package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplySubject(t *testing.T) {
	assert.Equal(t, "Re: Booking change", replySubject("Booking change"))
	assert.Equal(t, "Re: Booking change", replySubject("Re: Booking change"))
	assert.Equal(t, "RE: urgent", replySubject("RE: urgent"))
}

func TestEnsureAngleBrackets(t *testing.T) {
	assert.Equal(t, "<abc@mail>", ensureAngleBrackets("abc@mail"))
	assert.Equal(t, "<abc@mail>", ensureAngleBrackets("<abc@mail>"))
}
