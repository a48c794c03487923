package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"sixfiveohtwo/types"
)

func TestKeyboardEmptyReadsZero(t *testing.T) {
	k := NewKeyboard()
	assert.Equal(t, types.Byte(0), k.Tx(KeyboardData))
	assert.Equal(t, types.Byte(0), k.Tx(KeyboardReady))
}

func TestKeyboardPushThenDrain(t *testing.T) {
	k := NewKeyboard()
	k.Push('a')
	k.Push('b')

	assert.NotEqual(t, types.Byte(0), k.Tx(KeyboardReady))
	assert.Equal(t, types.Byte('a'), k.Tx(KeyboardData))
	assert.Equal(t, types.Byte('b'), k.Tx(KeyboardData))
	assert.Equal(t, types.Byte(0), k.Tx(KeyboardReady))
}

func TestKeyboardPoll(t *testing.T) {
	k := NewKeyboard()
	assert.NoError(t, k.Poll(strings.NewReader("hi")))
	assert.Equal(t, types.Byte('h'), k.Tx(KeyboardData))
	assert.Equal(t, types.Byte('i'), k.Tx(KeyboardData))
}
