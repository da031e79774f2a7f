package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveFormat(t *testing.T) {
	assert.Equal(t, ".msgpack", SaveFormatMsgpack.Ext())
	assert.Equal(t, ".json", SaveFormatJSON.Ext())
	assert.True(t, SaveFormatJSON.Valid())
	assert.False(t, SaveFormat("yaml").Valid())
}
