package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema(CommandDef{"zadd", "key score member", "NX|XX; CH; LIMIT offset count; score member ..."})
	require.NoError(t, err)
	assert.Equal(t, "ZADD", s.Name)
	require.Len(t, s.Required, 3)
	assert.Equal(t, ArgSpec{Spec: SpecKindOf, Kind: KindKey}, s.Required[0])
	assert.Equal(t, ArgSpec{Spec: SpecKindOf, Kind: KindScore}, s.Required[1])

	require.Len(t, s.Optional, 4)
	assert.Equal(t, OptionalArg{Shape: OptAlternatives, Alternatives: []string{"NX", "XX"}}, s.Optional[0])
	assert.Equal(t, OptionalArg{Shape: OptLiteral, Token: "CH"}, s.Optional[1])
	assert.Equal(t, OptionalArg{Shape: OptTokenWithType, Token: "LIMIT", Args: []ArgSpec{
		{Spec: SpecKindOf, Kind: KindOffset},
		{Spec: SpecKindOf, Kind: KindCount},
	}}, s.Optional[2])
	assert.Equal(t, OptionalArg{Shape: OptValues, Args: []ArgSpec{
		{Spec: SpecKindOf, Kind: KindScore},
		{Spec: SpecKindOf, Kind: KindMember},
	}}, s.Optional[3])
}

func TestParseSchemaShapes(t *testing.T) {
	s, err := ParseSchema(CommandDef{"acl  cat", "MIN|MAX LEFT", "key; ON HASH|JSON"})
	require.NoError(t, err)
	assert.Equal(t, "ACL CAT", s.Name)
	assert.Equal(t, ArgSpec{Spec: SpecAlternatives, Alternatives: []string{"MIN", "MAX"}}, s.Required[0])
	assert.Equal(t, ArgSpec{Spec: SpecLiteral, Token: "LEFT"}, s.Required[1])
	assert.Equal(t, OptionalArg{Shape: OptValues, Args: []ArgSpec{{Spec: SpecKindOf, Kind: KindKey}}}, s.Optional[0])
	assert.Equal(t, OptionalArg{Shape: OptTokenWithType, Token: "ON", Args: []ArgSpec{
		{Spec: SpecAlternatives, Alternatives: []string{"HASH", "JSON"}},
	}}, s.Optional[1])
}

func TestParseSchemaErrors(t *testing.T) {
	for _, def := range []CommandDef{
		{"", "", ""},
		{"GET", "nosuchkind", ""},
		{"SET", "key value", "EX seconds; "},
		{"SET", "key value", "bogus seconds"},
		{"SET", "key value", "EX KEEPTTL"},
	} {
		_, err := ParseSchema(def)
		assert.Error(t, err, "%+v", def)
	}
}

func TestCatalog(t *testing.T) {
	_, err := NewCatalog([]CommandDef{{"GET", "key", ""}, {"get", "key", ""}})
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewCatalog([]CommandDef{{"GET", "what", ""}}) })

	c := DefaultCatalog()
	assert.True(t, c == DefaultCatalog())
	assert.Equal(t, len(commandDefs), c.Len())
	names := c.Names()
	require.Len(t, names, c.Len())
	for i, s := range c.Schemas() {
		assert.Equal(t, names[i], s.Name)
		got, ok := c.Lookup(s.Name)
		assert.True(t, ok)
		assert.True(t, got == s)
	}
	_, ok := c.Lookup("ACL CAT")
	assert.True(t, ok)
	_, ok = c.Lookup("get")
	assert.False(t, ok)
}
