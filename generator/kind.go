package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Kind is an argument kind. The set is closed: every Kind below has an
// entry in the kinds table, checked when the package loads.
type Kind uint8

// Argument kinds.
const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindKey
	KindKey1
	KindKey2
	KindField
	KindMember
	KindChannel
	KindShardChannel
	KindPattern
	KindValue
	KindMessage
	KindElement
	KindScore
	KindIndex
	KindCount
	KindCursor
	KindIncrement
	KindSeconds
	KindMilliseconds
	KindUnixTimeMs
	KindOffset
	KindPosition
	KindBound
	KindSubcommand
	KindSection
	KindScript
	KindNumKeys
	KindSHA1
	KindPassword
	KindUsername
	KindLongitude
	KindLatitude
	KindRadius
	KindUnit
	KindStreamID
	KindOperation
	KindBit
	KindCategory
	KindCommand
	KindBits
	KindRule
	KindGroup
	KindConsumer
	KindIdleTime
	KindWeight
	KindLimit
	KindItem
	KindErrorRate
	KindCapacity
	KindExpansion
	KindIterator
	KindData
	KindBucketSize
	KindMaxIterations
	KindProbability
	KindWidth
	KindDepth
	KindJSONPath
	KindIndent
	KindNewline
	KindSpace
	KindNumber
	KindVectorID
	KindVector
	KindDimensions
	KindAlgorithm
	KindM
	KindEFConstruction
	KindDistanceMetric
	KindInitialCap
	KindDataType
	KindEFRuntime
	KindAttributes
	KindHost
	KindPort
	KindNumReplicas
	KindDB
	KindTimeout
	KindSlot
	KindNodeID
	KindEpoch
	KindBusPort
	KindEvent
	KindLibrary
	KindFunction
	KindCode
	KindPayload
	KindLen
	KindModulePath
	KindName
	KindIP
	KindFrequency
	KindIndexName
	KindFilter
	KindLanguage
	KindLangField
	KindDefaultScore
	KindScoreField
	KindStopword
	KindQuery
	KindSynonymGroup
	KindTerm
	KindMaxBurst
	KindCountPerPeriod
	KindPeriod
	KindQuantity

	kindCount
)

type trait uint8

const (
	// base value plus a special character or an escape sequence
	traitSuffix trait = 1 << iota
	// fully mixed strings and \x binary strings
	traitFree
)

type kindInfo struct {
	name   string
	gen    func(c *Context) string
	traits trait
}

var (
	kindByName = make(map[string]Kind, kindCount)
	// kindAliases maps the argument names used by the catalog onto kinds.
	kindAliases = map[string]Kind{
		"newkey":           KindKey,
		"destkey":          KindKey,
		"sourcekey":        KindKey,
		"destination":      KindKey,
		"source":           KindKey,
		"dest":             KindKey,
		"dst":              KindKey,
		"src":              KindKey,
		"member1":          KindMember,
		"member2":          KindMember,
		"oldval":           KindValue,
		"newval":           KindValue,
		"arg":              KindString,
		"prefix":           KindString,
		"separator":        KindString,
		"decrement":        KindIncrement,
		"start":            KindPosition,
		"end":              KindPosition,
		"stop":             KindPosition,
		"min":              KindBound,
		"max":              KindBound,
		"ID":               KindStreamID,
		"last-id":          KindStreamID,
		"ms":               KindMilliseconds,
		"ttl":              KindMilliseconds,
		"ms-unix-time":     KindUnixTimeMs,
		"min-idle-time":    KindIdleTime,
		"groupname":        KindGroup,
		"consumername":     KindConsumer,
		"error":            KindProbability,
		"error_rate":       KindErrorRate,
		"num":              KindCount,
		"k":                KindCount,
		"version":          KindCount,
		"numlocal":         KindNumReplicas,
		"index1":           KindDB,
		"index2":           KindDB,
		"serialized-value": KindPayload,
		"lon":              KindLongitude,
		"lat":              KindLatitude,
		"default_lang":     KindLanguage,
		"sort_field":       KindField,
		"numeric_field":    KindField,
		"geo_field":        KindField,
		"identifier":       KindField,
	}
)

func init() {
	for k := Kind(0); k < kindCount; k++ {
		info := kinds[k]
		if info.name == "" || info.gen == nil {
			panic(fmt.Sprintf("generator: kind %d has no table entry", k))
		}
		if _, ok := kindByName[info.name]; ok {
			panic(fmt.Sprintf("generator: duplicate kind name %q", info.name))
		}
		kindByName[info.name] = k
	}
	for alias, k := range kindAliases {
		if _, ok := kindByName[alias]; ok {
			panic(fmt.Sprintf("generator: alias %q shadows a kind", alias))
		}
		if k >= kindCount {
			panic(fmt.Sprintf("generator: alias %q points to unknown kind %d", alias, k))
		}
	}
}

// LookupKind resolves an argument name, or one of its aliases, to a Kind.
func LookupKind(name string) (Kind, bool) {
	if k, ok := kindByName[name]; ok {
		return k, true
	}
	k, ok := kindAliases[name]
	return k, ok
}

// String returns the canonical name.
func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

const (
	lowerDigits  = "abcdefghijklmnopqrstuvwxyz0123456789"
	lower        = "abcdefghijklmnopqrstuvwxyz"
	letters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	alnum        = letters + "0123456789"
	hexDigits    = "0123456789abcdef"
	patternChars = lowerDigits + "*?[]"
	base64Chars  = alnum + "+/"
)

func randString(r *rand.Rand, charset string, min, max int) string {
	n := min + r.Intn(max-min+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[r.Intn(len(charset))]
	}
	return string(b)
}

func randInt(r *rand.Rand, min, max int64) int64 {
	return min + r.Int63n(max-min+1)
}

func randFloat(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func str(charset string, min, max int) func(c *Context) string {
	return func(c *Context) string {
		return randString(c.rnd, charset, min, max)
	}
}

func prefixed(prefix, charset string, min, max int) func(c *Context) string {
	return func(c *Context) string {
		return prefix + randString(c.rnd, charset, min, max)
	}
}

func intRange(min, max int64) func(c *Context) string {
	return func(c *Context) string {
		return strconv.FormatInt(randInt(c.rnd, min, max), 10)
	}
}

func floatRange(min, max float64) func(c *Context) string {
	return func(c *Context) string {
		return formatFloat(randFloat(c.rnd, min, max))
	}
}

func oneOf(choices ...string) func(c *Context) string {
	return func(c *Context) string {
		return choices[c.rnd.Intn(len(choices))]
	}
}

func constant(s string) func(c *Context) string {
	return func(*Context) string {
		return s
	}
}

func genStreamID(c *Context) string {
	return strconv.FormatInt(randInt(c.rnd, 0, 1000), 10) + "-" + strconv.FormatInt(randInt(c.rnd, 0, 1000), 10)
}

func genCommand(c *Context) string {
	if len(c.names) == 0 {
		return "PING"
	}
	return c.names[c.rnd.Intn(len(c.names))]
}

func genVector(c *Context) string {
	n := 2 + c.rnd.Intn(9)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = formatFloat(randFloat(c.rnd, -1, 1))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func genAttributes(c *Context) string {
	return `{"` + randString(c.rnd, lower, 3, 8) + `":"` + randString(c.rnd, lower, 3, 8) + `"}`
}

func genIP(c *Context) string {
	parts := make([]string, 4)
	for i := range parts {
		parts[i] = strconv.Itoa(c.rnd.Intn(256))
	}
	return strings.Join(parts, ".")
}

func genSynonymGroup(c *Context) string {
	return "group" + strconv.FormatInt(randInt(c.rnd, 1, 1000), 10)
}
