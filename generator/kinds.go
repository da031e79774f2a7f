package generator

var kinds = [kindCount]kindInfo{
	KindString:         {"string", str(alnum, 1, 20), traitSuffix | traitFree},
	KindInteger:        {"integer", intRange(-1000000, 1000000), 0},
	KindFloat:          {"float", floatRange(-1000000, 1000000), 0},
	KindKey:            {"key", prefixed("key:", lowerDigits, 1, 10), traitSuffix},
	KindKey1:           {"key1", prefixed("key1:", lowerDigits, 1, 10), 0},
	KindKey2:           {"key2", prefixed("key2:", lowerDigits, 1, 10), 0},
	KindField:          {"field", prefixed("field:", lowerDigits, 1, 10), traitSuffix},
	KindMember:         {"member", prefixed("member:", lowerDigits, 1, 10), traitSuffix},
	KindChannel:        {"channel", prefixed("channel:", lowerDigits, 1, 10), 0},
	KindShardChannel:   {"shardchannel", prefixed("shard:", lowerDigits, 3, 8), 0},
	KindPattern:        {"pattern", prefixed("*:", patternChars, 1, 10), traitSuffix},
	KindValue:          {"value", str(alnum, 1, 50), traitSuffix | traitFree},
	KindMessage:        {"message", str(alnum, 1, 50), traitSuffix | traitFree},
	KindElement:        {"element", str(alnum, 1, 50), traitSuffix | traitFree},
	KindScore:          {"score", floatRange(-1000, 1000), 0},
	KindIndex:          {"index", intRange(-100, 100), 0},
	KindCount:          {"count", intRange(1, 100), 0},
	KindCursor:         {"cursor", intRange(0, 10000), 0},
	KindIncrement:      {"increment", intRange(-100, 100), 0},
	KindSeconds:        {"seconds", intRange(1, 3600), 0},
	KindMilliseconds:   {"milliseconds", intRange(1, 3600000), 0},
	KindUnixTimeMs:     {"unix-time", intRange(1000000000, 2000000000), 0},
	KindOffset:         {"offset", intRange(0, 100), 0},
	KindPosition:       {"position", intRange(-100, 100), 0},
	KindBound:          {"bound", intRange(-1000, 1000), 0},
	KindSubcommand:     {"subcommand", oneOf("HELP", "LIST", "INFO", "STATS", "FLUSH", "KILL", "ID", "GETNAME", "DOCTOR", "LATEST", "RESET", "CHANNELS", "NUMPAT", "NUMSUB", "EXISTS", "LOAD", "OBJECT", "MEMORY"), 0},
	KindSection:        {"section", oneOf("SERVER", "CLIENTS", "MEMORY", "PERSISTENCE", "STATS", "REPLICATION", "CPU", "COMMANDSTATS", "CLUSTER", "KEYSPACE"), 0},
	KindScript:         {"script", constant("return {KEYS[1],ARGV[1]}"), 0},
	KindNumKeys:        {"numkeys", intRange(0, 3), 0},
	KindSHA1:           {"sha1", str(hexDigits, 40, 40), 0},
	KindPassword:       {"password", str(alnum, 4, 12), 0},
	KindUsername:       {"username", str(letters, 3, 8), 0},
	KindLongitude:      {"longitude", floatRange(-180, 180), 0},
	KindLatitude:       {"latitude", floatRange(-90, 90), 0},
	KindRadius:         {"radius", floatRange(0, 100), 0},
	KindUnit:           {"unit", oneOf("m", "km", "ft", "mi"), 0},
	KindStreamID:       {"streamid", genStreamID, 0},
	KindOperation:      {"operation", oneOf("AND", "OR", "XOR", "NOT"), 0},
	KindBit:            {"bit", oneOf("0", "1"), 0},
	KindCategory:       {"categoryname", oneOf("string", "list", "set", "sorted_set", "hash", "pubsub", "transaction", "connection", "server", "scripting"), 0},
	KindCommand:        {"command", genCommand, 0},
	KindBits:           {"bits", intRange(1, 256), 0},
	KindRule:           {"rule", oneOf("on", "off", "nopass", "+@all", "-@all", "+@string", "-@dangerous", ">password", "<password"), 0},
	KindGroup:          {"group", prefixed("group:", lower, 3, 8), 0},
	KindConsumer:       {"consumer", prefixed("consumer:", lower, 3, 8), 0},
	KindIdleTime:       {"idle-time", intRange(1, 10000), 0},
	KindWeight:         {"weight", floatRange(0.1, 10), 0},
	KindLimit:          {"limit", intRange(1, 100), 0},
	KindItem:           {"item", prefixed("item:", lowerDigits, 1, 10), 0},
	KindErrorRate:      {"errorrate", floatRange(0.001, 0.1), 0},
	KindCapacity:       {"capacity", intRange(100, 10000), 0},
	KindExpansion:      {"expansion", intRange(1, 5), 0},
	KindIterator:       {"iterator", intRange(0, 100), 0},
	KindData:           {"data", str(alnum, 10, 50), 0},
	KindBucketSize:     {"bucketsize", intRange(1, 10), 0},
	KindMaxIterations:  {"maxiterations", intRange(10, 100), 0},
	KindProbability:    {"probability", floatRange(0.01, 0.1), 0},
	KindWidth:          {"width", intRange(10, 100), 0},
	KindDepth:          {"depth", intRange(5, 20), 0},
	KindJSONPath:       {"path", oneOf("$", "$[0]", "$.field", "$.nested.field", "$..field"), 0},
	KindIndent:         {"indent", intRange(0, 4), 0},
	KindNewline:        {"newline", oneOf(`\n`, `\r\n`), 0},
	KindSpace:          {"space", constant(" "), 0},
	KindNumber:         {"number", floatRange(-100, 100), 0},
	KindVectorID:       {"id", str(lowerDigits, 3, 8), 0},
	KindVector:         {"vector", genVector, 0},
	KindDimensions:     {"dimensions", intRange(2, 128), 0},
	KindAlgorithm:      {"algorithm", oneOf("FLAT", "HNSW"), 0},
	KindM:              {"m", intRange(5, 50), 0},
	KindEFConstruction: {"ef_construction", intRange(10, 500), 0},
	KindDistanceMetric: {"distance_metric", oneOf("L2", "IP", "COSINE"), 0},
	KindInitialCap:     {"initial_cap", intRange(1000, 10000), 0},
	KindDataType:       {"data_type", oneOf("FLOAT32", "FLOAT64"), 0},
	KindEFRuntime:      {"ef_runtime", intRange(10, 1000), 0},
	KindAttributes:     {"attributes", genAttributes, 0},
	KindHost:           {"host", oneOf("localhost", "127.0.0.1", "redis-server"), 0},
	KindPort:           {"port", intRange(1024, 65535), 0},
	KindNumReplicas:    {"numreplicas", intRange(0, 5), 0},
	KindDB:             {"db", intRange(0, 15), 0},
	KindTimeout:        {"timeout", intRange(100, 10000), 0},
	KindSlot:           {"slot", intRange(0, 16383), 0},
	KindNodeID:         {"node-id", str(hexDigits, 40, 40), 0},
	KindEpoch:          {"epoch", intRange(1, 10000), 0},
	KindBusPort:        {"cluster-bus-port", intRange(10000, 30000), 0},
	KindEvent:          {"event", oneOf("command", "fast-command", "fork", "aof-fsync-always", "aof-write", "expire-cycle", "eviction"), 0},
	KindLibrary:        {"library", prefixed("lib:", lower, 3, 10), 0},
	KindFunction:       {"function", constant("myfunc"), 0},
	KindCode:           {"code", constant("redis.register_function('myfunc', function() return 'hello' end)"), 0},
	KindPayload:        {"payload", str(base64Chars, 20, 100), 0},
	KindLen:            {"len", intRange(1, 10), 0},
	KindModulePath:     {"modulepath", oneOf("/path/to/module.so", "./module.so"), 0},
	KindName:           {"name", str(lower, 3, 10), 0},
	KindIP:             {"ip", genIP, 0},
	KindFrequency:      {"frequency", intRange(1, 100), 0},
	KindIndexName:      {"indexname", prefixed("idx:", lower, 3, 8), 0},
	KindFilter:         {"filter", constant("@field:{tag}"), 0},
	KindLanguage:       {"language", oneOf("english", "spanish", "french", "chinese", "japanese", "arabic"), 0},
	KindLangField:      {"lang_field", constant("language"), 0},
	KindDefaultScore:   {"default_score", floatRange(0.1, 10), 0},
	KindScoreField:     {"score_field", constant("score"), 0},
	KindStopword:       {"stopword", oneOf("a", "an", "the", "and", "or", "but", "in", "on", "at"), 0},
	KindQuery:          {"query", oneOf("@title:hello", "*", "@tags:{important}", "@num:[0 100]"), 0},
	KindSynonymGroup:   {"synonym_group_id", genSynonymGroup, 0},
	KindTerm:           {"term", oneOf("word", "term", "phrase", "concept"), 0},
	KindMaxBurst:       {"max_burst", intRange(0, 30), 0},
	KindCountPerPeriod: {"count_per_period", intRange(10, 1000), 0},
	KindPeriod:         {"period", intRange(1, 3600), 0},
	KindQuantity:       {"quantity", intRange(1, 10), 0},
}
