package generator

// commandDefs is the built in catalog. Blocking commands (BLPOP, XREAD BLOCK,
// SUBSCRIBE, MONITOR, ...) and commands that stop or detach the server
// (SHUTDOWN, REPLICAOF, SYNC) are left out on purpose: a single one of them
// stalls or ends the whole test case.
var commandDefs = []CommandDef{
	// acl
	{"ACL CAT", "", "categoryname"},
	{"ACL DELUSER", "username", "username ..."},
	{"ACL DRYRUN", "username command", "arg; arg ..."},
	{"ACL GENPASS", "", "bits"},
	{"ACL GETUSER", "username", ""},
	{"ACL LIST", "", ""},
	{"ACL LOAD", "", ""},
	{"ACL LOG", "", "count; RESET"},
	{"ACL SAVE", "", ""},
	{"ACL SETUSER", "username", "rule; rule ..."},
	{"ACL USERS", "", ""},
	{"ACL WHOAMI", "", ""},

	// general
	{"PING", "", ""},
	{"ECHO", "message", ""},
	{"INFO", "", "section"},
	{"TIME", "", ""},
	{"QUIT", "", ""},

	// keys
	{"DEL", "key", "key ..."},
	{"EXISTS", "key", "key ..."},
	{"EXPIRE", "key seconds", "NX|XX|GT|LT"},
	{"TTL", "key", ""},
	{"PERSIST", "key", ""},
	{"TYPE", "key", ""},
	{"RENAME", "key newkey", ""},
	{"RENAMENX", "key newkey", ""},
	{"KEYS", "pattern", ""},
	{"SCAN", "cursor", "MATCH pattern; COUNT count"},

	// strings
	{"SET", "key value", "EX seconds; PX milliseconds; NX|XX"},
	{"GET", "key", ""},
	{"MGET", "key", "key ..."},
	{"MSET", "key value", "key value ..."},
	{"INCR", "key", ""},
	{"INCRBY", "key increment", ""},
	{"DECR", "key", ""},
	{"DECRBY", "key decrement", ""},
	{"APPEND", "key value", ""},
	{"STRLEN", "key", ""},
	{"GETRANGE", "key start end", ""},
	{"SETRANGE", "key offset value", ""},
	{"LCS", "key1 key2", "LEN; IDX; MINMATCHLEN len; WITHMATCHLEN"},
	{"CAS", "key oldval newval", ""},

	// lists
	{"LPUSH", "key element", "element ..."},
	{"RPUSH", "key element", "element ..."},
	{"LPOP", "key", "count"},
	{"RPOP", "key", "count"},
	{"LLEN", "key", ""},
	{"LRANGE", "key start stop", ""},
	{"LINDEX", "key index", ""},
	{"LSET", "key index element", ""},
	{"LTRIM", "key start stop", ""},

	// hashes
	{"HSET", "key field value", "field value ..."},
	{"HSETNX", "key field value", ""},
	{"HGET", "key field", ""},
	{"HMGET", "key field", "field ..."},
	{"HGETALL", "key", ""},
	{"HDEL", "key field", "field ..."},
	{"HEXISTS", "key field", ""},
	{"HLEN", "key", ""},
	{"HKEYS", "key", ""},
	{"HVALS", "key", ""},
	{"HINCRBY", "key field increment", ""},
	{"HSCAN", "key cursor", "MATCH pattern; COUNT count"},
	{"HEXPIRE", "key seconds", "NX|XX|GT|LT; FIELDS count field"},
	{"HSETEX", "key seconds field value", "field value ..."},

	// sets
	{"SADD", "key member", "member ..."},
	{"SREM", "key member", "member ..."},
	{"SISMEMBER", "key member", ""},
	{"SMEMBERS", "key", ""},
	{"SCARD", "key", ""},
	{"SPOP", "key", "count"},
	{"SRANDMEMBER", "key", "count"},
	{"SINTER", "key", "key ..."},
	{"SUNION", "key", "key ..."},
	{"SDIFF", "key", "key ..."},
	{"SSCAN", "key cursor", "MATCH pattern; COUNT count"},

	// sorted sets
	{"ZADD", "key score member", "NX|XX; GT|LT; CH; INCR; score member ..."},
	{"ZREM", "key member", "member ..."},
	{"ZRANGE", "key start stop", "WITHSCORES; REV; BYSCORE|BYLEX; LIMIT offset count"},
	{"ZCARD", "key", ""},
	{"ZSCORE", "key member", ""},
	{"ZRANK", "key member", "WITHSCORE"},
	{"ZINCRBY", "key increment member", ""},
	{"ZCOUNT", "key min max", ""},
	{"ZSCAN", "key cursor", "MATCH pattern; COUNT count"},
	{"ZDIFF", "numkeys key", "key ...; WITHSCORES"},
	{"ZDIFFSTORE", "destination numkeys key", "key ..."},
	{"ZINTER", "numkeys key", "key ...; WEIGHTS weight; AGGREGATE SUM|MIN|MAX; WITHSCORES"},
	{"ZINTERCARD", "numkeys key", "key ...; LIMIT limit"},
	{"ZINTERSTORE", "destination numkeys key", "key ...; WEIGHTS weight; AGGREGATE SUM|MIN|MAX"},
	{"ZLEXCOUNT", "key min max", ""},
	{"ZMPOP", "numkeys key MIN|MAX", "key ...; COUNT count"},
	{"ZMSCORE", "key member", "member ..."},
	{"ZPOPMAX", "key", "count"},
	{"ZPOPMIN", "key", "count"},
	{"ZRANDMEMBER", "key", "count; WITHSCORES"},
	{"ZRANGEBYLEX", "key min max", "LIMIT offset count"},
	{"ZRANGEBYSCORE", "key min max", "WITHSCORES; LIMIT offset count"},
	{"ZRANGESTORE", "dst src min max", "BYSCORE|BYLEX; REV; LIMIT offset count"},
	{"ZREVRANGE", "key start stop", "WITHSCORES"},
	{"ZREVRANGEBYLEX", "key max min", "LIMIT offset count"},
	{"ZREVRANGEBYSCORE", "key max min", "WITHSCORES; LIMIT offset count"},
	{"ZREVRANK", "key member", "WITHSCORE"},
	{"ZREMRANGEBYLEX", "key min max", ""},
	{"ZREMRANGEBYRANK", "key start stop", ""},
	{"ZREMRANGEBYSCORE", "key min max", ""},
	{"ZUNION", "numkeys key", "key ...; WEIGHTS weight; AGGREGATE SUM|MIN|MAX; WITHSCORES"},
	{"ZUNIONSTORE", "destination numkeys key", "key ...; WEIGHTS weight; AGGREGATE SUM|MIN|MAX"},

	// pubsub
	{"PUBLISH", "channel message", ""},
	{"SPUBLISH", "shardchannel message", ""},
	{"PUBSUB", "CHANNELS|NUMPAT|NUMSUB", "channel ..."},
	{"PUBSUB SHARDCHANNELS", "", "pattern"},
	{"PUBSUB SHARDNUMSUB", "", "shardchannel; shardchannel ..."},

	// transactions
	{"MULTI", "", ""},
	{"EXEC", "", ""},
	{"DISCARD", "", ""},
	{"WATCH", "key", "key ..."},
	{"UNWATCH", "", ""},

	// scripting and functions
	{"EVAL", "script numkeys key", "key ...; arg; arg ..."},
	{"EVALSHA", "sha1 numkeys key", "key ...; arg; arg ..."},
	{"EVAL_RO", "script numkeys key", "key ...; arg; arg ..."},
	{"EVALSHA_RO", "sha1 numkeys key", "key ...; arg; arg ..."},
	{"SCRIPT", "subcommand", "arg; arg ..."},
	{"SCRIPT SHOW", "sha1", ""},
	{"FCALL", "function numkeys key", "key ...; arg; arg ..."},
	{"FCALL_RO", "function numkeys key", "key ...; arg; arg ..."},
	{"FUNCTION", "subcommand", "arg; arg ..."},
	{"FUNCTION DELETE", "library", ""},
	{"FUNCTION DUMP", "", ""},
	{"FUNCTION FLUSH", "", "ASYNC|SYNC"},
	{"FUNCTION HELP", "", ""},
	{"FUNCTION KILL", "", ""},
	{"FUNCTION LIST", "", "LIBRARYNAME pattern; WITHCODE"},
	{"FUNCTION LOAD", "code", "REPLACE"},
	{"FUNCTION RESTORE", "payload", "FLUSH|APPEND|REPLACE"},
	{"FUNCTION STATS", "", ""},

	// connection
	{"AUTH", "password", "username"},
	{"SELECT", "db", ""},
	{"CLIENT", "subcommand", "arg; arg ..."},
	{"RESET", "", ""},
	{"READONLY", "", ""},
	{"READWRITE", "", ""},
	{"ASKING", "", ""},

	// server
	{"FLUSHDB", "", "ASYNC|SYNC"},
	{"FLUSHALL", "", "ASYNC|SYNC"},
	{"DBSIZE", "", ""},
	{"CONFIG GET", "pattern", ""},
	{"DEBUG", "subcommand", "arg; arg ..."},
	{"BGREWRITEAOF", "", ""},
	{"BGSAVE", "", "SCHEDULE"},
	{"COMMAND", "", "DOCS command; INFO command; GETKEYS command; GETKEYSANDFLAGS command; COUNT; LIST; HELP"},
	{"FAILOVER", "", "TO host port; ABORT; TIMEOUT milliseconds; FORCE"},
	{"LASTSAVE", "", ""},
	{"LOLWUT", "", "VERSION version"},
	{"ROLE", "", ""},
	{"SAVE", "", ""},
	{"SWAPDB", "index1 index2", ""},
	{"COMMANDLOG", "", ""},
	{"COMMANDLOG GET", "count", "SLOW|LARGE-REQUEST|LARGE-REPLY"},
	{"COMMANDLOG HELP", "", ""},
	{"COMMANDLOG LEN", "SLOW|LARGE-REQUEST|LARGE-REPLY", ""},
	{"COMMANDLOG RESET", "SLOW|LARGE-REQUEST|LARGE-REPLY", ""},
	{"LATENCY", "subcommand", "arg; arg ..."},
	{"LATENCY DOCTOR", "", ""},
	{"LATENCY GRAPH", "event", ""},
	{"LATENCY HELP", "", ""},
	{"LATENCY HISTOGRAM", "", "command ..."},
	{"LATENCY HISTORY", "event", ""},
	{"LATENCY LATEST", "", ""},
	{"LATENCY RESET", "", "event; event ..."},
	{"MEMORY USAGE", "key", "SAMPLES count"},
	{"MEMORY DOCTOR", "", ""},
	{"MEMORY HELP", "", ""},
	{"MEMORY MALLOC-STATS", "", ""},
	{"MEMORY PURGE", "", ""},
	{"MEMORY STATS", "", ""},
	{"MODULE", "subcommand", "arg; arg ..."},
	{"MODULE HELP", "", ""},
	{"MODULE LIST", "", ""},
	{"MODULE LOAD", "modulepath", "arg; arg ..."},
	{"MODULE LOADEX", "modulepath", "CONFIG name value; ARGS arg"},
	{"MODULE UNLOAD", "name", ""},
	{"SORT_RO", "key", "BY pattern; LIMIT offset count; GET pattern; ASC|DESC; ALPHA"},
	{"RESTORE-ASKING", "key ttl serialized-value", "REPLACE; ABSTTL; IDLETIME seconds; FREQ frequency"},

	// bitmaps
	{"BITCOUNT", "key", "start end; BYTE|BIT"},
	{"BITOP", "operation destkey key", "key ..."},
	{"BITPOS", "key bit", "start end; BYTE|BIT"},
	{"GETBIT", "key offset", ""},
	{"SETBIT", "key offset bit", ""},

	// hyperloglog
	{"PFADD", "key element", "element ..."},
	{"PFCOUNT", "key", "key ..."},
	{"PFMERGE", "destkey sourcekey", "sourcekey ..."},
	{"PFDEBUG", "subcommand key", ""},
	{"PFSELFTEST", "", ""},

	// geo
	{"GEOADD", "key longitude latitude member", "NX|XX; CH; longitude latitude member ..."},
	{"GEODIST", "key member1 member2", "unit"},
	{"GEOHASH", "key member", "member ..."},
	{"GEOPOS", "key member", "member ..."},
	{"GEORADIUS", "key longitude latitude radius unit", "WITHDIST; WITHCOORD; WITHHASH; COUNT count; ASC|DESC; STORE key; STOREDIST key"},
	{"GEORADIUS_RO", "key longitude latitude radius unit", "WITHDIST; WITHCOORD; WITHHASH; COUNT count; ASC|DESC"},
	{"GEORADIUSBYMEMBER_RO", "key member radius unit", "WITHDIST; WITHCOORD; WITHHASH; COUNT count; ASC|DESC"},
	{"GEOSEARCH", "key FROMMEMBER member BYRADIUS radius unit", "WITHDIST; WITHCOORD; WITHHASH; COUNT count; ASC|DESC"},
	{"GEOSEARCHSTORE", "destination source FROMLONLAT longitude latitude BYBOX width width unit", "COUNT count; ASC|DESC; STOREDIST"},

	// streams
	{"XADD", "key ID field value", "field value ..."},
	{"XRANGE", "key start end", "COUNT count"},
	{"XREVRANGE", "key end start", "COUNT count"},
	{"XLEN", "key", ""},
	{"XACK", "key group ID", "ID ..."},
	{"XAUTOCLAIM", "key group consumer min-idle-time ID", "COUNT count; JUSTID"},
	{"XCLAIM", "key group consumer min-idle-time ID", "ID ...; IDLE ms; TIME ms-unix-time; RETRYCOUNT count; FORCE; JUSTID"},
	{"XDEL", "key ID", "ID ..."},
	{"XGROUP CREATE", "key groupname ID", "MKSTREAM"},
	{"XGROUP CREATECONSUMER", "key groupname consumername", ""},
	{"XGROUP DELCONSUMER", "key groupname consumername", ""},
	{"XGROUP DESTROY", "key groupname", ""},
	{"XGROUP SETID", "key groupname ID", ""},
	{"XINFO CONSUMERS", "key groupname", ""},
	{"XINFO GROUPS", "key", ""},
	{"XINFO STREAM", "key", "FULL; COUNT count"},
	{"XPENDING", "key group", "start end count; consumer"},
	{"XSETID", "key last-id", ""},
	{"XTRIM", "key MAXLEN count", "MINID ID; LIMIT count; APPROX|EXACT"},

	// dragonfly
	{"DF.STATS", "", ""},
	{"DF.INFO", "", ""},
	{"CL.THROTTLE", "key max_burst count_per_period period", "quantity"},

	// search
	{"FT._LIST", "", ""},
	{"FT.CREATE", "indexname SCHEMA field TEXT|TAG|NUMERIC", "ON HASH|JSON; PREFIX count prefix; FILTER filter; LANGUAGE language; LANGUAGE_FIELD lang_field; SCORE default_score; SCORE_FIELD score_field; MAXTEXTFIELDS; TEMPORARY seconds; NOOFFSETS; NOHL; NOFIELDS; NOFREQS; STOPWORDS count stopword"},
	{"FT.DROPINDEX", "indexname", "DD"},
	{"FT.INFO", "indexname", ""},
	{"FT.PROFILE", "indexname SEARCH QUERY query", "NOCONTENT; LIMIT offset num"},
	{"FT.SEARCH", "indexname query", "NOCONTENT; VERBATIM; NOSTOPWORDS; WITHSCORES; WITHPAYLOADS; WITHSORTKEYS; FILTER numeric_field min max; GEOFILTER geo_field lon lat radius m|km|mi|ft; INKEYS count key; INFIELDS count field; RETURN count identifier; SUMMARIZE; HIGHLIGHT; SLOP count; TIMEOUT timeout; INORDER; LANGUAGE language; SORTBY sort_field; ASC|DESC; LIMIT offset num; PARAMS count name value"},
	{"FT.SYNDUMP", "indexname", ""},
	{"FT.SYNUPDATE", "indexname synonym_group_id term", "term ...; SKIPINITIALSCAN"},

	// bloom filter
	{"BF.ADD", "key item", ""},
	{"BF.CARD", "key", ""},
	{"BF.EXISTS", "key item", ""},
	{"BF.INFO", "key", ""},
	{"BF.INSERT", "key", "CAPACITY capacity; ERROR error; EXPANSION expansion; NOCREATE; NONSCALING; ITEMS item"},
	{"BF.LOADCHUNK", "key iterator data", ""},
	{"BF.MADD", "key item", "item ..."},
	{"BF.MEXISTS", "key item", "item ..."},
	{"BF.RESERVE", "key error_rate capacity", "EXPANSION expansion; NONSCALING"},
	{"BF.SCANDUMP", "key iterator", ""},

	// cuckoo filter
	{"CF.ADD", "key item", ""},
	{"CF.ADDNX", "key item", ""},
	{"CF.COUNT", "key item", ""},
	{"CF.DEL", "key item", ""},
	{"CF.EXISTS", "key item", ""},
	{"CF.INFO", "key", ""},
	{"CF.INSERT", "key", "CAPACITY capacity; NOCREATE; ITEMS item"},
	{"CF.INSERTNX", "key", "CAPACITY capacity; NOCREATE; ITEMS item"},
	{"CF.LOADCHUNK", "key iterator data", ""},
	{"CF.MEXISTS", "key item", "item ..."},
	{"CF.RESERVE", "key capacity", "BUCKETSIZE bucketsize; MAXITERATIONS maxiterations; EXPANSION expansion"},
	{"CF.SCANDUMP", "key iterator", ""},

	// count-min sketch
	{"CMS.INCRBY", "key item increment", "item increment ..."},
	{"CMS.INFO", "key", ""},
	{"CMS.INITBYDIM", "key width depth", ""},
	{"CMS.INITBYPROB", "key error probability", ""},
	{"CMS.MERGE", "dest numkeys source", "source ...; WEIGHTS weight; weight ..."},
	{"CMS.QUERY", "key item", "item ..."},

	// json
	{"JSON.ARRAPPEND", "key path value", "value ..."},
	{"JSON.ARRINDEX", "key path value", "start stop"},
	{"JSON.ARRINSERT", "key path index value", "value ..."},
	{"JSON.ARRLEN", "key", "path"},
	{"JSON.ARRPOP", "key", "path index"},
	{"JSON.ARRTRIM", "key path start stop", ""},
	{"JSON.CLEAR", "key", "path"},
	{"JSON.DEBUG", "MEMORY|FIELDS|HELP key", "path"},
	{"JSON.DEL", "key", "path"},
	{"JSON.FORGET", "key", "path"},
	{"JSON.GET", "key", "INDENT indent; NEWLINE newline; SPACE space; path; path ..."},
	{"JSON.MGET", "key path", "key ..."},
	{"JSON.MSET", "key path value", "key path value ..."},
	{"JSON.NUMINCRBY", "key path number", ""},
	{"JSON.NUMMULTBY", "key path number", ""},
	{"JSON.OBJKEYS", "key", "path"},
	{"JSON.OBJLEN", "key", "path"},
	{"JSON.RESP", "key", "path"},
	{"JSON.SET", "key path value", "NX|XX"},
	{"JSON.STRAPPEND", "key", "path; value"},
	{"JSON.STRLEN", "key", "path"},
	{"JSON.TOGGLE", "key path", ""},
	{"JSON.TYPE", "key", "path"},

	// vectors
	{"VADD", "key id vector", "id vector ...; DIMENSIONS dimensions"},
	{"VADDONCE", "key id vector", "DIMENSIONS dimensions"},
	{"VCREATE", "key dimensions", "ALGORITHM algorithm; M m; EF_CONSTRUCTION ef_construction; DISTANCE_METRIC distance_metric; INITIAL_CAP initial_cap; DATA_TYPE data_type"},
	{"VDEL", "key id", "id ..."},
	{"VDIM", "key", ""},
	{"VEXISTS", "key id", ""},
	{"VGET", "key id", ""},
	{"VGETALL", "key", ""},
	{"VGETATTR", "key id", ""},
	{"VINFO", "key", ""},
	{"VLINKS", "key id", ""},
	{"VRANDMEMBER", "key", "count"},
	{"VREM", "key id", "id ..."},
	{"VSETATTR", "key id attributes", ""},
	{"VSIM", "key vector", "K k; BYID id; EFRUNTIME ef_runtime; RADIUS radius; RETURNED_ATTRIBUTES attributes; RETURN_ATTRS"},

	// cluster
	{"CLUSTER", "", "subcommand"},
	{"CLUSTER ADDSLOTS", "slot", "slot ..."},
	{"CLUSTER ADDSLOTSRANGE", "slot slot", "slot slot ..."},
	{"CLUSTER BUMPEPOCH", "", ""},
	{"CLUSTER COUNT-FAILURE-REPORTS", "node-id", ""},
	{"CLUSTER COUNTKEYSINSLOT", "slot", ""},
	{"CLUSTER DELSLOTS", "slot", "slot ..."},
	{"CLUSTER DELSLOTSRANGE", "slot slot", "slot slot ..."},
	{"CLUSTER FAILOVER", "", "FORCE|TAKEOVER"},
	{"CLUSTER FLUSHSLOTS", "", ""},
	{"CLUSTER FORGET", "node-id", ""},
	{"CLUSTER GETKEYSINSLOT", "slot count", ""},
	{"CLUSTER HELP", "", ""},
	{"CLUSTER INFO", "", ""},
	{"CLUSTER KEYSLOT", "key", ""},
	{"CLUSTER LINKS", "", ""},
	{"CLUSTER MEET", "ip port", "cluster-bus-port"},
	{"CLUSTER MYID", "", ""},
	{"CLUSTER MYSHARDID", "", ""},
	{"CLUSTER NODES", "", ""},
	{"CLUSTER REPLICAS", "node-id", ""},
	{"CLUSTER REPLICATE", "node-id", ""},
	{"CLUSTER RESET", "", "HARD|SOFT"},
	{"CLUSTER SAVECONFIG", "", ""},
	{"CLUSTER SET-CONFIG-EPOCH", "epoch", ""},
	{"CLUSTER SETSLOT", "slot IMPORTING|MIGRATING|NODE|STABLE", "node-id"},
	{"CLUSTER SHARDS", "", ""},
	{"CLUSTER SLAVES", "node-id", ""},
	{"CLUSTER SLOT-STATS", "", "SLOTSRANGE slot slot; ORDERBY KEY-COUNT|CPU-USEC|NETWORK-BYTES-IN|NETWORK-BYTES-OUT limit"},
	{"CLUSTER SLOTS", "", ""},
}
