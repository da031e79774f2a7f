package runner

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/pkg/errors"
)

// Probe sends INFO to addr through an independent client and returns the
// first line of the answer. It tells a server that is down apart from a
// transport problem in this process.
func Probe(addr string, timeout time.Duration) (string, error) {
	c, err := redis.Dial("tcp", addr,
		redis.DialConnectTimeout(timeout),
		redis.DialReadTimeout(timeout),
		redis.DialWriteTimeout(timeout))
	if err != nil {
		return "", errors.Wrapf(err, "probe dial %s", addr)
	}
	defer c.Close()
	info, err := redis.String(c.Do("INFO"))
	if err != nil {
		return "", errors.Wrapf(err, "probe INFO %s", addr)
	}
	for i := 0; i < len(info); i++ {
		if info[i] == '\r' || info[i] == '\n' {
			return info[:i], nil
		}
	}
	return info, nil
}
