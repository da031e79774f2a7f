package log

import (
	"fmt"
	stdlog "log"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 7
	defaultMaxAgeDays = 7
)

type fileHandler struct {
	l  *stdlog.Logger
	lj *lumberjack.Logger
}

// NewFileHandler new file handler, the file is rotated by size.
func NewFileHandler(path string) Handler {
	if _, file := filepath.Split(path); file == "" {
		panic("invalid log path")
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
		LocalTime:  true,
	}
	return &fileHandler{
		l:  stdlog.New(lj, "", stdlog.LstdFlags|stdlog.Lshortfile),
		lj: lj,
	}
}

func (r *fileHandler) Log(lv Level, msg string) {
	_ = r.l.Output(5, fmt.Sprintf("[%s] %s", lv, msg))
}

func (r *fileHandler) Close() error {
	return r.lj.Close()
}
