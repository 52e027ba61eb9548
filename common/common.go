// /home/krylon/go/src/github.com/blicero/herald/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 20:14:37 krylon>

// Package common provides constants, variables and functions used
// throughout the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/blicero/herald/logdomain"
	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	uuid "github.com/odeke-em/go-uuid"
)

// Debug indicates whether to emit additional log messages and perform
// additional sanity checks.
// Version is the version number to display.
// AppName is the name of the application.
const (
	Debug       = true
	Version     = "0.1.0"
	AppName     = "Herald"
	DefaultPort = 7202
)

// BuildStamp is the timestamp of when the program was built.
var BuildStamp = "(unknown)"

// TimestampFormat is the format string used to format full timestamps.
// TimestampFormatMinute is how Event times are displayed to humans.
// TimestampFormatSubSecond includes fractional seconds.
// TimestampFormatTime is used for the time of day only.
// TimestampFormatDate is used for dates only.
const (
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	TimestampFormatDate      = "2006-01-02"
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = make(map[logdomain.ID]logutils.LogLevel, len(LogLevels))

// MinLogLevel is the minimum level a log message must have to be written
// out to the log.
// This value is configurable to reduce log verbosity in regular use.
var MinLogLevel logutils.LogLevel = "DEBUG"

func init() {
	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = MinLogLevel
	}
} // func init()

var (
	// BaseDir is the folder where all application-specific files are stored.
	BaseDir = filepath.Join(
		os.Getenv("HOME"),
		fmt.Sprintf(".%s.d", AppName))
	// LogPath is the path to the log file.
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", AppName))
	// DataPath is the default path of the JSON event file.
	DataPath = filepath.Join(BaseDir, "events.json")
	// DbPath is the default path of the SQLite database.
	DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", AppName))
	// ConfigPath is the default path of the configuration file.
	ConfigPath = filepath.Join(BaseDir, fmt.Sprintf("%s.yaml", AppName))
)

var dirLock sync.RWMutex

// SetBaseDir sets the BaseDir and related variables.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BASE_DIR to %s\n", path)

	dirLock.Lock()
	BaseDir = path
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", AppName))
	DataPath = filepath.Join(BaseDir, "events.json")
	DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", AppName))
	ConfigPath = filepath.Join(BaseDir, fmt.Sprintf("%s.yaml", AppName))
	dirLock.Unlock()

	if err := InitApp(); err != nil {
		fmt.Printf("Error initializing application environment: %s\n", err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BASE_DIR folder.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	dirLock.RLock()
	defer dirLock.RUnlock()

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot check if %s exists: %s\n",
			BaseDir,
			err.Error())
		return err
	} else if !exists {
		if err = os.MkdirAll(BaseDir, 0700); err != nil {
			fmt.Fprintf(os.Stderr,
				"Error creating BASE_DIR %s: %s\n",
				BaseDir,
				err.Error())
			return err
		}
	}

	return nil
} // func InitApp() error

// GetLogger tries to create a named logger instance and return it.
// If the directory to hold the log file does not exist, try to create it.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		logfile *os.File
		writer  io.Writer
		logName = fmt.Sprintf("%s.%s ",
			AppName,
			dom)
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %w", err)
	}

	dirLock.RLock()
	defer dirLock.RUnlock()

	if logfile, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600); err != nil {
		msg := fmt.Sprintf("Error opening log file: %s\n", err.Error())
		fmt.Println(msg)
		return nil, fmt.Errorf("Error opening log file %s: %w", LogPath, err)
	}

	writer = io.MultiWriter(os.Stdout, logfile)

	var lvl = MinLogLevel
	if l, ok := PackageLevels[dom]; ok && levelIndex(l) > levelIndex(lvl) {
		lvl = l
	}

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: lvl,
		Writer:   writer,
	}

	var logger = log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile)
	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// SetLogLevel sets the minimum log level for all domains.
// Unknown level names are rejected.
func SetLogLevel(lvl string) error {
	var level = logutils.LogLevel(lvl)

	if levelIndex(level) < 0 {
		return fmt.Errorf("Unknown log level %q", lvl)
	}

	MinLogLevel = level
	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = level
	}

	return nil
} // func SetLogLevel(lvl string) error

func levelIndex(lvl logutils.LogLevel) int {
	for idx, l := range LogLevels {
		if l == lvl {
			return idx
		}
	}

	return -1
} // func levelIndex(lvl logutils.LogLevel) int

// GetUUID returns a randomized UUID
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string
