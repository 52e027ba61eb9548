// /home/krylon/go/src/github.com/blicero/herald/persist/file.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 19:27:08 krylon>

package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/pquerna/ffjson/ffjson"
)

const filePerm = 0600

// FileGateway stores Events as a JSON array in a single file.
type FileGateway struct {
	log  *log.Logger
	path string
}

// NewFileGateway creates a FileGateway for the file at path.
// The file does not need to exist yet.
func NewFileGateway(path string) (*FileGateway, error) {
	var (
		err error
		g   = &FileGateway{path: path}
	)

	if g.log, err = common.GetLogger(logdomain.Persist); err != nil {
		return nil, err
	}

	return g, nil
} // func NewFileGateway(path string) (*FileGateway, error)

// Path returns the path of the backing file.
func (g *FileGateway) Path() string {
	return g.path
} // func (g *FileGateway) Path() string

// Load reads all Events from the backing file.
func (g *FileGateway) Load() ([]objects.Event, error) {
	var (
		err    error
		buf    []byte
		events []objects.Event
	)

	if buf, err = os.ReadFile(g.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.log.Printf("[INFO] %s does not exist (yet), starting empty\n",
				g.path)
			return nil, nil
		}

		g.log.Printf("[ERROR] Cannot read %s: %s\n",
			g.path,
			err.Error())
		return nil, err
	} else if len(bytes.TrimSpace(buf)) == 0 {
		g.log.Printf("[INFO] %s is empty\n", g.path)
		return nil, nil
	} else if err = ffjson.Unmarshal(buf, &events); err != nil {
		g.log.Printf("[ERROR] Cannot decode Events from %s: %s\n",
			g.path,
			err.Error())
		return nil, fmt.Errorf("Cannot decode %s: %w", g.path, err)
	}

	g.log.Printf("[DEBUG] Loaded %d Events from %s\n",
		len(events),
		g.path)

	return events, nil
} // func (g *FileGateway) Load() ([]objects.Event, error)

// Save overwrites the backing file with the given Events.
func (g *FileGateway) Save(events []objects.Event) error {
	var (
		err    error
		buf    []byte
		pretty bytes.Buffer
	)

	if events == nil {
		events = []objects.Event{}
	}

	if buf, err = ffjson.Marshal(events); err != nil {
		g.log.Printf("[ERROR] Cannot serialize %d Events: %s\n",
			len(events),
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if err = json.Indent(&pretty, buf, "", "  "); err != nil {
		g.log.Printf("[CANTHAPPEN] Cannot indent serialized Events: %s\n",
			err.Error())
		return err
	} else if err = writeFileAtomic(g.path, pretty.Bytes(), filePerm); err != nil {
		g.log.Printf("[ERROR] Cannot save Events to %s: %s\n",
			g.path,
			err.Error())
		return err
	}

	return nil
} // func (g *FileGateway) Save(events []objects.Event) error

// Close is a no-op, the file is only open during Load and Save.
func (g *FileGateway) Close() error {
	return nil
} // func (g *FileGateway) Close() error
