package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"thicket/app"
	"thicket/app/debug"
	"thicket/app/utils"

	"gopkg.in/ini.v1"
)

//go:embed default.conf
var defaultConf []byte

type Section int

const (
	General Section = iota
	Tree
)

// ini section names
var sections = map[Section]string{
	General: "General",
	Tree:    "Tree",
}

func (s Section) String() string {
	return sections[s]
}

type Option int

const (
	StartDirectory Option = iota
	ShowHidden
	OnlyFolders
	MaxDepth
	NerdFonts
	IndentLines
	WatchChanges
)

// ini key names
var options = map[Option]string{
	StartDirectory: "StartDirectory",
	ShowHidden:     "ShowHidden",
	OnlyFolders:    "OnlyFolders",
	MaxDepth:       "MaxDepth",
	NerdFonts:      "NerdFonts",
	IndentLines:    "IndentLines",
	WatchChanges:   "WatchChanges",
}

func (o Option) String() string {
	return options[o]
}

// Value represents an entry in the config file
type Value struct {
	Value string
}

func (v Value) GetBool() bool {
	return v.Value == "true"
}

// GetInt returns the value as int or fallback if it isn't a number
func (v Value) GetInt(fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.Value))
	if err != nil {
		return fallback
	}
	return n
}

// Config is the embedded default settings overlaid by the user's
// thicket.conf, plus the merged verb definitions
type Config struct {
	filePath  string
	verbsPath string

	file     *ini.File
	userFile *ini.File

	// default verbs followed by the user's verbs
	verbs []VerbEntry
}

func (c *Config) File() string { return c.filePath }

func (c *Config) VerbsFile() string { return c.verbsPath }

// New loads or creates a config file with default settings.
// Broken user files are logged and the defaults are used instead.
func New() *Config {
	config := &Config{}

	conf, err := ini.Load(defaultConf)
	if err != nil {
		debug.LogErr("Failed to read default config:", err)
		conf = ini.Empty()
	}
	config.file = conf
	config.userFile = ini.Empty()

	ini.PrettyFormat = false
	ini.PrettyEqual = true

	filePath, err := app.ConfigFile()
	if err != nil {
		debug.LogErr(err)
	} else {
		if _, err := os.Stat(filePath); err != nil {
			if f, err := utils.CreateFile(filePath, false); err != nil {
				debug.LogErr(err)
			} else {
				f.Close()
			}
		}

		config.filePath = filePath
		config.Reload()
	}

	verbsPath, err := app.VerbsFile()
	if err != nil {
		debug.LogErr(err)
	}
	config.verbsPath = verbsPath

	verbs, err := LoadVerbs(verbsPath)
	if err != nil {
		debug.LogErr("Failed to read verbs:", err)
	}
	config.verbs = verbs

	return config
}

// Reload reads the user's config file again
func (c *Config) Reload() {
	if c.filePath == "" {
		return
	}

	conf, err := ini.Load(c.filePath)
	if err != nil {
		debug.LogErr("Failed to read user config file:", err)
		return
	}

	c.userFile = conf
}

// Value looks up an option in the user's file first, then in the
// defaults. Empty values count as unset.
func (c *Config) Value(section Section, option Option) (Value, error) {
	for _, f := range []*ini.File{c.userFile, c.file} {
		if v, ok := lookup(f, section, option); ok {
			return v, nil
		}
	}

	return Value{}, fmt.Errorf("option %s.%s is not set", section, option)
}

func lookup(f *ini.File, section Section, option Option) (Value, bool) {
	sect, err := f.GetSection(section.String())
	if err != nil || !sect.HasKey(option.String()) {
		return Value{}, false
	}

	v := sect.Key(option.String()).String()
	return Value{v}, v != ""
}

// SetValue writes an option to the user's file and saves it
func (c *Config) SetValue(section Section, option Option, value string) error {
	c.userFile.
		Section(section.String()).
		Key(option.String()).
		SetValue(value)

	if c.filePath == "" {
		return nil
	}

	return c.userFile.SaveTo(c.filePath)
}

// Bool returns a boolean option, false if it isn't set anywhere
func (c *Config) Bool(section Section, option Option) bool {
	v, err := c.Value(section, option)
	if err != nil {
		debug.LogDebug(err)
		return false
	}
	return v.GetBool()
}

// NerdFonts determines whether nerd fonts are enabled. Default is true.
func (c *Config) NerdFonts() bool {
	nf, err := c.Value(General, NerdFonts)
	if err != nil || nf.Value == "" {
		return true
	}
	return nf.GetBool()
}

// MaxDepth returns the number of directory levels read below a root
func (c *Config) MaxDepth() int {
	v, err := c.Value(General, MaxDepth)
	if err != nil {
		return 2
	}
	return max(1, v.GetInt(2))
}

// StartDir returns the directory shown if none is passed on the command
// line. A leading ~ is replaced with the home directory and an empty
// value resolves to the working directory.
func (c *Config) StartDir() (string, error) {
	dir, err := c.Value(General, StartDirectory)
	if err != nil || dir.Value == "" {
		return os.Getwd()
	}

	path := utils.ExpandHome(dir.Value)
	return filepath.Abs(path)
}

// Verbs returns the default verbs followed by the user's verbs
func (c *Config) Verbs() []VerbEntry {
	return c.verbs
}
