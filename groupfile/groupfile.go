// Package groupfile loads caller-supplied finite-field Diffie-Hellman
// groups from an INI file, supplementing ffdh's compiled-in registry with
// a deployment-time escape hatch for operators who need a private or
// non-standard group without recompiling.
//
// Each section names a group; its keys are P (required, hex modulus), G
// (required, hex generator), and Q (optional, hex subgroup order), with
// the same whitespace-tolerant hex parsing as the registry so values can
// be pasted straight out of an RFC.
//
//	[my-group]
//	P = FFFFFFFF FFFFFFFF ...
//	G = 02
//	Q = 7FFFFFFF FFFFFFFF ...
package groupfile

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/go-ini/ini"
	"github.com/kardianos/osext"

	"github.com/spance/ffdh"
	"github.com/spance/ffdh/exception"
)

const (
	keyP = "P"
	keyG = "G"
	keyQ = "Q"

	// FileName is the default group file name LoadDefault looks for, in
	// order, in the working directory, next to the running executable, in
	// the user's home directory, and (except on Windows) in /etc/ffdh.
	FileName = "ffdh-groups.ini"

	// EnvOverride names the environment variable that, when set, takes
	// priority over every other search path in LoadDefault.
	EnvOverride = "FFDH_GROUPFILE"
)

// ErrNoGroupFile is returned by LoadDefault when no group file is found
// anywhere in its search path. It is not a hard error: callers that only
// want the registry groups should treat it as "nothing to add".
var ErrNoGroupFile = exception.New("groupfile: no group file found")

// Load parses the INI file at path and returns one *ffdh.Group per
// section, keyed by section name.
func Load(path string) (map[string]*ffdh.Group, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, path)
	if err != nil {
		return nil, err
	}
	groups := make(map[string]*ffdh.Group)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		g, err := groupFromSection(sec)
		if err != nil {
			return nil, exception.New("groupfile: section " + sec.Name()).Apply(err)
		}
		groups[sec.Name()] = g
	}
	return groups, nil
}

func groupFromSection(sec *ini.Section) (*ffdh.Group, error) {
	pKey, err := sec.GetKey(keyP)
	if err != nil {
		return nil, err
	}
	gKey, err := sec.GetKey(keyG)
	if err != nil {
		return nil, err
	}
	var qHex string
	if sec.HasKey(keyQ) {
		qHex = sec.Key(keyQ).String()
	}
	return ffdh.NewGroup(pKey.String(), gKey.String(), qHex)
}

// LoadDefault resolves a group file the same way the teacher's
// tunnel/config.go resolves deblocus.ini: an explicit override first, then
// a handful of conventional locations, searched in order until one
// exists. It returns ErrNoGroupFile, not a parse error, when none do.
func LoadDefault() (map[string]*ffdh.Group, error) {
	if p := os.Getenv(EnvOverride); p != "" {
		return Load(p)
	}
	for _, p := range defaultSearchPaths() {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return nil, ErrNoGroupFile
}

func defaultSearchPaths() []string {
	paths := []string{FileName}

	if ef, err := osext.ExecutableFolder(); err == nil {
		paths = append(paths, filepath.Join(ef, FileName))
	}

	var home string
	if u, err := user.Current(); err == nil {
		home = u.HomeDir
	} else {
		home = os.Getenv("HOME")
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, FileName))
	}

	if runtime.GOOS != "windows" {
		paths = append(paths, filepath.Join("/etc/ffdh", FileName))
	}
	return paths
}
