// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
)

var (
	noSound bool

	config  string
	basedir string
)

func init() {
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")

	flag.StringVar(&config, "config", "m59sound.yaml", "path of the YAML config file")
	flag.StringVar(&basedir, "basedir", "", "resource directory, overrides the config file")
}

func ConfigFile() string {
	return config
}

func BaseDirectory() string {
	return basedir
}

func Sound() bool {
	return !noSound
}
